package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
)

// the getter must not run before the first read
func TestDeriveIsLazy(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 2})

	computes := 0
	d := reactive.Derive(rx, func() int {
		computes++
		return h.Get("n").(int) * 2
	})
	assert.Equal(t, 0, computes)

	assert.Equal(t, 4, d.Value())
	assert.Equal(t, 1, computes)
}

// repeated reads hit the cache until a dependency changes
func TestDeriveCaches(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 2})

	computes := 0
	d := reactive.Derive(rx, func() int {
		computes++
		return h.Get("n").(int) * 2
	})

	assert.Equal(t, 4, d.Value())
	assert.Equal(t, 4, d.Value())
	assert.Equal(t, 1, computes)

	h.Set("n", 3)
	assert.Equal(t, 1, computes) // still lazy

	assert.Equal(t, 6, d.Value())
	assert.Equal(t, 2, computes)
}

// several writes between reads cost a single recompute
func TestDeriveCollapsesWrites(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	computes := 0
	d := reactive.Derive(rx, func() int {
		computes++
		return h.Get("n").(int)
	})
	d.Value()

	h.Set("n", 2)
	h.Set("n", 3)
	h.Set("n", 4)
	assert.Equal(t, 4, d.Value())
	assert.Equal(t, 2, computes)
}

// a chain of derived cells recomputes each stage at most once per read
func TestDeriveChain(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	c1, c2 := 0, 0
	double := reactive.Derive(rx, func() int {
		c1++
		return h.Get("n").(int) * 2
	})
	plusOne := reactive.Derive(rx, func() int {
		c2++
		return double.Value() + 1
	})

	assert.Equal(t, 3, plusOne.Value())
	assert.Equal(t, 1, c1)
	assert.Equal(t, 1, c2)

	h.Set("n", 10)
	assert.Equal(t, 21, plusOne.Value())
	assert.Equal(t, 2, c1)
	assert.Equal(t, 2, c2)
}

// effects subscribe to derived cells like any other facet
func TestDeriveFeedsEffects(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	d := reactive.Derive(rx, func() int {
		return h.Get("n").(int) * 2
	})

	var seen []int
	reactive.Register(rx, func() any {
		seen = append(seen, d.Value())
		return nil
	})
	assert.Equal(t, []int{2}, seen)

	h.Set("n", 5)
	assert.Equal(t, []int{2, 10}, seen)

	// writing the value already in place dirties nothing downstream
	h.Set("n", 5)
	assert.Equal(t, []int{2, 10}, seen)
}

// a stopped cell keeps serving its last value and ignores its dependencies
func TestDeriveStop(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	computes := 0
	d := reactive.Derive(rx, func() int {
		computes++
		return h.Get("n").(int)
	})
	assert.Equal(t, 1, d.Value())

	d.Stop()
	h.Set("n", 2)
	assert.Equal(t, 1, d.Value())
	assert.Equal(t, 1, computes)
}
