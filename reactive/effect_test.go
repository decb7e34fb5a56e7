package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
)

// registration should run the body once so dependencies exist from the start
func TestRegisterRunsImmediately(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	var seen []int
	reactive.Register(rx, func() any {
		seen = append(seen, h.Get("n").(int))
		return nil
	})
	assert.Equal(t, []int{1}, seen)

	h.Set("n", 2)
	assert.Equal(t, []int{1, 2}, seen)
}

// a lazy runner should not execute until asked
func TestLazyRunner(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	runs := 0
	r := reactive.Register(rx, func() any {
		runs++
		return h.Get("n")
	}, reactive.Lazy())
	assert.Equal(t, 0, runs)

	assert.Equal(t, 1, r.Run())
	assert.Equal(t, 1, runs)

	h.Set("n", 2)
	assert.Equal(t, 2, runs)
}

// writes to a key the body never read should not re-run it
func TestDependencyPrecision(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"a": 1, "b": 2})

	runs := 0
	reactive.Register(rx, func() any {
		runs++
		h.Get("a")
		return nil
	})

	h.Set("b", 3)
	assert.Equal(t, 1, runs)
	h.Set("a", 4)
	assert.Equal(t, 2, runs)
}

// a branch that stopped being read should stop retriggering
func TestConditionalDependencies(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"flag": true, "x": 1, "y": 2})

	runs := 0
	reactive.Register(rx, func() any {
		runs++
		if h.Get("flag").(bool) {
			h.Get("x")
		} else {
			h.Get("y")
		}
		return nil
	})
	assert.Equal(t, 1, runs)

	h.Set("y", 20) // unread branch
	assert.Equal(t, 1, runs)

	h.Set("flag", false)
	assert.Equal(t, 2, runs)

	h.Set("x", 10) // now the unread branch
	assert.Equal(t, 2, runs)
	h.Set("y", 21)
	assert.Equal(t, 3, runs)
}

// an effect that reads and writes the same key must not retrigger itself
func TestSelfTriggerSuppressed(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"count": 0})

	runs := 0
	reactive.Register(rx, func() any {
		runs++
		h.Set("count", h.Get("count").(int)+1)
		return nil
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, h.Get("count"))

	h.Set("count", 10)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 11, h.Get("count"))
}

// nested runs should restore the outer subscriber afterwards
func TestNestedEffects(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"outer": 1, "inner": 2})

	outerRuns, innerRuns := 0, 0
	reactive.Register(rx, func() any {
		outerRuns++
		reactive.Register(rx, func() any {
			innerRuns++
			h.Get("inner")
			return nil
		})
		h.Get("outer")
		return nil
	})
	assert.Equal(t, 1, outerRuns)
	assert.Equal(t, 1, innerRuns)

	// the read after the nested registration still belongs to the outer body
	h.Set("outer", 2)
	assert.Equal(t, 2, outerRuns)
}

// a stopped runner should neither trigger nor resubscribe
func TestStopDetaches(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	runs := 0
	r := reactive.Register(rx, func() any {
		runs++
		return h.Get("n")
	})
	assert.Equal(t, 1, runs)

	r.Stop()
	h.Set("n", 2)
	assert.Equal(t, 1, runs)

	// a manual run of a stopped runner evaluates the body without tracking
	assert.Equal(t, 2, r.Run())
	h.Set("n", 3)
	assert.Equal(t, 2, runs)
}

// paused tracking suppresses subscription but not notification
func TestPauseTracking(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"a": 1, "b": 2})

	runs := 0
	reactive.Register(rx, func() any {
		runs++
		h.Get("a")
		rx.PauseTracking()
		h.Get("b")
		rx.ResumeTracking()
		return nil
	})

	h.Set("b", 3)
	assert.Equal(t, 1, runs)
	h.Set("a", 2)
	assert.Equal(t, 2, runs)
}

// a panicking body propagates to the caller and leaves the runtime usable
func TestPanicInBodyPropagates(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"explode": false, "n": 0})

	runs := 0
	reactive.Register(rx, func() any {
		runs++
		if h.Get("explode").(bool) {
			panic("kaboom")
		}
		return nil
	})
	assert.Equal(t, 1, runs)

	assert.PanicsWithValue(t, "kaboom", func() {
		h.Set("explode", true)
	})
	assert.Equal(t, 2, runs)

	// the active stack unwound: fresh effects track and trigger normally
	var seen []int
	reactive.Register(rx, func() any {
		seen = append(seen, h.Get("n").(int))
		return nil
	})
	h.Set("n", 1)
	assert.Equal(t, []int{0, 1}, seen)

	// the panicked runner stays subscribed and recovers with its inputs
	h.Set("explode", false)
	assert.Equal(t, 3, runs)
}

// unbalanced resume is a programming error
func TestUnbalancedResumePanics(t *testing.T) {
	rx := newTestRuntime(t)
	assert.Panics(t, func() { rx.ResumeTracking() })
}
