package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the callback should receive the new value and the previous one
func TestObserveOldAndNew(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	type pair struct{ newV, oldV any }
	var calls []pair
	stop, err := reactive.Observe(rx, func() any {
		return h.Get("n")
	}, func(newV, oldV any, _ reactive.OnInvalidate) {
		calls = append(calls, pair{newV, oldV})
	})
	require.NoError(t, err)
	defer stop()

	assert.Empty(t, calls)

	h.Set("n", 2)
	h.Set("n", 3)
	assert.Equal(t, []pair{{2, 1}, {3, 2}}, calls)
}

// Immediate fires once at setup with no previous value
func TestObserveImmediate(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 1})

	var newVs, oldVs []any
	stop, err := reactive.Observe(rx, func() any {
		return h.Get("n")
	}, func(newV, oldV any, _ reactive.OnInvalidate) {
		newVs = append(newVs, newV)
		oldVs = append(oldVs, oldV)
	}, reactive.Immediate())
	require.NoError(t, err)
	defer stop()

	assert.Equal(t, []any{1}, newVs)
	assert.Equal(t, []any{nil}, oldVs)

	h.Set("n", 2)
	assert.Equal(t, []any{1, 2}, newVs)
	assert.Equal(t, []any{nil, 1}, oldVs)
}

// a handle source subscribes to the whole subtree
func TestObserveHandleDeep(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{"leaf": 1},
		},
	})

	fires := 0
	stop, err := reactive.Observe(rx, h, func(newV, oldV any, _ reactive.OnInvalidate) {
		fires++
		assert.Same(t, h, newV)
	})
	require.NoError(t, err)
	defer stop()

	inner := h.Get("outer").(*reactive.Handle).Get("inner").(*reactive.Handle)
	inner.Set("leaf", 2)
	assert.Equal(t, 1, fires)

	// shape changes anywhere in the subtree fire too
	h.Get("outer").(*reactive.Handle).Set("added", true)
	assert.Equal(t, 2, fires)
}

// cyclic subtrees must not hang the traversal
func TestObserveHandleCycle(t *testing.T) {
	rx := newTestRuntime(t)
	m1 := map[string]any{"n": 1}
	m2 := map[string]any{}
	m1["other"] = m2
	m2["other"] = m1
	h := reactive.MustWrap(rx, m1)

	fires := 0
	stop, err := reactive.Observe(rx, h, func(newV, oldV any, _ reactive.OnInvalidate) {
		fires++
	})
	require.NoError(t, err)
	defer stop()

	h.Set("n", 2)
	assert.Equal(t, 1, fires)
}

// deferred watchers collapse a batch of invalidations into one callback
func TestObserveFlushPost(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 0})

	var calls []any
	stop, err := reactive.Observe(rx, func() any {
		return h.Get("n")
	}, func(newV, oldV any, _ reactive.OnInvalidate) {
		calls = append(calls, newV)
	}, reactive.WithFlush(reactive.FlushPost))
	require.NoError(t, err)
	defer stop()

	rx.Batch(func() {
		h.Set("n", 1)
		h.Set("n", 2)
		h.Set("n", 3)
		assert.Empty(t, calls)
	})
	assert.Equal(t, []any{3}, calls)
}

// an invalidate handler runs just before the superseding callback
func TestObserveInvalidate(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 0})

	var order []string
	stop, err := reactive.Observe(rx, func() any {
		return h.Get("n")
	}, func(newV, oldV any, onInvalidate reactive.OnInvalidate) {
		n := newV.(int)
		order = append(order, "cb")
		onInvalidate(func() {
			order = append(order, "invalidated")
			_ = n
		})
	})
	require.NoError(t, err)
	defer stop()

	h.Set("n", 1)
	assert.Equal(t, []string{"cb"}, order)

	h.Set("n", 2)
	assert.Equal(t, []string{"cb", "invalidated", "cb"}, order)
}

// stopping the watcher silences it
func TestObserveStop(t *testing.T) {
	rx := newTestRuntime(t)
	h := reactive.MustWrap(rx, map[string]any{"n": 0})

	fires := 0
	stop, err := reactive.Observe(rx, func() any {
		return h.Get("n")
	}, func(newV, oldV any, _ reactive.OnInvalidate) {
		fires++
	})
	require.NoError(t, err)

	h.Set("n", 1)
	stop()
	h.Set("n", 2)
	assert.Equal(t, 1, fires)
}

// sources that are neither getters nor handles are rejected
func TestObserveInvalidSource(t *testing.T) {
	rx := newTestRuntime(t)

	_, err := reactive.Observe(rx, 42, func(newV, oldV any, _ reactive.OnInvalidate) {})
	assert.ErrorIs(t, err, reactive.ErrInvalidSource)
}
