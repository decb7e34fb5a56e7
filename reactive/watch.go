package reactive

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrInvalidSource is returned by Observe for sources that are neither a
// getter nor a handle.
var ErrInvalidSource = errors.New("reactive: watch source must be a func() any or a *Handle")

// FlushMode controls when a watcher's callback fires relative to the
// mutation that invalidated it.
type FlushMode uint8

const (
	// FlushSync runs the callback inside the triggering write.
	FlushSync FlushMode = iota
	// FlushPost defers the callback to the job queue, collapsing any number
	// of invalidations per batch into one run at the next flush.
	FlushPost
)

// OnInvalidate registers a handler that runs when the current callback
// invocation is superseded before its work commits.
type OnInvalidate func(fn func())

// WatchCallback receives the new and previous values of the watched
// expression.
type WatchCallback func(newV, oldV any, onInvalidate OnInvalidate)

type watchConfig struct {
	immediate bool
	flush     FlushMode
}

// WatchOption configures Observe.
type WatchOption func(*watchConfig)

// Immediate fires the callback once at setup with the initial value instead
// of waiting for the first change.
func Immediate() WatchOption {
	return func(c *watchConfig) { c.immediate = true }
}

// WithFlush selects the callback's flush timing.
func WithFlush(m FlushMode) WatchOption {
	return func(c *watchConfig) { c.flush = m }
}

// Observe watches a reactive expression. A func() any source is used as the
// getter directly; a *Handle source is traversed deeply so the watcher
// subscribes to the whole subtree. The callback gets (new, old) plus an
// invalidate registrar; a handler registered through it runs just before
// the next callback invocation, which lets an in-flight invocation detect
// it has gone stale.
func Observe(rx *Runtime, source any, cb WatchCallback, opts ...WatchOption) (stop func(), err error) {
	cfg := watchConfig{flush: FlushSync}
	for _, opt := range opts {
		opt(&cfg)
	}

	var getter func() any
	switch s := source.(type) {
	case func() any:
		getter = s
	case *Handle:
		getter = func() any {
			traverse(s, mapset.NewSet[any]())
			return s
		}
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidSource, source)
	}

	var (
		oldV    any
		cleanup func()
		runner  *Runner
	)
	j := &job{}
	j.run = func() {
		if runner.stopped {
			return
		}
		newV := runner.Run()
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
		cb(newV, oldV, func(fn func()) { cleanup = fn })
		oldV = newV
	}

	runner = Register(rx, func() any { return getter() },
		Lazy(),
		WithScheduler(func(*Runner) {
			if cfg.flush == FlushPost {
				rx.schedule(j)
			} else {
				j.run()
			}
		}),
	)

	if cfg.immediate {
		j.run()
	} else {
		// Prime the dependency set and capture the baseline without firing
		// the callback.
		oldV = runner.Run()
	}

	return runner.Stop, nil
}

// traverse reads every reachable facet of a wrapped subtree purely to
// register dependencies. The seen set breaks cycles.
func traverse(v any, seen mapset.Set[any]) {
	h, ok := v.(*Handle)
	if !ok {
		return
	}
	if !seen.Add(h.target()) {
		return
	}
	if h.IsList() {
		n := h.Len()
		for i := 0; i < n; i++ {
			traverse(h.At(i), seen)
		}
		return
	}
	for _, k := range h.Keys() {
		traverse(h.Get(k), seen)
	}
}
