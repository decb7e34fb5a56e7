package reactive

// Derived is a lazily recomputed, memoized cell. It sits on both sides of
// the track/trigger protocol: its internal runner subscribes to whatever
// the getter reads, and the cell itself is a target other effects can
// subscribe to through Value.
type Derived[T comparable] struct {
	rx     *Runtime
	runner *Runner
	value  T
	dirty  bool
}

var derivedValueKey = namedKey("value")

// Derive builds a cell over getter. The getter does not run until the
// first Value call; after that it runs again only when a dependency
// changed since the last read.
func Derive[T comparable](rx *Runtime, getter func() T) *Derived[T] {
	d := &Derived[T]{rx: rx, dirty: true}
	d.runner = Register(rx, func() any { return getter() },
		Lazy(),
		WithScheduler(func(*Runner) {
			// A dependency changed: mark the cache stale and pass the
			// staleness on to whoever reads this cell.
			if !d.dirty {
				d.dirty = true
				rx.trigger(d, derivedValueKey, opSet, nil)
			}
		}),
	)
	return d
}

// Value returns the cached result, recomputing first when stale, and
// subscribes the active runner to the cell.
func (d *Derived[T]) Value() T {
	if d.dirty {
		d.value = d.runner.Run().(T)
		d.dirty = false
	}
	d.rx.track(d, derivedValueKey)
	return d.value
}

// Stop detaches the cell from its dependencies and drops its subscribers.
// The last cached value remains readable.
func (d *Derived[T]) Stop() {
	d.runner.Stop()
	d.rx.dropTarget(d)
}
