package reactive

import (
	"fmt"
	"log"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Runtime is one self-contained reactivity world: the dependency store, the
// handle identity caches and the job queue all live here instead of in
// package globals, and everything runs on the caller's goroutine.
type Runtime struct {
	// store maps target -> key -> subscribed runners. A runner appears in a
	// set iff its most recent run read that key on that target.
	store map[any]map[depKey]mapset.Set[*Runner]

	// handles is the per-mode identity cache: wrapping the same target under
	// the same mode always yields the same *Handle.
	handles map[wrapMode]map[any]*Handle

	// records and lists key promoted targets by the identity of the raw
	// aggregate they were created from.
	records map[uintptr]*record
	lists   map[uintptr]*list

	// active is the LIFO stack of currently executing runners; the top entry
	// is the implicit subscriber for every tracked read.
	active []*Runner

	// pauseDepth > 0 suppresses dependency registration, not triggering.
	pauseDepth int

	batchDepth int
	pending    []*job
	pendingSet mapset.Set[*job]
	flushing   bool

	onViolation func(err error)
}

// Option configures a Runtime at construction.
type Option func(*Runtime)

// WithViolationHandler replaces the diagnostic sink for policy violations
// such as writes through a read-only handle. The default logs via the
// standard logger. Violations are never raised as panics.
func WithViolationHandler(fn func(err error)) Option {
	return func(rx *Runtime) {
		rx.onViolation = fn
	}
}

func New(opts ...Option) *Runtime {
	rx := &Runtime{
		store:      map[any]map[depKey]mapset.Set[*Runner]{},
		handles:    map[wrapMode]map[any]*Handle{},
		records:    map[uintptr]*record{},
		lists:      map[uintptr]*list{},
		pendingSet: mapset.NewSet[*job](),
		onViolation: func(err error) {
			log.Printf("proxyparty: %v", err)
		},
	}
	for _, opt := range opts {
		opt(rx)
	}
	return rx
}

func (rx *Runtime) violation(format string, args ...any) {
	if rx.onViolation != nil {
		rx.onViolation(fmt.Errorf(format, args...))
	}
}

func (rx *Runtime) activeRunner() *Runner {
	if len(rx.active) == 0 {
		return nil
	}
	return rx.active[len(rx.active)-1]
}

// PauseTracking suppresses dependency registration until the matching
// ResumeTracking. Triggers still fire; only track becomes a no-op. Calls
// nest.
func (rx *Runtime) PauseTracking() { rx.pauseDepth++ }

func (rx *Runtime) ResumeTracking() {
	if rx.pauseDepth == 0 {
		panic("ResumeTracking without matching PauseTracking")
	}
	rx.pauseDepth--
}

// track subscribes the active runner to (target, key) and records the
// subscriber set on the runner itself so the next run can detach in O(deps).
func (rx *Runtime) track(target any, key depKey) {
	if rx.pauseDepth > 0 {
		return
	}
	r := rx.activeRunner()
	if r == nil || r.stopped {
		return
	}
	byKey := rx.store[target]
	if byKey == nil {
		byKey = map[depKey]mapset.Set[*Runner]{}
		rx.store[target] = byKey
	}
	set := byKey[key]
	if set == nil {
		set = mapset.NewSet[*Runner]()
		byKey[key] = set
	}
	if set.Add(r) {
		r.deps = append(r.deps, set)
	}
}

// trigger collects every runner subscribed to (target, key), widens the set
// for structural operations, and hands each one to its scheduler, or to the
// job queue when it has none. The surrounding batch flushes the queue when
// the outermost write unwinds, so several notifications for one runner
// collapse into a single run. The runner currently executing is always
// excluded so an effect that reads and writes the same key cannot retrigger
// itself.
func (rx *Runtime) trigger(target any, key depKey, op opType, newValue any) {
	byKey := rx.store[target]
	if byKey == nil {
		return
	}

	active := rx.activeRunner()
	toRun := mapset.NewSet[*Runner]()
	collect := func(set mapset.Set[*Runner]) {
		if set == nil {
			return
		}
		for r := range set.Iter() {
			if r != active {
				toRun.Add(r)
			}
		}
	}

	collect(byKey[key])
	if key.kind == kindLength {
		// Shrinking a sequence invalidates every slot past the new end.
		newLen, _ := newValue.(int)
		for k, set := range byKey {
			if k.kind == kindIndex && k.index >= newLen {
				collect(set)
			}
		}
	}
	if op == opAdd && key.kind == kindIndex {
		// Insertion changes the sequence's length.
		collect(byKey[lengthKey])
	}
	if op == opAdd || op == opDelete {
		// Shape changed, so any full enumeration must re-run.
		collect(byKey[iterateKey])
	}

	rx.StartBatch()
	defer rx.EndBatch()
	for r := range toRun.Iter() {
		if r.stopped {
			continue
		}
		if r.scheduler != nil {
			r.scheduler(r)
		} else {
			rx.schedule(r.asJob())
		}
	}
}

// Release drops every dependency-store entry and cached handle for the
// target behind h. The store holds strong references, so long-lived runtimes
// wrapping short-lived data must release handles they are done with or the
// entries stay live indefinitely.
func (rx *Runtime) Release(h *Handle) {
	if h == nil {
		return
	}
	rx.dropTarget(h.target())
	for _, cache := range rx.handles {
		delete(cache, h.target())
	}
	switch t := h.target().(type) {
	case *record:
		if t.origin != 0 {
			delete(rx.records, t.origin)
		}
	case *list:
		if t.origin != 0 {
			delete(rx.lists, t.origin)
		}
	}
}

func (rx *Runtime) dropTarget(target any) {
	byKey := rx.store[target]
	if byKey == nil {
		return
	}
	for _, set := range byKey {
		set.Clear()
	}
	delete(rx.store, target)
}

// recordFor promotes a raw map to its record target, keyed by the map's
// identity so the same map always promotes to the same record.
func (rx *Runtime) recordFor(m map[string]any) *record {
	ptr := reflect.ValueOf(m).Pointer()
	if rec, ok := rx.records[ptr]; ok {
		return rec
	}
	rec := newRecord(m)
	rec.origin = ptr
	rx.records[ptr] = rec
	return rec
}

// listFor promotes a raw slice to its list target, keyed by the identity of
// the slice's backing array. Empty slices have no usable identity and
// promote to a fresh target each time.
func (rx *Runtime) listFor(s []any) *list {
	if len(s) == 0 {
		return newList(nil)
	}
	ptr := reflect.ValueOf(s).Pointer()
	if l, ok := rx.lists[ptr]; ok {
		return l
	}
	l := newList(s)
	l.origin = ptr
	rx.lists[ptr] = l
	return l
}
