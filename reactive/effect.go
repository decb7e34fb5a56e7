package reactive

import mapset "github.com/deckarep/golang-set/v2"

// Runner is a registered effect: a body plus the reverse index of every
// subscriber set the body's last run joined.
type Runner struct {
	rx        *Runtime
	fn        func() any
	lazy      bool
	scheduler func(*Runner)

	// deps holds the subscriber sets this runner currently belongs to, so a
	// re-run can detach from all of them before re-reading. Conditional
	// reads shrink or reshape the dependency set between runs; without the
	// detach, stale branches would keep retriggering.
	deps []mapset.Set[*Runner]

	stopped bool
	queued  *job
}

// EffectOption configures a Runner at registration.
type EffectOption func(*Runner)

// Lazy defers the first run until the caller invokes it; without it the
// body executes once immediately at registration.
func Lazy() EffectOption {
	return func(r *Runner) { r.lazy = true }
}

// WithScheduler routes triggers through fn instead of the runtime's job
// queue. The scheduler decides if and when the runner actually executes.
func WithScheduler(fn func(*Runner)) EffectOption {
	return func(r *Runner) { r.scheduler = fn }
}

// Register wraps fn as a trackable effect. Unless Lazy is given, the body
// runs once immediately so its dependency set is populated from the start.
func Register(rx *Runtime, fn func() any, opts ...EffectOption) *Runner {
	r := &Runner{rx: rx, fn: fn}
	for _, opt := range opts {
		opt(r)
	}
	if !r.lazy {
		r.Run()
	}
	return r
}

// Run detaches the runner from every prior subscription, executes the body
// with this runner as the active subscriber, and returns the body's value.
// Nested runs save and restore the previous active runner in LIFO order,
// and tracking suppression from the surrounding call does not leak into the
// body.
func (r *Runner) Run() any {
	if r.stopped {
		return r.fn()
	}
	r.detach()

	rx := r.rx
	rx.active = append(rx.active, r)
	prevPause := rx.pauseDepth
	rx.pauseDepth = 0
	defer func() {
		rx.pauseDepth = prevPause
		rx.active = rx.active[:len(rx.active)-1]
	}()

	return r.fn()
}

// Stop detaches the runner permanently; later triggers skip it and later
// reads no longer subscribe it.
func (r *Runner) Stop() {
	r.detach()
	r.stopped = true
}

func (r *Runner) detach() {
	for _, set := range r.deps {
		set.Remove(r)
	}
	r.deps = r.deps[:0]
}

// asJob memoizes the runner's queue entry so repeated triggers dedup to one
// unit of pending work. Stopping the runner after it queued leaves a job
// that does nothing.
func (r *Runner) asJob() *job {
	if r.queued == nil {
		r.queued = &job{run: func() {
			if !r.stopped {
				r.Run()
			}
		}}
	}
	return r.queued
}
