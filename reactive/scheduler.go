package reactive

// job is one pending unit of deferred work. The queue dedups by job
// identity, so anything that wants collapse-on-reschedule semantics keeps a
// single job value alive across schedules.
type job struct {
	run func()
}

// schedule appends j to the pending queue unless it is already waiting.
// Jobs run in insertion order at the next flush; scheduling during a flush
// appends to the same flush.
func (rx *Runtime) schedule(j *job) {
	if !rx.pendingSet.Add(j) {
		return
	}
	rx.pending = append(rx.pending, j)
}

// Flush runs the pending jobs in insertion order, then clears the queue. A
// job leaves the dedup set just before it runs, so work it causes can
// reschedule it within the same flush. Re-entrant calls while a flush is in
// progress are no-ops; the in-progress flush picks up anything newly
// scheduled. A panicking job propagates to the caller; the queue and the
// dedup set are cleared together on the way out, so jobs stranded behind
// the panic remain schedulable.
func (rx *Runtime) Flush() {
	if rx.flushing || len(rx.pending) == 0 {
		return
	}
	rx.flushing = true
	defer func() {
		rx.pending = rx.pending[:0]
		rx.pendingSet.Clear()
		rx.flushing = false
	}()
	for i := 0; i < len(rx.pending); i++ {
		j := rx.pending[i]
		rx.pendingSet.Remove(j)
		j.run()
	}
}

// StartBatch suspends the automatic flush until the matching EndBatch, so
// several writes in a row settle the queue once instead of per write.
func (rx *Runtime) StartBatch() { rx.batchDepth++ }

// EndBatch closes the innermost batch; closing the outermost one flushes
// the pending queue.
func (rx *Runtime) EndBatch() {
	rx.batchDepth--
	if rx.batchDepth == 0 {
		rx.Flush()
	}
}

// Batch runs fn inside StartBatch/EndBatch.
func (rx *Runtime) Batch(fn func()) {
	rx.StartBatch()
	defer rx.EndBatch()
	fn()
}
