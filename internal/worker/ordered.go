package worker

// Reorderer releases results in Index order regardless of the order in
// which workers finish. Indexes must start at 0 and be dense.
type Reorderer struct {
	next    int
	pending map[int]ProcessResult
	emit    func(ProcessResult)
}

// NewReorderer returns a Reorderer that calls emit once per result, in order.
func NewReorderer(emit func(ProcessResult)) *Reorderer {
	return &Reorderer{
		pending: make(map[int]ProcessResult),
		emit:    emit,
	}
}

// Add accepts one result and emits every result that is now in sequence.
func (r *Reorderer) Add(result ProcessResult) {
	r.pending[result.Index()] = result
	for {
		next, ok := r.pending[r.next]
		if !ok {
			return
		}
		delete(r.pending, r.next)
		r.next++
		r.emit(next)
	}
}

// Pending returns the number of results held back waiting for a gap.
func (r *Reorderer) Pending() int {
	return len(r.pending)
}

// Drain emits the results still held back, in Index order, skipping any
// gaps left by items that were never processed.
func (r *Reorderer) Drain() {
	for len(r.pending) > 0 {
		if next, ok := r.pending[r.next]; ok {
			delete(r.pending, r.next)
			r.emit(next)
		}
		r.next++
	}
}

// Collect drains pool results through a Reorderer.
func Collect(results <-chan ProcessResult, emit func(ProcessResult)) {
	r := NewReorderer(emit)
	for result := range results {
		r.Add(result)
	}
	r.Drain()
}
