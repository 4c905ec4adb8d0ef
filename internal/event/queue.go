package event

// Queue is an append-only buffer of one event type. A producer appends;
// consumers read the whole buffer; the tick driver resets it between ticks.
type Queue[T any] struct {
	items []T
}

// Push appends events.
func (q *Queue[T]) Push(ev ...T) {
	q.items = append(q.items, ev...)
}

// Events returns the buffered events in arrival order. The slice is only
// valid until Reset.
func (q *Queue[T]) Events() []T { return q.items }

// Len returns the number of buffered events.
func (q *Queue[T]) Len() int { return len(q.items) }

// Snapshot returns a copy that survives Reset.
func (q *Queue[T]) Snapshot() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Reset empties the queue, keeping its storage.
func (q *Queue[T]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
}

// Queues are the two event buffers owned by the tick driver.
type Queues struct {
	Damage Queue[Damage]
	Death  Queue[Death]
}

// Reset empties both queues.
func (q *Queues) Reset() {
	q.Damage.Reset()
	q.Death.Reset()
}
