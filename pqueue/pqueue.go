// pqueue.go implements the operations of the stable priority queue. Every
// method delegates the ordering work to the underlying heap; this file only
// attaches sequence numbers on the way in and strips entries on the way out.
package pqueue

// Push inserts payload with the given priority. Among equal priorities,
// earlier pushes leave earlier. Complexity: O(log n).
func (q *Queue[T, P]) Push(payload T, priority P) {
	q.h.Push(entry[T, P]{payload: payload, pri: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the payload with the best priority, FIFO among
// equals. Returns ErrEmptyQueue if the queue is empty. Complexity: O(log n).
func (q *Queue[T, P]) Pop() (T, error) {
	e, err := q.h.Pop()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return e.payload, nil
}

// PopWithPriority removes and returns the best payload together with the
// priority it was pushed with. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T, P]) PopWithPriority() (T, P, error) {
	e, err := q.h.Pop()
	if err != nil {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}

	return e.payload, e.pri, nil
}

// Peek returns the payload that Pop would return, without removing it.
// Returns ErrEmptyQueue if the queue is empty. Complexity: O(1).
func (q *Queue[T, P]) Peek() (T, error) {
	e, err := q.h.Peek()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return e.payload, nil
}

// PeekPriority returns the priority that Pop would surrender, without
// removing anything. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *Queue[T, P]) PeekPriority() (P, error) {
	e, err := q.h.Peek()
	if err != nil {
		var zero P
		return zero, ErrEmptyQueue
	}

	return e.pri, nil
}

// Len returns the number of queued elements. Complexity: O(1).
func (q *Queue[T, P]) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue holds no elements. Complexity: O(1).
func (q *Queue[T, P]) IsEmpty() bool { return q.h.IsEmpty() }
