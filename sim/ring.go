package sim

// Ring is a fixed-capacity FIFO
type Ring[T any] struct {
	buf  []T
	head int
	size int
}

// NewRing allocates a ring holding at most capacity items (minimum 1)
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

func (r *Ring[T]) Len() int   { return r.size }
func (r *Ring[T]) Cap() int   { return len(r.buf) }
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// Push appends v at the tail. When the ring is full the oldest item is
// overwritten and returned with ok == true.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.Full() {
		evicted = r.buf[r.head]
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
		return evicted, true
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
	return evicted, false
}

// Pop removes and returns the oldest item
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	v = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v, true
}

// Peek returns the oldest item without removing it
func (r *Ring[T]) Peek() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Reset empties the ring
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head, r.size = 0, 0
}
