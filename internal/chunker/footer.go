// Package chunker turns a forward-only sequence of lines into fixed-size chunks,
// applying header, blank-line and footer filtering on the way.
package chunker

// Footer is a bounded FIFO that withholds the last Cap values of a sequence.
//
// Memory use is O(Cap) regardless of how many values are pushed.
type Footer[T any] struct {
	buf  []T
	head int
	n    int
}

// NewFooter returns a Footer withholding capacity values. A capacity of 0
// makes the buffer a pass-through.
func NewFooter[T any](capacity int) *Footer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Footer[T]{buf: make([]T, capacity)}
}

// Push adds v. When the buffer is full the oldest value is evicted and
// returned with ok set; it is now eligible for emission.
func (f *Footer[T]) Push(v T) (eligible T, ok bool) {
	if len(f.buf) == 0 {
		return v, true
	}
	if f.n < len(f.buf) {
		f.buf[(f.head+f.n)%len(f.buf)] = v
		f.n++
		return eligible, false
	}
	eligible = f.buf[f.head]
	f.buf[f.head] = v
	f.head = (f.head + 1) % len(f.buf)
	return eligible, true
}

// Drain discards everything still buffered and returns how many values were dropped.
func (f *Footer[T]) Drain() int {
	n := f.n
	var zero T
	for i := range f.buf {
		f.buf[i] = zero
	}
	f.head, f.n = 0, 0
	return n
}

// Len returns the number of values currently withheld.
func (f *Footer[T]) Len() int { return f.n }

// Cap returns the number of trailing values the buffer withholds.
func (f *Footer[T]) Cap() int { return len(f.buf) }
