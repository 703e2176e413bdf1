package fifo

// Fifo is a first-in first-out queue backed by a ring buffer, so heavy
// enqueue/dequeue traffic reuses storage instead of re-slicing. The zero
// value is an empty queue.
type Fifo[T any] struct {
	s    []T
	head int
	n    int
}

func (f *Fifo[T]) Enqueue(t T) {
	if f.n == len(f.s) {
		f.grow()
	}
	f.s[(f.head+f.n)%len(f.s)] = t
	f.n++
}

func (f *Fifo[T]) Dequeue() (t T, ok bool) {
	if f.n > 0 {
		t = f.s[f.head]
		var zero T
		f.s[f.head] = zero
		f.head = (f.head + 1) % len(f.s)
		f.n--
		ok = true
	}
	return
}

func (f *Fifo[T]) Len() int {
	return f.n
}

func (f *Fifo[T]) grow() {
	s := make([]T, max(4, 2*len(f.s)))
	for i := range f.n {
		s[i] = f.s[(f.head+i)%len(f.s)]
	}
	f.s = s
	f.head = 0
}
