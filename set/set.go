package set

import "iter"

type Set[T comparable] map[T]struct{}

func New[T comparable](items ...T) Set[T] {
	s := Set[T](make(map[T]struct{}, len(items)))
	for _, t := range items {
		s.Insert(t)
	}
	return s
}

func Collect[T comparable](it iter.Seq[T]) Set[T] {
	s := New[T]()
	for t := range it {
		s.Insert(t)
	}
	return s
}

func (s Set[T]) Insert(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Delete(t T) {
	delete(s, t)
}

func (s Set[T]) Exists(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for t := range s {
		if !o.Exists(t) {
			return false
		}
	}
	return true
}

func (s Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s {
			if !yield(t) {
				return
			}
		}
	}
}
