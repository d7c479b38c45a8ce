package cowvec

import "iter"

// Iterator walks the elements of a vector from front to back.
// An iterator always reads the current state of its vector; to start over,
// get a new one from Iter.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int // position of the next element to yield
}

// Iter returns an iterator positioned before the first element of v.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{vec: v}
}

// Next advances the iterator and returns the next element, or false if
// the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	x, ok := it.vec.Get(it.pos)
	if ok {
		it.pos++
	}
	return x, ok
}

// Index returns the position of the element most recently returned by Next,
// or -1 if Next has not yet returned an element.
func (it *Iterator[T]) Index() int {
	return it.pos - 1
}

// Remaining returns the exact number of elements Next will still return.
func (it *Iterator[T]) Remaining() int {
	if n := it.vec.Len() - it.pos; n > 0 {
		return n
	}
	return 0
}

// All returns an iterator over index/value pairs of v, for use with range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			if !yield(it.Index(), x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, for use with range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}
