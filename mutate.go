package cowvec

import (
	"iter"
	"slices"

	"github.com/npillmayer/cowvec/arena"
)

// Every operation in this file checks its bounds first, then calls v.own(),
// and only then edits v.list.handles.

// Set replaces the element at index i. The new value is allocated in the arena;
// vectors sharing storage with v continue to see the old one.
// Set panics if i is out of range.
func (v *Vector[T]) Set(i int, value T) {
	v.checkIndex(i)
	v.own()
	v.list.handles[i] = v.store.alloc(value)
}

// Mut returns a pointer to a writable copy of the element at index i.
//
// Every call to Mut allocates a copy of the current value in the arena, whether
// or not the caller writes through the pointer. Prefer Set, which makes the
// allocation explicit. The pointer may be written to until the next operation
// on v or on any vector sharing storage with v; in particular, writes after
// cloning v would be visible to the clone.
//
// Mut panics if i is out of range.
func (v *Vector[T]) Mut(i int) *T {
	v.checkIndex(i)
	v.own()
	ref := v.store.alloc(v.cloneValue(v.list.handles[i].Value()))
	v.list.handles[i] = ref
	return ref.Pointer()
}

// Push appends value to the end of v.
func (v *Vector[T]) Push(value T) {
	v.own()
	v.list.handles = append(v.list.handles, v.store.alloc(value))
}

// Pop removes the last element and returns it, or false if v is empty.
// The value stays in the arena.
func (v *Vector[T]) Pop() (T, bool) {
	v.own()
	n := len(v.list.handles)
	if n == 0 {
		var zero T
		return zero, false
	}
	ref := v.list.handles[n-1]
	v.list.handles[n-1] = arena.Ref[T]{}
	v.list.handles = v.list.handles[:n-1]
	return ref.Value(), true
}

// Insert inserts value at index i, shifting all elements from i onwards
// to the right. Insert panics if i > v.Len().
func (v *Vector[T]) Insert(i int, value T) {
	assertThat(i >= 0 && i <= v.Len(), "insertion index out of bounds: index %d with length %d", i, v.Len())
	v.own()
	v.list.handles = slices.Insert(v.list.handles, i, v.store.alloc(value))
}

// Remove removes and returns the element at index i, shifting all elements
// after it to the left. Remove panics if i is out of range.
func (v *Vector[T]) Remove(i int) T {
	v.checkIndex(i)
	v.own()
	ref := v.list.handles[i]
	v.list.handles = slices.Delete(v.list.handles, i, i+1)
	return ref.Value()
}

// Swap exchanges the elements at indices a and b.
func (v *Vector[T]) Swap(a, b int) {
	v.checkIndex(a)
	v.checkIndex(b)
	v.own()
	h := v.list.handles
	h[a], h[b] = h[b], h[a]
}

func (v *Vector[T]) Reverse() {
	v.own()
	slices.Reverse(v.list.handles)
}

// Truncate keeps the first n elements of v. If n ≥ v.Len(), v is unchanged.
func (v *Vector[T]) Truncate(n int) {
	assertThat(n >= 0, "negative length %d for truncate", n)
	v.own()
	if n >= len(v.list.handles) {
		return
	}
	clear(v.list.handles[n:])
	v.list.handles = v.list.handles[:n]
}

// Clear removes all elements of v. Values stay in the arena.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// Extend appends values to the end of v.
func (v *Vector[T]) Extend(values ...T) {
	v.own()
	v.list.handles = slices.Grow(v.list.handles, len(values))
	for _, x := range values {
		v.list.handles = append(v.list.handles, v.store.alloc(x))
	}
}

// ExtendSeq appends the values produced by seq to the end of v.
func (v *Vector[T]) ExtendSeq(seq iter.Seq[T]) {
	v.own()
	for x := range seq {
		v.list.handles = append(v.list.handles, v.store.alloc(x))
	}
}

// Retain keeps only the elements for which keep returns true, preserving
// their order. Discarded values stay in the arena.
func (v *Vector[T]) Retain(keep func(T) bool) {
	v.own()
	v.list.handles = slices.DeleteFunc(v.list.handles, func(ref arena.Ref[T]) bool {
		return !keep(ref.Value())
	})
}
