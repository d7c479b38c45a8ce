package cowvec

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/cowvec/arena"
)

// Vector is a growable, indexable sequence of values of type T, with cheap
// clones. The zero value is an empty vector ready to use.
//
// Vectors are handled by pointer. Copying a Vector struct by value does not
// create a clone; use Clone instead.
type Vector[T any] struct {
	props[T]
	store *storage[T]   // shared with every clone, until compaction
	list  *structure[T] // shared with clones, until the first mutation
}

// New creates an empty vector with private storage and structure.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{props: configure(opts)}
	v.init()
	return v
}

// WithCapacity creates an empty vector, pre-sized to hold n elements without
// growing its arena or its handle list.
func WithCapacity[T any](n int, opts ...Option[T]) *Vector[T] {
	opts = append(opts, Capacity[T](n))
	return New(opts...)
}

// From creates a vector holding a copy of every element of values.
func From[T any](values []T, opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{props: configure(opts)}
	if v.capacity < len(values) {
		v.capacity = len(values)
	}
	v.init()
	for _, x := range values {
		v.list.handles = append(v.list.handles, v.store.alloc(x))
	}
	return v
}

// Collect creates a vector from the values produced by seq.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	for x := range seq {
		v.list.handles = append(v.list.handles, v.store.alloc(x))
	}
	return v
}

// init attaches storage and structure to a zero or released vector.
func (v *Vector[T]) init() {
	if v.store == nil {
		v.store = newStorage[T](v.capacity)
	}
	if v.list == nil {
		v.list = newStructure[T](v.capacity)
	}
}

func (v *Vector[T]) handles() []arena.Ref[T] {
	if v.list == nil {
		return nil
	}
	return v.list.handles
}

// own makes sure v is the only owner of its structure. It has to be called
// before every change of v's handle list.
func (v *Vector[T]) own() {
	v.init()
	if !v.list.shared() {
		return
	}
	shared := v.list
	v.list = copyStructure(shared.handles)
	n := shared.owners.Add(-1) // only after copying; the last owner may now edit in place
	tracer().Debugf("cowvec: privatized structure of %d handles, %d owner(s) left",
		len(v.list.handles), n)
}

// --- Reading ---------------------------------------------------------------

// Len returns the number of elements of v.
func (v *Vector[T]) Len() int {
	return len(v.handles())
}

func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the element at index i, or false if i is out of range.
func (v *Vector[T]) Get(i int) (T, bool) {
	h := v.handles()
	if i < 0 || i >= len(h) {
		var zero T
		return zero, false
	}
	return h[i].Value(), true
}

// At returns the element at index i. At panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.list.handles[i].Value()
}

func (v *Vector[T]) First() (T, bool) {
	return v.Get(0)
}

func (v *Vector[T]) Last() (T, bool) {
	return v.Get(v.Len() - 1)
}

// Position returns the index of the first element satisfying pred.
func (v *Vector[T]) Position(pred func(T) bool) (int, bool) {
	for i, h := range v.handles() {
		if pred(h.Value()) {
			return i, true
		}
	}
	return -1, false
}

// ContainsFunc reports whether at least one element satisfies pred.
func (v *Vector[T]) ContainsFunc(pred func(T) bool) bool {
	_, found := v.Position(pred)
	return found
}

// ToSlice returns a new slice holding a copy of every element of v.
// Elements are copied with the vector's clone function (see CloneWith).
func (v *Vector[T]) ToSlice() []T {
	h := v.handles()
	s := make([]T, len(h))
	for i := range h {
		s[i] = v.cloneValue(h[i].Value())
	}
	return s
}

// String formats v like a slice.
func (v *Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, h := range v.handles() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", h.Value()))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Cloning ---------------------------------------------------------------

// Clone returns a vector with the same content as v. The clone shares storage
// and structure with v; neither values nor handles are copied.
func (v *Vector[T]) Clone() *Vector[T] {
	v.init()
	v.store.owners.Add(1)
	v.list.owners.Add(1)
	return &Vector[T]{props: v.props, store: v.store, list: v.list}
}

// CloneWithMaxCapacity behaves like Clone, as long as the arena of v holds at
// most limit allocations. Otherwise it returns a compacted copy of v: a vector
// with a fresh arena, holding a copy of the reachable elements of v only. The
// compacted copy shares nothing with v.
func (v *Vector[T]) CloneWithMaxCapacity(limit int) *Vector[T] {
	allocs := v.Allocations()
	if allocs <= limit {
		return v.Clone()
	}
	h := v.handles()
	w := &Vector[T]{props: v.props}
	w.store = newStorage[T](len(h))
	w.list = newStructure[T](len(h))
	for _, ref := range h {
		w.list.handles = append(w.list.handles, w.store.alloc(v.cloneValue(ref.Value())))
	}
	tracer().Debugf("cowvec: compacted arena from %d to %d allocations", allocs, len(h))
	return w
}

// Release drops v's claim on its storage and structure, leaving v as an empty
// zero vector. Vectors sharing storage or structure with v will no longer
// report it as shared with v.
func (v *Vector[T]) Release() {
	if v.list != nil {
		v.list.owners.Add(-1)
	}
	if v.store != nil {
		v.store.owners.Add(-1)
	}
	v.list, v.store = nil, nil
}

// --- Sharing ---------------------------------------------------------------

// IsStructureShared reports whether at least one other vector currently
// shares the handle list of v. This is the case right after cloning, until
// either side is mutated.
func (v *Vector[T]) IsStructureShared() bool {
	return v.list != nil && v.list.shared()
}

// IsStorageShared reports whether at least one other vector currently
// references the arena of v. Mutations do not change it; only compaction
// and releasing vectors do.
func (v *Vector[T]) IsStorageShared() bool {
	return v.store != nil && v.store.owners.Load() > 1
}

// Allocations returns the number of values ever allocated in the arena of v,
// by v or by any vector sharing its storage.
func (v *Vector[T]) Allocations() int {
	if v.store == nil {
		return 0
	}
	return v.store.arena.Len()
}
