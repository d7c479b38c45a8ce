package cowvec

import (
	"sync/atomic"

	"github.com/npillmayer/cowvec/arena"
)

// storage is the arena of a vector, shared by all vectors descending from a
// common origin by cloning or splitting.
type storage[T any] struct {
	arena  *arena.Arena[T]
	owners atomic.Int32
}

func newStorage[T any](capacity int) *storage[T] {
	s := &storage[T]{arena: arena.New[T](capacity)}
	s.owners.Store(1)
	return s
}

func (s *storage[T]) alloc(value T) arena.Ref[T] {
	return s.arena.Alloc(value)
}

// structure is the ordered list of handles which makes up the content of a vector.
// A structure with more than one owner must not be modified.
type structure[T any] struct {
	handles []arena.Ref[T]
	owners  atomic.Int32
}

func newStructure[T any](capacity int) *structure[T] {
	s := &structure[T]{}
	if capacity > 0 {
		s.handles = make([]arena.Ref[T], 0, capacity)
	}
	s.owners.Store(1)
	return s
}

// copyStructure creates a structure with a single owner, holding a copy of handles.
func copyStructure[T any](handles []arena.Ref[T]) *structure[T] {
	s := newStructure[T](len(handles))
	s.handles = append(s.handles, handles...)
	return s
}

func (s *structure[T]) shared() bool {
	return s.owners.Load() > 1
}
