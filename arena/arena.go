package arena

import (
	"fmt"
	"sync"
)

const (
	// DefaultChunkLen is the number of slots of the first chunk of an arena
	// created without a capacity hint.
	DefaultChunkLen = 16
	// MaxChunkLen limits the number of slots of chunks created by doubling.
	// An explicit capacity hint may exceed it for the first chunk.
	MaxChunkLen = 1 << 16
)

// Arena is an append-only store of values of type T.
// The zero value is not usable; create arenas with New.
type Arena[T any] struct {
	mu     sync.Mutex
	chunks [][]T // every chunk has len ≤ cap, and is never appended beyond cap
	allocs int   // allocations ever made
	slots  int   // sum of chunk capacities
}

// New creates an empty arena. If capacity is > 0, the first chunk will hold
// exactly capacity values, otherwise DefaultChunkLen values.
func New[T any](capacity int) *Arena[T] {
	if capacity <= 0 {
		capacity = DefaultChunkLen
	}
	a := &Arena[T]{}
	a.grow(capacity)
	return a
}

// Ref is a location handle for a value living in an arena.
// The zero Ref does not reference anything.
type Ref[T any] struct {
	p *T
}

// Value returns a copy of the value r refers to.
func (r Ref[T]) Value() T {
	assertThat(r.p != nil, "dereferencing an invalid location handle")
	return *r.p
}

// Pointer returns the address of the arena slot r refers to.
// Clients must not write through it, except for slots they have just allocated
// and not yet handed to anyone else.
func (r Ref[T]) Pointer() *T {
	return r.p
}

// Valid is true if r has been produced by Alloc.
func (r Ref[T]) Valid() bool {
	return r.p != nil
}

// Alloc appends value to the arena and returns a handle for it.
// Alloc is safe for concurrent use.
func (a *Arena[T]) Alloc(value T) Ref[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := len(a.chunks) - 1
	if len(a.chunks[c]) == cap(a.chunks[c]) {
		a.grow(a.nextChunkLen())
		c++
	}
	chunk := append(a.chunks[c], value)
	a.chunks[c] = chunk
	a.allocs++
	return Ref[T]{p: &chunk[len(chunk)-1]}
}

// Len returns the number of allocations ever made in the arena. This is not
// the number of values still referenced by anyone.
func (a *Arena[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// grow appends a new chunk with room for n values. Caller holds the lock,
// or has exclusive access to a during construction.
func (a *Arena[T]) grow(n int) {
	a.chunks = append(a.chunks, make([]T, 0, n))
	a.slots += n
	if len(a.chunks) > 1 {
		tracer().Debugf("arena: new chunk #%d with %d slots, %d slots in total",
			len(a.chunks), n, a.slots)
	}
}

func (a *Arena[T]) nextChunkLen() int {
	n := 2 * cap(a.chunks[len(a.chunks)-1])
	if n > MaxChunkLen {
		n = MaxChunkLen
	}
	if n < DefaultChunkLen {
		n = DefaultChunkLen
	}
	return n
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("arena: "+msg, msgargs...)
		panic(msg)
	}
}
