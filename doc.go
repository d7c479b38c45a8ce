/*
Package cowvec implements a vector which is cheap to clone, regardless of its size.

A Vector keeps its elements in an append-only arena, which is shared between a vector
and all of its clones. On top of the arena, every vector holds an ordered list of
location handles (the vector's structure), which defines its content and length.
Cloning a vector copies neither the values nor the handles: the clone starts out
sharing both the arena (storage) and the handle list (structure) with the original.

Copy-on-write happens on two levels:

  - Structure: the first mutating call on a vector whose handle list is shared with
    another vector copies the handles (not the values) to a list of its own.

  - Values: Set never writes to an existing arena slot. It allocates the new value in the
    arena and re-points this vector's handle, leaving siblings untouched.

Values which are not referenced by any vector any more stay in the arena until the
last vector referencing the arena is released. CloneWithMaxCapacity creates a compacted
copy if the arena has accumulated too much garbage.

	v := cowvec.From([]int{1, 2, 3})
	w := v.Clone()   // cheap: shares storage and structure
	w.Set(0, 10)     // w gets a private structure; v still sees 1
	w.Push(4)        // v still has length 3

# Concurrency

Allocation in an arena is serialized by a mutex, and ownership counts are atomic.
Different vectors may therefore be used from different goroutines concurrently, even
if they share storage or structure. A single vector must not be mutated concurrently
with any other operation on it. A vector is safe to share between goroutines if its
element type is.

Contract violations, i.e. indices or ranges out of bounds, panic. They are checked
before a vector is touched, so a panicking call never leaves a half-done mutation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cowvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cowvec'.
func tracer() tracing.Trace {
	return tracing.Select("cowvec")
}
