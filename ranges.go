package cowvec

import (
	"fmt"
	"slices"

	"github.com/npillmayer/cowvec/arena"
)

// BoundKind tells how the index of a Bound is to be interpreted.
type BoundKind uint8

const (
	Unbounded BoundKind = iota // no limit: start or end of the vector
	Included                   // the index is part of the range
	Excluded                   // the index is not part of the range
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Index int
}

// Range denotes a contiguous run of positions within a vector.
// Use the constructors Span, Closed, StartAt, UpTo, Through and Full.
// The zero Range is the full range.
type Range struct {
	Start, End Bound
}

// Span is the half-open range lo ≤ i < hi.
func Span(lo, hi int) Range {
	return Range{Start: Bound{Included, lo}, End: Bound{Excluded, hi}}
}

// Closed is the range lo ≤ i ≤ hi.
func Closed(lo, hi int) Range {
	return Range{Start: Bound{Included, lo}, End: Bound{Included, hi}}
}

// StartAt is the range from lo to the end of the vector.
func StartAt(lo int) Range {
	return Range{Start: Bound{Included, lo}}
}

// UpTo is the range from the start of the vector to hi, excluding hi.
func UpTo(hi int) Range {
	return Range{End: Bound{Excluded, hi}}
}

// Through is the range from the start of the vector to hi, including hi.
func Through(hi int) Range {
	return Range{End: Bound{Included, hi}}
}

// Full is the range of all positions.
func Full() Range {
	return Range{}
}

func (r Range) String() string {
	var lo, hi string
	switch r.Start.Kind {
	case Included:
		lo = fmt.Sprintf("%d", r.Start.Index)
	case Excluded:
		lo = fmt.Sprintf("%d<", r.Start.Index)
	}
	switch r.End.Kind {
	case Included:
		hi = fmt.Sprintf("=%d", r.End.Index)
	case Excluded:
		hi = fmt.Sprintf("%d", r.End.Index)
	}
	return lo + ".." + hi
}

// resolve turns r into half-open bounds [start, end) for a vector of length n.
func (r Range) resolve(n int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Index
	case Excluded:
		start = r.Start.Index + 1
	}
	switch r.End.Kind {
	case Included:
		end = r.End.Index + 1
	case Excluded:
		end = r.End.Index
	default:
		end = n
	}
	assertThat(start >= 0, "range start %d out of bounds for length %d", start, n)
	assertThat(start <= end, "range start %d is greater than range end %d", start, end)
	assertThat(end <= n, "range end %d out of bounds for length %d", end, n)
	return
}

// Splice removes the elements in range r and puts replacements in their place.
// It returns the removed elements. Splice panics if r is not within
// [0, v.Len()].
func (v *Vector[T]) Splice(r Range, replacements ...T) []T {
	start, end := r.resolve(v.Len())
	v.own()
	removed := make([]T, 0, end-start)
	for _, ref := range v.list.handles[start:end] {
		removed = append(removed, ref.Value())
	}
	fresh := make([]arena.Ref[T], len(replacements))
	for i, x := range replacements {
		fresh[i] = v.store.alloc(x)
	}
	v.list.handles = slices.Replace(v.list.handles, start, end, fresh...)
	return removed
}

// Drain removes the elements in range r and returns them.
func (v *Vector[T]) Drain(r Range) []T {
	return v.Splice(r)
}

// SplitOff splits v in two at index at. Afterwards v holds the elements
// [0, at), and the returned vector holds the elements [at, n).
// Both vectors share storage, but have independent structures.
// SplitOff panics if at > v.Len().
func (v *Vector[T]) SplitOff(at int) *Vector[T] {
	assertThat(at >= 0 && at <= v.Len(), "split index out of bounds: index %d with length %d", at, v.Len())
	v.own()
	tail := &Vector[T]{props: v.props, store: v.store}
	tail.list = copyStructure(v.list.handles[at:])
	v.store.owners.Add(1)
	clear(v.list.handles[at:])
	v.list.handles = v.list.handles[:at]
	tracer().Debugf("cowvec: split off %d handles at %d", tail.Len(), at)
	return tail
}
