package cowvec

// Contains reports whether x is an element of v.
func Contains[T comparable](v *Vector[T], x T) bool {
	_, found := Index(v, x)
	return found
}

// Index returns the position of the first occurrence of x in v.
func Index[T comparable](v *Vector[T], x T) (int, bool) {
	return v.Position(func(y T) bool { return x == y })
}

// Equal reports whether a and b have the same length and equal elements
// at every position. Vectors sharing a structure are equal without looking
// at their elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.list == b.list {
		return true
	}
	hb := b.handles()
	for i, ref := range a.handles() {
		if ref.Value() != hb[i].Value() {
			return false
		}
	}
	return true
}
