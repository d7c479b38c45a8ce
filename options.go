package cowvec

// Cloner is implemented by element types which need more than a plain Go
// assignment to produce an independent copy of a value.
type Cloner[T any] interface {
	Clone() T
}

type props[T any] struct {
	capacity int       // initial capacity of arena and structure
	clone    func(T) T // value clone; nil means cloneValue's default
}

// Option is a type to help initializing vectors at creation time.
type Option[T any] struct {
	config func(props[T]) props[T]
}

// Capacity is an option to pre-size the arena and the handle list of a
// new vector. Negative values are treated as 0.
//
// Use it like this:
//
//	vec := cowvec.New(cowvec.Capacity[string](128))
func Capacity[T any](n int) Option[T] {
	conf := func(p props[T]) props[T] {
		if n < 0 {
			n = 0
		}
		p.capacity = n
		return p
	}
	return Option[T]{config: conf}
}

// CloneWith is an option to set the function which copies element values.
// Copies are made by CloneWithMaxCapacity, Mut and ToSlice.
//
// Without this option, values implementing Cloner will be copied by calling
// Clone, all other values by assignment.
func CloneWith[T any](f func(T) T) Option[T] {
	conf := func(p props[T]) props[T] {
		p.clone = f
		return p
	}
	return Option[T]{config: conf}
}

func configure[T any](opts []Option[T]) props[T] {
	var p props[T]
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}

func (p props[T]) cloneValue(x T) T {
	if p.clone != nil {
		return p.clone(x)
	}
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}
