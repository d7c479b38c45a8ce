package cowvec

import "fmt"

func (v *Vector[T]) checkIndex(i int) {
	assertThat(i >= 0 && i < v.Len(), "index out of bounds: index %d with length %d", i, v.Len())
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cowvec: "+msg, msgargs...)
		panic(msg)
	}
}
