// Package split provides feature containers and the split tests evaluated at
// tree nodes.
//
// A missing feature (an id past the end of a Dense container, or absent from a
// Sparse one) is reported by Feature returning false. Every condition states how
// it routes a missing value, so out-of-range feature ids never panic.
package split

// Features is read-only indexed access to the features of one sample.
type Features[V any] interface {
	// Feature returns the value of feature id and whether it is present.
	Feature(id int) (V, bool)
}

// Dense stores features by position.
type Dense[V any] []V

// Feature implements Features.
func (d Dense[V]) Feature(id int) (V, bool) {
	if id < 0 || id >= len(d) {
		var zero V
		return zero, false
	}
	return d[id], true
}

// Sparse stores only the features that are present.
type Sparse[V any] map[int]V

// Feature implements Features.
func (s Sparse[V]) Feature(id int) (V, bool) {
	v, ok := s[id]
	return v, ok
}
