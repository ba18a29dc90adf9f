package split

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of value types ordered conditions accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Condition is a split test over one sample. Use it as the tree's test type
// when a single tree mixes several kinds of conditions.
type Condition[V any] interface {
	Evaluate(fs Features[V]) bool
}

// LessThan is true when the feature is strictly below Threshold.
// Missing values and NaN are false.
type LessThan[V Number] struct {
	Feature   int
	Threshold V
}

// Evaluate implements Condition.
func (c LessThan[V]) Evaluate(fs Features[V]) bool {
	v, ok := fs.Feature(c.Feature)
	return ok && v < c.Threshold
}

// Interval is true when Left <= feature <= Right.
// Missing values and NaN are false.
type Interval[V Number] struct {
	Feature     int
	Left, Right V
}

// Evaluate implements Condition.
func (c Interval[V]) Evaluate(fs Features[V]) bool {
	v, ok := fs.Feature(c.Feature)
	return ok && c.Left <= v && v <= c.Right
}

// SetOfValues is true when the feature is one of Values.
// Missing values evaluate to ResultIfMissing.
type SetOfValues[V comparable] struct {
	Feature         int
	Values          map[V]struct{}
	ResultIfMissing bool
}

// NewSetOfValues builds a SetOfValues condition from a value list.
func NewSetOfValues[V comparable](feature int, resultIfMissing bool, values ...V) SetOfValues[V] {
	set := make(map[V]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return SetOfValues[V]{Feature: feature, Values: set, ResultIfMissing: resultIfMissing}
}

// Evaluate implements Condition.
func (c SetOfValues[V]) Evaluate(fs Features[V]) bool {
	v, ok := fs.Feature(c.Feature)
	if !ok {
		return c.ResultIfMissing
	}
	_, in := c.Values[v]
	return in
}

// Not inverts another condition, missing-value routing included.
type Not[V any] struct {
	Cond Condition[V]
}

// Evaluate implements Condition.
func (c Not[V]) Evaluate(fs Features[V]) bool {
	return !c.Cond.Evaluate(fs)
}
