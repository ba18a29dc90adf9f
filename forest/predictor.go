package forest

import (
	"github.com/YuminosukeSato/compactforest/forest/split"
)

// SinglePredictor scores one compiled tree.
type SinglePredictor[Out, F any, T Test[F]] struct {
	tree CompactDecisionTree[Out, F, T]
}

// Predict walks the tree for features and returns the reached leaf value.
func (p *SinglePredictor[Out, F, T]) Predict(features F) Out {
	tr := NewTraverser(&p.tree)
	for tr.CanStep() {
		tr.MakeStep(features)
	}
	return tr.Value()
}

// Tree returns the compiled tree.
func (p *SinglePredictor[Out, F, T]) Tree() *CompactDecisionTree[Out, F, T] {
	return &p.tree
}

// BinaryOp combines the outputs of two trees.
type BinaryOp[Out any] func(a, b Out) Out

// Plus is the additive BinaryOp used by boosted ensembles.
func Plus[Out split.Number](a, b Out) Out {
	return a + b
}

// NoFilter is the tag type of ensembles that never filter trees.
type NoFilter struct{}
