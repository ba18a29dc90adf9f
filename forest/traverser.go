package forest

// Traverser walks a compact tree from the root to one leaf.
// It borrows the tree and must not outlive it.
type Traverser[Out, F any, T Test[F]] struct {
	tree    *CompactDecisionTree[Out, F, T]
	current NodeID
}

// NewTraverser returns a traverser positioned at the root of tree.
func NewTraverser[Out, F any, T Test[F]](tree *CompactDecisionTree[Out, F, T]) Traverser[Out, F, T] {
	return Traverser[Out, F, T]{tree: tree, current: tree.Root()}
}

// CanStep reports whether the traverser is still at a split.
func (t *Traverser[Out, F, T]) CanStep() bool {
	return !t.current.IsLeaf()
}

// MakeStep evaluates the current split and moves to the selected child.
// It must only be called while CanStep is true.
func (t *Traverser[Out, F, T]) MakeStep(features F) {
	split := &t.tree.splits[t.current.SplitIndex()]
	branch := 0
	if split.Test.Evaluate(features) {
		branch = 1
	}
	t.current = split.Next[branch]
}

// Value returns the adjustment of the reached leaf.
// It must only be called once CanStep is false.
func (t *Traverser[Out, F, T]) Value() Out {
	return t.tree.adjustments[t.current.AdjustmentIndex()]
}

// Current returns the node the traverser is positioned at.
func (t *Traverser[Out, F, T]) Current() NodeID {
	return t.current
}
