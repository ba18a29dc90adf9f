package forest

// Test decides the branch taken at a split for one feature container.
type Test[F any] interface {
	Evaluate(features F) bool
}

// CompactCondition is one split of a compact tree.
// Next[1] is taken when the test is true, Next[0] otherwise.
type CompactCondition[F any, T Test[F]] struct {
	Test T
	Next [2]NodeID
}

// CompactDecisionTree is the validated, renumbered form of a tree produced by
// TreeCompilation.Compile. It is immutable once built.
type CompactDecisionTree[Out, F any, T Test[F]] struct {
	splits      []CompactCondition[F, T]
	adjustments []Out
}

// Root returns Leaf(0) for a single-leaf tree and Split(0) otherwise.
func (t *CompactDecisionTree[Out, F, T]) Root() NodeID {
	if len(t.splits) == 0 {
		return LeafNode(0)
	}
	return SplitNode(0)
}

// NumSplits returns the number of split nodes.
func (t *CompactDecisionTree[Out, F, T]) NumSplits() int { return len(t.splits) }

// NumLeaves returns the number of leaf adjustments.
func (t *CompactDecisionTree[Out, F, T]) NumLeaves() int { return len(t.adjustments) }

// Split returns split i.
func (t *CompactDecisionTree[Out, F, T]) Split(i int) CompactCondition[F, T] { return t.splits[i] }

// Adjustment returns the value of leaf i.
func (t *CompactDecisionTree[Out, F, T]) Adjustment(i int) Out { return t.adjustments[i] }

// Depth returns the number of splits on the longest root-to-leaf path.
func (t *CompactDecisionTree[Out, F, T]) Depth() int {
	if len(t.splits) == 0 {
		return 0
	}
	type frame struct {
		id    NodeID
		depth int
	}
	maxDepth := 0
	stack := []frame{{SplitNode(0), 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		for _, next := range t.splits[f.id.SplitIndex()].Next {
			if !next.IsLeaf() {
				stack = append(stack, frame{next, f.depth + 1})
			}
		}
	}
	return maxDepth
}
