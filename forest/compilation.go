package forest

import (
	"github.com/YuminosukeSato/compactforest/pkg/errors"
)

// node is one staging slot addressed by a caller-chosen index.
type node[F any, T Test[F]] struct {
	isLeaf      bool
	leafID      int
	left, right int
	test        T
}

// TreeCompilation collects the nodes of one tree under caller-chosen indices in
// [0, nodeCount) and turns them into a CompactDecisionTree.
//
// Every index must be set exactly once, by SetNode or SetLeaf, and every index
// except 0 must be used as a child exactly once. Compile may be called once.
type TreeCompilation[Out, F any, T Test[F]] struct {
	nodes       []node[F, T]
	used        []bool
	usedAsChild []bool
	adjustments []Out
}

// NewTreeCompilation allocates nodeCount staging slots. A negative count is
// treated as zero, which Compile rejects.
func NewTreeCompilation[Out, F any, T Test[F]](nodeCount int) *TreeCompilation[Out, F, T] {
	nodeCount = max(nodeCount, 0)
	tc := &TreeCompilation[Out, F, T]{
		nodes:       make([]node[F, T], nodeCount),
		used:        make([]bool, nodeCount),
		usedAsChild: make([]bool, nodeCount),
	}
	// The root has no incoming edge.
	if nodeCount > 0 {
		tc.usedAsChild[0] = true
	}
	return tc
}

// NodeCount returns the declared number of nodes.
func (tc *TreeCompilation[Out, F, T]) NodeCount() int {
	return len(tc.nodes)
}

func (tc *TreeCompilation[Out, F, T]) checkRange(op, param string, index int) error {
	if index < 0 || index >= len(tc.nodes) {
		return errors.NewIndexOutOfRangeError(op, param, index, len(tc.nodes))
	}
	return nil
}

// SetNode makes id a split whose test selects left when true and right when false.
func (tc *TreeCompilation[Out, F, T]) SetNode(id, left, right int, test T) error {
	const op = "SetNode"
	if err := tc.checkRange(op, "id", id); err != nil {
		return err
	}
	if err := tc.checkRange(op, "left", left); err != nil {
		return err
	}
	if err := tc.checkRange(op, "right", right); err != nil {
		return err
	}
	if tc.used[id] {
		return errors.NewDuplicateUseError(op, id, "node")
	}
	if tc.usedAsChild[left] {
		return errors.NewDuplicateUseError(op, left, "child")
	}
	if tc.usedAsChild[right] || left == right {
		return errors.NewDuplicateUseError(op, right, "child")
	}

	tc.nodes[id] = node[F, T]{left: left, right: right, test: test}
	tc.used[id] = true
	tc.usedAsChild[left] = true
	tc.usedAsChild[right] = true
	return nil
}

// SetLeaf makes id a leaf holding value. Leaves are numbered in call order.
func (tc *TreeCompilation[Out, F, T]) SetLeaf(id int, value Out) error {
	const op = "SetLeaf"
	if err := tc.checkRange(op, "id", id); err != nil {
		return err
	}
	if tc.used[id] {
		return errors.NewDuplicateUseError(op, id, "node")
	}

	tc.nodes[id] = node[F, T]{isLeaf: true, leafID: len(tc.adjustments)}
	tc.used[id] = true
	tc.adjustments = append(tc.adjustments, value)
	return nil
}

// Compile validates the staged nodes and returns the compact tree.
//
// Splits are numbered in index order, so index 0 becomes Split(0) when it is a
// split. For each split the left child becomes Next[1] and the right child Next[0].
func (tc *TreeCompilation[Out, F, T]) Compile() (CompactDecisionTree[Out, F, T], error) {
	var tree CompactDecisionTree[Out, F, T]
	if len(tc.nodes) == 0 {
		return tree, errors.NewEmptyTreeError("Compile")
	}
	for i := range tc.nodes {
		if !tc.used[i] {
			return tree, errors.NewIncompleteTreeError(i, "is not used as a node")
		}
		if !tc.usedAsChild[i] {
			return tree, errors.NewIncompleteTreeError(i, "is never used as a child")
		}
	}
	if err := tc.checkReachable(); err != nil {
		return tree, err
	}

	ids := make([]NodeID, len(tc.nodes))
	splitCount := 0
	for i := range tc.nodes {
		if tc.nodes[i].isLeaf {
			ids[i] = LeafNode(tc.nodes[i].leafID)
		} else {
			ids[i] = SplitNode(splitCount)
			splitCount++
		}
	}

	tree.splits = make([]CompactCondition[F, T], 0, splitCount)
	for i := range tc.nodes {
		n := &tc.nodes[i]
		if n.isLeaf {
			continue
		}
		tree.splits = append(tree.splits, CompactCondition[F, T]{
			Test: n.test,
			Next: [2]NodeID{ids[n.right], ids[n.left]},
		})
	}
	tree.adjustments = tc.adjustments

	tc.nodes, tc.used, tc.usedAsChild, tc.adjustments = nil, nil, nil, nil
	return tree, nil
}

// checkReachable rejects cycles detached from the root. The per-index checks
// guarantee every non-root index has exactly one parent but not that the
// parent chain ends at index 0.
func (tc *TreeCompilation[Out, F, T]) checkReachable() error {
	visited := make([]bool, len(tc.nodes))
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true
		if n := &tc.nodes[i]; !n.isLeaf {
			stack = append(stack, n.left, n.right)
		}
	}
	for i, ok := range visited {
		if !ok {
			return errors.NewIncompleteTreeError(i, "is not reachable from the root")
		}
	}
	return nil
}
