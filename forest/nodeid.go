package forest

import "strconv"

// NodeID references either a split node or a leaf adjustment of a compact tree.
// Non-negative values are split indices; a leaf index i is stored as ^i.
type NodeID int

// SplitNode returns the id of split i.
func SplitNode(i int) NodeID { return NodeID(i) }

// LeafNode returns the id of leaf adjustment i.
func LeafNode(i int) NodeID { return NodeID(^i) }

// IsLeaf reports whether n references a leaf adjustment.
func (n NodeID) IsLeaf() bool { return n < 0 }

// SplitIndex returns the split index. n must not be a leaf.
func (n NodeID) SplitIndex() int {
	if debugAsserts && n.IsLeaf() {
		panic("forest: SplitIndex called on leaf " + n.String())
	}
	return int(n)
}

// AdjustmentIndex returns the leaf adjustment index. n must be a leaf.
func (n NodeID) AdjustmentIndex() int {
	if debugAsserts && !n.IsLeaf() {
		panic("forest: AdjustmentIndex called on split " + n.String())
	}
	return int(^n)
}

func (n NodeID) String() string {
	if n.IsLeaf() {
		return "leaf(" + strconv.Itoa(int(^n)) + ")"
	}
	return "split(" + strconv.Itoa(int(n)) + ")"
}
