package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/compactforest/pkg/errors"
)

func TestTreeCompilation_Compact(t *testing.T) {
	tc := NewTreeCompilation[float64, features, lessThan](3)
	buildExampleTree(t, tc)

	tree, err := tc.Compile()
	require.NoError(t, err)

	assert.Equal(t, SplitNode(0), tree.Root())
	assert.Equal(t, 1, tree.NumSplits())
	assert.Equal(t, 2, tree.NumLeaves())
	assert.Equal(t, 1, tree.Depth())

	root := tree.Split(0)
	assert.Equal(t, lt(0, 13.0), root.Test)
	// right (raw 1) is the false branch, left (raw 2) the true branch
	assert.Equal(t, LeafNode(0), root.Next[0])
	assert.Equal(t, LeafNode(1), root.Next[1])
	assert.Equal(t, 0.0, tree.Adjustment(0))
	assert.Equal(t, 1.0, tree.Adjustment(1))
}

func TestTreeCompilation_LeafOrderFollowsCalls(t *testing.T) {
	tc := NewTreeCompilation[float64, features, lessThan](3)
	require.NoError(t, tc.SetLeaf(2, 20))
	require.NoError(t, tc.SetNode(0, 1, 2, lt(0, 1)))
	require.NoError(t, tc.SetLeaf(1, 10))

	tree, err := tc.Compile()
	require.NoError(t, err)

	assert.Equal(t, 20.0, tree.Adjustment(0))
	assert.Equal(t, 10.0, tree.Adjustment(1))
	assert.Equal(t, [2]NodeID{LeafNode(0), LeafNode(1)}, tree.Split(0).Next)
}

func TestTreeCompilation_SplitsNumberedByIndex(t *testing.T) {
	// 0 -> (left 4, right 2), 4 -> (left 1, right 3)
	tc := NewTreeCompilation[float64, features, lessThan](5)
	require.NoError(t, tc.SetNode(4, 1, 3, lt(1, 0.5)))
	require.NoError(t, tc.SetNode(0, 4, 2, lt(0, 0.5)))
	require.NoError(t, tc.SetLeaf(1, 1))
	require.NoError(t, tc.SetLeaf(2, 2))
	require.NoError(t, tc.SetLeaf(3, 3))

	tree, err := tc.Compile()
	require.NoError(t, err)

	require.Equal(t, 2, tree.NumSplits())
	assert.Equal(t, lt(0, 0.5), tree.Split(0).Test)
	assert.Equal(t, [2]NodeID{LeafNode(1), SplitNode(1)}, tree.Split(0).Next)
	assert.Equal(t, lt(1, 0.5), tree.Split(1).Test)
	assert.Equal(t, [2]NodeID{LeafNode(2), LeafNode(0)}, tree.Split(1).Next)
	assert.Equal(t, 2, tree.Depth())
}

func TestTreeCompilation_SingleLeaf(t *testing.T) {
	tc := NewTreeCompilation[float64, features, lessThan](1)
	require.NoError(t, tc.SetLeaf(0, 4.0))

	tree, err := tc.Compile()
	require.NoError(t, err)
	assert.Equal(t, LeafNode(0), tree.Root())
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, 4.0, tree.Adjustment(0))
}

func TestTreeCompilation_SetErrors(t *testing.T) {
	tests := []struct {
		name   string
		nodes  int
		build  func(tc *treeCompile) error
		target error
		kind   string
	}{
		{
			name:   "id out of range",
			nodes:  3,
			build:  func(tc *treeCompile) error { return tc.SetNode(3, 1, 2, lt(0, 0)) },
			target: errors.ErrOutOfRange,
			kind:   "OutOfRange",
		},
		{
			name:   "negative left",
			nodes:  3,
			build:  func(tc *treeCompile) error { return tc.SetNode(0, -1, 2, lt(0, 0)) },
			target: errors.ErrOutOfRange,
			kind:   "OutOfRange",
		},
		{
			name:   "right out of range",
			nodes:  3,
			build:  func(tc *treeCompile) error { return tc.SetNode(0, 1, 5, lt(0, 0)) },
			target: errors.ErrOutOfRange,
			kind:   "OutOfRange",
		},
		{
			name:   "leaf out of range",
			nodes:  2,
			build:  func(tc *treeCompile) error { return tc.SetLeaf(2, 1) },
			target: errors.ErrOutOfRange,
			kind:   "OutOfRange",
		},
		{
			name:   "any index on empty tree",
			nodes:  0,
			build:  func(tc *treeCompile) error { return tc.SetLeaf(0, 1) },
			target: errors.ErrOutOfRange,
			kind:   "OutOfRange",
		},
		{
			name:  "node set twice",
			nodes: 3,
			build: func(tc *treeCompile) error {
				if err := tc.SetLeaf(1, 1); err != nil {
					return err
				}
				return tc.SetLeaf(1, 2)
			},
			target: errors.ErrDuplicateUse,
			kind:   "InvalidArgument",
		},
		{
			name:  "leaf over split",
			nodes: 3,
			build: func(tc *treeCompile) error {
				if err := tc.SetNode(0, 1, 2, lt(0, 0)); err != nil {
					return err
				}
				return tc.SetLeaf(0, 2)
			},
			target: errors.ErrDuplicateUse,
			kind:   "InvalidArgument",
		},
		{
			name:  "child reused",
			nodes: 5,
			build: func(tc *treeCompile) error {
				if err := tc.SetNode(0, 1, 2, lt(0, 0)); err != nil {
					return err
				}
				return tc.SetNode(1, 2, 3, lt(0, 0))
			},
			target: errors.ErrDuplicateUse,
			kind:   "InvalidArgument",
		},
		{
			name:   "root as child",
			nodes:  3,
			build:  func(tc *treeCompile) error { return tc.SetNode(1, 0, 2, lt(0, 0)) },
			target: errors.ErrDuplicateUse,
			kind:   "InvalidArgument",
		},
		{
			name:   "same left and right",
			nodes:  3,
			build:  func(tc *treeCompile) error { return tc.SetNode(0, 1, 1, lt(0, 0)) },
			target: errors.ErrDuplicateUse,
			kind:   "InvalidArgument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTreeCompilation[float64, features, lessThan](tt.nodes)
			err := tt.build(tc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, tt.kind, errors.Kind(err))
		})
	}
}

func TestTreeCompilation_FailedSetLeavesStateUnchanged(t *testing.T) {
	tc := NewTreeCompilation[float64, features, lessThan](3)
	require.NoError(t, tc.SetNode(0, 1, 2, lt(0, 0)))
	// 0 is the root and cannot be a child; nothing is marked on failure.
	require.Error(t, tc.SetNode(1, 0, 2, lt(0, 0)))
	require.NoError(t, tc.SetLeaf(1, 1))
	require.NoError(t, tc.SetLeaf(2, 2))

	_, err := tc.Compile()
	assert.NoError(t, err)
}

func TestTreeCompilation_CompileErrors(t *testing.T) {
	tests := []struct {
		name   string
		nodes  int
		build  func(t *testing.T, tc *treeCompile)
		target error
		index  int
	}{
		{
			name:   "empty tree",
			nodes:  0,
			build:  func(t *testing.T, tc *treeCompile) {},
			target: errors.ErrEmptyTree,
			index:  -1,
		},
		{
			name:  "index never set",
			nodes: 3,
			build: func(t *testing.T, tc *treeCompile) {
				require.NoError(t, tc.SetNode(0, 1, 2, lt(0, 0)))
				require.NoError(t, tc.SetLeaf(1, 1))
			},
			target: errors.ErrIncompleteTree,
			index:  2,
		},
		{
			name:  "orphan leaf",
			nodes: 4,
			build: func(t *testing.T, tc *treeCompile) {
				require.NoError(t, tc.SetNode(0, 1, 2, lt(0, 0)))
				require.NoError(t, tc.SetLeaf(1, 1))
				require.NoError(t, tc.SetLeaf(2, 2))
				require.NoError(t, tc.SetLeaf(3, 3))
			},
			target: errors.ErrIncompleteTree,
			index:  3,
		},
		{
			name:  "root leaf with extra nodes",
			nodes: 2,
			build: func(t *testing.T, tc *treeCompile) {
				require.NoError(t, tc.SetLeaf(0, 1))
				require.NoError(t, tc.SetLeaf(1, 2))
			},
			target: errors.ErrIncompleteTree,
			index:  1,
		},
		{
			name:  "detached cycle",
			nodes: 5,
			build: func(t *testing.T, tc *treeCompile) {
				// 0 -> (1, 2); 3 -> (3, 4) points at itself and is never reached.
				require.NoError(t, tc.SetNode(0, 1, 2, lt(0, 0)))
				require.NoError(t, tc.SetLeaf(1, 1))
				require.NoError(t, tc.SetLeaf(2, 2))
				require.NoError(t, tc.SetNode(3, 3, 4, lt(0, 0)))
				require.NoError(t, tc.SetLeaf(4, 4))
			},
			target: errors.ErrIncompleteTree,
			index:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTreeCompilation[float64, features, lessThan](tt.nodes)
			tt.build(t, tc)
			_, err := tc.Compile()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			if tt.index >= 0 {
				var incomplete *errors.IncompleteTreeError
				require.True(t, errors.As(err, &incomplete))
				assert.Equal(t, tt.index, incomplete.Index)
			}
		})
	}
}

func TestTreeCompilation_NegativeCountIsEmpty(t *testing.T) {
	tc := NewTreeCompilation[float64, features, lessThan](-4)
	assert.Equal(t, 0, tc.NodeCount())
	_, err := tc.Compile()
	assert.True(t, errors.Is(err, errors.ErrEmptyTree))
}
