// Standard attribute keys for tree compilation and scoring.
//
// The keys follow a hierarchical naming convention (e.g., "forest.trees",
// "tree.splits") so that log records from different components can be
// filtered the same way.

package log

// Operation Context
const (
	// ComponentKey identifies which component is performing the operation.
	// Examples: "forest.compiler", "forest.boosted"
	ComponentKey = "forest.component"

	// OperationKey specifies the operation being performed.
	// Standard values: OperationSetNode, OperationSetLeaf, OperationCompile, OperationPredict
	OperationKey = "forest.operation"
)

// Tree Shape
const (
	// TreesKey indicates the number of trees in an ensemble.
	TreesKey = "forest.trees"

	// TreeIndexKey identifies one tree inside an ensemble by insertion order.
	TreeIndexKey = "forest.tree_index"

	// NodesKey is the declared (raw) node count of a tree.
	NodesKey = "tree.nodes"

	// SplitsKey is the number of split nodes in a compiled tree.
	SplitsKey = "tree.splits"

	// LeavesKey is the number of leaf adjustments in a compiled tree.
	LeavesKey = "tree.leaves"

	// DepthKey is the number of splits on the longest root-to-leaf path.
	DepthKey = "tree.depth"
)

// Scoring
const (
	// BatchSizeKey records how many trees a boosted predictor advances together.
	BatchSizeKey = "predict.batch_size"

	// RowsKey indicates the number of feature rows scored in one call.
	RowsKey = "predict.rows"
)

// Error Context
const (
	// ErrorKindKey records the error category: "OutOfRange", "InvalidArgument"
	// or "FailedPrecondition".
	ErrorKindKey = "error.kind"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard operation values for OperationKey.
const (
	OperationSetNode = "set_node"
	OperationSetLeaf = "set_leaf"
	OperationCompile = "compile"
	OperationPredict = "predict"
)
