package forest

import (
	"context"

	"github.com/YuminosukeSato/compactforest/core/model"
	"github.com/YuminosukeSato/compactforest/pkg/errors"
	"github.com/YuminosukeSato/compactforest/pkg/log"
)

// PredictorCompiler builds a SinglePredictor from one tree description.
// Compile may be called once; after it, success or not, the compiler rejects
// every further call.
type PredictorCompiler[Out, F any, T Test[F]] struct {
	state  model.BaseCompiler
	impl   *TreeCompilation[Out, F, T]
	logger log.Logger
}

// NewPredictorCompiler returns a compiler for a tree of nodeCount nodes.
func NewPredictorCompiler[Out, F any, T Test[F]](nodeCount int, opts ...Option) *PredictorCompiler[Out, F, T] {
	cfg := newConfig("forest.compiler", opts)
	return &PredictorCompiler[Out, F, T]{
		impl:   NewTreeCompilation[Out, F, T](nodeCount),
		logger: cfg.logger,
	}
}

// SetNode makes id a split node. See TreeCompilation.SetNode.
func (c *PredictorCompiler[Out, F, T]) SetNode(id, left, right int, test T) error {
	if c.state.IsCompiled() {
		return errors.NewAlreadyCompiledError("SetNode")
	}
	return c.impl.SetNode(id, left, right, test)
}

// SetLeaf makes id a leaf. See TreeCompilation.SetLeaf.
func (c *PredictorCompiler[Out, F, T]) SetLeaf(id int, value Out) error {
	if c.state.IsCompiled() {
		return errors.NewAlreadyCompiledError("SetLeaf")
	}
	return c.impl.SetLeaf(id, value)
}

// IsCompiled reports whether Compile has been called.
func (c *PredictorCompiler[Out, F, T]) IsCompiled() bool {
	return c.state.IsCompiled()
}

// Compile validates the tree and returns its predictor.
func (c *PredictorCompiler[Out, F, T]) Compile() (*SinglePredictor[Out, F, T], error) {
	if err := c.state.BeginCompile("Compile"); err != nil {
		return nil, err
	}
	nodes := c.impl.NodeCount()
	tree, err := c.impl.Compile()
	c.impl = nil
	if err != nil {
		c.logger.Debug("Tree compilation failed",
			log.OperationKey, log.OperationCompile,
			log.NodesKey, nodes,
			log.ErrorKindKey, errors.Kind(err),
			"error", err,
		)
		return nil, err
	}
	logCompiledTree(c.logger, &tree, nodes)
	return &SinglePredictor[Out, F, T]{tree: tree}, nil
}

func logCompiledTree[Out, F any, T Test[F]](logger log.Logger, tree *CompactDecisionTree[Out, F, T], nodes int, fields ...any) {
	if !logger.Enabled(context.Background(), log.LevelDebug) {
		return
	}
	fields = append(fields,
		log.OperationKey, log.OperationCompile,
		log.NodesKey, nodes,
		log.SplitsKey, tree.NumSplits(),
		log.LeavesKey, tree.NumLeaves(),
		log.DepthKey, tree.Depth(),
	)
	logger.Debug("Tree compiled", fields...)
}

// OneTreeCompiler is a handle to one tree of a BoostedPredictorCompiler.
// It stays valid while further trees are added.
type OneTreeCompiler[Out, F any, T Test[F], Tag any] struct {
	owner *BoostedPredictorCompiler[Out, F, T, Tag]
	index int
}

// Index returns the insertion position of the tree in the ensemble.
func (h OneTreeCompiler[Out, F, T, Tag]) Index() int {
	return h.index
}

// SetNode makes id a split node of this tree.
func (h OneTreeCompiler[Out, F, T, Tag]) SetNode(id, left, right int, test T) error {
	if h.owner.state.IsCompiled() {
		return errors.NewAlreadyCompiledError("SetNode")
	}
	return h.owner.trees[h.index].SetNode(id, left, right, test)
}

// SetLeaf makes id a leaf of this tree.
func (h OneTreeCompiler[Out, F, T, Tag]) SetLeaf(id int, value Out) error {
	if h.owner.state.IsCompiled() {
		return errors.NewAlreadyCompiledError("SetLeaf")
	}
	return h.owner.trees[h.index].SetLeaf(id, value)
}

// BoostedPredictorCompiler builds a BoostedPredictor tree by tree.
// Trees live in an arena addressed by insertion index, so handles returned by
// AddTree are never invalidated.
type BoostedPredictorCompiler[Out, F any, T Test[F], Tag any] struct {
	state  model.BaseCompiler
	trees  []*TreeCompilation[Out, F, T]
	tags   []Tag
	op     BinaryOp[Out]
	cfg    config
	logger log.Logger
}

// NewBoostedPredictorCompiler returns an empty ensemble compiler combining tree
// outputs with op.
func NewBoostedPredictorCompiler[Out, F any, T Test[F], Tag any](op BinaryOp[Out], opts ...Option) *BoostedPredictorCompiler[Out, F, T, Tag] {
	cfg := newConfig("forest.boosted", opts)
	return &BoostedPredictorCompiler[Out, F, T, Tag]{
		op:     op,
		cfg:    cfg,
		logger: cfg.logger,
	}
}

// AddTree appends a tree of nodeCount nodes tagged with tag and returns its handle.
func (b *BoostedPredictorCompiler[Out, F, T, Tag]) AddTree(nodeCount int, tag Tag) OneTreeCompiler[Out, F, T, Tag] {
	b.trees = append(b.trees, NewTreeCompilation[Out, F, T](nodeCount))
	b.tags = append(b.tags, tag)
	return OneTreeCompiler[Out, F, T, Tag]{owner: b, index: len(b.trees) - 1}
}

// NumTrees returns the number of trees added so far.
func (b *BoostedPredictorCompiler[Out, F, T, Tag]) NumTrees() int {
	return len(b.trees)
}

// IsCompiled reports whether Compile has been called.
func (b *BoostedPredictorCompiler[Out, F, T, Tag]) IsCompiled() bool {
	return b.state.IsCompiled()
}

// Compile compiles every tree in insertion order and returns the ensemble
// predictor. The first failing tree aborts compilation.
func (b *BoostedPredictorCompiler[Out, F, T, Tag]) Compile() (*BoostedPredictor[Out, F, T, Tag], error) {
	if err := b.state.BeginCompile("Compile"); err != nil {
		return nil, err
	}
	if b.op == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "compactforest: Compile: nil BinaryOp")
	}

	trees := make([]CompactDecisionTree[Out, F, T], len(b.trees))
	for i, tc := range b.trees {
		nodes := tc.NodeCount()
		tree, err := tc.Compile()
		if err != nil {
			b.logger.Debug("Ensemble compilation failed",
				log.OperationKey, log.OperationCompile,
				log.TreeIndexKey, i,
				log.ErrorKindKey, errors.Kind(err),
				"error", err,
			)
			b.trees = nil
			return nil, errors.Wrapf(err, "tree %d", i)
		}
		logCompiledTree(b.logger, &tree, nodes, log.TreeIndexKey, i)
		trees[i] = tree
	}

	b.logger.Debug("Ensemble compiled",
		log.OperationKey, log.OperationCompile,
		log.TreesKey, len(trees),
		log.BatchSizeKey, b.cfg.batchSize,
	)
	p := &BoostedPredictor[Out, F, T, Tag]{
		trees:     trees,
		tags:      b.tags,
		op:        b.op,
		batchSize: b.cfg.batchSize,
	}
	b.trees, b.tags = nil, nil
	return p, nil
}
