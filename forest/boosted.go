package forest

const (
	// DefaultBatchSize is the number of trees a BoostedPredictor advances together.
	DefaultBatchSize = 16
	// MaxBatchSize bounds WithBatchSize so batch state fits in fixed arrays.
	MaxBatchSize = 64
)

// BoostedPredictor scores an ensemble of compiled trees and folds their
// outputs with a BinaryOp.
//
// Trees are processed in batches. Within a batch every active tree advances
// one level per pass, so the batch moves through the trees layer by layer
// instead of finishing one tree before starting the next. A tree's value is
// folded into the result as soon as it reaches a leaf, so op should be
// associative and commutative.
type BoostedPredictor[Out, F any, T Test[F], Tag any] struct {
	trees     []CompactDecisionTree[Out, F, T]
	tags      []Tag
	op        BinaryOp[Out]
	batchSize int
}

// NumTrees returns the number of trees in the ensemble.
func (p *BoostedPredictor[Out, F, T, Tag]) NumTrees() int { return len(p.trees) }

// Tree returns tree i in insertion order.
func (p *BoostedPredictor[Out, F, T, Tag]) Tree(i int) *CompactDecisionTree[Out, F, T] {
	return &p.trees[i]
}

// Tags returns the per-tree filter tags in insertion order.
func (p *BoostedPredictor[Out, F, T, Tag]) Tags() []Tag { return p.tags }

// BatchSize returns the number of trees advanced together.
func (p *BoostedPredictor[Out, F, T, Tag]) BatchSize() int { return p.batchSize }

// Predict folds every tree into the zero value of Out.
func (p *BoostedPredictor[Out, F, T, Tag]) Predict(features F) Out {
	var zero Out
	return p.PredictFiltered(features, zero, nil)
}

// PredictFrom folds every tree into start. With no trees it returns start.
func (p *BoostedPredictor[Out, F, T, Tag]) PredictFrom(features F, start Out) Out {
	return p.PredictFiltered(features, start, nil)
}

// PredictFiltered folds into start only the trees whose tag satisfies filter.
// A nil filter accepts every tree. filter must depend on the tag only.
func (p *BoostedPredictor[Out, F, T, Tag]) PredictFiltered(features F, start Out, filter func(Tag) bool) Out {
	var (
		traversers [MaxBatchSize]Traverser[Out, F, T]
		active     [MaxBatchSize]uint8
	)
	res := start
	for offset := 0; offset < len(p.trees); offset += p.batchSize {
		end := min(offset+p.batchSize, len(p.trees))

		n := 0
		for i := offset; i < end; i++ {
			if filter != nil && !filter(p.tags[i]) {
				continue
			}
			local := i - offset
			traversers[local] = NewTraverser(&p.trees[i])
			active[n] = uint8(local)
			n++
		}

		for n > 0 {
			kept := 0
			for _, id := range active[:n] {
				tr := &traversers[id]
				if tr.CanStep() {
					tr.MakeStep(features)
					active[kept] = id
					kept++
				} else {
					res = p.op(res, tr.Value())
				}
			}
			n = kept
		}
	}
	return res
}
