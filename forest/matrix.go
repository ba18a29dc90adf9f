package forest

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/compactforest/core/parallel"
	"github.com/YuminosukeSato/compactforest/forest/split"
	"github.com/YuminosukeSato/compactforest/pkg/errors"
)

// RowScorer is satisfied by single and boosted predictors over dense float64 features.
type RowScorer interface {
	Predict(features split.Features[float64]) float64
}

// MatrixScorer scores every row of a matrix with one predictor.
type MatrixScorer struct {
	scorer    RowScorer
	threshold int
}

// NewMatrixScorer wraps p. WithParallelThreshold controls when rows are split
// across goroutines.
func NewMatrixScorer(p RowScorer, opts ...Option) *MatrixScorer {
	cfg := newConfig("forest.matrix", opts)
	return &MatrixScorer{scorer: p, threshold: cfg.parallelThreshold}
}

// PredictMatrix returns one score per row of X. Columns are feature ids.
// A panic raised by a split test is returned as an *errors.PanicError.
func (m *MatrixScorer) PredictMatrix(X mat.Matrix) (*mat.VecDense, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewEmptyInputError("PredictMatrix")
	}

	var (
		mu       sync.Mutex
		firstErr error
	)
	out := make([]float64, rows)
	parallel.ParallelizeWithThreshold(rows, m.threshold, func(start, end int) {
		err := errors.SafeExecute("PredictMatrix", func() error {
			row := make(split.Dense[float64], cols)
			for i := start; i < end; i++ {
				mat.Row(row, i, X)
				out[i] = m.scorer.Predict(row)
			}
			return nil
		})
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return mat.NewVecDense(rows, out), nil
}

// PredictMatrix is a shorthand for NewMatrixScorer(p, opts...).PredictMatrix(X).
func PredictMatrix(p RowScorer, X mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	return NewMatrixScorer(p, opts...).PredictMatrix(X)
}
