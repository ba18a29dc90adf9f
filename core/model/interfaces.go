// Package model provides the compile-once state shared by tree builders and
// the interfaces implemented by compiled predictors.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor scores one feature container.
type Predictor[F, Out any] interface {
	Predict(features F) Out
}

// Compiler produces a predictor exactly once.
type Compiler[P any] interface {
	Compile() (P, error)
	IsCompiled() bool
}

// MatrixPredictor scores every row of X.
type MatrixPredictor interface {
	PredictMatrix(X mat.Matrix) (*mat.VecDense, error)
}
