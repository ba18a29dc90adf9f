// Package forest compiles decision trees and additive ensembles into a compact
// array form and scores feature containers against them.
//
// A tree is described node by node against caller-chosen indices through
// PredictorCompiler (one tree) or BoostedPredictorCompiler (an ensemble).
// Compile validates that the indices form exactly one connected binary tree,
// renumbers them into split and leaf arrays, and returns an immutable predictor.
//
// The engine never interprets features itself. The tree's test type T decides
// the branch at each split: Evaluate(features) == true takes the left child,
// false takes the right child. Package split provides ready-made tests.
//
//	c := forest.NewPredictorCompiler[float64, split.Features[float64], split.LessThan[float64]](3)
//	_ = c.SetNode(0, 2, 1, split.LessThan[float64]{Feature: 0, Threshold: 13})
//	_ = c.SetLeaf(1, 0.0)
//	_ = c.SetLeaf(2, 1.0)
//	p, err := c.Compile()
//	if err != nil {
//	    return err
//	}
//	p.Predict(split.Dense[float64]{5}) // 1.0
//
// Compiled predictors are read-only and safe for concurrent Predict calls as
// long as the tests and feature containers are.
package forest
