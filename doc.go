// Package compactforest compiles decision trees and boosted ensembles into a
// compact, validated array form and evaluates them against feature vectors.
//
// # Packages
//
//   - forest: compilation, validation, single-tree and batched ensemble scoring
//   - forest/split: feature containers and split conditions
//   - core/model: compile-once state and predictor interfaces
//   - core/parallel: row-range fan-out for matrix scoring
//   - pkg/errors: error categories (OutOfRange, InvalidArgument, FailedPrecondition)
//   - pkg/log: structured logging on zerolog and log/slog
//
// # Quick Start
//
//	b := forest.NewBoostedPredictorCompiler[float64, split.Features[float64], split.LessThan[float64], forest.NoFilter](forest.Plus[float64])
//	tree := b.AddTree(3, forest.NoFilter{})
//	_ = tree.SetNode(0, 2, 1, split.LessThan[float64]{Feature: 0, Threshold: 13})
//	_ = tree.SetLeaf(1, 0.0)
//	_ = tree.SetLeaf(2, 1.0)
//	_ = b.AddTree(1, forest.NoFilter{}).SetLeaf(0, 4.0)
//
//	p, err := b.Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Predict(split.Dense[float64]{5.0})  // 5.0
//	p.Predict(split.Dense[float64]{15.0}) // 4.0
//
// # Error Handling
//
// Builder calls return errors created with cockroachdb/errors and marked with a
// category, so callers can test them with errors.Is:
//
//	if errors.Is(err, errors.ErrDuplicateUse) {
//	    // an index was reused as a node or a child
//	}
package compactforest
