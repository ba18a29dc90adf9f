package forest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/compactforest/forest/split"
)

type (
	features    = split.Features[float64]
	lessThan    = split.LessThan[float64]
	treeCompile = TreeCompilation[float64, features, lessThan]
	compiler    = PredictorCompiler[float64, features, lessThan]
	predictor   = SinglePredictor[float64, features, lessThan]
)

func lt(feature int, threshold float64) lessThan {
	return lessThan{Feature: feature, Threshold: threshold}
}

// buildExampleTree sets up {0: split(f0 < 13, left=2, right=1), 1: leaf 0, 2: leaf 1}.
func buildExampleTree(t *testing.T, set interface {
	SetNode(id, left, right int, test lessThan) error
	SetLeaf(id int, value float64) error
}) {
	t.Helper()
	require.NoError(t, set.SetNode(0, 2, 1, lt(0, 13.0)))
	require.NoError(t, set.SetLeaf(1, 0.0))
	require.NoError(t, set.SetLeaf(2, 1.0))
}

// randomTree describes a random tree by raw index. Index 0 is the root and
// the other indices are shuffled so raw order does not follow tree order.
type randomTree struct {
	nodeCount int
	splits    map[int][3]int // id -> left, right, feature
	threshold map[int]float64
	leaves    map[int]float64
}

func newRandomTree(rng *rand.Rand, maxDepth, numFeatures int) randomTree {
	rt := randomTree{
		splits:    map[int][3]int{},
		threshold: map[int]float64{},
		leaves:    map[int]float64{},
	}
	var grow func(id, depth int)
	next := 1
	grow = func(id, depth int) {
		if depth == maxDepth || (depth > 0 && rng.IntN(4) == 0) {
			// Small integers keep float sums exact in any order.
			rt.leaves[id] = float64(rng.IntN(17) - 8)
			return
		}
		left, right := next, next+1
		next += 2
		rt.splits[id] = [3]int{left, right, rng.IntN(numFeatures)}
		rt.threshold[id] = rng.Float64()
		grow(left, depth+1)
		grow(right, depth+1)
	}
	grow(0, 0)
	rt.nodeCount = next

	perm := rng.Perm(next - 1)
	remap := func(i int) int {
		if i == 0 {
			return 0
		}
		return perm[i-1] + 1
	}
	shuffled := randomTree{
		nodeCount: next,
		splits:    map[int][3]int{},
		threshold: map[int]float64{},
		leaves:    map[int]float64{},
	}
	for id, s := range rt.splits {
		shuffled.splits[remap(id)] = [3]int{remap(s[0]), remap(s[1]), s[2]}
		shuffled.threshold[remap(id)] = rt.threshold[id]
	}
	for id, v := range rt.leaves {
		shuffled.leaves[remap(id)] = v
	}
	return shuffled
}

func (rt randomTree) apply(t testing.TB, set interface {
	SetNode(id, left, right int, test lessThan) error
	SetLeaf(id int, value float64) error
}) {
	t.Helper()
	for id := 0; id < rt.nodeCount; id++ {
		if s, ok := rt.splits[id]; ok {
			require.NoError(t, set.SetNode(id, s[0], s[1], lt(s[2], rt.threshold[id])))
		} else {
			require.NoError(t, set.SetLeaf(id, rt.leaves[id]))
		}
	}
}

// eval walks the raw description directly.
func (rt randomTree) eval(fs split.Dense[float64]) float64 {
	id := 0
	for {
		s, ok := rt.splits[id]
		if !ok {
			return rt.leaves[id]
		}
		if lt(s[2], rt.threshold[id]).Evaluate(fs) {
			id = s[0]
		} else {
			id = s[1]
		}
	}
}

func randomFeatures(rng *rand.Rand, n int) split.Dense[float64] {
	fs := make(split.Dense[float64], n)
	for i := range fs {
		fs[i] = rng.Float64()
	}
	return fs
}
