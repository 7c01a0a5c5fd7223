package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensketch/embedding"
	"github.com/katalvlaran/tensketch/tennet"
)

// buildGroup assembles an anchor node and its reduce-group partners from
// shape descriptors. Shared axes are expressed by reusing *Edge values.
func buildGroup(t *testing.T, x *tennet.Network, anchorEdges []*tennet.Edge, partnerEdges [][]*tennet.Edge) (anchor *tennet.Node, partners []*tennet.Node) {
	t.Helper()

	dims := func(edges []*tennet.Edge) []int {
		out := make([]int, len(edges))
		for i, e := range edges {
			out[i] = e.Dim()
		}

		return out
	}

	aID, err := x.AddNode(zeros(t, dims(anchorEdges)...), anchorEdges)
	require.NoError(t, err)
	anchor, err = x.Node(aID)
	require.NoError(t, err)

	for _, edges := range partnerEdges {
		pID, perr := x.AddNode(zeros(t, dims(edges)...), edges)
		require.NoError(t, perr)
		p, perr := x.Node(pID)
		require.NoError(t, perr)
		partners = append(partners, p)
	}

	return anchor, partners
}

// TestChooseOrder_SpecScenario pins the reference scenario: anchor [2,3,5]
// with a size-5 sketch dimension, partners sharing the size-3 and size-2
// axes. The size-3 partner must fold first (anchor shrinks to 10) and the
// sketch must fire immediately after that step.
func TestChooseOrder_SpecScenario(t *testing.T) {
	x := tennet.NewNetwork()
	ex := tennet.NewEdge("x", 2)
	ey := tennet.NewEdge("y", 3)
	ez := tennet.NewEdge("z", 7)
	s := tennet.NewEdge("s", 5, tennet.WithSketch())

	anchor, partners := buildGroup(t, x,
		[]*tennet.Edge{ex, ey, s},
		[][]*tennet.Edge{{ey}, {ex, ez}},
	)

	for _, mode := range []embedding.OrderSearch{embedding.ExhaustiveOrder, embedding.GreedyOrder} {
		plan, err := embedding.ChooseOrderForTest(anchor, partners, mode)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, plan.Order, "the size-3 partner folds first")
		assert.Equal(t, 0, plan.SketchAfter, "sketch fires right after the minimal step")
		assert.Equal(t, 10, plan.MinSize)
	}
}

// TestChooseOrder_SketchBeforeAnyContraction covers the minIndex == -1 case:
// when every contraction only grows the anchor, sketch first.
func TestChooseOrder_SketchBeforeAnyContraction(t *testing.T) {
	x := tennet.NewNetwork()
	ea := tennet.NewEdge("a", 2)
	eb := tennet.NewEdge("b", 9)
	s := tennet.NewEdge("s", 3, tennet.WithSketch())

	// Partner shares the size-2 axis but brings a size-9 axis: 6 -> 27.
	anchor, partners := buildGroup(t, x,
		[]*tennet.Edge{ea, s},
		[][]*tennet.Edge{{ea, eb}},
	)

	plan, err := embedding.ChooseOrderForTest(anchor, partners, embedding.ExhaustiveOrder)
	require.NoError(t, err)
	assert.Equal(t, -1, plan.SketchAfter)
	assert.Equal(t, 6, plan.MinSize)
}

// TestExhaustiveOrder_BruteForceOracle verifies optimality for n ≤ 4 against
// an independent enumeration of all permutations via the fold simulator.
func TestExhaustiveOrder_BruteForceOracle(t *testing.T) {
	x := tennet.NewNetwork()
	s := tennet.NewEdge("s", 5, tennet.WithSketch())
	e1 := tennet.NewEdge("e1", 2)
	e2 := tennet.NewEdge("e2", 3)
	e3 := tennet.NewEdge("e3", 4)
	e4 := tennet.NewEdge("e4", 6)
	f1 := tennet.NewEdge("f1", 7)
	f2 := tennet.NewEdge("f2", 2)

	anchor, partners := buildGroup(t, x,
		[]*tennet.Edge{e1, e2, e3, e4, s},
		[][]*tennet.Edge{{e1, f1}, {e2}, {e3, f2}, {e4}},
	)

	plan, err := embedding.ChooseOrderForTest(anchor, partners, embedding.ExhaustiveOrder)
	require.NoError(t, err)

	// Oracle: exhaustive enumeration with the simulator directly.
	anchorEdges := anchor.Edges()
	oracle := -1
	var visit func(perm, remaining []int)
	visit = func(perm, remaining []int) {
		if len(remaining) == 0 {
			size, _ := embedding.SimulateFoldForTest(anchorEdges, partners, perm)
			if oracle < 0 || size < oracle {
				oracle = size
			}

			return
		}
		for i, k := range remaining {
			rest := append(append([]int(nil), remaining[:i]...), remaining[i+1:]...)
			visit(append(perm, k), rest)
		}
	}
	visit(nil, []int{0, 1, 2, 3})

	assert.Equal(t, oracle, plan.MinSize, "no permutation may beat the chosen ordering")

	// Greedy may not be optimal, but it must never beat the oracle.
	greedy, err := embedding.ChooseOrderForTest(anchor, partners, embedding.GreedyOrder)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, greedy.MinSize, oracle)
}

// TestChooseOrder_UnknownMode verifies the sentinel for a bad search mode.
func TestChooseOrder_UnknownMode(t *testing.T) {
	x := tennet.NewNetwork()
	s := tennet.NewEdge("s", 2, tennet.WithSketch())
	anchor, partners := buildGroup(t, x, []*tennet.Edge{s}, nil)

	_, err := embedding.ChooseOrderForTest(anchor, partners, embedding.OrderSearch(42))
	assert.ErrorIs(t, err, embedding.ErrUnknownOrderSearch)
}
