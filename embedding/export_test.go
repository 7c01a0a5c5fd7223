package embedding

// Test-bridge (white-box) for the unexported planning stages.
//
// Exposes partitioning and order search to embedding_test without widening
// the production API. Thin pass-throughs only; no side effects.

import "github.com/katalvlaran/tensketch/tennet"

// PartitionForTest wraps partitionPath.
func PartitionForTest(x *tennet.Network, path tennet.Path, edges []*tennet.Edge) (
	buckets map[*tennet.Edge][]tennet.Contraction,
	joint map[tennet.Contraction]bool,
	rest []tennet.Contraction,
	err error,
) {
	part, err := partitionPath(x, path, edges)
	if err != nil {
		return nil, nil, nil, err
	}

	return part.buckets, part.joint, part.rest, nil
}

// OrderPlanForTest is the read-only view of an orderPlan.
type OrderPlanForTest struct {
	Order       []int
	SketchAfter int
	MinSize     int
}

// ChooseOrderForTest wraps chooseOrder.
func ChooseOrderForTest(anchor *tennet.Node, partners []*tennet.Node, mode OrderSearch) (OrderPlanForTest, error) {
	plan, err := chooseOrder(anchor, partners, mode)
	if err != nil {
		return OrderPlanForTest{}, err
	}

	return OrderPlanForTest{Order: plan.order, SketchAfter: plan.sketchAfter, MinSize: plan.minSize}, nil
}

// SimulateFoldForTest wraps simulateFold for brute-force oracle checks.
func SimulateFoldForTest(anchorEdges []*tennet.Edge, partners []*tennet.Node, order []int) (minSize, minIndex int) {
	return simulateFold(anchorEdges, partners, order)
}
