// Package embedding - contraction-order search for the Kronecker pass.
//
// A reduce group is a set of contractions all touching one anchor node that
// carries a single to-be-sketched dangling dimension. The order in which the
// partners fold into the anchor decides how small the anchor gets before the
// sketch fires; sketching at the smallest point is cheapest. The search
// simulates anchor shape evolution purely on edge identity - shared
// dimensions are matched by *Edge pointer, never by position or equal sizes.
package embedding

import "github.com/katalvlaran/tensketch/tennet"

// orderPlan is the outcome of a group search: partner visit order (indices
// into the partner slice), the step index after which to sketch
// (sketchAfter == -1 means sketch before any contraction), and the anchor
// element count achieved at that point.
type orderPlan struct {
	order       []int
	sketchAfter int
	minSize     int
}

// chooseOrder routes to the configured search mode. Both modes honor the
// same contract: minimize the peak (i.e. the minimum reachable) anchor size
// before sketching and report where that minimum occurs.
func chooseOrder(anchor *tennet.Node, partners []*tennet.Node, mode OrderSearch) (orderPlan, error) {
	switch mode {
	case ExhaustiveOrder:
		return exhaustiveOrder(anchor, partners), nil
	case GreedyOrder:
		return greedyOrder(anchor, partners), nil
	default:
		return orderPlan{}, ErrUnknownOrderSearch
	}
}

// foldOnce simulates contracting one partner into the current anchor edge
// set: edges shared with the partner (matched by pointer identity) vanish,
// the partner's remaining edges append.
// Complexity: O(|current| · |partner edges|).
func foldOnce(current []*tennet.Edge, partner *tennet.Node) []*tennet.Edge {
	vEdges := partner.Edges()
	shared := make(map[*tennet.Edge]bool, len(vEdges))
	for _, e := range vEdges {
		for _, cur := range current {
			if cur == e {
				shared[e] = true

				break
			}
		}
	}

	next := make([]*tennet.Edge, 0, len(current)+len(vEdges))
	for _, e := range current {
		if !shared[e] {
			next = append(next, e)
		}
	}
	for _, e := range vEdges {
		if !shared[e] {
			next = append(next, e)
		}
	}

	return next
}

// edgeProduct returns the element count implied by an edge set.
func edgeProduct(edges []*tennet.Edge) int {
	size := 1
	for _, e := range edges {
		size *= e.Dim()
	}

	return size
}

// simulateFold replays contracting the given partners into the anchor, in
// order, tracking the anchor's element count after each step. It returns the
// minimum count reached and the step index where it occurred (-1 when the
// initial anchor is already smallest). Only a strictly smaller size moves
// the minimum, so the earliest minimal step wins.
//
// Complexity: O(len(order) · total edge count).
func simulateFold(anchorEdges []*tennet.Edge, partners []*tennet.Node, order []int) (minSize, minIndex int) {
	current := append([]*tennet.Edge(nil), anchorEdges...)
	minSize = edgeProduct(current)
	minIndex = -1

	for step, k := range order {
		current = foldOnce(current, partners[k])
		if size := edgeProduct(current); size < minSize {
			minSize = size
			minIndex = step
		}
	}

	return minSize, minIndex
}

// exhaustiveOrder enumerates every permutation of the partners and keeps the
// one whose achieved minimum anchor size is smallest. Ties keep the first
// permutation in generation order, so the result is stable.
//
// Complexity: O(n! · n · edges); n is bounded by the anchor's degree.
func exhaustiveOrder(anchor *tennet.Node, partners []*tennet.Node) orderPlan {
	anchorEdges := anchor.Edges()
	n := len(partners)

	var (
		best  orderPlan
		first = true
		perm  = make([]int, n)
	)
	for i := range perm {
		perm[i] = i
	}

	var visit func(k int)
	visit = func(k int) {
		if k == n {
			size, idx := simulateFold(anchorEdges, partners, perm)
			if first || size < best.minSize {
				best = orderPlan{
					order:       append([]int(nil), perm...),
					sketchAfter: idx,
					minSize:     size,
				}
				first = false
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			visit(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	visit(0)

	return best
}

// greedyOrder builds the order one step at a time, always folding in the
// partner that yields the smallest next anchor size (lowest index on ties).
// Quadratic instead of factorial; the escape hatch for large groups.
//
// Complexity: O(n² · edges).
func greedyOrder(anchor *tennet.Node, partners []*tennet.Node) orderPlan {
	anchorEdges := anchor.Edges()
	n := len(partners)

	var (
		order   = make([]int, 0, n)
		used    = make([]bool, n)
		current = append([]*tennet.Edge(nil), anchorEdges...)
	)
	for len(order) < n {
		bestIdx, bestSize := -1, 0
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			size := edgeProduct(foldOnce(current, partners[i]))
			if bestIdx < 0 || size < bestSize {
				bestIdx, bestSize = i, size
			}
		}
		used[bestIdx] = true
		order = append(order, bestIdx)
		current = foldOnce(current, partners[bestIdx])
	}

	size, idx := simulateFold(anchorEdges, partners, order)

	return orderPlan{order: order, sketchAfter: idx, minSize: size}
}
