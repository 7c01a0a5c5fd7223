// Package embedding - contraction-path partitioning.
//
// partitionPath classifies every step of a contraction path by how many
// to-be-sketched dangling dimensions its operands still carry. The result
// drives the two scheduling passes; it is transient, recomputed per Embed
// call, and a pure function of (network state, path, edge set).
package embedding

import (
	"fmt"

	"github.com/katalvlaran/tensketch/tennet"
)

// pathPartition is the derived three-way split of a contraction path:
//
//   - buckets: for each to-be-sketched edge, the ordered sub-list of path
//     entries in which exactly one operand carries that edge as its sole
//     pending dangling dimension (D in the paper).
//   - joint: membership set of entries whose operands BOTH carry pending
//     dangling dimensions (S).
//   - rest: every entry that is not in a bucket, in original path order -
//     the superset driving the tree pass (I_S); joint ⊆ rest.
type pathPartition struct {
	buckets map[*tennet.Edge][]tennet.Contraction
	joint   map[tennet.Contraction]bool
	rest    []tennet.Contraction
}

// partitionPath splits path against the CURRENT (un-mutated) network state.
//
// Classification per entry (u, v), with du/dv the pending dangling counts:
//   - du > 0 && dv > 0  → joint and rest.
//   - du == 1           → bucket of u's single pending edge.
//   - dv == 1           → bucket of v's single pending edge.
//   - du == 0 && dv == 0 → rest only (plain contraction).
//   - one side > 1, other 0 → ErrAmbiguousPartition: a valid path sketches
//     each dimension independently before its node accumulates others, so
//     this state is a caller contract violation, not a schedulable case.
//
// Errors: ErrMalformedPath (unknown node id), ErrAmbiguousPartition.
//
// Complexity: O(len(path) · max node degree).
func partitionPath(x *tennet.Network, path tennet.Path, edges []*tennet.Edge) (*pathPartition, error) {
	part := &pathPartition{
		buckets: make(map[*tennet.Edge][]tennet.Contraction, len(edges)),
		joint:   make(map[tennet.Contraction]bool),
	}
	for _, e := range edges {
		part.buckets[e] = nil
	}

	for _, c := range path {
		u, err := x.Node(c[0])
		if err != nil {
			return nil, fmt.Errorf("embedding: entry (%d,%d): %w", c[0], c[1], ErrMalformedPath)
		}
		v, err := x.Node(c[1])
		if err != nil {
			return nil, fmt.Errorf("embedding: entry (%d,%d): %w", c[0], c[1], ErrMalformedPath)
		}

		uPending := u.AllDangling()
		vPending := v.AllDangling()

		switch {
		case len(uPending) > 0 && len(vPending) > 0:
			part.joint[c] = true
			part.rest = append(part.rest, c)
		case len(uPending) == 1:
			part.buckets[uPending[0]] = append(part.buckets[uPending[0]], c)
		case len(vPending) == 1:
			part.buckets[vPending[0]] = append(part.buckets[vPending[0]], c)
		case len(uPending) == 0 && len(vPending) == 0:
			part.rest = append(part.rest, c)
		default:
			return nil, fmt.Errorf("embedding: entry (%d,%d) has %d pending dims on one side and none on the other: %w",
				c[0], c[1], len(uPending)+len(vPending), ErrAmbiguousPartition)
		}
	}

	return part, nil
}
