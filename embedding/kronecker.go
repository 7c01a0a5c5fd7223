// Package embedding - the Kronecker (direct-sketch) scheduling pass.
//
// For each to-be-sketched edge the pass either sketches immediately (no
// pending contractions touch the edge's node) or folds the edge's reduce
// group into the anchor in the searched order, firing the sketch at the
// step where the anchor is smallest.
package embedding

import (
	"fmt"

	"github.com/katalvlaran/tensketch/tennet"
)

// kroneckerPass drives the per-edge reduce groups against the network.
//
// For edge e with an empty group: a single direct Sketch(e, m).
// Otherwise: the anchor is e's attachment node; every group entry must name
// the anchor on one side (its other side is the partner). The configured
// order search picks the partner order and sketch point; the plan then
// executes as a linear sequence of Contract calls with exactly one Sketch
// interleaved. Contract keeps the anchor's id, so the whole group addresses
// the anchor stably.
//
// Errors: tennet sentinels from the driven operations; ErrMalformedPath
// when a group entry never touches its anchor.
func (emb *Embedder) kroneckerPass(x *tennet.Network, part *pathPartition, edges []*tennet.Edge, m int) error {
	for _, e := range edges {
		group := part.buckets[e]
		if len(group) == 0 {
			if err := x.Sketch(e, m); err != nil {
				return err
			}

			continue
		}

		anchorID, err := e.AnchorNode()
		if err != nil {
			return err
		}
		anchor, err := x.Node(anchorID)
		if err != nil {
			return err
		}

		partnerIDs := make([]int, 0, len(group))
		for _, c := range group {
			switch anchorID {
			case c[0]:
				partnerIDs = append(partnerIDs, c[1])
			case c[1]:
				partnerIDs = append(partnerIDs, c[0])
			default:
				return fmt.Errorf("embedding: entry (%d,%d) does not touch anchor %d of edge %q: %w",
					c[0], c[1], anchorID, e.Name(), ErrMalformedPath)
			}
		}
		partners := make([]*tennet.Node, len(partnerIDs))
		for i, id := range partnerIDs {
			if partners[i], err = x.Node(id); err != nil {
				return fmt.Errorf("embedding: partner %d of edge %q: %w", id, e.Name(), ErrMalformedPath)
			}
		}

		plan, err := chooseOrder(anchor, partners, emb.opts.Search)
		if err != nil {
			return err
		}

		if plan.sketchAfter < 0 {
			if err = x.Sketch(e, m); err != nil {
				return err
			}
		}
		for step, k := range plan.order {
			if err = x.Contract(anchorID, partnerIDs[k]); err != nil {
				return err
			}
			if step == plan.sketchAfter {
				if err = x.Sketch(e, m); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
