// Package tennet implements the mutable tensor network that the embedding
// planner drives: nodes owning dense tensors, edges identifying shared or
// dangling dimensions, pairwise contraction, and the three sketching
// operations (single-edge, tree-style joint, TN-style joint).
//
// Structural invariants, maintained by every operation:
//
//   - A Node's edge list and its tensor's axes are always in one-to-one
//     order: edge k describes axis k.
//
//   - An Edge attaches to at most two nodes. With one attachment it is
//     dangling: a free dimension of the network's eventual output.
//
//   - Shared dimensions between two nodes are resolved by Edge identity
//     (pointer equality), never by axis position or equal sizes.
//
//   - Contract(i, j) stores the fused node under id i and retires id j;
//     a retired id is never reused. Later contraction-path entries that
//     name i therefore address the fused node.
//
//   - An Edge marked for sketching is sketched at most once; the sketched
//     flag is the consumed-once witness the planner's invariant rests on.
//
// All mutation is in place and non-transactional: a failed operation leaves
// the network in a partially-mutated state the caller must not reuse.
package tennet
