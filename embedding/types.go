// Package embedding - options, strategy enums and sentinel errors.
//
// This file declares Options, the Strategy and OrderSearch enums, the
// DefaultOptions constructor, and every sentinel the planner can return.
package embedding

import "errors"

// Sentinel errors for embedding planning.
var (
	// ErrBadAccuracy indicates Eps <= 0, Delta outside (0,1), or MScalar <= 0.
	ErrBadAccuracy = errors.New("embedding: invalid accuracy parameters")

	// ErrUnknownStrategy indicates an unrecognized joint-sketch strategy.
	ErrUnknownStrategy = errors.New("embedding: unknown sketch strategy")

	// ErrUnknownOrderSearch indicates an unrecognized order-search mode.
	ErrUnknownOrderSearch = errors.New("embedding: unknown order search mode")

	// ErrMalformedPath indicates a contraction entry referencing a node id
	// not present in the network, or a reduce-group entry that never touches
	// its anchor node.
	ErrMalformedPath = errors.New("embedding: malformed contraction path")

	// ErrAmbiguousPartition indicates a contraction where one operand carries
	// more than one pending dangling dimension while the other carries none.
	// A valid contraction path never produces this state (each dimension is
	// sketched independently before its node accumulates others), so it is
	// rejected rather than silently mis-routed.
	ErrAmbiguousPartition = errors.New("embedding: ambiguous contraction classification")
)

// Strategy selects the joint sketch-and-contract operation used when both
// operands of a contraction still carry to-be-sketched dangling dimensions.
// The strategies differ only in their internal sketching structure, not in
// when they are invoked.
type Strategy int

const (
	// TreeEmbedding sketches each pending dimension, contracts, then merges
	// the sketched axes pairwise into a single m-dimensional axis.
	TreeEmbedding Strategy = iota

	// TNEmbedding contracts first, then sketches each pending dimension of
	// the fused node directly.
	TNEmbedding
)

// OrderSearch selects the cost-minimization strategy used by the Kronecker
// pass when ordering the contractions of one reduce group. The contract is
// identical for both modes: minimize the peak anchor size before the sketch
// and report where the minimum occurs.
type OrderSearch int

const (
	// ExhaustiveOrder enumerates all partner permutations. Factorial in the
	// group size; exact. Group sizes are bounded by node degree in practice.
	ExhaustiveOrder OrderSearch = iota

	// GreedyOrder repeatedly contracts the partner yielding the smallest
	// next anchor size. Quadratic; not always optimal.
	GreedyOrder
)

// Options configures an Embedder.
//
// Fields:
//   - Eps      — allowed relative norm distortion of the embedding; must be > 0.
//   - Delta    — bound on the probability of exceeding Eps; must lie in (0,1).
//   - MScalar  — slack multiplier on the sketch dimension. The theoretical
//     m = Θ(N_E·ln(1/Delta)/Eps²) is a Big-Theta, not a tight constant;
//     MScalar compensates. Must be > 0.
//   - Strategy — joint-sketch strategy for the tree pass.
//   - Search   — order-search mode for the Kronecker pass.
type Options struct {
	Eps      float64
	Delta    float64
	MScalar  float64
	Strategy Strategy
	Search   OrderSearch
}

// DefaultOptions returns the canonical configuration: 10% distortion at 5%
// failure probability, unit slack, tree-style joint sketching, exhaustive
// order search.
func DefaultOptions() Options {
	return Options{
		Eps:      0.1,
		Delta:    0.05,
		MScalar:  1,
		Strategy: TreeEmbedding,
		Search:   ExhaustiveOrder,
	}
}
