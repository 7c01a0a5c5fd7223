// Package embedding - Embedder construction and the Embed entry point.
//
// Design principles:
//   - Strict validation at construction: accuracy parameters are rejected by
//     NewEmbedder, never mid-flight.
//   - Single mutator: Embed is the only writer of the network for the whole
//     call; every contract/sketch completes before the next is issued.
//   - Strategy resolved once: the joint-sketch dispatch is fixed when the
//     Embedder is built, not re-branched per contraction.
package embedding

import (
	"math"

	"github.com/katalvlaran/tensketch/tennet"
)

// Embedder plans and executes Gaussian embeddings with fixed accuracy
// parameters. Safe for reuse across networks; not safe for concurrent use
// against the same network.
type Embedder struct {
	opts Options
}

// NewEmbedder validates opts and returns an Embedder.
//
// Errors: ErrBadAccuracy when Eps <= 0, Delta outside (0,1) or MScalar <= 0;
// ErrUnknownStrategy / ErrUnknownOrderSearch for unrecognized enum values.
//
// Complexity: O(1).
func NewEmbedder(opts Options) (*Embedder, error) {
	if !(opts.Eps > 0) || !(opts.Delta > 0 && opts.Delta < 1) || !(opts.MScalar > 0) {
		return nil, ErrBadAccuracy
	}
	switch opts.Strategy {
	case TreeEmbedding, TNEmbedding:
	default:
		return nil, ErrUnknownStrategy
	}
	switch opts.Search {
	case ExhaustiveOrder, GreedyOrder:
	default:
		return nil, ErrUnknownOrderSearch
	}

	return &Embedder{opts: opts}, nil
}

// SketchDim computes the sketch dimension for a network with numEdges
// dimensions requiring sketching:
//
//	m = max(1, floor(MScalar · numEdges · ln(1/Delta) / Eps²))
//
// The clamp to 1 is the documented policy for degenerate parameters (e.g.
// numEdges == 0); SketchDim never fails.
//
// Complexity: O(1).
func (emb *Embedder) SketchDim(numEdges int) int {
	m := int(math.Floor(emb.opts.MScalar * float64(numEdges) * math.Log(1/emb.opts.Delta) / (emb.opts.Eps * emb.opts.Eps)))
	if m < 1 {
		return 1
	}

	return m
}

// Embed sketches the network in place along the given contraction path and
// returns it.
//
// Stage 1 - collect the to-be-sketched dimensions and derive m.
// Stage 2 - partition the path into per-edge reduce groups, joint-sketch
// entries, and plain contractions (computed against the un-mutated network).
// Stage 3 - Kronecker pass: per reduce group, order the contractions to
// minimize the peak anchor size and sketch at the minimum.
// Stage 4 - tree pass: remaining entries in path order; joint entries use
// the configured strategy, the rest contract plainly.
//
// On error the network is partially mutated and must not be reused.
//
// Complexity: partitioning O(path · degree); Kronecker search factorial
// (ExhaustiveOrder) or quadratic (GreedyOrder) in each group size; the
// contractions themselves dominate for realistic tensors.
func (emb *Embedder) Embed(x *tennet.Network, path tennet.Path) (*tennet.Network, error) {
	edges := x.EdgesToSketch()
	m := emb.SketchDim(len(edges))

	part, err := partitionPath(x, path, edges)
	if err != nil {
		return nil, err
	}
	if err = emb.kroneckerPass(x, part, edges, m); err != nil {
		return nil, err
	}
	if err = emb.treePass(x, part, m); err != nil {
		return nil, err
	}

	return x, nil
}
