// Package tennet - central types, sentinel errors and construction options.
//
// This file declares Edge, Contraction, Path, the Option/EdgeOption
// functional options, and the NewEdge constructor.
package tennet

import "errors"

// Sentinel errors for tensor-network operations.
var (
	// ErrNilTensor indicates a node was added without a tensor value.
	ErrNilTensor = errors.New("tennet: node tensor is nil")

	// ErrNilEdge indicates a nil edge pointer in a node's edge list.
	ErrNilEdge = errors.New("tennet: edge is nil")

	// ErrRankMismatch indicates an edge list whose length differs from the tensor rank.
	ErrRankMismatch = errors.New("tennet: edge count does not match tensor rank")

	// ErrDimMismatch indicates an edge whose Dim differs from its tensor axis length.
	ErrDimMismatch = errors.New("tennet: edge dim does not match tensor axis")

	// ErrEdgeOverAttached indicates an edge already attached to two nodes.
	ErrEdgeOverAttached = errors.New("tennet: edge already attached to two nodes")

	// ErrEdgeRepeated indicates the same edge listed twice on one node (trace edges unsupported).
	ErrEdgeRepeated = errors.New("tennet: edge repeated on a single node")

	// ErrNodeNotFound indicates an operation referenced a non-existent or retired node id.
	ErrNodeNotFound = errors.New("tennet: node not found")

	// ErrForeignNode indicates a node that does not belong to this network.
	ErrForeignNode = errors.New("tennet: node not in this network")

	// ErrSelfContraction indicates Contract(i, i).
	ErrSelfContraction = errors.New("tennet: cannot contract a node with itself")

	// ErrEdgeNotDangling indicates a sketch on an edge with two attachments.
	ErrEdgeNotDangling = errors.New("tennet: edge is not dangling")

	// ErrEdgeDetached indicates a sketch on an edge with no attachment.
	ErrEdgeDetached = errors.New("tennet: edge is not attached to any node")

	// ErrEdgeAlreadySketched indicates a second sketch of the same edge.
	ErrEdgeAlreadySketched = errors.New("tennet: edge already sketched")

	// ErrBadSketchDim indicates a sketch dimension below 1.
	ErrBadSketchDim = errors.New("tennet: sketch dimension must be >= 1")
)

// free marks an unoccupied edge attachment slot.
const free = -1

// Edge identifies one logical dimension of the network. It attaches to at
// most two nodes; with exactly one attachment it is dangling. Identity is
// pointer identity: two nodes share a dimension iff they hold the same *Edge.
type Edge struct {
	name     string
	dim      int  // current axis length; rewritten to m by a sketch
	toSketch bool // dimension requires a random projection
	sketched bool // projection already applied (consumed-once witness)
	n1, n2   int  // attached node ids; free (-1) when unoccupied
}

// EdgeOption configures properties of an edge at construction.
type EdgeOption func(*Edge)

// WithSketch marks the edge as a dimension that requires sketching.
func WithSketch() EdgeOption {
	return func(e *Edge) { e.toSketch = true }
}

// NewEdge creates a detached edge with the given name and axis length.
// Attachment happens when the edge is listed in AddNode.
func NewEdge(name string, dim int, opts ...EdgeOption) *Edge {
	e := &Edge{name: name, dim: dim, n1: free, n2: free}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name returns the edge's label.
func (e *Edge) Name() string { return e.name }

// Dim returns the edge's current axis length.
func (e *Edge) Dim() int { return e.dim }

// ToSketch reports whether the dimension requires sketching.
func (e *Edge) ToSketch() bool { return e.toSketch }

// Sketched reports whether the projection has already been applied.
func (e *Edge) Sketched() bool { return e.sketched }

// Dangling reports whether the edge has exactly one attachment.
func (e *Edge) Dangling() bool {
	return (e.n1 == free) != (e.n2 == free)
}

// AnchorNode returns the id of the single attached node of a dangling edge.
func (e *Edge) AnchorNode() (int, error) {
	if !e.Dangling() {
		if e.n1 == free && e.n2 == free {
			return 0, ErrEdgeDetached
		}

		return 0, ErrEdgeNotDangling
	}
	if e.n1 != free {
		return e.n1, nil
	}

	return e.n2, nil
}

// attach occupies the first free slot with the given node id.
func (e *Edge) attach(id int) error {
	switch {
	case e.n1 == free:
		e.n1 = id
	case e.n2 == free:
		e.n2 = id
	default:
		return ErrEdgeOverAttached
	}

	return nil
}

// rebind replaces every attachment equal to from with to.
// Used when a contraction moves an edge onto the fused node.
func (e *Edge) rebind(from, to int) {
	if e.n1 == from {
		e.n1 = to
	}
	if e.n2 == from {
		e.n2 = to
	}
}

// detach clears both attachment slots of a consumed inner edge.
func (e *Edge) detach() {
	e.n1, e.n2 = free, free
}

// Contraction names the two nodes to contract next: a single entry of a
// contraction path.
type Contraction [2]int

// Path is an ordered sequence of pairwise contractions; executing the full
// path (modulo sketch insertions) fully contracts the network.
type Path []Contraction

// Option configures a Network before creation.
type Option func(*Network)

// WithSeed fixes the RNG seed for all sketch operators generated by the
// network. Seed 0 selects the deterministic default stream.
func WithSeed(seed int64) Option {
	return func(n *Network) { n.seed = seed }
}
