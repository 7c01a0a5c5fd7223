// Package tennet - Network: node registry, edge registry and contraction.
//
// Design principles:
//   - Deterministic iteration: nodes and edges are tracked in insertion
//     order; no map-order dependence escapes the package.
//   - Strict sentinels: all user-input failures return errors from types.go.
//   - In-place mutation: Contract and the sketch operations rewrite the
//     network; node ids shrink monotonically, never renumber.
package tennet

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tensketch/tensor"
)

// Network is a mutable collection of tensor nodes joined by shared edges.
// Contracting or sketching it in place is the whole point; see package doc
// for the invariants every operation maintains.
type Network struct {
	nodes  map[int]*Node // live nodes by id
	order  []int         // live node ids in insertion order
	edges  []*Edge       // every edge ever registered, in first-seen order
	nextID int           // next node id; never reused

	seed int64      // sketch-operator RNG seed (0 ⇒ default stream)
	rng  *rand.Rand // lazily initialized from seed
}

// NewNetwork creates an empty network.
// Complexity: O(1).
func NewNetwork(opts ...Option) *Network {
	n := &Network{nodes: make(map[int]*Node)}
	for _, opt := range opts {
		opt(n)
	}
	n.rng = tensor.RandFromSeed(n.seed)

	return n
}

// AddNode registers a tensor with its ordered edge list and returns the new
// node's id.
//
// Contracts:
//   - t non-nil; len(edges) == t.Rank(); edges[k].Dim() == t.Shape()[k].
//   - No edge may appear twice on one node (trace edges unsupported).
//   - Each edge has at most one prior attachment.
//
// Complexity: O(rank²) (duplicate scan), O(rank) memory.
func (x *Network) AddNode(t *tensor.Dense, edges []*Edge) (int, error) {
	if t == nil {
		return 0, ErrNilTensor
	}
	if len(edges) != t.Rank() {
		return 0, fmt.Errorf("tennet: %d edges for rank-%d tensor: %w", len(edges), t.Rank(), ErrRankMismatch)
	}
	shape := t.Shape()
	for axis, e := range edges {
		if e == nil {
			return 0, ErrNilEdge
		}
		if e.dim != shape[axis] {
			return 0, fmt.Errorf("tennet: edge %q dim %d, axis %d len %d: %w", e.name, e.dim, axis, shape[axis], ErrDimMismatch)
		}
		for _, prev := range edges[:axis] {
			if prev == e {
				return 0, fmt.Errorf("tennet: edge %q: %w", e.name, ErrEdgeRepeated)
			}
		}
	}

	id := x.nextID
	for _, e := range edges {
		if err := e.attach(id); err != nil {
			return 0, fmt.Errorf("tennet: edge %q: %w", e.name, err)
		}
		x.registerEdge(e)
	}
	x.nextID++
	x.nodes[id] = &Node{id: id, tensor: t, edges: append([]*Edge(nil), edges...)}
	x.order = append(x.order, id)

	return id, nil
}

// registerEdge records an edge in first-seen order, once.
func (x *Network) registerEdge(e *Edge) {
	for _, seen := range x.edges {
		if seen == e {
			return
		}
	}
	x.edges = append(x.edges, e)
}

// Node returns the live node with the given id.
// Complexity: O(1).
func (x *Network) Node(i int) (*Node, error) {
	n, ok := x.nodes[i]
	if !ok {
		return nil, fmt.Errorf("tennet: node %d: %w", i, ErrNodeNotFound)
	}

	return n, nil
}

// NodeIndex returns the id under which the given node is registered.
// Complexity: O(1).
func (x *Network) NodeIndex(n *Node) (int, error) {
	if n == nil || x.nodes[n.id] != n {
		return 0, ErrForeignNode
	}

	return n.id, nil
}

// Len returns the number of live nodes.
// Complexity: O(1).
func (x *Network) Len() int { return len(x.nodes) }

// NodeIDs returns the live node ids in insertion order.
// Complexity: O(n).
func (x *Network) NodeIDs() []int { return append([]int(nil), x.order...) }

// EdgesToSketch returns, in first-registration order, every edge that still
// requires sketching. Deterministic across calls on an unmutated network.
// Complexity: O(edges).
func (x *Network) EdgesToSketch() []*Edge {
	var out []*Edge
	for _, e := range x.edges {
		if e.toSketch && !e.sketched {
			out = append(out, e)
		}
	}

	return out
}

// Contract fuses nodes i and j into one node, consuming both. The fused
// node keeps id i; id j is retired. Edge identity decides which axes are
// summed over; with no shared edge the result is the outer product.
//
// Stage 1 (Validate): i != j, both ids live.
// Stage 2 (Permute): bring i's shared axes last and j's shared axes first,
// in i's shared-edge order, so both matricize onto the same inner index.
// Stage 3 (Multiply): (freeI × s)·(s × freeJ) via the gonum kernel.
// Stage 4 (Rewire): consumed edges detach; j's free edges rebind to i.
//
// Complexity: O(size_i + size_j + flops of the matmul).
func (x *Network) Contract(i, j int) error {
	if i == j {
		return ErrSelfContraction
	}
	a, err := x.Node(i)
	if err != nil {
		return err
	}
	b, err := x.Node(j)
	if err != nil {
		return err
	}

	// Split a's axes into free and shared, preserving axis order.
	var (
		sharedA, freeA []int // axis indices on a
		shared         []*Edge
	)
	for axis, e := range a.edges {
		if b.hasEdge(e) {
			sharedA = append(sharedA, axis)
			shared = append(shared, e)
		} else {
			freeA = append(freeA, axis)
		}
	}
	// b's shared axes in the SAME edge order as a's, then b's free axes.
	sharedB := make([]int, 0, len(shared))
	for _, e := range shared {
		axis, aerr := b.axisOf(e)
		if aerr != nil {
			return aerr
		}
		sharedB = append(sharedB, axis)
	}
	var freeB []int
	for axis, e := range b.edges {
		if !a.hasEdge(e) {
			freeB = append(freeB, axis)
		}
	}

	aPerm, err := a.tensor.Permute(append(append([]int(nil), freeA...), sharedA...)...)
	if err != nil {
		return err
	}
	bPerm, err := b.tensor.Permute(append(append([]int(nil), sharedB...), freeB...)...)
	if err != nil {
		return err
	}
	aMat, err := aPerm.Matricize(len(freeA))
	if err != nil {
		return err
	}
	bMat, err := bPerm.Matricize(len(shared))
	if err != nil {
		return err
	}

	var prod mat.Dense
	prod.Mul(aMat, bMat)

	// Fused shape and edge list: a's free axes then b's free axes.
	fusedEdges := make([]*Edge, 0, len(freeA)+len(freeB))
	fusedShape := make([]int, 0, len(freeA)+len(freeB))
	aShape, bShape := a.tensor.Shape(), b.tensor.Shape()
	for _, axis := range freeA {
		fusedEdges = append(fusedEdges, a.edges[axis])
		fusedShape = append(fusedShape, aShape[axis])
	}
	for _, axis := range freeB {
		fusedEdges = append(fusedEdges, b.edges[axis])
		fusedShape = append(fusedShape, bShape[axis])
	}

	fused, err := tensor.FromMatrix(&prod, fusedShape...)
	if err != nil {
		return err
	}

	for _, e := range shared {
		e.detach()
	}
	for _, axis := range freeB {
		b.edges[axis].rebind(j, i)
	}

	x.nodes[i] = &Node{id: i, tensor: fused, edges: fusedEdges}
	x.retire(j)

	return nil
}

// retire removes a consumed node id from the registry and insertion order.
func (x *Network) retire(id int) {
	delete(x.nodes, id)
	for k, live := range x.order {
		if live == id {
			x.order = append(x.order[:k], x.order[k+1:]...)

			return
		}
	}
}
