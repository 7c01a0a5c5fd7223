// Package tennet - sketching operations: single-edge Gaussian projection and
// the two joint sketch-and-contract strategies the planner dispatches to.
//
// All three operations honor the consumed-once contract: an edge marked for
// sketching is projected exactly once, after which its sketched flag is set
// and its Dim reads the sketch dimension m.
package tennet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tensketch/tensor"
)

// Sketch applies an m-dimensional Gaussian random projection to the dangling
// dimension identified by e, replacing it in place: the anchor node's tensor
// is multiplied along that axis by an m×Dim operator with N(0, 1/m) entries,
// the axis length becomes m, and e is marked sketched.
//
// The sketched axis moves to the LAST axis of the anchor node; relative
// order of the remaining axes is preserved.
//
// Errors: ErrBadSketchDim, ErrEdgeDetached, ErrEdgeNotDangling,
// ErrEdgeAlreadySketched, ErrNodeNotFound.
//
// Complexity: O(size · m / Dim) flops plus O(m · Dim) operator memory.
func (x *Network) Sketch(e *Edge, m int) error {
	if m < 1 {
		return ErrBadSketchDim
	}
	if e == nil {
		return ErrNilEdge
	}
	if e.sketched {
		return fmt.Errorf("tennet: edge %q: %w", e.name, ErrEdgeAlreadySketched)
	}
	anchor, err := e.AnchorNode()
	if err != nil {
		return fmt.Errorf("tennet: edge %q: %w", e.name, err)
	}
	n, err := x.Node(anchor)
	if err != nil {
		return err
	}

	if err = x.projectLast(n, []*Edge{e}, m); err != nil {
		return err
	}
	e.dim = m
	e.sketched = true

	return nil
}

// TreeSketchAndContract jointly sketches and fuses nodes i and j, both of
// which may still carry to-be-sketched dangling dimensions, with sketch
// dimension m (tree-style strategy):
//
//  1. every pending dangling edge on either operand is sketched down to m;
//  2. the operands are contracted into one node (which keeps id i);
//  3. the sketched m-axes are merged pairwise by m×m² Gaussian operators
//     until a single m-dimensional dangling axis remains.
//
// The merge axes introduced in step 3 are fresh edges already marked
// sketched, so they never re-enter the to-sketch set.
//
// Complexity: dominated by the contraction plus one merge matmul per
// pending edge beyond the first.
func (x *Network) TreeSketchAndContract(i, j, m int) error {
	a, err := x.Node(i)
	if err != nil {
		return err
	}
	b, err := x.Node(j)
	if err != nil {
		return err
	}

	pending := append(a.AllDangling(), b.AllDangling()...)
	for _, e := range pending {
		if err = x.Sketch(e, m); err != nil {
			return err
		}
	}
	if err = x.Contract(i, j); err != nil {
		return err
	}

	// Fold the sketched axes two at a time into fresh merged axes.
	for len(pending) > 1 {
		var merged *Edge
		merged, err = x.mergePair(i, pending[0], pending[1], m)
		if err != nil {
			return err
		}
		rest := append([]*Edge{merged}, pending[2:]...)
		pending = rest
	}

	return nil
}

// TNSketchAndContract is the TN-style joint strategy: contract first, then
// sketch each remaining to-be-sketched dangling axis of the fused node
// directly with dimension m. No merge axes are introduced; the fused node
// keeps one m-dimensional axis per pending edge.
func (x *Network) TNSketchAndContract(i, j, m int) error {
	if err := x.Contract(i, j); err != nil {
		return err
	}
	fused, err := x.Node(i)
	if err != nil {
		return err
	}
	for _, e := range fused.AllDangling() {
		if err = x.Sketch(e, m); err != nil {
			return err
		}
	}

	return nil
}

// mergePair merges two sketched dangling axes of node id into one fresh
// m-dimensional axis via an m×(d1·d2) Gaussian operator. Returns the new
// edge, registered and marked sketched.
func (x *Network) mergePair(id int, e1, e2 *Edge, m int) (*Edge, error) {
	n, err := x.Node(id)
	if err != nil {
		return nil, err
	}
	if err = x.projectLast(n, []*Edge{e1, e2}, m); err != nil {
		return nil, err
	}
	e1.detach()
	e2.detach()

	merged := &Edge{
		name:     fmt.Sprintf("(%s*%s)", e1.name, e2.name),
		dim:      m,
		sketched: true,
		n1:       id,
		n2:       free,
	}
	x.registerEdge(merged)

	// projectLast left the fresh axis last with no edge bound yet; bind it.
	fused := x.nodes[id]
	fused.edges[len(fused.edges)-1] = merged

	return merged, nil
}

// projectLast permutes node n so the given target axes (in target order)
// come last, matricizes, multiplies by the transpose of an
// m×prod(targetDims) Gaussian operator, and reinstalls the result: the
// target axes are replaced by one trailing axis of length m, described by
// target[0] (callers rebind it when a fresh edge is wanted).
//
// Complexity: O(size) permute + one (rest × d)·(d × m) matmul.
func (x *Network) projectLast(n *Node, targets []*Edge, m int) error {
	var (
		keepAxes, targetAxes []int
		err                  error
	)
	for _, e := range targets {
		var axis int
		if axis, err = n.axisOf(e); err != nil {
			return err
		}
		targetAxes = append(targetAxes, axis)
	}
	for axis := range n.edges {
		kept := true
		for _, t := range targetAxes {
			if axis == t {
				kept = false

				break
			}
		}
		if kept {
			keepAxes = append(keepAxes, axis)
		}
	}

	perm := append(append([]int(nil), keepAxes...), targetAxes...)
	permuted, err := n.tensor.Permute(perm...)
	if err != nil {
		return err
	}
	restMat, err := permuted.Matricize(len(keepAxes))
	if err != nil {
		return err
	}

	shape := n.tensor.Shape()
	d := 1
	for _, axis := range targetAxes {
		d *= shape[axis]
	}
	omega, err := tensor.Gaussian(x.rng, m, d)
	if err != nil {
		return err
	}
	omegaMat, err := omega.Matricize(1)
	if err != nil {
		return err
	}

	var out mat.Dense
	out.Mul(restMat, omegaMat.T())

	newShape := make([]int, 0, len(keepAxes)+1)
	newEdges := make([]*Edge, 0, len(keepAxes)+1)
	for _, axis := range keepAxes {
		newShape = append(newShape, shape[axis])
		newEdges = append(newEdges, n.edges[axis])
	}
	newShape = append(newShape, m)
	newEdges = append(newEdges, targets[0])

	projected, err := tensor.FromMatrix(&out, newShape...)
	if err != nil {
		return err
	}
	n.tensor = projected
	n.edges = newEdges

	return nil
}
