// Package tennet - Node: a tensor value plus its ordered edge list.
package tennet

import (
	"fmt"

	"github.com/katalvlaran/tensketch/tensor"
)

// Node is one vertex of the network: a dense tensor whose axis k is
// described by the k-th entry of its edge list.
type Node struct {
	id     int
	tensor *tensor.Dense
	edges  []*Edge
}

// ID returns the node's network id.
func (n *Node) ID() int { return n.id }

// Tensor returns the node's dense value.
func (n *Node) Tensor() *tensor.Dense { return n.tensor }

// Edges returns a copy of the ordered edge list; the *Edge values themselves
// are shared, not cloned (identity matters).
// Complexity: O(rank).
func (n *Node) Edges() []*Edge { return append([]*Edge(nil), n.edges...) }

// AllDangling returns, in edge order, the dangling edges of this node that
// still require sketching (marked ToSketch and not yet consumed).
// Complexity: O(rank).
func (n *Node) AllDangling() []*Edge {
	var out []*Edge
	for _, e := range n.edges {
		if e.toSketch && !e.sketched && e.Dangling() {
			out = append(out, e)
		}
	}

	return out
}

// axisOf returns the axis index an edge occupies on this node.
// Complexity: O(rank).
func (n *Node) axisOf(e *Edge) (int, error) {
	for axis, cand := range n.edges {
		if cand == e {
			return axis, nil
		}
	}

	return 0, fmt.Errorf("tennet: edge %q not on node %d: %w", e.name, n.id, ErrEdgeDetached)
}

// hasEdge reports whether e occupies an axis of this node.
// Complexity: O(rank).
func (n *Node) hasEdge(e *Edge) bool {
	for _, cand := range n.edges {
		if cand == e {
			return true
		}
	}

	return false
}
