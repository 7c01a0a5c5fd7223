// Package tensketch is your in-memory toolkit for building, contracting,
// and sketching tensor networks with cost-efficient Gaussian embeddings.
//
// 🚀 What is tensketch?
//
//	A deterministic, library-only implementation of Johnson–Lindenstrauss
//	sketching along tensor-network contraction paths:
//		• Dense tensors: row-major N-D arrays, permutation, matricization
//		• Networks: nodes & edges, safe in-place contraction
//		• Sketching: per-edge Gaussian projections + two joint strategies
//		• Planning: accuracy-driven sketch dimension, path partitioning,
//		  peak-size-minimizing contraction order search
//
// ✨ Why choose tensketch?
//
//   - Accuracy you can dial – Eps, Delta and MScalar map straight to the
//     (1±eps, 1−delta) norm-preservation guarantee
//   - Deterministic – every sketch operator flows from one explicit seed
//   - Rock-solid guarantees – sentinel errors everywhere, no panics on input
//   - Pluggable search – exhaustive ordering for small groups, greedy for
//     large ones, identical contract either way
//
// Under the hood, everything is organized under three subpackages:
//
//	tensor/    — dense float64 tensors, axis permutation & Gaussian operators
//	tennet/    — the mutable network: contract, sketch and merge in place
//	embedding/ — the planner: partition a contraction path and drive it
//
// Quick ASCII example:
//
//	    A──e1──B──e2──C
//	    │      │      │
//	   (s1)   (s2)   (s3)
//
//	represents a three-node chain whose dangling dimensions s1, s2, s3 are
//	marked for sketching; Embed shrinks each to m while contracting A·B·C.
//
// Dive into DESIGN.md for the full architecture notes.
//
//	go get github.com/katalvlaran/tensketch
package tensketch
