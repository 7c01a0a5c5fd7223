// Package embedding plans and executes cost-efficient Gaussian
// (Johnson–Lindenstrauss-style) embeddings of tensor networks.
//
// Given a network and a target contraction path, Embed inserts
// dimensionality-reducing random projections at scheduled points so that
// contracting the sketched network preserves the true contraction's norm
// within a factor (1±Eps) with probability at least 1−Delta, while
// minimizing the peak size of intermediates materialized during sketching.
//
// The planner works in four stages:
//
//  1. Dimension: the sketch dimension m is derived from the accuracy
//     parameters and the number of dimensions requiring sketching.
//
//  2. Partition: every contraction-path entry is classified by how many
//     to-be-sketched dangling dimensions its operands still carry: per-edge
//     reduce-then-sketch groups, joint-sketch entries, and plain
//     contractions.
//
//  3. Kronecker pass: for each group sharing one to-be-sketched dimension,
//     search contraction orderings for the one minimizing the peak size of
//     the shrinking anchor tensor, and sketch at that minimum.
//
//  4. Tree pass: remaining entries run in original path order; entries whose
//     operands both carry pending dimensions use the joint sketch-and-
//     contract strategy selected at construction (tree or TN style).
//
// The network is mutated in place and returned. Any error aborts the call
// immediately; the network is then partially mutated and must not be
// reused - no rollback is provided.
//
// Accuracy follows "Cost-efficient Gaussian tensor network embeddings for
// tensor-structured inputs" (arXiv:2205.13163).
package embedding
