// Package tensor provides the dense numeric substrate for tensor-network
// sketching: an N-dimensional float64 array with row-major flat storage,
// axis permutation, matricization into gonum matrices, and deterministic
// Gaussian sketch-operator generation.
//
// Two design rules hold everywhere:
//
//   - Row-major flat storage. A Dense of shape [d0, d1, …, dk] stores its
//     elements in one []float64 of length d0·d1·…·dk, so matricizing into a
//     (d0·…·d(s-1)) × (ds·…·dk) matrix is a zero-copy reinterpretation.
//
//   - Determinism. All randomness flows through explicitly seeded
//     math/rand generators (seed 0 selects a fixed default), so the same
//     seed reproduces the same sketch operators on every platform.
//
// Use this package when you need raw tensor values and projection
// matrices; the tennet package layers network structure on top.
package tensor
