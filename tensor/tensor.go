// Package tensor - dense N-dimensional array implementation.
//
// Dense is a concrete, row-major N-dimensional float64 array, storing
// elements in a flat slice for performance and cache friendliness. It is the
// value type owned by every tensor-network node.
//
// Design principles:
//   - Strict sentinels: shape and index violations return errors from this
//     file; no panics on user input.
//   - Zero-copy matricization: Matricize reinterprets the flat storage as a
//     gonum *mat.Dense without copying.
//   - Deterministic, side-effect free operations; Permute and MatMul
//     allocate exactly one result tensor.
package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for dense tensor operations.
var (
	// ErrInvalidShape indicates a shape with a non-positive axis length.
	ErrInvalidShape = errors.New("tensor: shape axes must be > 0")

	// ErrShapeMismatch indicates data whose length does not match the shape.
	ErrShapeMismatch = errors.New("tensor: data length does not match shape")

	// ErrAxisOutOfRange indicates an axis index outside [0, rank).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrIndexOutOfBounds indicates a multi-index outside the tensor bounds.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrBadPermutation indicates a permutation that is not a bijection on axes.
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")

	// ErrNotMatrix indicates a 2-D operation applied to a non-2-D tensor.
	ErrNotMatrix = errors.New("tensor: operand is not a matrix")

	// ErrInnerDimMismatch indicates incompatible inner dimensions in MatMul.
	ErrInnerDimMismatch = errors.New("tensor: inner dimensions do not match")
)

// Dense is a row-major N-dimensional float64 tensor.
// shape holds the axis lengths; data holds prod(shape) elements with the
// last axis varying fastest.
type Dense struct {
	shape []int     // axis lengths, all > 0
	data  []float64 // flat backing storage, length == prod(shape)
}

// NewDense creates a zero-filled tensor with the given shape.
// A rank-0 call (no axes) yields a scalar holding one element.
// Complexity: O(prod(shape)) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return &Dense{shape: append([]int(nil), shape...), data: make([]float64, size)}, nil
}

// NewDenseFrom wraps the given flat row-major data in a tensor of the given
// shape. The slice is NOT copied; the caller must not alias it afterwards.
// Complexity: O(rank).
func NewDenseFrom(data []float64, shape ...int) (*Dense, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("tensor: NewDenseFrom(len=%d, shape=%v): %w", len(data), shape, ErrShapeMismatch)
	}

	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// checkShape validates axis lengths and returns the element count.
// Complexity: O(rank).
func checkShape(shape []int) (int, error) {
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrInvalidShape
		}
		size *= d
	}

	return size, nil
}

// Rank returns the number of axes.
// Complexity: O(1).
func (t *Dense) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
// Complexity: O(rank).
func (t *Dense) Size() int {
	size := 1
	for _, d := range t.shape {
		size *= d
	}

	return size
}

// Shape returns a copy of the axis lengths; mutating it does not affect t.
// Complexity: O(rank).
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Dim returns the length of the given axis.
// Complexity: O(1).
func (t *Dense) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return 0, fmt.Errorf("tensor: Dim(%d) of rank-%d tensor: %w", axis, len(t.shape), ErrAxisOutOfRange)
	}

	return t.shape[axis], nil
}

// Data exposes the flat row-major backing slice. Mutations write through.
// Complexity: O(1).
func (t *Dense) Data() []float64 { return t.data }

// Clone returns a deep copy of the tensor.
// Complexity: O(size).
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape: append([]int(nil), t.shape...),
		data:  append([]float64(nil), t.data...),
	}
}

// offsetOf computes the flat offset of a multi-index, or an error when the
// index rank or any coordinate is out of bounds.
// Complexity: O(rank).
func (t *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("tensor: index rank %d, tensor rank %d: %w", len(idx), len(t.shape), ErrIndexOutOfBounds)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, fmt.Errorf("tensor: index %v, shape %v: %w", idx, t.shape, ErrIndexOutOfBounds)
		}
		off = off*t.shape[axis] + i
	}

	return off, nil
}

// At retrieves the element at the given multi-index.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns v at the given multi-index.
// Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Permute returns a new tensor with axes reordered so that result axis a
// is input axis perm[a]. perm must be a bijection on [0, rank).
//
// Stage 1 (Validate): perm is a permutation of the axes.
// Stage 2 (Prepare): compute input strides and the permuted shape.
// Stage 3 (Execute): walk the output in row-major order, pulling each
// element from its source offset.
//
// Complexity: O(size) time and memory.
func (t *Dense) Permute(perm ...int) (*Dense, error) {
	rank := len(t.shape)
	if len(perm) != rank {
		return nil, ErrBadPermutation
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, ErrBadPermutation
		}
		seen[p] = true
	}

	// Input strides (row-major: last axis stride 1).
	strides := make([]int, rank)
	acc := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = acc
		acc *= t.shape[axis]
	}

	// Permuted shape and the source stride of each output axis.
	outShape := make([]int, rank)
	outStride := make([]int, rank)
	for a, p := range perm {
		outShape[a] = t.shape[p]
		outStride[a] = strides[p]
	}

	out := make([]float64, len(t.data))
	idx := make([]int, rank) // current output multi-index
	src := 0                 // source offset tracked incrementally
	for dst := range out {
		out[dst] = t.data[src]
		// Advance the output multi-index with carry, adjusting src.
		for axis := rank - 1; axis >= 0; axis-- {
			idx[axis]++
			src += outStride[axis]
			if idx[axis] < outShape[axis] {
				break
			}
			idx[axis] = 0
			src -= outShape[axis] * outStride[axis]
		}
	}

	return &Dense{shape: outShape, data: out}, nil
}

// Matricize reinterprets the tensor as a 2-D gonum matrix by splitting the
// axes at position split: rows = prod(shape[:split]), cols =
// prod(shape[split:]). An empty axis group has product 1. The returned
// matrix SHARES the backing storage; writes are visible both ways.
//
// Complexity: O(rank) time, O(1) extra memory.
func (t *Dense) Matricize(split int) (*mat.Dense, error) {
	if split < 0 || split > len(t.shape) {
		return nil, fmt.Errorf("tensor: Matricize(%d) of rank-%d tensor: %w", split, len(t.shape), ErrAxisOutOfRange)
	}
	rows, cols := 1, 1
	for axis, d := range t.shape {
		if axis < split {
			rows *= d
		} else {
			cols *= d
		}
	}

	return mat.NewDense(rows, cols, t.data), nil
}

// FromMatrix copies a gonum matrix into a tensor of the given shape.
// prod(shape) must equal rows·cols.
// Complexity: O(size).
func FromMatrix(m mat.Matrix, shape ...int) (*Dense, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	if r*c != size {
		return nil, fmt.Errorf("tensor: FromMatrix(%dx%d, shape=%v): %w", r, c, shape, ErrShapeMismatch)
	}

	data := make([]float64, size)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}

	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// MatMul multiplies two 2-D tensors via the gonum kernel and returns the
// product as a new 2-D tensor.
//
// Contracts:
//   - a and b must both have rank 2.
//   - a.shape[1] must equal b.shape[0].
//
// Complexity: O(n·m·k) time (gonum dgemm), O(n·k) memory.
func MatMul(a, b *Dense) (*Dense, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, ErrNotMatrix
	}
	if a.shape[1] != b.shape[0] {
		return nil, fmt.Errorf("tensor: MatMul %v x %v: %w", a.shape, b.shape, ErrInnerDimMismatch)
	}

	am, err := a.Matricize(1)
	if err != nil {
		return nil, err
	}
	bm, err := b.Matricize(1)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(am, bm)

	return FromMatrix(&out, a.shape[0], b.shape[1])
}
