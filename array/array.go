// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/weft-nd/weft/internal/array"
)

// Type aliases for public API

// Scalar is a constraint for supported element types.
// Supported types: float32, float64, int32, int64.
type Scalar = array.Scalar

// DataType represents the underlying data type of a container.
type DataType = array.DataType

// Data type constants.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
)

// Shape represents the per-axis extents of a container.
// Example: Shape{2, 3, 4} represents a 3D container with extents 2×3×4.
type Shape = array.Shape

// Layout determines how a container derives strides from its shape.
type Layout = array.Layout

// Layout constants.
const (
	RowMajor    Layout = array.RowMajor
	ColumnMajor Layout = array.ColumnMajor
	Strided     Layout = array.Strided
)

// Kind classifies how strictly a container's shape is locked.
type Kind = array.Kind

// Kind constants.
const (
	Dynamic    Kind = array.Dynamic
	FixedRank  Kind = array.FixedRank
	FixedShape Kind = array.FixedShape
)

// Array is a dense n-dimensional container over a flat buffer.
//
// T is the element type (float32, float64, int32, int64). Containers are
// mutable and addressable by multi-index; strided windows borrowed from
// other containers write through to the shared buffer.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{2, 3})
//	a.Set(1.5, 0, 2)
//	v := a.At(0, 2)
type Array[T Scalar] = array.Array[T]

// Sentinel errors. Match with errors.Is.
var (
	ErrShapeMismatch       = array.ErrShapeMismatch
	ErrBroadcast           = array.ErrBroadcast
	ErrIndexOutOfRange     = array.ErrIndexOutOfRange
	ErrInvalidRange        = array.ErrInvalidRange
	ErrInvalidReshapeArity = array.ErrInvalidReshapeArity
)

// Creation functions

// New creates a zero-initialized container with the given shape and optional
// layout (RowMajor when omitted). It returns an error for negative extents.
func New[T Scalar](shape Shape, layout ...Layout) (*Array[T], error) {
	return array.New[T](shape, layout...)
}

// NewStrided wraps an existing buffer with explicit geometry. Overlapping,
// zero-stride and reversed windows are legal; every element the geometry
// addresses must fall inside data.
func NewStrided[T Scalar](data []T, offset int, shape Shape, strides []int) (*Array[T], error) {
	return array.NewStrided(data, offset, shape, strides)
}

// Zeros creates a container filled with zeros.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{2, 3})
func Zeros[T Scalar](shape Shape, layout ...Layout) *Array[T] {
	return array.Zeros[T](shape, layout...)
}

// Ones creates a container filled with ones.
//
// Example:
//
//	a := array.Ones[float32](array.Shape{2, 3})
func Ones[T Scalar](shape Shape, layout ...Layout) *Array[T] {
	return array.Ones[T](shape, layout...)
}

// Full creates a container filled with a specific value.
//
// Example:
//
//	a := array.Full(array.Shape{2, 3}, float32(3.14))
func Full[T Scalar](shape Shape, value T, layout ...Layout) *Array[T] {
	return array.Full(shape, value, layout...)
}

// FromSlice creates a container from a Go slice. The slice is copied into
// storage order.
//
// Example:
//
//	a, err := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T Scalar](data []T, shape Shape, layout ...Layout) (*Array[T], error) {
	return array.FromSlice(data, shape, layout...)
}

// Arange creates a 1D container with values from start to end (exclusive).
//
// Example:
//
//	a := array.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Scalar](start, end T) *Array[T] {
	return array.Arange(start, end)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	identity := array.Eye[float32](3) // 3x3 identity matrix
func Eye[T Scalar](n int) *Array[T] {
	return array.Eye[T](n)
}

// Rand creates a container with values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T Scalar](shape Shape) *Array[T] {
	return array.Rand[T](shape)
}

// Utility functions

// Broadcast computes the common shape the inputs stretch to under
// trailing-axis alignment, or ErrBroadcast when they cannot be reconciled.
//
// Example:
//
//	shape, err := array.Broadcast(array.Shape{3, 1}, array.Shape{3, 4})
//	// shape = [3, 4]
func Broadcast(shapes ...Shape) (Shape, error) {
	return array.Broadcast(shapes...)
}
