// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides dense n-dimensional containers for the weft
// library.
//
// # Overview
//
// An Array[T] is a flat buffer addressed through a shape, an offset and
// per-axis strides. The package provides:
//   - Generic containers over float32, float64, int32 and int64
//   - Row-major, column-major and explicitly strided storage
//   - In-place reshape with one inferrable axis
//   - Destructive resize, with optional explicit strides
//   - Shape locking (dynamic, fixed-rank, fixed-shape containers)
//
// # Basic Usage
//
//	import "github.com/weft-nd/weft/array"
//
//	func main() {
//	    a := array.Zeros[float32](array.Shape{2, 3})
//	    a.Set(1.5, 0, 2)
//	    v := a.At(0, 2)
//
//	    b, err := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	    if err != nil { ... }
//	    _ = b.Reshape(array.Shape{3, -1}) // infers {3, 2}
//	}
//
// # Shapes and Layouts
//
// A Shape lists per-axis extents. Extents of zero are legal and describe
// empty containers; a rank-0 shape describes a scalar holding one element.
// Creation functions take an optional Layout:
//
//	rm := array.Zeros[float32](array.Shape{3, 4})                     // row-major
//	cm := array.Zeros[float32](array.Shape{3, 4}, array.ColumnMajor)  // column-major
//
// Strided containers carry caller-supplied strides verbatim, including zero
// and negative strides, and come from NewStrided, ResizeStrided or borrowed
// expression evaluation.
//
// # Reshape and Resize
//
// Reshape reinterprets the buffer in place and preserves contents; the
// element count must match. Resize reallocates and zeroes the container.
// A container's Kind restricts both: LockRank pins the rank, LockShape pins
// the whole shape.
//
// # Errors
//
// Failures are reported against sentinel errors (ErrShapeMismatch,
// ErrBroadcast, ErrIndexOutOfRange, ErrInvalidRange,
// ErrInvalidReshapeArity) wrapped with context. Match with errors.Is.
// Mutating operations return errors; element accessors panic, carrying the
// same sentinels.
package array
