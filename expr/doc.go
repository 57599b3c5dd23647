// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides lazy element-wise expressions over weft containers.
//
// # Overview
//
// An Expr[T] describes a computation without running it. Building a graph
// records shapes and operand references only; elements compute on demand,
// recursively from the leaves, with no caching. The package provides:
//   - Container leaves and scalar constants
//   - Element-wise binary and unary application with NumPy-style broadcasting
//   - Zero-copy views: ranges, single indices, new axes, keep/drop lists
//   - Axis manipulation views: Transpose, Squeeze, Unsqueeze, BroadcastTo
//   - Evaluation, materialization and aliasing-safe assignment
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-nd/weft/array"
//	    "github.com/weft-nd/weft/expr"
//	)
//
//	func main() {
//	    a := array.Ones[float32](array.Shape{3, 4})
//	    b := array.Rand[float32](array.Shape{4})
//
//	    f := expr.Add(expr.Leaf(a), expr.Leaf(b)) // nothing computed yet
//	    v := expr.At(f, 2, 1)                     // one element computed
//	    out := expr.Evaluate(f)                   // all elements computed
//	    _ = v
//	    _ = out
//	}
//
// # Laziness
//
// Expressions hold references to their leaf containers, not snapshots.
// Mutating a container after building an expression changes what the
// expression evaluates to. Reading the same element twice recomputes it
// twice; materialize an expression to pay the cost once.
//
// # Broadcasting
//
// Binary operations align shapes from the right. On each axis the operand
// extents must match, be 1, or be absent; size-1 and absent axes repeat
// their value across the output:
//
//	col := expr.Leaf(array.Zeros[float32](array.Shape{3, 1}))
//	row := expr.Leaf(array.Zeros[float32](array.Shape{5}))
//	sum := expr.Add(col, row) // shape (3, 5)
//
// Incompatible operands panic with array.ErrBroadcast at construction.
//
// # Views
//
// View slices an expression one axis at a time, without copying:
//
//	v := expr.View(e,
//	    expr.Range(1, 4),    // axis 0: rows 1..3
//	    expr.Index(0),       // axis 1: pinned, removed from the result
//	    expr.Keep(2, 0, 2),  // axis 2: an explicit selection
//	)
//
// Axes past the last descriptor pass through unchanged. Views nest freely
// and compose their index translations.
//
// # Evaluation
//
// Evaluate returns the leaf container itself for bare leaves, a borrowed
// strided window for affine view chains over a leaf, and a fresh row-major
// container otherwise. Borrowed results write through to the underlying
// container; Materialize always copies.
//
// # Assignment
//
// Assign evaluates a source expression into a destination container,
// resizing it when shapes differ. When the destination's storage is readable
// from the source, the source is staged through a temporary first, so
// overlapping assignments like b = a + b stay consistent.
//
// # Concurrency
//
// Reads (At, Evaluate, Materialize, ElementsEqual) never mutate state, so
// any number of goroutines may force the same expression as long as no leaf
// container is mutated at the same time. Mutators (Reshape, Resize, Fill,
// Assign) require external exclusive access. Neither package performs any
// internal synchronization.
package expr
