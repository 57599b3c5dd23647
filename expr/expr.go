// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/weft-nd/weft/array"
	"github.com/weft-nd/weft/internal/expr"
)

// Type aliases for public API

// Expr is an unevaluated element-wise computation over containers. The node
// set is closed; expressions are built with the constructors below and hold
// non-owning references to their leaf containers.
type Expr[T array.Scalar] = expr.Expr[T]

// Float constrains the element types the math functions accept.
type Float = expr.Float

// Slice selects elements along one axis of a view.
type Slice = expr.Slice

// Placeholder marks an unspecified Range endpoint.
const Placeholder = expr.Placeholder

// Graph construction

// Leaf lifts a container into an expression. The expression reads the
// container's live contents at evaluation time, not a snapshot.
func Leaf[T array.Scalar](a *array.Array[T]) Expr[T] {
	return expr.Leaf(a)
}

// Scalar wraps a bare value as a rank-0 expression that broadcasts across
// every axis.
func Scalar[T array.Scalar](v T) Expr[T] {
	return expr.Scalar(v)
}

// Binary builds a lazy element-wise node applying fn over the broadcast of
// l and r. It panics with array.ErrBroadcast when the shapes cannot be
// reconciled.
//
// Example:
//
//	f := expr.Binary(l, r, func(a, b float32) float32 { return a*b + 1 })
func Binary[T array.Scalar](l, r Expr[T], fn func(a, b T) T) Expr[T] {
	return expr.Binary(l, r, fn)
}

// Unary builds a lazy element-wise node applying fn to every element of e.
func Unary[T array.Scalar](e Expr[T], fn func(v T) T) Expr[T] {
	return expr.Unary(e, fn)
}

// Arithmetic

// Add returns the lazy element-wise sum of l and r.
func Add[T array.Scalar](l, r Expr[T]) Expr[T] { return expr.Add(l, r) }

// Sub returns the lazy element-wise difference of l and r.
func Sub[T array.Scalar](l, r Expr[T]) Expr[T] { return expr.Sub(l, r) }

// Mul returns the lazy element-wise product of l and r.
func Mul[T array.Scalar](l, r Expr[T]) Expr[T] { return expr.Mul(l, r) }

// Div returns the lazy element-wise quotient of l and r.
func Div[T array.Scalar](l, r Expr[T]) Expr[T] { return expr.Div(l, r) }

// AddScalar returns the lazy element-wise sum of e and a bare value.
func AddScalar[T array.Scalar](e Expr[T], v T) Expr[T] { return expr.AddScalar(e, v) }

// SubScalar returns the lazy element-wise difference of e and a bare value.
func SubScalar[T array.Scalar](e Expr[T], v T) Expr[T] { return expr.SubScalar(e, v) }

// MulScalar returns the lazy element-wise product of e and a bare value.
func MulScalar[T array.Scalar](e Expr[T], v T) Expr[T] { return expr.MulScalar(e, v) }

// DivScalar returns the lazy element-wise quotient of e and a bare value.
func DivScalar[T array.Scalar](e Expr[T], v T) Expr[T] { return expr.DivScalar(e, v) }

// Neg returns the lazy element-wise negation of e.
func Neg[T array.Scalar](e Expr[T]) Expr[T] { return expr.Neg(e) }

// Abs returns the lazy element-wise absolute value of e.
func Abs[T array.Scalar](e Expr[T]) Expr[T] { return expr.Abs(e) }

// Math functions (float element types only)

// Exp returns the lazy element-wise exponential of e.
func Exp[T Float](e Expr[T]) Expr[T] { return expr.Exp(e) }

// Log returns the lazy element-wise natural logarithm of e.
func Log[T Float](e Expr[T]) Expr[T] { return expr.Log(e) }

// Sqrt returns the lazy element-wise square root of e.
func Sqrt[T Float](e Expr[T]) Expr[T] { return expr.Sqrt(e) }

// Rsqrt returns the lazy element-wise reciprocal square root of e.
func Rsqrt[T Float](e Expr[T]) Expr[T] { return expr.Rsqrt(e) }

// Cos returns the lazy element-wise cosine of e.
func Cos[T Float](e Expr[T]) Expr[T] { return expr.Cos(e) }

// Sin returns the lazy element-wise sine of e.
func Sin[T Float](e Expr[T]) Expr[T] { return expr.Sin(e) }

// Slice descriptors

// Index selects a single position along an axis and removes the axis from
// the view.
func Index(i int) Slice { return expr.Index(i) }

// Range selects the half-open interval [start, stop) with step 1. Either
// endpoint may be Placeholder; negative endpoints count back from the end of
// the axis.
func Range(start, stop int) Slice { return expr.Range(start, stop) }

// RangeStep selects [start, stop) walking by step. Negative steps walk the
// axis backwards.
func RangeStep(start, stop, step int) Slice { return expr.RangeStep(start, stop, step) }

// From selects from start through the end of the axis.
func From(start int) Slice { return expr.From(start) }

// To selects from the start of the axis up to stop (exclusive).
func To(stop int) Slice { return expr.To(stop) }

// Reverse selects the whole axis walked backwards.
func Reverse() Slice { return expr.Reverse() }

// All selects the whole axis unchanged.
func All() Slice { return expr.All() }

// NewAxis inserts an axis of extent 1 without consuming a base axis.
func NewAxis() Slice { return expr.NewAxis() }

// Keep selects exactly the named base indices in the order given. Indices
// may repeat.
func Keep(indices ...int) Slice { return expr.Keep(indices...) }

// Drop selects every base index except the named ones, which must be unique.
func Drop(indices ...int) Slice { return expr.Drop(indices...) }

// Views

// View builds a zero-copy slice of base from one descriptor per axis. Base
// axes past the last descriptor pass through unchanged; views nest freely.
//
// Example:
//
//	v := expr.View(e, expr.Range(1, 4), expr.Index(0))
func View[T array.Scalar](base Expr[T], slices ...Slice) Expr[T] {
	return expr.View(base, slices...)
}

// Transpose permutes the axes of e as a zero-copy view. With no axes given
// the order reverses completely.
func Transpose[T array.Scalar](e Expr[T], axes ...int) Expr[T] {
	return expr.Transpose(e, axes...)
}

// Squeeze removes an axis of extent 1 as a zero-copy view. Negative axes
// count from the end.
func Squeeze[T array.Scalar](e Expr[T], axis int) Expr[T] {
	return expr.Squeeze(e, axis)
}

// Unsqueeze inserts an axis of extent 1 before position axis as a zero-copy
// view.
func Unsqueeze[T array.Scalar](e Expr[T], axis int) Expr[T] {
	return expr.Unsqueeze(e, axis)
}

// BroadcastTo stretches e to a target shape as a zero-copy view. It panics
// with array.ErrBroadcast when e's shape does not stretch to exactly the
// target.
func BroadcastTo[T array.Scalar](e Expr[T], target array.Shape) Expr[T] {
	return expr.BroadcastTo(e, target)
}

// Evaluation

// At forces evaluation of a single element of e. Only the inputs that
// element depends on are read, and nothing is cached.
func At[T array.Scalar](e Expr[T], index ...int) T {
	return expr.At(e, index...)
}

// Rank returns the number of axes of e's result.
func Rank[T array.Scalar](e Expr[T]) int {
	return expr.Rank(e)
}

// Evaluate computes e into a container. Leaves and affine view chains over
// a leaf come back as the container itself or a borrowed window into it;
// everything else comes back as a fresh row-major container.
func Evaluate[T array.Scalar](e Expr[T]) *array.Array[T] {
	return expr.Evaluate(e)
}

// Materialize evaluates e into a fresh row-major container, copying even
// when e is a leaf.
func Materialize[T array.Scalar](e Expr[T]) *array.Array[T] {
	return expr.Materialize(e)
}

// Assignment

// Assign evaluates source into dest, resizing dest to the source's shape
// when they differ. Overlap between dest's storage and the source's leaves
// is detected and staged through a temporary, so expressions that read the
// destination stay consistent.
func Assign[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	return expr.Assign(dest, source)
}

// AssignNoAlias is Assign with the caller guaranteeing that dest's storage
// is not read anywhere in source; the overlap scan and the temporary are
// skipped.
func AssignNoAlias[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	return expr.AssignNoAlias(dest, source)
}

// Comparison

// ElementsEqual compares a and b element-wise over their broadcast shape,
// reducing to a single boolean. Shapes that cannot broadcast together
// compare unequal. This is the one comparison surface that evaluates
// eagerly.
func ElementsEqual[T array.Scalar](a, b Expr[T]) bool {
	return expr.ElementsEqual(a, b)
}

// ElementsNotEqual reports whether any element-wise pairing of a and b
// differs.
func ElementsNotEqual[T array.Scalar](a, b Expr[T]) bool {
	return expr.ElementsNotEqual(a, b)
}
