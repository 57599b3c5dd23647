// Package expr implements the lazy expression engine for the weft library:
// element-wise graphs over containers that evaluate per element on demand.
//
// Nothing computes at construction time. Building a node records shapes and
// operand references; every element access walks the graph recursively and
// recomputes from the leaves, with no caching. Reads observe the current
// contents of the leaf containers, so mutating a container after building an
// expression changes what the expression evaluates to.
//
// Reads (value walks, At, Evaluate, ElementsEqual) are safe to run
// concurrently as long as no leaf container is mutated at the same time.
// Mutators (Reshape, Resize, Fill, Assign) require external exclusive
// access; the package performs no internal synchronization.
//
// This is an internal package. Users should import the public facade:
//
//	import "github.com/weft-nd/weft/expr"
package expr

import "github.com/weft-nd/weft/internal/array"

// Expr is an unevaluated description of an element-wise computation. The
// node set is closed: container leaves, scalar constants, unary and binary
// applications, and views. Expressions compose freely and are immutable once
// built; they hold non-owning references to their leaf containers, which must
// outlive them.
type Expr[T array.Scalar] interface {
	// Shape returns the node's output shape. Operator nodes compute it once
	// from their operands at construction; leaves report the container's
	// current shape.
	Shape() array.Shape

	// value returns the element at index. The index length equals the
	// node's rank and every entry is in bounds; the public entry points
	// validate before descending.
	value(index []int) T

	// forEachLeaf visits every container reachable from the node, in
	// operand order, with repeats. fn returning false stops the walk;
	// forEachLeaf reports whether the walk ran to completion.
	forEachLeaf(fn func(*array.Array[T]) bool) bool
}

// leaf adapts a container into the graph by reference.
type leaf[T array.Scalar] struct {
	arr *array.Array[T]
}

// Leaf lifts a container into an expression. The expression reads the
// container's live contents at evaluation time, not a snapshot.
func Leaf[T array.Scalar](a *array.Array[T]) Expr[T] {
	return &leaf[T]{arr: a}
}

func (l *leaf[T]) Shape() array.Shape {
	return l.arr.Shape()
}

func (l *leaf[T]) value(index []int) T {
	return l.arr.At(index...)
}

func (l *leaf[T]) forEachLeaf(fn func(*array.Array[T]) bool) bool {
	return fn(l.arr)
}

// constant is a rank-0 node holding a bare value.
type constant[T array.Scalar] struct {
	v T
}

// Scalar wraps a bare value as a rank-0 expression. Combined with any other
// operand it broadcasts across every axis.
func Scalar[T array.Scalar](v T) Expr[T] {
	return constant[T]{v: v}
}

func (c constant[T]) Shape() array.Shape {
	return array.Shape{}
}

func (c constant[T]) value([]int) T {
	return c.v
}

func (c constant[T]) forEachLeaf(func(*array.Array[T]) bool) bool {
	return true
}

// Rank returns the number of axes of e's result.
func Rank[T array.Scalar](e Expr[T]) int {
	return len(e.Shape())
}
