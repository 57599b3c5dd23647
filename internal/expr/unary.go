package expr

import (
	"math"

	"github.com/weft-nd/weft/internal/array"
)

// unaryNode applies fn element-wise to its operand. The shape is the
// operand's shape, fixed at construction.
type unaryNode[T array.Scalar] struct {
	operand Expr[T]
	fn      func(T) T
	shape   array.Shape
}

// Unary builds a lazy element-wise node applying fn to every element of e.
func Unary[T array.Scalar](e Expr[T], fn func(v T) T) Expr[T] {
	return &unaryNode[T]{operand: e, fn: fn, shape: e.Shape()}
}

func (u *unaryNode[T]) Shape() array.Shape {
	return u.shape
}

func (u *unaryNode[T]) value(index []int) T {
	return u.fn(u.operand.value(index))
}

func (u *unaryNode[T]) forEachLeaf(fn func(*array.Array[T]) bool) bool {
	return u.operand.forEachLeaf(fn)
}

// Neg returns the lazy element-wise negation of e.
func Neg[T array.Scalar](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return -v })
}

// Abs returns the lazy element-wise absolute value of e.
func Abs[T array.Scalar](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Float constrains the element types the math bindings below accept.
type Float interface {
	~float32 | ~float64
}

// Exp returns the lazy element-wise exponential of e.
func Exp[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(math.Exp(float64(v))) })
}

// Log returns the lazy element-wise natural logarithm of e.
func Log[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(math.Log(float64(v))) })
}

// Sqrt returns the lazy element-wise square root of e.
func Sqrt[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(math.Sqrt(float64(v))) })
}

// Rsqrt returns the lazy element-wise reciprocal square root of e.
func Rsqrt[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(1 / math.Sqrt(float64(v))) })
}

// Cos returns the lazy element-wise cosine of e.
func Cos[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(math.Cos(float64(v))) })
}

// Sin returns the lazy element-wise sine of e.
func Sin[T Float](e Expr[T]) Expr[T] {
	return Unary(e, func(v T) T { return T(math.Sin(float64(v))) })
}
