package expr

import "github.com/weft-nd/weft/internal/array"

// binaryNode applies fn element-wise over the broadcast of its operands.
// The output shape and the per-operand index selectors are fixed at
// construction; fn runs once per element read, never at build time.
type binaryNode[T array.Scalar] struct {
	left, right Expr[T]
	fn          func(T, T) T
	shape       array.Shape
	lsel, rsel  []int
}

// Binary builds a lazy element-wise node applying fn over the broadcast of
// l and r. It panics with ErrBroadcast when the operand shapes cannot be
// reconciled.
func Binary[T array.Scalar](l, r Expr[T], fn func(a, b T) T) Expr[T] {
	ls, rs := l.Shape(), r.Shape()
	shape, err := array.Broadcast(ls, rs)
	if err != nil {
		panic(err)
	}
	return &binaryNode[T]{
		left:  l,
		right: r,
		fn:    fn,
		shape: shape,
		lsel:  array.BroadcastSelectors(ls, shape),
		rsel:  array.BroadcastSelectors(rs, shape),
	}
}

func (b *binaryNode[T]) Shape() array.Shape {
	return b.shape
}

func (b *binaryNode[T]) value(index []int) T {
	return b.fn(b.left.value(translate(index, b.lsel)), b.right.value(translate(index, b.rsel)))
}

// translate maps an output index to an operand index: trailing-axis aligned,
// multiplied by the stride-or-zero selectors so stretched axes pin to 0.
func translate(index, sel []int) []int {
	operand := make([]int, len(sel))
	off := len(index) - len(sel)
	for k, m := range sel {
		operand[k] = index[off+k] * m
	}
	return operand
}

func (b *binaryNode[T]) forEachLeaf(fn func(*array.Array[T]) bool) bool {
	return b.left.forEachLeaf(fn) && b.right.forEachLeaf(fn)
}

// Add returns the lazy element-wise sum of l and r.
func Add[T array.Scalar](l, r Expr[T]) Expr[T] {
	return Binary(l, r, func(a, b T) T { return a + b })
}

// Sub returns the lazy element-wise difference of l and r.
func Sub[T array.Scalar](l, r Expr[T]) Expr[T] {
	return Binary(l, r, func(a, b T) T { return a - b })
}

// Mul returns the lazy element-wise product of l and r.
func Mul[T array.Scalar](l, r Expr[T]) Expr[T] {
	return Binary(l, r, func(a, b T) T { return a * b })
}

// Div returns the lazy element-wise quotient of l and r. Integer operands
// divide like Go integers.
func Div[T array.Scalar](l, r Expr[T]) Expr[T] {
	return Binary(l, r, func(a, b T) T { return a / b })
}

// AddScalar returns the lazy element-wise sum of e and a bare value.
func AddScalar[T array.Scalar](e Expr[T], v T) Expr[T] {
	return Add(e, Scalar(v))
}

// SubScalar returns the lazy element-wise difference of e and a bare value.
func SubScalar[T array.Scalar](e Expr[T], v T) Expr[T] {
	return Sub(e, Scalar(v))
}

// MulScalar returns the lazy element-wise product of e and a bare value.
func MulScalar[T array.Scalar](e Expr[T], v T) Expr[T] {
	return Mul(e, Scalar(v))
}

// DivScalar returns the lazy element-wise quotient of e and a bare value.
func DivScalar[T array.Scalar](e Expr[T], v T) Expr[T] {
	return Div(e, Scalar(v))
}
