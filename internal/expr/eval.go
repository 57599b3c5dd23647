package expr

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/weft-nd/weft/internal/array"
)

// At forces evaluation of a single element of e. Only the inputs that
// element depends on are read; nothing is cached, so a second call recomputes
// from the leaves. It panics with ErrIndexOutOfRange when the index does not
// fit e's shape.
func At[T array.Scalar](e Expr[T], index ...int) T {
	shape := e.Shape()
	if len(index) != len(shape) {
		panic(errors.Wrapf(array.ErrIndexOutOfRange, "expected %d indices, got %d", len(shape), len(index)))
	}
	for k, i := range index {
		if i < 0 || i >= shape[k] {
			panic(errors.Wrapf(array.ErrIndexOutOfRange,
				"index %d out of bounds for axis %d with extent %d", i, k, shape[k]))
		}
	}
	return e.value(index)
}

// Evaluate computes e into a container.
//
// When e is already materialized it costs nothing: a leaf evaluates to its
// own container, and a chain of affine views over a leaf (Index, Range, All,
// NewAxis, Transpose, Squeeze, Unsqueeze, BroadcastTo) evaluates to a window
// borrowing the leaf's storage. Mutations on a borrowed result write through
// to the underlying container. Everything else, including Keep and Drop
// views, evaluates into a fresh row-major container that owns its storage.
//
// Use Materialize when the caller needs an owning copy unconditionally.
func Evaluate[T array.Scalar](e Expr[T]) *array.Array[T] {
	if a, ok := borrow(e); ok {
		klog.V(3).Infof("evaluate: borrowing storage for shape %v", a.Shape())
		return a
	}
	return Materialize(e)
}

// Materialize evaluates e element by element into a fresh row-major
// container, copying even when e is a leaf.
func Materialize[T array.Scalar](e Expr[T]) *array.Array[T] {
	shape := e.Shape()
	out := array.Zeros[T](shape)
	data := out.Data()
	for flat, index := range shape.Indices() {
		data[flat] = e.value(index)
	}
	return out
}

// borrow resolves e to existing container storage when e is a leaf or a
// chain of affine views over one. Keep and Drop views translate through a
// lookup table, not an affine map, so they fail the resolution and the
// caller falls back to materializing.
func borrow[T array.Scalar](e Expr[T]) (*array.Array[T], bool) {
	switch n := e.(type) {
	case *leaf[T]:
		return n.arr, true
	case *viewNode[T]:
		base, ok := borrow(n.base)
		if !ok {
			return nil, false
		}
		baseStrides := base.Strides()
		delta := 0
		for _, p := range n.pins {
			delta += p.index * baseStrides[p.axis]
		}
		strides := make([]int, len(n.rules))
		for j, r := range n.rules {
			if r.table != nil {
				return nil, false
			}
			if r.base < 0 {
				continue
			}
			delta += r.offset * baseStrides[r.base]
			strides[j] = r.step * baseStrides[r.base]
		}
		w, err := base.Window(delta, n.shape, strides)
		if err != nil {
			return nil, false
		}
		return w, true
	default:
		return nil, false
	}
}
