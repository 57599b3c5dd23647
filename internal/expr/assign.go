package expr

import (
	"k8s.io/klog/v2"

	"github.com/weft-nd/weft/internal/array"
)

// Assign evaluates source into dest, resizing dest to the source's shape
// when they differ. Assigning is aliasing-safe: when dest's storage is
// readable anywhere in source, the source is materialized into a temporary
// before dest is touched, so expressions like b = a + b read consistent
// state. When the destination's kind rejects the shape change, dest is left
// untouched and the error reports the mismatch.
//
// A source that merely matches dest's shape does not resize; assigning into
// a borrowed window writes through it.
func Assign[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	if aliases(dest, source) {
		klog.V(2).Infof("assign: source reads destination storage, staging through a copy")
		return assignStaged(dest, source)
	}
	return assignDirect(dest, source)
}

// AssignNoAlias is Assign with the caller guaranteeing that dest's storage
// is not read anywhere in source. The overlap scan and the temporary are
// skipped. Violating the guarantee makes reads observe partially written
// state.
func AssignNoAlias[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	return assignDirect(dest, source)
}

func assignDirect[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	shape := source.Shape()
	if err := resizeTo(dest, shape); err != nil {
		return err
	}
	for _, index := range shape.Indices() {
		dest.Set(source.value(index), index...)
	}
	return nil
}

func assignStaged[T array.Scalar](dest *array.Array[T], source Expr[T]) error {
	staged := Materialize(source)
	if err := resizeTo(dest, staged.Shape()); err != nil {
		return err
	}
	for _, index := range staged.Shape().Indices() {
		dest.Set(staged.At(index...), index...)
	}
	return nil
}

func resizeTo[T array.Scalar](dest *array.Array[T], shape array.Shape) error {
	if dest.Shape().Equal(shape) {
		return nil
	}
	return dest.Resize(shape)
}

// aliases reports whether dest's storage overlaps any leaf container
// reachable from source. The check is conservative: any buffer overlap
// counts, not only identical windows.
func aliases[T array.Scalar](dest *array.Array[T], source Expr[T]) bool {
	clean := source.forEachLeaf(func(l *array.Array[T]) bool {
		return !l.SharesStorage(dest)
	})
	return !clean
}
