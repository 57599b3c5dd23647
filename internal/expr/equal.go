package expr

import "github.com/weft-nd/weft/internal/array"

// ElementsEqual compares a and b element-wise over their broadcast shape and
// reduces to a single boolean: true only when every pairing matches. Shapes
// that cannot broadcast together compare unequal rather than failing. This
// is the one comparison surface that evaluates eagerly.
func ElementsEqual[T array.Scalar](a, b Expr[T]) bool {
	common, err := array.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		return false
	}
	wa := BroadcastTo(a, common)
	wb := BroadcastTo(b, common)
	for _, index := range common.Indices() {
		if wa.value(index) != wb.value(index) {
			return false
		}
	}
	return true
}

// ElementsNotEqual reports whether any element-wise pairing of a and b
// differs, including when the shapes cannot broadcast together.
func ElementsNotEqual[T array.Scalar](a, b Expr[T]) bool {
	return !ElementsEqual(a, b)
}
