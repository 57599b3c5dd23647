package array

import "github.com/pkg/errors"

// Layout determines how a container derives strides from its shape.
type Layout int

// Supported storage layouts.
const (
	// RowMajor stores the last axis contiguously (C order).
	RowMajor Layout = iota
	// ColumnMajor stores the first axis contiguously (Fortran order).
	ColumnMajor
	// Strided carries caller-supplied strides verbatim. No canonical form
	// is required: overlapping, zero and negative strides are all legal.
	Strided
)

// String returns the string representation of the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}

// stridesFor derives canonical strides for shape. Only RowMajor and
// ColumnMajor have a canonical form; Strided strides come from the caller.
func (l Layout) stridesFor(shape Shape) []int {
	if l == ColumnMajor {
		return shape.ColumnMajorStrides()
	}
	return shape.ComputeStrides()
}

// Kind classifies how strictly a container's shape is locked. Reshape and
// resize consult the kind before touching the container.
type Kind int

// Shape locking levels.
const (
	// Dynamic containers accept any shape change.
	Dynamic Kind = iota
	// FixedRank containers accept shape changes that preserve the rank.
	FixedRank
	// FixedShape containers reject every shape change.
	FixedShape
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case FixedRank:
		return "fixed-rank"
	case FixedShape:
		return "fixed-shape"
	default:
		return "unknown"
	}
}

// allows reports whether a shape change from one shape to another is
// permitted under the kind's locking rule.
func (k Kind) allows(from, to Shape) error {
	switch k {
	case FixedShape:
		if !from.Equal(to) {
			return errors.Wrapf(ErrShapeMismatch, "container shape is locked to %v", from)
		}
	case FixedRank:
		if len(from) != len(to) {
			return errors.Wrapf(ErrShapeMismatch, "container rank is locked to %d, shape %v has rank %d", len(from), to, len(to))
		}
	}
	return nil
}
