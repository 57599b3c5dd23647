package array

import (
	"iter"

	"github.com/pkg/errors"
)

// Shape represents the per-axis extents of a container.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is well formed. Zero extents are legal and
// describe empty containers; negative extents are not.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShapeMismatch, "axis %d has negative extent %d", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// ComputeStrides computes row-major strides for the shape.
// The last axis varies fastest.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ColumnMajorStrides computes column-major strides for the shape.
// The first axis varies fastest.
func (s Shape) ColumnMajorStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// Indices iterates over every multi-index of the shape in row-major order,
// yielding the flat position and the index. The yielded slice is reused
// between iterations; callers must not retain it.
//
// A rank-0 shape yields the single empty index. A shape with a zero extent
// yields nothing.
func (s Shape) Indices() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		for _, dim := range s {
			if dim <= 0 {
				return
			}
		}
		index := make([]int, len(s))
		flat := 0
		for {
			if !yield(flat, index) {
				return
			}
			flat++
			axis := len(s) - 1
			for ; axis >= 0; axis-- {
				index[axis]++
				if index[axis] < s[axis] {
					break
				}
				index[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// resolveReshape resolves a requested shape against an element count. At most
// one axis may be -1; its extent is inferred from the remaining axes.
func resolveReshape(total int, want Shape) (Shape, error) {
	out := want.Clone()
	infer := -1
	known := 1
	for i, dim := range want {
		switch {
		case dim == -1:
			if infer >= 0 {
				return nil, errors.Wrapf(ErrInvalidReshapeArity, "more than one inferred axis in %v", want)
			}
			infer = i
		case dim < 0:
			return nil, errors.Wrapf(ErrShapeMismatch, "axis %d has negative extent %d", i, dim)
		default:
			known *= dim
		}
	}
	if infer >= 0 {
		if known == 0 || total%known != 0 {
			return nil, errors.Wrapf(ErrInvalidReshapeArity, "cannot infer axis %d: %d elements do not divide into %v", infer, total, want)
		}
		out[infer] = total / known
	}
	if out.NumElements() != total {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v holds %d elements, want %d", out, out.NumElements(), total)
	}
	return out, nil
}
