package expr

import (
	"github.com/pkg/errors"

	"github.com/weft-nd/weft/internal/array"
)

// viewNode reinterprets its base through per-axis index translation. Views
// never copy: every read maps the view index to a base index and descends.
type viewNode[T array.Scalar] struct {
	base     Expr[T]
	baseRank int
	shape    array.Shape
	rules    []axisRule
	pins     []pin
}

// axisRule maps one output axis of a view back to an axis of its base.
// A nil table makes the rule affine: base index = offset + step*i. A non-nil
// table overrides that with an explicit lookup. base -1 marks an inserted
// axis that reads no base axis at all.
type axisRule struct {
	base   int
	extent int
	offset int
	step   int
	table  []int
}

// pin fixes one base axis to a single index, removing it from the output.
type pin struct {
	axis  int
	index int
}

// View builds a zero-copy slice of base from one descriptor per axis.
// Base axes past the last descriptor pass through unchanged. Views nest
// freely: slicing a view composes the index translations.
//
// It panics when the descriptor list is invalid: ErrShapeMismatch when the
// descriptors consume more axes than the base has, ErrIndexOutOfRange for
// out-of-bounds Index, Keep and Drop positions, and ErrInvalidRange for
// zero-step, empty or otherwise malformed ranges and duplicate drops.
func View[T array.Scalar](base Expr[T], slices ...Slice) Expr[T] {
	v, err := buildView(base, slices)
	if err != nil {
		panic(err)
	}
	return v
}

func buildView[T array.Scalar](base Expr[T], slices []Slice) (*viewNode[T], error) {
	baseShape := base.Shape()
	consumed := 0
	for _, s := range slices {
		if _, ok := s.(newAxisSlice); !ok {
			consumed++
		}
	}
	if consumed > len(baseShape) {
		return nil, errors.Wrapf(array.ErrShapeMismatch,
			"descriptors consume %d axes of a rank-%d base", consumed, len(baseShape))
	}

	v := &viewNode[T]{base: base, baseRank: len(baseShape)}
	axis := 0
	for _, s := range slices {
		if _, ok := s.(newAxisSlice); ok {
			v.rules = append(v.rules, axisRule{base: -1, extent: 1})
			continue
		}
		extent := baseShape[axis]
		switch s := s.(type) {
		case indexSlice:
			if s.i < 0 || s.i >= extent {
				return nil, errors.Wrapf(array.ErrIndexOutOfRange,
					"index %d out of bounds for axis %d with extent %d", s.i, axis, extent)
			}
			v.pins = append(v.pins, pin{axis: axis, index: s.i})
		case allSlice:
			v.rules = append(v.rules, axisRule{base: axis, extent: extent, step: 1})
		case rangeSlice:
			start, step, n, err := s.resolve(extent)
			if err != nil {
				return nil, errors.Wrapf(err, "axis %d", axis)
			}
			v.rules = append(v.rules, axisRule{base: axis, extent: n, offset: start, step: step})
		case keepSlice:
			table, err := s.resolve(extent)
			if err != nil {
				return nil, errors.Wrapf(err, "axis %d", axis)
			}
			v.rules = append(v.rules, axisRule{base: axis, extent: len(table), table: table})
		case dropSlice:
			table, err := s.resolve(extent)
			if err != nil {
				return nil, errors.Wrapf(err, "axis %d", axis)
			}
			v.rules = append(v.rules, axisRule{base: axis, extent: len(table), table: table})
		}
		axis++
	}
	for ; axis < len(baseShape); axis++ {
		v.rules = append(v.rules, axisRule{base: axis, extent: baseShape[axis], step: 1})
	}
	v.finish()
	return v, nil
}

// finish derives the output shape from the axis rules.
func (v *viewNode[T]) finish() {
	v.shape = make(array.Shape, len(v.rules))
	for j, r := range v.rules {
		v.shape[j] = r.extent
	}
}

func (v *viewNode[T]) Shape() array.Shape {
	return v.shape
}

func (v *viewNode[T]) value(index []int) T {
	baseIndex := make([]int, v.baseRank)
	for _, p := range v.pins {
		baseIndex[p.axis] = p.index
	}
	for j, r := range v.rules {
		switch {
		case r.base < 0:
		case r.table != nil:
			baseIndex[r.base] = r.table[index[j]]
		default:
			baseIndex[r.base] = r.offset + r.step*index[j]
		}
	}
	return v.base.value(baseIndex)
}

func (v *viewNode[T]) forEachLeaf(fn func(*array.Array[T]) bool) bool {
	return v.base.forEachLeaf(fn)
}

// Transpose permutes the axes of e as a zero-copy view. With no axes given
// the order reverses completely; otherwise axes must name every base axis
// exactly once, and output axis j reads base axis axes[j].
func Transpose[T array.Scalar](e Expr[T], axes ...int) Expr[T] {
	shape := e.Shape()
	rank := len(shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for j := range axes {
			axes[j] = rank - 1 - j
		}
	}
	if len(axes) != rank {
		panic(errors.Wrapf(array.ErrShapeMismatch, "transpose needs %d axes, got %d", rank, len(axes)))
	}
	v := &viewNode[T]{base: e, baseRank: rank}
	seen := make([]bool, rank)
	for _, a := range axes {
		if a < 0 || a >= rank {
			panic(errors.Wrapf(array.ErrIndexOutOfRange, "transpose axis %d out of bounds for rank %d", a, rank))
		}
		if seen[a] {
			panic(errors.Wrapf(array.ErrShapeMismatch, "transpose axis %d named twice", a))
		}
		seen[a] = true
		v.rules = append(v.rules, axisRule{base: a, extent: shape[a], step: 1})
	}
	v.finish()
	return v
}

// Squeeze removes an axis of extent 1 as a zero-copy view. Negative axes
// count from the end. It panics with ErrShapeMismatch when the axis extent
// is not 1.
func Squeeze[T array.Scalar](e Expr[T], axis int) Expr[T] {
	shape := e.Shape()
	axis = normalizeAxis(axis, len(shape))
	if shape[axis] != 1 {
		panic(errors.Wrapf(array.ErrShapeMismatch, "cannot squeeze axis %d with extent %d", axis, shape[axis]))
	}
	v := &viewNode[T]{base: e, baseRank: len(shape), pins: []pin{{axis: axis}}}
	for k, dim := range shape {
		if k == axis {
			continue
		}
		v.rules = append(v.rules, axisRule{base: k, extent: dim, step: 1})
	}
	v.finish()
	return v
}

// Unsqueeze inserts an axis of extent 1 before position axis as a zero-copy
// view. axis may equal the rank to append; negative axes count from the end
// of the result.
func Unsqueeze[T array.Scalar](e Expr[T], axis int) Expr[T] {
	shape := e.Shape()
	axis = normalizeAxis(axis, len(shape)+1)
	v := &viewNode[T]{base: e, baseRank: len(shape)}
	for k := 0; k <= len(shape); k++ {
		if k == axis {
			v.rules = append(v.rules, axisRule{base: -1, extent: 1})
		}
		if k < len(shape) {
			v.rules = append(v.rules, axisRule{base: k, extent: shape[k], step: 1})
		}
	}
	v.finish()
	return v
}

// normalizeAxis resolves a possibly negative axis against rank. It panics
// with ErrIndexOutOfRange when the axis falls outside [0, rank).
func normalizeAxis(axis, rank int) int {
	resolved := axis
	if resolved < 0 {
		resolved += rank
	}
	if resolved < 0 || resolved >= rank {
		panic(errors.Wrapf(array.ErrIndexOutOfRange, "axis %d out of bounds for rank %d", axis, rank))
	}
	return resolved
}

// BroadcastTo stretches e to a target shape as a zero-copy view: size-1 axes
// repeat by always reading base index 0, and missing leading axes are
// inserted. It panics with ErrBroadcast when e's shape does not stretch to
// exactly the target.
func BroadcastTo[T array.Scalar](e Expr[T], target array.Shape) Expr[T] {
	shape := e.Shape()
	common, err := array.Broadcast(shape, target)
	if err != nil {
		panic(err)
	}
	if !common.Equal(target) {
		panic(errors.Wrapf(array.ErrBroadcast, "cannot broadcast %v down to %v", shape, target))
	}
	v := &viewNode[T]{base: e, baseRank: len(shape)}
	off := len(target) - len(shape)
	for j, dim := range target {
		k := j - off
		switch {
		case k < 0:
			v.rules = append(v.rules, axisRule{base: -1, extent: dim})
		case shape[k] == dim:
			v.rules = append(v.rules, axisRule{base: k, extent: dim, step: 1})
		default:
			// A stretched size-1 axis reads base index 0 throughout.
			v.rules = append(v.rules, axisRule{base: k, extent: dim})
		}
	}
	v.finish()
	return v
}
