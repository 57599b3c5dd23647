package expr

import (
	"math"

	"github.com/pkg/errors"

	"github.com/weft-nd/weft/internal/array"
)

// Placeholder marks an unspecified Range endpoint. An unspecified start
// resolves to the first index the step walks (0 forwards, the last index
// backwards); an unspecified stop resolves to one past the walk's end.
const Placeholder = math.MinInt

// Slice selects elements along one axis of a view. The descriptor set is
// closed: Index, Range and its variants, All, NewAxis, Keep and Drop. Every
// descriptor consumes one axis of the base except NewAxis, which consumes
// none; axes past the last descriptor are implicitly All.
type Slice interface {
	isSlice()
}

type indexSlice struct{ i int }

type rangeSlice struct{ start, stop, step int }

type allSlice struct{}

type newAxisSlice struct{}

type keepSlice struct{ indices []int }

type dropSlice struct{ indices []int }

func (indexSlice) isSlice()   {}
func (rangeSlice) isSlice()   {}
func (allSlice) isSlice()     {}
func (newAxisSlice) isSlice() {}
func (keepSlice) isSlice()    {}
func (dropSlice) isSlice()    {}

// Index selects a single position along an axis and removes the axis from
// the view, reducing the rank by one.
func Index(i int) Slice {
	return indexSlice{i: i}
}

// Range selects the half-open interval [start, stop) with step 1. Either
// endpoint may be Placeholder; negative endpoints count back from the end of
// the axis.
func Range(start, stop int) Slice {
	return rangeSlice{start: start, stop: stop, step: 1}
}

// RangeStep selects [start, stop) walking by step. Negative steps walk the
// axis backwards, in which case start should be the larger endpoint.
func RangeStep(start, stop, step int) Slice {
	return rangeSlice{start: start, stop: stop, step: step}
}

// From selects from start through the end of the axis.
func From(start int) Slice {
	return rangeSlice{start: start, stop: Placeholder, step: 1}
}

// To selects from the start of the axis up to stop (exclusive).
func To(stop int) Slice {
	return rangeSlice{start: Placeholder, stop: stop, step: 1}
}

// Reverse selects the whole axis walked backwards.
func Reverse() Slice {
	return rangeSlice{start: Placeholder, stop: Placeholder, step: -1}
}

// All selects the whole axis unchanged.
func All() Slice {
	return allSlice{}
}

// NewAxis inserts an axis of extent 1 without consuming a base axis.
func NewAxis() Slice {
	return newAxisSlice{}
}

// Keep selects exactly the named base indices in the order given. Indices
// may repeat; the axis extent becomes the index count.
func Keep(indices ...int) Slice {
	return keepSlice{indices: append([]int(nil), indices...)}
}

// Drop selects every base index except the named ones, which must be unique.
// The axis order is otherwise preserved.
func Drop(indices ...int) Slice {
	return dropSlice{indices: append([]int(nil), indices...)}
}

// resolve binds the range against an axis extent: placeholders and negative
// endpoints resolve, the stop clamps to the walkable interval, and the
// output extent is ceil((stop-start)/step).
func (r rangeSlice) resolve(extent int) (start, step, n int, err error) {
	if r.step == 0 {
		return 0, 0, 0, errors.Wrap(array.ErrInvalidRange, "step must be non-zero")
	}
	start = r.start
	switch {
	case start == Placeholder && r.step > 0:
		start = 0
	case start == Placeholder:
		start = extent - 1
	case start < 0:
		start += extent
	}
	stop := r.stop
	switch {
	case stop == Placeholder && r.step > 0:
		stop = extent
	case stop == Placeholder:
		stop = -1
	case stop < 0:
		stop += extent
	}
	if r.step > 0 && stop > extent {
		stop = extent
	}
	if r.step < 0 && stop < -1 {
		stop = -1
	}
	n = ceilDiv(stop-start, r.step)
	if n <= 0 {
		return 0, 0, 0, errors.Wrapf(array.ErrInvalidRange,
			"range [%d, %d) step %d selects nothing", start, stop, r.step)
	}
	if start < 0 || start >= extent {
		return 0, 0, 0, errors.Wrapf(array.ErrInvalidRange,
			"range start %d outside an axis of extent %d", start, extent)
	}
	return start, r.step, n, nil
}

// ceilDiv divides rounding away from zero. Operands share their sign for
// every non-empty range.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a%b > 0) == (b > 0) {
		q++
	}
	return q
}

// resolve expands the kept indices against an axis extent.
func (k keepSlice) resolve(extent int) ([]int, error) {
	table := make([]int, len(k.indices))
	for j, i := range k.indices {
		if i < 0 || i >= extent {
			return nil, errors.Wrapf(array.ErrIndexOutOfRange,
				"keep index %d out of bounds for an axis of extent %d", i, extent)
		}
		table[j] = i
	}
	return table, nil
}

// resolve expands the surviving indices against an axis extent.
func (d dropSlice) resolve(extent int) ([]int, error) {
	dropped := make(map[int]bool, len(d.indices))
	for _, i := range d.indices {
		if i < 0 || i >= extent {
			return nil, errors.Wrapf(array.ErrIndexOutOfRange,
				"drop index %d out of bounds for an axis of extent %d", i, extent)
		}
		if dropped[i] {
			return nil, errors.Wrapf(array.ErrInvalidRange, "drop index %d named twice", i)
		}
		dropped[i] = true
	}
	table := make([]int, 0, extent-len(d.indices))
	for i := 0; i < extent; i++ {
		if !dropped[i] {
			table = append(table, i)
		}
	}
	return table, nil
}
