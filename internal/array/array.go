package array

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// Array is a dense n-dimensional container over a flat buffer.
//
// Elements are addressed through an offset and per-axis strides, so an Array
// either owns freshly allocated storage or borrows a strided window into
// another Array's buffer. Containers are mutable: At and Set touch single
// elements, Fill overwrites all of them, and Reshape and Resize change the
// geometry subject to the container's Kind.
//
// Array is not safe for concurrent mutation.
type Array[T Scalar] struct {
	data    []T
	offset  int
	shape   Shape
	strides []int
	layout  Layout
	kind    Kind
}

// New creates a zero-initialized container with the given shape and optional
// layout (RowMajor when omitted). Use NewStrided for explicit strides.
func New[T Scalar](shape Shape, layout ...Layout) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	l := RowMajor
	if len(layout) > 0 {
		l = layout[0]
	}
	if l == Strided {
		return nil, errors.Wrap(ErrShapeMismatch, "strided layout needs explicit strides, use NewStrided")
	}
	return &Array[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: l.stridesFor(shape),
		layout:  l,
	}, nil
}

// NewStrided wraps an existing buffer with explicit geometry. The strides are
// taken verbatim and never re-derived, so overlapping, zero-stride and
// reversed windows are all legal. Every element the geometry can address must
// fall inside data.
func NewStrided[T Scalar](data []T, offset int, shape Shape, strides []int) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d strides for rank %d", len(strides), len(shape))
	}
	if shape.NumElements() > 0 {
		lo, hi := addressSpan(offset, shape, strides)
		if lo < 0 || hi > len(data) {
			return nil, errors.Wrapf(ErrIndexOutOfRange,
				"geometry addresses [%d, %d) outside a buffer of %d elements", lo, hi, len(data))
		}
	}
	return &Array[T]{
		data:    data,
		offset:  offset,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		layout:  Strided,
	}, nil
}

// addressSpan returns the half-open buffer range the geometry can address.
// Meaningless for empty shapes; callers check NumElements first.
func addressSpan(offset int, shape Shape, strides []int) (lo, hi int) {
	lo, hi = offset, offset
	for k, dim := range shape {
		reach := (dim - 1) * strides[k]
		if reach > 0 {
			hi += reach
		} else {
			lo += reach
		}
	}
	return lo, hi + 1
}

// Shape returns the container's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the container's per-axis strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Layout returns the container's storage layout.
func (a *Array[T]) Layout() Layout {
	return a.layout
}

// Kind returns the container's shape locking level.
func (a *Array[T]) Kind() Kind {
	return a.kind
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// DType returns the runtime data type of the elements.
func (a *Array[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// LockRank pins the container's rank: later reshapes and resizes must keep
// the same number of axes. Returns the container for chaining.
func (a *Array[T]) LockRank() *Array[T] {
	a.kind = FixedRank
	return a
}

// LockShape pins the container's shape entirely. Returns the container for
// chaining.
func (a *Array[T]) LockShape() *Array[T] {
	a.kind = FixedShape
	return a
}

// Data returns the backing buffer from the container's offset onward, without
// copying. Only canonical containers cover exactly their elements; borrowed
// strided windows may interleave with unrelated data, and windows with
// negative strides reach below the offset.
func (a *Array[T]) Data() []T {
	return a.data[a.offset:]
}

// At returns the element at the given multi-index.
// It panics with ErrIndexOutOfRange if the index does not fit the shape.
func (a *Array[T]) At(index ...int) T {
	return a.data[a.flatIndex(index)]
}

// Set stores value at the given multi-index.
// It panics with ErrIndexOutOfRange if the index does not fit the shape.
func (a *Array[T]) Set(value T, index ...int) {
	a.data[a.flatIndex(index)] = value
}

func (a *Array[T]) flatIndex(index []int) int {
	if len(index) != len(a.shape) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "expected %d indices, got %d", len(a.shape), len(index)))
	}
	flat := a.offset
	for k, i := range index {
		if i < 0 || i >= a.shape[k] {
			panic(errors.Wrapf(ErrIndexOutOfRange,
				"index %d out of bounds for axis %d with extent %d", i, k, a.shape[k]))
		}
		flat += i * a.strides[k]
	}
	return flat
}

// Item returns the value of a rank-0 container.
// It panics with ErrShapeMismatch if the container is not a scalar.
func (a *Array[T]) Item() T {
	if len(a.shape) != 0 {
		panic(errors.Wrapf(ErrShapeMismatch, "Item needs a scalar, got shape %v", a.shape))
	}
	return a.data[a.offset]
}

// Fill overwrites every element with value. The shape is untouched, which
// distinguishes Fill from assigning a scalar expression.
func (a *Array[T]) Fill(value T) {
	for _, index := range a.shape.Indices() {
		a.data[a.offset+dot(index, a.strides)] = value
	}
}

// dot folds a multi-index against strides. Callers guarantee bounds.
func dot(index, strides []int) int {
	flat := 0
	for k, i := range index {
		flat += i * strides[k]
	}
	return flat
}

// Reshape reinterprets the container under a new shape in place. The element
// count must match; one axis may be -1 and is inferred from the rest. The
// buffer is reused, so data round-trips bit for bit through reshapes.
//
// Only canonical containers can reshape: a Strided window has no linear
// order to reinterpret. The layout is kept and its strides re-derived.
func (a *Array[T]) Reshape(shape Shape) error {
	resolved, err := resolveReshape(a.shape.NumElements(), shape)
	if err != nil {
		return err
	}
	if a.layout == Strided {
		return errors.Wrap(ErrShapeMismatch, "cannot reshape a strided window, clone it first")
	}
	if err := a.kind.allows(a.shape, resolved); err != nil {
		return err
	}
	a.shape = resolved
	a.strides = a.layout.stridesFor(resolved)
	return nil
}

// Resize reallocates the container for a new shape. Contents are not
// preserved: every element of the resized container is zero. A Strided
// container becomes row-major, the canonical layouts are kept.
func (a *Array[T]) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if err := a.kind.allows(a.shape, shape); err != nil {
		return err
	}
	l := a.layout
	if l == Strided {
		l = RowMajor
	}
	a.data = make([]T, shape.NumElements())
	a.offset = 0
	a.shape = shape.Clone()
	a.strides = l.stridesFor(shape)
	a.layout = l
	return nil
}

// ResizeStrided reallocates the container for a new shape with explicit
// strides. Contents are not preserved. The buffer is sized to the span the
// geometry addresses, and the offset is chosen so negative strides stay in
// bounds.
func (a *Array[T]) ResizeStrided(shape Shape, strides []int) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if len(strides) != len(shape) {
		return errors.Wrapf(ErrShapeMismatch, "%d strides for rank %d", len(strides), len(shape))
	}
	if err := a.kind.allows(a.shape, shape); err != nil {
		return err
	}
	size, offset := 0, 0
	if shape.NumElements() > 0 {
		lo, hi := addressSpan(0, shape, strides)
		size, offset = hi-lo, -lo
	}
	a.data = make([]T, size)
	a.offset = offset
	a.shape = shape.Clone()
	a.strides = append([]int(nil), strides...)
	a.layout = Strided
	return nil
}

// Clone returns a deep copy owning fresh storage. Strided windows densify
// into row-major; canonical layouts are kept. The kind carries over.
func (a *Array[T]) Clone() *Array[T] {
	l := a.layout
	if l == Strided {
		l = RowMajor
	}
	out, err := New[T](a.shape, l)
	if err != nil {
		panic(err) // shape was validated at construction
	}
	for _, index := range a.shape.Indices() {
		out.data[dot(index, out.strides)] = a.data[a.offset+dot(index, a.strides)]
	}
	out.kind = a.kind
	return out
}

// SharesStorage reports whether the two containers' buffers overlap in
// memory. Borrowed windows into a common allocation are detected even when
// the windows are disjoint slices of it; the check is deliberately
// conservative.
func (a *Array[T]) SharesStorage(b *Array[T]) bool {
	if a == b {
		return true
	}
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	var elem T
	size := unsafe.Sizeof(elem)
	alo := uintptr(unsafe.Pointer(unsafe.SliceData(a.data)))
	ahi := alo + uintptr(len(a.data))*size
	blo := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	bhi := blo + uintptr(len(b.data))*size
	return alo < bhi && blo < ahi
}

// Window returns a borrowed container sharing a's buffer, addressed at a's
// offset displaced by delta, with the given shape and strides. The window is
// validated against the buffer like NewStrided.
func (a *Array[T]) Window(delta int, shape Shape, strides []int) (*Array[T], error) {
	return NewStrided(a.data, a.offset+delta, shape, strides)
}

// String returns a human-readable summary of the container.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v %s", a.DType(), a.shape, a.layout)
}
