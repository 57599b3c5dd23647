package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-nd/weft/internal/array"
)

func arange(t *testing.T, n int) *array.Array[int32] {
	t.Helper()
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}
	a, err := array.FromSlice(data, array.Shape{n})
	require.NoError(t, err)
	return a
}

// arange2D returns a rows-by-cols container holding 0..rows*cols-1 row-major.
func arange2D(t *testing.T, rows, cols int) *array.Array[int32] {
	t.Helper()
	a := arange(t, rows*cols)
	require.NoError(t, a.Reshape(array.Shape{rows, cols}))
	return a
}

func TestViewRange(t *testing.T) {
	a := arange(t, 10)

	v := View(Leaf(a), Range(2, 7))
	require.True(t, array.Shape{5}.Equal(v.Shape()))
	for i := 0; i < 5; i++ {
		assert.Equal(t, int32(i+2), At(v, i))
	}
}

func TestViewRangeStep(t *testing.T) {
	a := arange(t, 10)

	v := View(Leaf(a), RangeStep(1, 8, 3))
	require.True(t, array.Shape{3}.Equal(v.Shape()))
	assert.Equal(t, int32(1), At(v, 0))
	assert.Equal(t, int32(4), At(v, 1))
	assert.Equal(t, int32(7), At(v, 2))
}

func TestViewRangeNegativeStep(t *testing.T) {
	a := arange(t, 5)

	v := View(Leaf(a), Reverse())
	require.True(t, array.Shape{5}.Equal(v.Shape()))
	for i := 0; i < 5; i++ {
		assert.Equal(t, int32(4-i), At(v, i))
	}
}

func TestViewRangePlaceholders(t *testing.T) {
	a := arange(t, 8)

	t.Run("from", func(t *testing.T) {
		v := View(Leaf(a), From(5))
		require.True(t, array.Shape{3}.Equal(v.Shape()))
		assert.Equal(t, int32(5), At(v, 0))
		assert.Equal(t, int32(7), At(v, 2))
	})

	t.Run("to", func(t *testing.T) {
		v := View(Leaf(a), To(3))
		require.True(t, array.Shape{3}.Equal(v.Shape()))
		assert.Equal(t, int32(0), At(v, 0))
		assert.Equal(t, int32(2), At(v, 2))
	})

	t.Run("negative endpoints count from the end", func(t *testing.T) {
		v := View(Leaf(a), Range(-3, -1))
		require.True(t, array.Shape{2}.Equal(v.Shape()))
		assert.Equal(t, int32(5), At(v, 0))
		assert.Equal(t, int32(6), At(v, 1))
	})

	t.Run("stop clamps to the extent", func(t *testing.T) {
		v := View(Leaf(a), Range(6, 100))
		require.True(t, array.Shape{2}.Equal(v.Shape()))
		assert.Equal(t, int32(6), At(v, 0))
		assert.Equal(t, int32(7), At(v, 1))
	})
}

func TestViewIndexReducesRank(t *testing.T) {
	a := arange2D(t, 3, 4)

	row := View(Leaf(a), Index(1))
	require.True(t, array.Shape{4}.Equal(row.Shape()))
	for j := 0; j < 4; j++ {
		assert.Equal(t, int32(4+j), At(row, j))
	}

	cell := View(Leaf(a), Index(2), Index(3))
	require.Equal(t, 0, Rank(cell))
	assert.Equal(t, int32(11), At(cell))
}

func TestViewNewAxis(t *testing.T) {
	a := arange(t, 3)

	v := View(Leaf(a), NewAxis(), All(), NewAxis())
	require.True(t, array.Shape{1, 3, 1}.Equal(v.Shape()))
	assert.Equal(t, int32(2), At(v, 0, 2, 0))
}

func TestViewTrailingAxesPassThrough(t *testing.T) {
	a := arange2D(t, 3, 4)

	v := View(Leaf(a), Range(1, 3))
	require.True(t, array.Shape{2, 4}.Equal(v.Shape()))
	assert.Equal(t, int32(4), At(v, 0, 0))
	assert.Equal(t, int32(11), At(v, 1, 3))
}

func TestViewKeep(t *testing.T) {
	a := arange(t, 6)

	v := View(Leaf(a), Keep(4, 0, 4))
	require.True(t, array.Shape{3}.Equal(v.Shape()))
	assert.Equal(t, int32(4), At(v, 0))
	assert.Equal(t, int32(0), At(v, 1))
	assert.Equal(t, int32(4), At(v, 2))
}

func TestViewDrop(t *testing.T) {
	a := arange(t, 6)

	v := View(Leaf(a), Drop(1, 4))
	require.True(t, array.Shape{4}.Equal(v.Shape()))
	expected := []int32{0, 2, 3, 5}
	for i, want := range expected {
		assert.Equal(t, want, At(v, i))
	}
}

// TestViewKeepDropDuality checks that dropping a set and keeping its
// complement select the same elements.
func TestViewKeepDropDuality(t *testing.T) {
	a := arange(t, 7)

	kept := View(Leaf(a), Keep(0, 2, 3, 6))
	dropped := View(Leaf(a), Drop(1, 4, 5))

	require.True(t, kept.Shape().Equal(dropped.Shape()))
	assert.True(t, ElementsEqual(kept, dropped))
}

// TestViewComposition checks that a view of a view composes translations:
// rows 1.. of a, then row 1 of that, lands on row 2 of a.
func TestViewComposition(t *testing.T) {
	a := arange2D(t, 4, 3)

	outer := View(Leaf(a), From(1))
	inner := View(outer, Index(1))

	require.True(t, array.Shape{3}.Equal(inner.Shape()))
	for j := 0; j < 3; j++ {
		assert.Equal(t, a.At(2, j), At(inner, j))
	}
}

func TestViewComposedRangesAddOffsets(t *testing.T) {
	a := arange(t, 12)

	outer := View(Leaf(a), Range(1, 9))
	inner := View(outer, RangeStep(1, 8, 2))

	direct := View(Leaf(a), RangeStep(2, 10, 2))
	require.True(t, direct.Shape().Equal(inner.Shape()))
	assert.True(t, ElementsEqual(inner, direct))
}

func TestViewOverExpression(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	b := fromSlice(t, []float32{10, 10, 10}, array.Shape{3})

	f := View(Add(Leaf(a), Leaf(b)), Index(1), Range(1, 3))
	require.True(t, array.Shape{2}.Equal(f.Shape()))
	assert.InDelta(t, 15, At(f, 0), 1e-6)
	assert.InDelta(t, 16, At(f, 1), 1e-6)
}

func TestViewErrors(t *testing.T) {
	a := arange2D(t, 3, 4)

	t.Run("too many descriptors", func(t *testing.T) {
		requirePanicsIs(t, array.ErrShapeMismatch, func() {
			View(Leaf(a), All(), All(), All())
		})
	})

	t.Run("new axes do not consume", func(t *testing.T) {
		v := View(Leaf(a), NewAxis(), All(), All(), NewAxis())
		require.True(t, array.Shape{1, 3, 4, 1}.Equal(v.Shape()))
	})

	t.Run("index out of range", func(t *testing.T) {
		requirePanicsIs(t, array.ErrIndexOutOfRange, func() {
			View(Leaf(a), Index(3))
		})
	})

	t.Run("index out of range on empty axis", func(t *testing.T) {
		empty := array.Zeros[int32](array.Shape{0})
		requirePanicsIs(t, array.ErrIndexOutOfRange, func() {
			View(Leaf(empty), Index(0))
		})
	})

	t.Run("zero step", func(t *testing.T) {
		requirePanicsIs(t, array.ErrInvalidRange, func() {
			View(Leaf(a), RangeStep(0, 2, 0))
		})
	})

	t.Run("empty range", func(t *testing.T) {
		requirePanicsIs(t, array.ErrInvalidRange, func() {
			View(Leaf(a), Range(2, 2))
		})
	})

	t.Run("inverted range", func(t *testing.T) {
		requirePanicsIs(t, array.ErrInvalidRange, func() {
			View(Leaf(a), Range(2, 1))
		})
	})

	t.Run("keep out of range", func(t *testing.T) {
		requirePanicsIs(t, array.ErrIndexOutOfRange, func() {
			View(Leaf(a), Keep(0, 3))
		})
	})

	t.Run("duplicate drop", func(t *testing.T) {
		requirePanicsIs(t, array.ErrInvalidRange, func() {
			View(Leaf(a), Drop(1, 1))
		})
	})

	t.Run("duplicate keep is allowed", func(t *testing.T) {
		v := View(Leaf(a), Keep(1, 1))
		require.True(t, array.Shape{2, 4}.Equal(v.Shape()))
	})
}

// Derived View Tests

func TestTranspose(t *testing.T) {
	a := arange2D(t, 2, 3)

	v := Transpose(Leaf(a))
	require.True(t, array.Shape{3, 2}.Equal(v.Shape()))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j), At(v, j, i))
		}
	}
}

func TestTransposeExplicitAxes(t *testing.T) {
	a := array.Zeros[float32](array.Shape{2, 3, 4})

	v := Transpose(Leaf(a), 1, 2, 0)
	require.True(t, array.Shape{3, 4, 2}.Equal(v.Shape()))
}

func TestTransposePanics(t *testing.T) {
	a := array.Zeros[float32](array.Shape{2, 3})

	t.Run("wrong arity", func(t *testing.T) {
		requirePanicsIs(t, array.ErrShapeMismatch, func() { Transpose(Leaf(a), 0) })
	})

	t.Run("repeated axis", func(t *testing.T) {
		requirePanicsIs(t, array.ErrShapeMismatch, func() { Transpose(Leaf(a), 0, 0) })
	})

	t.Run("axis out of range", func(t *testing.T) {
		requirePanicsIs(t, array.ErrIndexOutOfRange, func() { Transpose(Leaf(a), 0, 2) })
	})
}

func TestSqueezeUnsqueeze(t *testing.T) {
	a := array.Zeros[float32](array.Shape{2, 1, 3})

	s := Squeeze(Leaf(a), 1)
	require.True(t, array.Shape{2, 3}.Equal(s.Shape()))

	u := Unsqueeze(s, 0)
	require.True(t, array.Shape{1, 2, 3}.Equal(u.Shape()))

	tail := Unsqueeze(s, 2)
	require.True(t, array.Shape{2, 3, 1}.Equal(tail.Shape()))

	neg := Squeeze(Leaf(a), -2)
	require.True(t, array.Shape{2, 3}.Equal(neg.Shape()))
}

func TestSqueezePanicsOnWideAxis(t *testing.T) {
	a := array.Zeros[float32](array.Shape{2, 3})
	requirePanicsIs(t, array.ErrShapeMismatch, func() { Squeeze(Leaf(a), 1) })
}

func TestBroadcastTo(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3}, array.Shape{3})

	v := BroadcastTo(Leaf(a), array.Shape{2, 3})
	require.True(t, array.Shape{2, 3}.Equal(v.Shape()))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, float32(j+1), At(v, i, j), 1e-6)
		}
	}
}

func TestBroadcastToStretchesOnes(t *testing.T) {
	a := fromSlice(t, []float32{7}, array.Shape{1})

	v := BroadcastTo(Leaf(a), array.Shape{4})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 7, At(v, i), 1e-6)
	}
}

func TestBroadcastToPanicsOnNarrowing(t *testing.T) {
	a := array.Zeros[float32](array.Shape{2, 3})
	requirePanicsIs(t, array.ErrBroadcast, func() { BroadcastTo(Leaf(a), array.Shape{3}) })
}
