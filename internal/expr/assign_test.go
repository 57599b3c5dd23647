package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-nd/weft/internal/array"
)

func TestAssign(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4}, array.Shape{2, 2})
	dest := array.Zeros[float32](array.Shape{2, 2})

	require.NoError(t, Assign(dest, MulScalar(Leaf(a), 3)))
	for _, index := range dest.Shape().Indices() {
		assert.InDelta(t, a.At(index...)*3, dest.At(index...), 1e-6)
	}
}

func TestAssignResizesDest(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	dest := array.Zeros[float32](array.Shape{7})

	require.NoError(t, Assign(dest, Leaf(a)))
	require.True(t, array.Shape{2, 3}.Equal(dest.Shape()))
	assert.InDelta(t, 6, dest.At(1, 2), 1e-6)
}

// TestAssignAliasedSource assigns b = a + (c + b): b's own storage is read
// on the right-hand side, so the engine must stage through a temporary.
func TestAssignAliasedSource(t *testing.T) {
	a := fromSlice(t, []float32{1, 1, 1, 1}, array.Shape{4})
	b := fromSlice(t, []float32{1, 2, 3, 4}, array.Shape{4})
	c := fromSlice(t, []float32{10, 20, 30, 40}, array.Shape{4})

	require.NoError(t, Assign(b, Add(Leaf(a), Add(Leaf(c), Leaf(b)))))

	expected := []float32{12, 23, 34, 45}
	for i, want := range expected {
		assert.InDelta(t, want, b.At(i), 1e-6, "element %d", i)
	}
}

// TestAssignAliasedSourceResizes broadcasts b into a wider result while b's
// own storage feeds the right-hand side: the staged copy must capture every
// element before the resize destroys b's contents.
func TestAssignAliasedSourceResizes(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 4})
	b := fromSlice(t, []float32{10, 20, 30, 40}, array.Shape{4})

	require.NoError(t, Assign(b, Add(Leaf(a), Leaf(b))))

	require.True(t, array.Shape{2, 4}.Equal(b.Shape()))
	expected := []float32{11, 22, 33, 44, 15, 26, 37, 48}
	for i, want := range expected {
		assert.InDelta(t, want, b.At(i/4, i%4), 1e-6, "element %d", i)
	}
}

// TestAssignSelfReverse assigns a = reverse(a). Without staging, the second
// half of the writes would read already-overwritten elements.
func TestAssignSelfReverse(t *testing.T) {
	a := fromSlice(t, []int32{1, 2, 3, 4, 5}, array.Shape{5})

	require.NoError(t, Assign(a, View(Leaf(a), Reverse())))

	expected := []int32{5, 4, 3, 2, 1}
	for i, want := range expected {
		assert.Equal(t, want, a.At(i), "element %d", i)
	}
}

// TestAssignAliasedWindow overlaps destination and source through borrowed
// windows rather than through the same container value.
func TestAssignAliasedWindow(t *testing.T) {
	base := fromSlice(t, []int32{1, 2, 3, 4, 5, 6}, array.Shape{6})
	head := Evaluate(View(Leaf(base), To(5)))   // elements 0..4
	tail := Evaluate(View(Leaf(base), From(1))) // elements 1..5
	require.True(t, head.SharesStorage(tail))

	// head = tail shifts every element left by one.
	require.NoError(t, Assign(head, Leaf(tail)))

	expected := []int32{2, 3, 4, 5, 6, 6}
	for i, want := range expected {
		assert.Equal(t, want, base.At(i), "element %d", i)
	}
}

func TestAssignNoAliasDisjoint(t *testing.T) {
	a := fromSlice(t, []float32{5, 6}, array.Shape{2})
	dest := array.Zeros[float32](array.Shape{2})

	require.NoError(t, AssignNoAlias(dest, AddScalar(Leaf(a), 1)))
	assert.InDelta(t, 6, dest.At(0), 1e-6)
	assert.InDelta(t, 7, dest.At(1), 1e-6)
}

func TestAssignScalarReshapesToRank0(t *testing.T) {
	dest := array.Zeros[float32](array.Shape{2, 3})

	require.NoError(t, Assign(dest, Scalar[float32](9)))
	require.Equal(t, 0, dest.Rank(), "assigning a scalar expression adopts its shape")
	assert.InDelta(t, 9, dest.Item(), 1e-6)
}

// TestFillKeepsShapeUnlikeScalarAssign pins down the difference between
// filling a container and assigning a scalar expression to it.
func TestFillKeepsShapeUnlikeScalarAssign(t *testing.T) {
	filled := array.Zeros[float32](array.Shape{2, 3})
	filled.Fill(9)
	require.True(t, array.Shape{2, 3}.Equal(filled.Shape()))

	assigned := array.Zeros[float32](array.Shape{2, 3})
	require.NoError(t, Assign(assigned, Scalar[float32](9)))
	require.Equal(t, 0, assigned.Rank())

	assert.InDelta(t, 9, filled.At(1, 2), 1e-6)
	assert.InDelta(t, 9, assigned.Item(), 1e-6)
}

func TestAssignLockedDestRejectsShapeChange(t *testing.T) {
	a := array.Ones[float32](array.Shape{3})
	dest := array.Zeros[float32](array.Shape{2, 2}).LockShape()

	err := Assign(dest, Leaf(a))
	require.ErrorIs(t, err, array.ErrShapeMismatch)
	require.True(t, array.Shape{2, 2}.Equal(dest.Shape()), "failed assign must not mutate dest")
	assert.InDelta(t, 0, dest.At(0, 0), 1e-6)
}

func TestAssignLockedRankAcceptsSameRank(t *testing.T) {
	a := array.Ones[float32](array.Shape{3, 2})
	dest := array.Zeros[float32](array.Shape{2, 2}).LockRank()

	require.NoError(t, Assign(dest, Leaf(a)))
	require.True(t, array.Shape{3, 2}.Equal(dest.Shape()))
}

func TestAssignIntoBorrowedWindow(t *testing.T) {
	base := fromSlice(t, []float32{0, 0, 0, 0, 0, 0}, array.Shape{2, 3})
	row := Evaluate(View(Leaf(base), Index(1)))
	src := fromSlice(t, []float32{7, 8, 9}, array.Shape{3})

	require.NoError(t, Assign(row, Leaf(src)))

	assert.InDelta(t, 0, base.At(0, 0), 1e-6)
	assert.InDelta(t, 7, base.At(1, 0), 1e-6)
	assert.InDelta(t, 9, base.At(1, 2), 1e-6)
}
