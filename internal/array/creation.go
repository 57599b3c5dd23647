package array

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Zeros creates a container filled with zeros.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{3, 4})
func Zeros[T Scalar](shape Shape, layout ...Layout) *Array[T] {
	a, err := New[T](shape, layout...)
	if err != nil {
		panic(err)
	}
	return a
}

// Ones creates a container filled with ones.
func Ones[T Scalar](shape Shape, layout ...Layout) *Array[T] {
	return Full[T](shape, 1, layout...)
}

// Full creates a container filled with value.
func Full[T Scalar](shape Shape, value T, layout ...Layout) *Array[T] {
	a := Zeros[T](shape, layout...)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// FromSlice creates a container from a Go slice. The slice is copied verbatim
// into storage order, so a ColumnMajor layout reads it first-axis-fastest.
func FromSlice[T Scalar](data []T, shape Shape, layout ...Layout) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := New[T](shape, layout...)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Arange creates a 1-D container with values from start to end (exclusive).
// It panics with ErrInvalidRange unless end is greater than start.
func Arange[T Scalar](start, end T) *Array[T] {
	n := int(end - start)
	if n <= 0 {
		panic(errors.Wrapf(ErrInvalidRange, "arange: end %v must be greater than start %v", end, start))
	}
	a := Zeros[T](Shape{n})
	for i := range a.data {
		a.data[i] = start + T(i)
	}
	return a
}

// Eye creates a 2-D identity matrix of size n.
func Eye[T Scalar](n int) *Array[T] {
	a := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		a.Set(1, i, i)
	}
	return a
}

// Rand creates a container with values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T Scalar](shape Shape) *Array[T] {
	a := Zeros[T](shape)
	switch data := any(a.data).(type) {
	case []float32:
		for i := range data {
			data[i] = rand.Float32()
		}
	case []float64:
		for i := range data {
			data[i] = rand.Float64()
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return a
}
