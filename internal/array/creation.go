package array

import (
	"iter"

	"github.com/pkg/errors"
)

// Option configures array construction.
type Option func(*buildOptions)

type buildOptions struct {
	order Order
}

// WithOrder selects the memory layout of the constructed array.
// The default is RowMajor.
func WithOrder(order Order) Option {
	return func(o *buildOptions) {
		o.order = order
	}
}

func applyOptions(opts []Option) buildOptions {
	bo := buildOptions{order: RowMajor}
	for _, opt := range opts {
		opt(&bo)
	}
	return bo
}

// New creates a zero-initialized array of the given shape.
func New[T DType](shape Shape, opts ...Option) (*Array[T], error) {
	n, err := checkedNumElements(shape)
	if err != nil {
		return nil, err
	}
	bo := applyOptions(opts)
	a := &Array[T]{
		data:  make([]T, n),
		shape: shape.Clone(),
		order: bo.order,
	}
	a.strides = a.shape.ComputeStridesOrder(a.order)
	return a, nil
}

// Zeros creates an array filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{3, 4})
func Zeros[T DType](shape Shape, opts ...Option) *Array[T] {
	a, err := New[T](shape, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Ones creates an array filled with ones.
//
// Example:
//
//	a := array.Ones[float64](array.Shape{2, 3})
func Ones[T Numeric](shape Shape, opts ...Option) *Array[T] {
	return Full(shape, T(1), opts...)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full(array.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T, opts ...Option) *Array[T] {
	a := Zeros[T](shape, opts...)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// FromFunc creates an array whose element at each coordinate is
// computed by fn. The index passed to fn is reused between calls and
// must not be retained.
func FromFunc[T DType](shape Shape, fn func(Index) T, opts ...Option) *Array[T] {
	a := Zeros[T](shape, opts...)
	ix := make(Index, len(a.shape))
	for i := 0; i < len(a.data); i++ {
		a.setItem(ix, fn(ix))
		incIndex(ix, a.shape)
	}
	return a
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's buffer in logical flat order.
func FromSlice[T DType](data []T, shape Shape, opts ...Option) (*Array[T], error) {
	n, err := checkedNumElements(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d", shape, n, len(data))
	}
	a, err := New[T](shape, opts...)
	if err != nil {
		return nil, err
	}
	if a.order == RowMajor {
		copy(a.data, data)
		return a, nil
	}
	for i, v := range data {
		a.SetFlat(i, v)
	}
	return a, nil
}

// FromSeq creates an array of the given shape filled from a sequence
// in logical flat order. The sequence must yield at least as many
// values as the shape has elements; extra values are not consumed.
func FromSeq[T DType](shape Shape, seq iter.Seq[T], opts ...Option) (*Array[T], error) {
	a, err := New[T](shape, opts...)
	if err != nil {
		return nil, err
	}
	n := len(a.data)
	filled := 0
	for v := range seq {
		if filled == n {
			break
		}
		a.SetFlat(filled, v)
		filled++
	}
	if filled < n {
		return nil, errors.Wrapf(ErrInvalidArgument, "sequence ended after %d of %d elements for shape %v", filled, n, shape)
	}
	return a, nil
}

// From2D creates a rank-2 array from nested row literals.
// Ragged input, where rows differ in length, is rejected.
//
// Example:
//
//	m, err := array.From2D([][]float64{{1, 2}, {3, 4}})
func From2D[T DType](rows [][]T, opts ...Option) (*Array[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidArgument, "ragged literal: row %d has %d elements, want %d", i, len(row), cols)
		}
	}
	a, err := New[T](Shape{len(rows), cols}, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			a.Set(v, i, j)
		}
	}
	return a, nil
}

// From3D creates a rank-3 array from nested literals.
// Ragged input at any nesting level is rejected.
func From3D[T DType](planes [][][]T, opts ...Option) (*Array[T], error) {
	rows, cols := 0, 0
	if len(planes) > 0 {
		rows = len(planes[0])
		if rows > 0 {
			cols = len(planes[0][0])
		}
	}
	for p, plane := range planes {
		if len(plane) != rows {
			return nil, errors.Wrapf(ErrInvalidArgument, "ragged literal: plane %d has %d rows, want %d", p, len(plane), rows)
		}
		for r, row := range plane {
			if len(row) != cols {
				return nil, errors.Wrapf(ErrInvalidArgument, "ragged literal: plane %d row %d has %d elements, want %d", p, r, len(row), cols)
			}
		}
	}
	a, err := New[T](Shape{len(planes), rows, cols}, opts...)
	if err != nil {
		return nil, err
	}
	for p, plane := range planes {
		for r, row := range plane {
			for c, v := range row {
				a.Set(v, p, r, c)
			}
		}
	}
	return a, nil
}

// Eye creates an n by n identity matrix.
//
// Example:
//
//	m := array.Eye[float32](3)
func Eye[T Numeric](n int, opts ...Option) *Array[T] {
	a := Zeros[T](Shape{n, n}, opts...)
	for i := 0; i < n; i++ {
		a.Set(T(1), i, i)
	}
	return a
}
