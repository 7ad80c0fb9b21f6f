package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is an owning n-dimensional container. It holds a contiguous
// buffer of elements in row-major or column-major order and is the
// exclusive owner of that buffer. Views, selections, and expressions
// borrow the buffer without owning it.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{3, 4})
//	a.Set(2.5, 1, 2)
//	v := a.At(1, 2)
type Array[T DType] struct {
	data    []T
	shape   Shape
	strides []int
	order   Order
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return len(a.data)
}

// Order returns the array's memory layout.
func (a *Array[T]) Order() Order {
	return a.order
}

// Strides returns the array's per-axis strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// DType returns the array's runtime element type.
func (a *Array[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the backing slice in storage order (zero-copy).
// For row-major arrays storage order equals logical flat order.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given coordinates.
// Panics if the coordinates are out of bounds.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{3, 4})
//	value := a.At(1, 2) // Row 1, column 2
func (a *Array[T]) At(indices ...int) T {
	if err := CheckBounds(a.shape, indices); err != nil {
		panic(err)
	}
	return a.data[a.offsetOf(indices)]
}

// Set sets the element at the given coordinates.
// Panics if the coordinates are out of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	if err := CheckBounds(a.shape, indices); err != nil {
		panic(err)
	}
	a.data[a.offsetOf(indices)] = value
}

// AtFlat returns the element at the given logical flat position
// (row-major enumeration regardless of storage order).
// Panics if the position is out of range.
func (a *Array[T]) AtFlat(i int) T {
	if i < 0 || i >= len(a.data) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "flat position %d out of range for %d elements", i, len(a.data)))
	}
	if a.order == RowMajor {
		return a.data[i]
	}
	ix, _ := Unravel(a.shape, i, RowMajor)
	return a.data[a.offsetOf(ix)]
}

// SetFlat sets the element at the given logical flat position.
// Panics if the position is out of range.
func (a *Array[T]) SetFlat(i int, value T) {
	if i < 0 || i >= len(a.data) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "flat position %d out of range for %d elements", i, len(a.data)))
	}
	if a.order == RowMajor {
		a.data[i] = value
		return
	}
	ix, _ := Unravel(a.shape, i, RowMajor)
	a.data[a.offsetOf(ix)] = value
}

// Item returns the value of a rank-0 array.
// Panics if the array is not a scalar.
func (a *Array[T]) Item() T {
	if len(a.shape) != 0 || len(a.data) != 1 {
		panic(errors.Wrapf(ErrInvalidArgument, "Item only works for scalar arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array[T]{
		data:    data,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		order:   a.order,
	}
}

// Move transfers buffer ownership to a new array and leaves the
// receiver in the empty state (no buffer, zero elements). Views and
// selections taken before the move keep referencing the transferred
// buffer.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{data: a.data, shape: a.shape, strides: a.strides, order: a.order}
	a.data = nil
	a.shape = Shape{0}
	a.strides = []int{1}
	return moved
}

// Resize changes the array's shape in place. If the element count is
// unchanged the buffer is reinterpreted under the new shape, elements
// keeping their storage flat order. Otherwise a new buffer is
// allocated, the overlapping storage flat prefix is copied, and any
// new trailing cells take the fill value. A size-changing resize
// leaves previously taken views and selections referencing the old
// buffer; they observe stale storage from then on.
func (a *Array[T]) Resize(shape Shape, fill T) error {
	n, err := checkedNumElements(shape)
	if err != nil {
		return errors.Wrapf(err, "resize to %v", shape)
	}
	if n != len(a.data) {
		data := make([]T, n)
		copied := copy(data, a.data)
		for i := copied; i < n; i++ {
			data[i] = fill
		}
		a.data = data
	}
	a.shape = shape.Clone()
	a.strides = a.shape.ComputeStridesOrder(a.order)
	return nil
}

// String returns a one-line summary of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", DataTypeOf[T](), a.shape)
}

// offsetOf computes the storage offset for in-bounds coordinates.
func (a *Array[T]) offsetOf(ix []int) int {
	offset := 0
	for i, idx := range ix {
		offset += idx * a.strides[i]
	}
	return offset
}

// item implements Expr. Coordinates are trusted to be in bounds.
func (a *Array[T]) item(ix Index) T {
	return a.data[a.offsetOf(ix)]
}

// setItem implements Mutable. Coordinates are trusted to be in bounds.
func (a *Array[T]) setItem(ix Index, v T) {
	a.data[a.offsetOf(ix)] = v
}

// lift implements Expr. A widened array becomes a zero-stride view.
func (a *Array[T]) lift(to Shape) Expr[T] {
	if a.shape.Equal(to) {
		return a
	}
	return liftStrided(a.data, 0, a.shape, a.strides, a.order, to)
}
