package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// View is a non-owning strided projection over an array's buffer.
// It has its own shape, a base offset, and per-axis strides; strides
// may be zero (broadcast replay of a length-1 axis) or negative
// (reversed axes). Writing through a view mutates the parent buffer.
//
// A view must not outlive the array it was derived from. Go keeps the
// buffer itself alive, so a stale view reads old storage rather than
// freed memory, but after a size-changing Resize it no longer aliases
// the parent.
type View[T DType] struct {
	data    []T
	offset  int
	shape   Shape
	strides []int
	order   Order
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Rank returns the number of axes.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// NumElements returns the total number of elements.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// Strides returns the view's per-axis strides.
func (v *View[T]) Strides() []int {
	return v.strides
}

// At returns the element at the given coordinates.
// Panics if the coordinates are out of bounds.
func (v *View[T]) At(indices ...int) T {
	if err := CheckBounds(v.shape, indices); err != nil {
		panic(err)
	}
	return v.data[v.offsetOf(indices)]
}

// Set sets the element at the given coordinates, writing through to
// the parent buffer. Panics if the coordinates are out of bounds.
func (v *View[T]) Set(value T, indices ...int) {
	if err := CheckBounds(v.shape, indices); err != nil {
		panic(err)
	}
	v.data[v.offsetOf(indices)] = value
}

// ToArray copies the view's elements into a new owning array.
func (v *View[T]) ToArray() *Array[T] {
	out := Zeros[T](v.shape, WithOrder(v.order))
	ix := make(Index, len(v.shape))
	for i := 0; i < len(out.data); i++ {
		out.setItem(ix, v.item(ix))
		incIndex(ix, v.shape)
	}
	return out
}

// Transpose returns a view with permuted axes. With no arguments the
// axis order is reversed. A full permutation of the axes is required
// otherwise.
func (v *View[T]) Transpose(axes ...int) (*View[T], error) {
	rank := len(v.shape)
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, errors.Wrapf(ErrInvalidArgument, "transpose needs %d axes, got %d", rank, len(axes))
	}
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			return nil, errors.Wrapf(ErrInvalidArgument, "invalid axis permutation %v for rank %d", axes, rank)
		}
		seen[ax] = true
	}
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, ax := range axes {
		shape[i] = v.shape[ax]
		strides[i] = v.strides[ax]
	}
	return &View[T]{data: v.data, offset: v.offset, shape: shape, strides: strides, order: v.order}, nil
}

// Diagonal returns a rank-1 view over the k-th diagonal of a rank-2
// view. Positive offsets select diagonals above the main one, negative
// below. The resulting length may be zero.
func (v *View[T]) Diagonal(offset int) (*View[T], error) {
	if len(v.shape) != 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "diagonal needs rank 2, got shape %v", v.shape)
	}
	rows, cols := v.shape[0], v.shape[1]
	row, col := 0, offset
	if offset < 0 {
		row, col = -offset, 0
	}
	n := min(rows-row, cols-col)
	base := 0
	if n > 0 {
		base = v.offset + row*v.strides[0] + col*v.strides[1]
	} else {
		n = 0
	}
	return &View[T]{
		data:    v.data,
		offset:  base,
		shape:   Shape{n},
		strides: []int{v.strides[0] + v.strides[1]},
		order:   v.order,
	}, nil
}

// Reshape reinterprets the view under a new shape without copying.
// The element count must be unchanged and the view must be contiguous
// in its natural order; a strided projection that cannot be flattened
// without copying is rejected.
func (v *View[T]) Reshape(shape Shape) (*View[T], error) {
	n, err := checkedNumElements(shape)
	if err != nil {
		return nil, err
	}
	if n != v.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "reshape from %v to %v changes element count (%d to %d)",
			v.shape, shape, v.NumElements(), n)
	}
	if n != 0 && !contiguous(v.shape, v.strides, v.order) {
		return nil, errors.Wrapf(ErrInvalidArgument, "view with shape %v strides %v is not contiguous; copy with ToArray first",
			v.shape, v.strides)
	}
	return &View[T]{
		data:    v.data,
		offset:  v.offset,
		shape:   shape.Clone(),
		strides: shape.ComputeStridesOrder(v.order),
		order:   v.order,
	}, nil
}

// Flatten returns a rank-1 view in the view's natural iteration order.
// The view must be contiguous.
func (v *View[T]) Flatten() (*View[T], error) {
	return v.Reshape(Shape{v.NumElements()})
}

// String returns a one-line summary of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v", DataTypeOf[T](), v.shape)
}

func (v *View[T]) offsetOf(ix []int) int {
	offset := v.offset
	for i, idx := range ix {
		offset += idx * v.strides[i]
	}
	return offset
}

// item implements Expr. Coordinates are trusted to be in bounds.
func (v *View[T]) item(ix Index) T {
	return v.data[v.offsetOf(ix)]
}

// setItem implements Mutable. Coordinates are trusted to be in bounds.
func (v *View[T]) setItem(ix Index, val T) {
	v.data[v.offsetOf(ix)] = val
}

// lift implements Expr using zero strides on widened axes.
func (v *View[T]) lift(to Shape) Expr[T] {
	if v.shape.Equal(to) {
		return v
	}
	return liftStrided(v.data, v.offset, v.shape, v.strides, v.order, to)
}

// liftStrided builds a broadcast view: new leading axes and widened
// length-1 axes get stride 0, so every incoming coordinate along them
// reads the same storage.
func liftStrided[T DType](data []T, offset int, shape Shape, strides []int, order Order, to Shape) *View[T] {
	ns := make([]int, len(to))
	off := len(to) - len(shape)
	for a := range shape {
		if shape[a] == 1 && to[off+a] != 1 {
			ns[off+a] = 0
		} else {
			ns[off+a] = strides[a]
		}
	}
	return &View[T]{data: data, offset: offset, shape: to.Clone(), strides: ns, order: order}
}

// contiguous reports whether the strides describe a dense traversal of
// the shape in the given order. Length-1 axes are ignored since their
// stride never contributes to an offset.
func contiguous(shape Shape, strides []int, order Order) bool {
	want := shape.ComputeStridesOrder(order)
	for a := range shape {
		if shape[a] != 1 && strides[a] != want[a] {
			return false
		}
	}
	return true
}

// view returns a whole-array view sharing the array's buffer.
func (a *Array[T]) view() *View[T] {
	return &View[T]{data: a.data, offset: 0, shape: a.shape, strides: a.strides, order: a.order}
}

// Transpose returns a view with permuted axes. With no arguments the
// axis order is reversed.
//
// Example:
//
//	m, _ := array.From2D([][]int{{0, 1, 2}, {3, 4, 5}})
//	t, _ := m.Transpose() // shape (3, 2), t.At(1, 0) == m.At(0, 1)
func (a *Array[T]) Transpose(axes ...int) (*View[T], error) {
	return a.view().Transpose(axes...)
}

// Diagonal returns a rank-1 view over the k-th diagonal of a rank-2
// array.
func (a *Array[T]) Diagonal(offset int) (*View[T], error) {
	return a.view().Diagonal(offset)
}

// Reshape returns a view of the array's buffer under a new shape with
// an unchanged element count.
func (a *Array[T]) Reshape(shape Shape) (*View[T], error) {
	return a.view().Reshape(shape)
}

// Flatten returns a rank-1 view of the array's buffer.
func (a *Array[T]) Flatten() (*View[T], error) {
	return a.view().Flatten()
}
