package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Selection is a non-owning, ordered list of positions into an
// array's buffer. Unlike a View the positions are arbitrary, an
// explicit permutation or subset rather than an affine stride
// pattern. A selection reads as a rank-1 expression in selection
// order and writes by scattering into the parent buffer.
type Selection[T DType] struct {
	data  []T
	locs  []int
	shape Shape
}

// TakeFlat selects the given logical flat positions of the array.
// Positions out of range are rejected at construction.
//
// Example:
//
//	sel, _ := a.TakeFlat([]int{4, 0, 2})
//	picked := sel.Gather() // elements 4, 0, 2 in that order
func (a *Array[T]) TakeFlat(flat []int) (*Selection[T], error) {
	locs := make([]int, len(flat))
	for i, f := range flat {
		if f < 0 || f >= len(a.data) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "flat position %d out of range for %d elements", f, len(a.data))
		}
		if a.order == RowMajor {
			locs[i] = f
		} else {
			ix, _ := Unravel(a.shape, f, RowMajor)
			locs[i] = a.offsetOf(ix)
		}
	}
	return &Selection[T]{data: a.data, locs: locs, shape: Shape{len(locs)}}, nil
}

// Take selects the given coordinates of the array, in order.
// Out-of-bounds coordinates are rejected at construction.
func (a *Array[T]) Take(indices []Index) (*Selection[T], error) {
	locs := make([]int, len(indices))
	for i, ix := range indices {
		if err := CheckBounds(a.shape, ix); err != nil {
			return nil, errors.Wrapf(err, "selection position %d", i)
		}
		locs[i] = a.offsetOf(ix)
	}
	return &Selection[T]{data: a.data, locs: locs, shape: Shape{len(locs)}}, nil
}

// Mask selects the positions where the mask holds true, in logical
// flat order. The mask's shape must equal the array's shape exactly;
// the conversion is a full scan of the mask.
func (a *Array[T]) Mask(mask *Array[bool]) (*Selection[T], error) {
	if !a.shape.Equal(mask.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "mask shape %v does not match array shape %v", mask.shape, a.shape)
	}
	var locs []int
	ix := make(Index, len(a.shape))
	n := a.shape.NumElements()
	for i := 0; i < n; i++ {
		if mask.item(ix) {
			locs = append(locs, a.offsetOf(ix))
		}
		incIndex(ix, a.shape)
	}
	return &Selection[T]{data: a.data, locs: locs, shape: Shape{len(locs)}}, nil
}

// Len returns the number of selected positions.
func (s *Selection[T]) Len() int {
	return len(s.locs)
}

// Shape returns the selection's rank-1 shape.
func (s *Selection[T]) Shape() Shape {
	return s.shape
}

// Gather copies the selected elements into a new rank-1 array in
// selection order.
func (s *Selection[T]) Gather() *Array[T] {
	out := Zeros[T](s.shape)
	for i, p := range s.locs {
		out.data[i] = s.data[p]
	}
	return out
}

// Scatter writes the source's elements into the parent buffer at the
// selected positions, in selection order. The source must be rank-1
// with exactly one element per selected position. When the selection
// contains duplicate positions the last write in selection order wins.
func (s *Selection[T]) Scatter(src Expr[T]) error {
	if !src.Shape().Equal(s.shape) {
		return errors.Wrapf(ErrShapeMismatch, "scatter source shape %v does not match %d selected positions",
			src.Shape(), len(s.locs))
	}
	return Assign[T](s, src)
}

// Fill sets every selected position to the given value.
func (s *Selection[T]) Fill(v T) {
	for _, p := range s.locs {
		s.data[p] = v
	}
}

// String returns a one-line summary of the selection.
func (s *Selection[T]) String() string {
	return fmt.Sprintf("Selection[%s](%d)", DataTypeOf[T](), len(s.locs))
}

// item implements Expr. The coordinate is trusted to be in bounds.
func (s *Selection[T]) item(ix Index) T {
	return s.data[s.locs[ix[0]]]
}

// setItem implements Mutable. The coordinate is trusted to be in
// bounds.
func (s *Selection[T]) setItem(ix Index, v T) {
	s.data[s.locs[ix[0]]] = v
}

// lift implements Expr by folding coordinates down to the rank-1
// selection.
func (s *Selection[T]) lift(to Shape) Expr[T] {
	if s.shape.Equal(to) {
		return s
	}
	return broadcast[T](s, to)
}
