package array

import (
	"math"

	"github.com/pkg/errors"
)

// Order selects the memory layout of an array.
type Order int

const (
	// RowMajor stores the last axis contiguously (C order).
	RowMajor Order = iota
	// ColMajor stores the first axis contiguously (Fortran order).
	ColMajor
)

// String returns a human-readable name for the layout.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape represents the per-axis extents of an array.
// A shape with any extent 0 denotes an empty array; the empty Shape{}
// is a scalar with one element.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every extent is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrInvalidArgument, "negative extent %d at axis %d", dim, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all extents after i.
func (s Shape) ComputeStrides() []int {
	return s.ComputeStridesOrder(RowMajor)
}

// ComputeStridesOrder calculates strides for the shape in the given
// layout order.
func (s Shape) ComputeStridesOrder(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if order == ColMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// checkedNumElements returns the element count for the shape, rejecting
// negative extents and products that overflow int.
func checkedNumElements(s Shape) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	n := 1
	for _, dim := range s {
		if dim != 0 && n > math.MaxInt/dim {
			return 0, errors.Wrapf(ErrAllocation, "shape %v element count overflows int", s)
		}
		n *= dim
	}
	return n, nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Extents are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing axes are treated as extent 1
//
// Returns the broadcast shape, a flag indicating if broadcasting is
// needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Wrapf(ErrShapeMismatch,
				"shapes not compatible for broadcasting: %v vs %v (axis %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}

// Index addresses a single element by its per-axis coordinates.
// It is structurally a Shape but semantically a position.
type Index []int

// Clone returns a copy of the index.
func (ix Index) Clone() Index {
	clone := make(Index, len(ix))
	copy(clone, ix)
	return clone
}

// CheckBounds verifies that ix addresses an element inside shape.
func CheckBounds(shape Shape, ix Index) error {
	if len(ix) != len(shape) {
		return errors.Wrapf(ErrIndexOutOfRange, "expected %d coordinates, got %d", len(shape), len(ix))
	}
	for a, i := range ix {
		if i < 0 || i >= shape[a] {
			return errors.Wrapf(ErrIndexOutOfRange, "coordinate %d out of bounds for axis %d (size %d)", i, a, shape[a])
		}
	}
	return nil
}

// Ravel converts coordinates to a flat position in the given traversal
// order. It fails if ix is out of bounds for the shape.
func Ravel(shape Shape, ix Index, order Order) (int, error) {
	if err := CheckBounds(shape, ix); err != nil {
		return 0, err
	}
	strides := shape.ComputeStridesOrder(order)
	flat := 0
	for a, i := range ix {
		flat += i * strides[a]
	}
	return flat, nil
}

// Unravel converts a flat position back to coordinates in the given
// traversal order. Ravel and Unravel are inverse for in-bounds input.
func Unravel(shape Shape, flat int, order Order) (Index, error) {
	n := shape.NumElements()
	if flat < 0 || flat >= n {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "flat position %d out of range for %d elements", flat, n)
	}
	ix := make(Index, len(shape))
	if order == ColMajor {
		for a := 0; a < len(shape); a++ {
			ix[a] = flat % shape[a]
			flat /= shape[a]
		}
		return ix, nil
	}
	for a := len(shape) - 1; a >= 0; a-- {
		ix[a] = flat % shape[a]
		flat /= shape[a]
	}
	return ix, nil
}
