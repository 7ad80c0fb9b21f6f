// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"iter"
	"math/rand/v2"

	"github.com/ndkit/nd/internal/array"
)

// Type aliases for public API

// DType is the constraint for supported element types: bool, all
// integer types, and both float types.
type DType = array.DType

// Numeric is the subset of DType that supports arithmetic.
type Numeric = array.Numeric

// Integer is the subset of DType covering integer elements.
type Integer = array.Integer

// Float is the subset of DType covering floating-point elements.
type Float = array.Float

// DataType represents runtime type information for array elements.
type DataType = array.DataType

// Data type constants.
const (
	Bool    DataType = array.Bool
	Int8    DataType = array.Int8
	Int16   DataType = array.Int16
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Int     DataType = array.Int
	Uint8   DataType = array.Uint8
	Uint16  DataType = array.Uint16
	Uint32  DataType = array.Uint32
	Uint64  DataType = array.Uint64
	Uint    DataType = array.Uint
	Uintptr DataType = array.Uintptr
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
)

// Order selects the storage layout of an owning array.
type Order = array.Order

// Layout constants.
const (
	RowMajor Order = array.RowMajor
	ColMajor Order = array.ColMajor
)

// Shape represents the extents of an array, one per axis.
// Example: Shape{2, 3, 4} is a 3-axis array with 24 elements.
type Shape = array.Shape

// Index is a coordinate, one position per axis.
type Index = array.Index

// Array is a dense owning n-dimensional container.
type Array[T DType] = array.Array[T]

// View is a strided window onto an Array's storage. Slicing,
// transposition, and reshaping return views; writes go through to
// the underlying array.
type View[T DType] = array.View[T]

// Selection is a resolved set of element positions in an Array,
// produced by Take, TakeFlat, or Mask.
type Selection[T DType] = array.Selection[T]

// Expr is a lazily evaluated elementwise expression. Arrays, views,
// selections, and operator nodes all satisfy it.
type Expr[T DType] = array.Expr[T]

// Mutable is an Expr that can also be written elementwise; Array,
// View, and Selection satisfy it.
type Mutable[T DType] = array.Mutable[T]

// Spec selects elements along one axis in a Slice call.
type Spec = array.Spec

// Option configures array construction.
type Option = array.Option

// Common errors.
var (
	// ErrShapeMismatch reports operands or destinations whose shapes
	// cannot broadcast together.
	ErrShapeMismatch = array.ErrShapeMismatch
	// ErrIndexOutOfRange reports positions outside an array's bounds.
	ErrIndexOutOfRange = array.ErrIndexOutOfRange
	// ErrInvalidArgument reports structurally impossible requests.
	ErrInvalidArgument = array.ErrInvalidArgument
	// ErrAllocation reports element counts that overflow.
	ErrAllocation = array.ErrAllocation
)

// WithOrder sets the storage layout of a new array. The default is
// RowMajor.
func WithOrder(order Order) Option {
	return array.WithOrder(order)
}

// Creation functions

// New creates an uninitialized array.
//
// Example:
//
//	a, err := array.New[float64](array.Shape{2, 3})
func New[T DType](shape Shape, opts ...Option) (*Array[T], error) {
	return array.New[T](shape, opts...)
}

// Zeros creates an array filled with the zero value. It panics with
// an error wrapping ErrInvalidArgument if the shape is invalid.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{2, 3})
func Zeros[T DType](shape Shape, opts ...Option) *Array[T] {
	return array.Zeros[T](shape, opts...)
}

// Ones creates an array filled with one.
func Ones[T Numeric](shape Shape, opts ...Option) *Array[T] {
	return array.Ones[T](shape, opts...)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full(array.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T, opts ...Option) *Array[T] {
	return array.Full(shape, value, opts...)
}

// FromFunc creates an array by evaluating fn at every coordinate.
//
// Example:
//
//	id := array.FromFunc(array.Shape{3, 3}, func(ix array.Index) float64 {
//	    if ix[0] == ix[1] {
//	        return 1
//	    }
//	    return 0
//	})
func FromFunc[T DType](shape Shape, fn func(Index) T, opts ...Option) *Array[T] {
	return array.FromFunc(shape, fn, opts...)
}

// FromSlice creates an array from a flat slice in logical row-major
// order. The slice length must equal the shape's element count.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape, opts ...Option) (*Array[T], error) {
	return array.FromSlice(data, shape, opts...)
}

// FromSeq creates an array by drawing elements from a sequence in
// logical row-major order.
func FromSeq[T DType](shape Shape, seq iter.Seq[T], opts ...Option) (*Array[T], error) {
	return array.FromSeq(shape, seq, opts...)
}

// From2D creates a rank-2 array from nested slices. Rows must all
// have the same length.
func From2D[T DType](rows [][]T, opts ...Option) (*Array[T], error) {
	return array.From2D(rows, opts...)
}

// From3D creates a rank-3 array from nested slices.
func From3D[T DType](planes [][][]T, opts ...Option) (*Array[T], error) {
	return array.From3D(planes, opts...)
}

// Eye creates an n by n identity matrix.
//
// Example:
//
//	id := array.Eye[float64](3)
func Eye[T Numeric](n int, opts ...Option) *Array[T] {
	return array.Eye[T](n, opts...)
}

// Rand creates an array of uniform random samples in [0, 1) drawn
// from the given source. Seed the source for reproducible content.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	a := array.Rand[float64](array.Shape{2, 3}, rng)
func Rand[T Float](shape Shape, rng *rand.Rand, opts ...Option) *Array[T] {
	return array.Rand[T](shape, rng, opts...)
}

// Randn creates an array of standard normal random samples drawn from
// the given source.
func Randn[T Float](shape Shape, rng *rand.Rand, opts ...Option) *Array[T] {
	return array.Randn[T](shape, rng, opts...)
}

// Slicing specs

// Idx selects a single position and removes the axis from the result.
func Idx(i int) Spec { return array.Idx(i) }

// All selects every position along an axis.
func All() Spec { return array.All() }

// Range selects positions in [start, stop) with step 1. Negative
// positions count from the end of the axis.
func Range(start, stop int) Spec { return array.Range(start, stop) }

// RangeStep selects positions in [start, stop) with an explicit
// step. A negative step walks backwards; step 0 is invalid.
func RangeStep(start, stop, step int) Spec { return array.RangeStep(start, stop, step) }

// From selects positions from start through the end of the axis.
func From(start int) Spec { return array.From(start) }

// To selects positions from the beginning of the axis up to stop.
func To(stop int) Spec { return array.To(stop) }

// Step selects the whole axis with a stride; Step(-1) reverses it.
func Step(step int) Spec { return array.Step(step) }

// Utility functions

// DataTypeOf resolves the runtime DataType for element type T.
func DataTypeOf[T DType]() DataType {
	return array.DataTypeOf[T]()
}

// BroadcastShapes computes the broadcast shape of two shapes under
// NumPy rules. The flag reports whether either operand needs
// widening.
//
// Example:
//
//	shape, widened, err := array.BroadcastShapes(
//	    array.Shape{3, 1},
//	    array.Shape{1, 4},
//	)
//	// shape = [3 4], widened = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return array.BroadcastShapes(a, b)
}

// CheckBounds validates a coordinate against a shape.
func CheckBounds(shape Shape, ix Index) error {
	return array.CheckBounds(shape, ix)
}

// Ravel converts a coordinate to a flat position in the given order.
func Ravel(shape Shape, ix Index, order Order) (int, error) {
	return array.Ravel(shape, ix, order)
}

// Unravel converts a flat position back to a coordinate.
func Unravel(shape Shape, flat int, order Order) (Index, error) {
	return array.Unravel(shape, flat, order)
}
