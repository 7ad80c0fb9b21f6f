// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/ndkit/nd/internal/array"
)

// Whole-array reductions
//
// Reductions consume any expression lazily, so array.Sum[float64](e)
// folds an unevaluated expression in a single pass.

// Sum folds an expression with addition. An empty expression sums
// to zero.
//
// Example:
//
//	total := array.Sum[float64](array.Mul[float64](a, a))
func Sum[T Numeric](e Expr[T]) T { return array.Sum(e) }

// Prod folds an expression with multiplication. An empty expression
// multiplies to one.
func Prod[T Numeric](e Expr[T]) T { return array.Prod(e) }

// Min returns the smallest element. An empty expression fails with
// ErrInvalidArgument.
func Min[T Numeric](e Expr[T]) (T, error) { return array.Min(e) }

// Max returns the largest element. An empty expression fails with
// ErrInvalidArgument.
func Max[T Numeric](e Expr[T]) (T, error) { return array.Max(e) }

// Mean returns the arithmetic mean as float64.
func Mean[T Numeric](e Expr[T]) (float64, error) { return array.Mean(e) }

// Var returns the variance as float64 with divisor n - ddof. Use
// ddof 0 for the population variance and 1 for the sample variance.
func Var[T Numeric](e Expr[T], ddof int) (float64, error) { return array.Var(e, ddof) }

// Std returns the standard deviation as float64 with divisor
// n - ddof.
func Std[T Numeric](e Expr[T], ddof int) (float64, error) { return array.Std(e, ddof) }

// ArgMax returns the row-major flat position of the largest element.
// Ties go to the first occurrence.
func ArgMax[T Numeric](e Expr[T]) (int, error) { return array.ArgMax(e) }

// ArgMin returns the row-major flat position of the smallest element.
func ArgMin[T Numeric](e Expr[T]) (int, error) { return array.ArgMin(e) }

// AllTrue reports whether every element of a boolean expression is
// true. An empty expression is vacuously true.
func AllTrue(e Expr[bool]) bool { return array.AllTrue(e) }

// AnyTrue reports whether any element of a boolean expression is
// true. An empty expression has none.
func AnyTrue(e Expr[bool]) bool { return array.AnyTrue(e) }

// Equal reports whether two expressions have the same shape and
// identical elements.
func Equal[T DType](a, b Expr[T]) bool { return array.Equal(a, b) }

// AllClose reports whether two float expressions match elementwise
// within atol + rtol*|b|. NaN never matches.
func AllClose[T Float](a, b Expr[T], rtol, atol float64) bool {
	return array.AllClose(a, b, rtol, atol)
}

// Axis reductions
//
// Axis reductions remove one axis and return an owning array of the
// remaining shape. A negative axis counts from the end.

// SumAxis sums along one axis.
//
// Example:
//
//	m, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	cols, _ := array.SumAxis[float64](m, 0) // [5 7 9]
//	rows, _ := array.SumAxis[float64](m, 1) // [6 15]
func SumAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return array.SumAxis(e, axis)
}

// ProdAxis multiplies along one axis.
func ProdAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return array.ProdAxis(e, axis)
}

// MinAxis takes the smallest element along one axis. Reducing an
// empty axis into a nonempty result fails with ErrInvalidArgument.
func MinAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return array.MinAxis(e, axis)
}

// MaxAxis takes the largest element along one axis.
func MaxAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return array.MaxAxis(e, axis)
}

// MeanAxis averages along one axis into a float64 array.
func MeanAxis[T Numeric](e Expr[T], axis int) (*Array[float64], error) {
	return array.MeanAxis(e, axis)
}

// VarAxis computes the variance along one axis with divisor n - ddof.
func VarAxis[T Numeric](e Expr[T], axis, ddof int) (*Array[float64], error) {
	return array.VarAxis(e, axis, ddof)
}

// StdAxis computes the standard deviation along one axis.
func StdAxis[T Numeric](e Expr[T], axis, ddof int) (*Array[float64], error) {
	return array.StdAxis(e, axis, ddof)
}

// ArgMaxAxis finds the position of the largest element along one
// axis.
func ArgMaxAxis[T Numeric](e Expr[T], axis int) (*Array[int], error) {
	return array.ArgMaxAxis(e, axis)
}

// ArgMinAxis finds the position of the smallest element along one
// axis.
func ArgMinAxis[T Numeric](e Expr[T], axis int) (*Array[int], error) {
	return array.ArgMinAxis(e, axis)
}

// Index-space generators
//
// Generators return lazy expressions; no storage is allocated until
// the result is materialized or assigned.

// Arange builds the sequence start, start+step, ... up to but not
// including stop. Step 0 fails with ErrInvalidArgument.
//
// Example:
//
//	e, _ := array.Arange[float64](0, 1, 0.25) // [0 0.25 0.5 0.75]
func Arange[T Numeric](start, stop, step T) (Expr[T], error) {
	return array.Arange(start, stop, step)
}

// Linspace builds num evenly spaced values from start to stop
// inclusive.
func Linspace[T Float](start, stop T, num int) (Expr[T], error) {
	return array.Linspace(start, stop, num)
}

// Logspace builds num values spaced evenly on a log scale, from
// base**start to base**stop inclusive.
func Logspace[T Float](start, stop T, num int, base float64) (Expr[T], error) {
	return array.Logspace(start, stop, num, base)
}

// Geomspace builds num values spaced in a geometric progression from
// start to stop inclusive. Endpoints must be nonzero and share a
// sign.
func Geomspace[T Float](start, stop T, num int) (Expr[T], error) {
	return array.Geomspace(start, stop, num)
}

// Structural routines
//
// Structural routines rearrange an expression's index space without
// touching element values; the results stay lazy.

// Reverse flips an expression along the given axes, or along every
// axis when none are named.
func Reverse[T DType](e Expr[T], axes ...int) (Expr[T], error) {
	return array.Reverse(e, axes...)
}

// Shift rotates an expression along one axis; elements wrap around.
func Shift[T DType](e Expr[T], axis, count int) (Expr[T], error) {
	return array.Shift(e, axis, count)
}

// Diagonal extracts the offset diagonal of a rank-2 expression as a
// rank-1 expression. Positive offsets move above the main diagonal.
func Diagonal[T DType](e Expr[T], offset int) (Expr[T], error) {
	return array.Diagonal(e, offset)
}
