// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"iter"

	"github.com/ndkit/nd/internal/array"
	"github.com/ndkit/nd/internal/parallel"
)

// Expression constructors
//
// Operand shapes broadcast at construction; incompatible shapes panic
// with an error wrapping ErrShapeMismatch. Passing concrete operands
// such as *Array needs an explicit type argument, as in
// array.Add[float64](a, b); expression-typed operands infer it.

// Scalar wraps a single value as a rank-0 expression that broadcasts
// against any shape.
func Scalar[T DType](v T) Expr[T] { return array.Scalar(v) }

// Add builds the elementwise sum of two expressions.
//
// Example:
//
//	e := array.Add[float64](a, b)
//	c := array.Materialize(e)
func Add[T Numeric](a, b Expr[T]) Expr[T] { return array.Add(a, b) }

// Sub builds the elementwise difference of two expressions.
func Sub[T Numeric](a, b Expr[T]) Expr[T] { return array.Sub(a, b) }

// Mul builds the elementwise product of two expressions.
func Mul[T Numeric](a, b Expr[T]) Expr[T] { return array.Mul(a, b) }

// Div builds the elementwise quotient of two expressions.
func Div[T Numeric](a, b Expr[T]) Expr[T] { return array.Div(a, b) }

// Mod builds the elementwise remainder of two integer expressions.
func Mod[T Integer](a, b Expr[T]) Expr[T] { return array.Mod(a, b) }

// And builds the elementwise bitwise AND of two integer expressions.
func And[T Integer](a, b Expr[T]) Expr[T] { return array.And(a, b) }

// Or builds the elementwise bitwise OR of two integer expressions.
func Or[T Integer](a, b Expr[T]) Expr[T] { return array.Or(a, b) }

// Xor builds the elementwise bitwise XOR of two integer expressions.
func Xor[T Integer](a, b Expr[T]) Expr[T] { return array.Xor(a, b) }

// Shl builds the elementwise left shift of two integer expressions.
func Shl[T Integer](a, b Expr[T]) Expr[T] { return array.Shl(a, b) }

// Shr builds the elementwise right shift of two integer expressions.
func Shr[T Integer](a, b Expr[T]) Expr[T] { return array.Shr(a, b) }

// Neg builds the elementwise negation of an expression.
func Neg[T Numeric](e Expr[T]) Expr[T] { return array.Neg(e) }

// Abs builds the elementwise absolute value of an expression.
func Abs[T Numeric](e Expr[T]) Expr[T] { return array.Abs(e) }

// Invert builds the elementwise bitwise complement of an integer
// expression.
func Invert[T Integer](e Expr[T]) Expr[T] { return array.Invert(e) }

// Clamp limits every element to the range [lo, hi].
func Clamp[T Numeric](e Expr[T], lo, hi T) Expr[T] { return array.Clamp(e, lo, hi) }

// Comparisons produce boolean expressions of the broadcast shape.

// Eq compares two expressions elementwise for equality.
func Eq[T DType](a, b Expr[T]) Expr[bool] { return array.Eq(a, b) }

// Ne compares two expressions elementwise for inequality.
func Ne[T DType](a, b Expr[T]) Expr[bool] { return array.Ne(a, b) }

// Lt compares two expressions elementwise with less-than.
func Lt[T Numeric](a, b Expr[T]) Expr[bool] { return array.Lt(a, b) }

// Le compares two expressions elementwise with less-or-equal.
func Le[T Numeric](a, b Expr[T]) Expr[bool] { return array.Le(a, b) }

// Gt compares two expressions elementwise with greater-than.
func Gt[T Numeric](a, b Expr[T]) Expr[bool] { return array.Gt(a, b) }

// Ge compares two expressions elementwise with greater-or-equal.
func Ge[T Numeric](a, b Expr[T]) Expr[bool] { return array.Ge(a, b) }

// LogicalAnd combines two boolean expressions elementwise.
func LogicalAnd(a, b Expr[bool]) Expr[bool] { return array.LogicalAnd(a, b) }

// LogicalOr combines two boolean expressions elementwise.
func LogicalOr(a, b Expr[bool]) Expr[bool] { return array.LogicalOr(a, b) }

// LogicalNot inverts a boolean expression elementwise.
func LogicalNot(e Expr[bool]) Expr[bool] { return array.LogicalNot(e) }

// Where selects from x where cond holds and from y elsewhere. All
// three operands broadcast together.
//
// Example:
//
//	e := array.Where(array.Lt[float64](a, array.Scalar(0.0)), array.Scalar(0.0), a)
func Where[T DType](cond Expr[bool], x, y Expr[T]) Expr[T] {
	return array.Where(cond, x, y)
}

// Apply builds an expression that maps fn over every element.
func Apply[T DType](e Expr[T], fn func(T) T) Expr[T] { return array.Apply(e, fn) }

// Combine builds an expression that merges two operands elementwise
// with fn.
func Combine[T DType](a, b Expr[T], fn func(T, T) T) Expr[T] {
	return array.Combine(a, b, fn)
}

// Elementwise math wrappers.

// Exp applies the natural exponential elementwise.
func Exp[T Float](e Expr[T]) Expr[T] { return array.Exp(e) }

// Log applies the natural logarithm elementwise.
func Log[T Float](e Expr[T]) Expr[T] { return array.Log(e) }

// Sqrt applies the square root elementwise.
func Sqrt[T Float](e Expr[T]) Expr[T] { return array.Sqrt(e) }

// Pow raises every element to the power p.
func Pow[T Float](e Expr[T], p T) Expr[T] { return array.Pow(e, p) }

// Sin applies the sine elementwise.
func Sin[T Float](e Expr[T]) Expr[T] { return array.Sin(e) }

// Cos applies the cosine elementwise.
func Cos[T Float](e Expr[T]) Expr[T] { return array.Cos(e) }

// Tanh applies the hyperbolic tangent elementwise.
func Tanh[T Float](e Expr[T]) Expr[T] { return array.Tanh(e) }

// Evaluation

// Materialize evaluates an expression into a fresh row-major array,
// one pass over the elements with no intermediate arrays.
//
// Example:
//
//	c := array.Materialize(array.Add[float64](a, b))
func Materialize[T DType](e Expr[T]) *Array[T] {
	return array.Materialize(e)
}

// ParallelConfig controls goroutine use during parallel evaluation.
// The zero value disables parallelism.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a parallel evaluation configuration
// sized to the machine's CPU count.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// MaterializeParallel evaluates an expression like Materialize,
// splitting the work across goroutines when the expression reads
// contiguous row-major leaves, constants, ranges, or selections.
// Expressions holding broadcast or structural nodes evaluate
// sequentially. Functions passed to Apply and Combine may be called
// from multiple goroutines at once.
//
// Example:
//
//	c := array.MaterializeParallel(array.Mul[float64](a, b), array.DefaultParallelConfig())
func MaterializeParallel[T DType](e Expr[T], cfg ParallelConfig) *Array[T] {
	return array.MaterializeParallel(e, cfg)
}

// Assign evaluates an expression into an existing destination. The
// expression broadcasts to the destination shape; a source that would
// widen beyond it fails with ErrShapeMismatch. When the destination's
// storage also appears in the expression under a different layout,
// the expression is evaluated to a temporary first.
//
// Example:
//
//	err := array.Assign(dst, array.Mul[float64](a, array.Scalar(2.0)))
func Assign[T DType](dst Mutable[T], e Expr[T]) error {
	return array.Assign(dst, e)
}

// Fill writes a single value to every element of the destination.
func Fill[T DType](dst Mutable[T], v T) { array.Fill(dst, v) }

// At evaluates a single element of an expression.
func At[T DType](e Expr[T], indices ...int) T { return array.At(e, indices...) }

// AtFlat evaluates the element at a row-major flat position.
func AtFlat[T DType](e Expr[T], i int) T { return array.AtFlat(e, i) }

// Values iterates an expression's elements in row-major order,
// evaluating lazily as the caller consumes them.
//
// Example:
//
//	for v := range array.Values[float64](e) {
//	    fmt.Println(v)
//	}
func Values[T DType](e Expr[T]) iter.Seq[T] { return array.Values(e) }

// Compound assignment

// AddAssign evaluates dst = dst + src elementwise.
func AddAssign[T Numeric](dst Mutable[T], src Expr[T]) error { return array.AddAssign(dst, src) }

// SubAssign evaluates dst = dst - src elementwise.
func SubAssign[T Numeric](dst Mutable[T], src Expr[T]) error { return array.SubAssign(dst, src) }

// MulAssign evaluates dst = dst * src elementwise.
func MulAssign[T Numeric](dst Mutable[T], src Expr[T]) error { return array.MulAssign(dst, src) }

// DivAssign evaluates dst = dst / src elementwise.
func DivAssign[T Numeric](dst Mutable[T], src Expr[T]) error { return array.DivAssign(dst, src) }

// ModAssign evaluates dst = dst % src elementwise.
func ModAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.ModAssign(dst, src) }

// AndAssign evaluates dst = dst & src elementwise.
func AndAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.AndAssign(dst, src) }

// OrAssign evaluates dst = dst | src elementwise.
func OrAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.OrAssign(dst, src) }

// XorAssign evaluates dst = dst ^ src elementwise.
func XorAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.XorAssign(dst, src) }

// ShlAssign evaluates dst = dst << src elementwise.
func ShlAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.ShlAssign(dst, src) }

// ShrAssign evaluates dst = dst >> src elementwise.
func ShrAssign[T Integer](dst Mutable[T], src Expr[T]) error { return array.ShrAssign(dst, src) }
