// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides NumPy-style n-dimensional arrays for Go.
//
// # Overview
//
// Arrays are dense, typed, in-memory containers with shape and
// broadcasting semantics. This package provides:
//   - Generic owning arrays (Array[T]) with row- or column-major layout
//   - Strided zero-copy views (View[T]) from slicing and transposition
//   - Indirect element access (Selection[T]) from index lists and masks
//   - Lazy elementwise expressions (Expr[T]) evaluated on demand
//   - Reductions, index-space generators, and structural routines
//
// # Basic Usage
//
//	import "github.com/ndkit/nd/array"
//
//	func main() {
//	    a := array.Zeros[float64](array.Shape{2, 3})
//	    b := array.Ones[float64](array.Shape{2, 3})
//
//	    // Expressions stay lazy until materialized.
//	    sum := array.Add[float64](a, b)
//	    c := array.Materialize(sum)
//
//	    total := array.Sum[float64](c)
//	    _ = total
//	}
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules. Shapes align
// from the trailing axis; extents must match or be 1:
//
//	row := array.Ones[float64](array.Shape{1, 4})   // (1, 4)
//	col := array.Ones[float64](array.Shape{3, 1})   // (3, 1)
//	e := array.Add[float64](row, col)               // (3, 4)
//
// Incompatible shapes panic with an error wrapping ErrShapeMismatch
// at expression construction time, not at evaluation time.
//
// # Views and Slicing
//
// Slicing returns a View sharing the source storage. Specs follow
// Python slice semantics, including negative positions and steps:
//
//	m := array.Zeros[float64](array.Shape{4, 4})
//	block, _ := m.Slice(array.Range(1, 3), array.All())
//	rev, _ := m.Slice(array.Step(-1))
//	block.Set(7, 0, 0) // writes through to m
//
// Transpose, Diagonal, Reshape, and Flatten also return views where
// the layout permits.
//
// # Lazy Expressions
//
// Arithmetic, comparison, and logical operators build expression
// trees instead of computing results. An expression evaluates once,
// elementwise, when assigned, materialized, or iterated:
//
//	e := array.Mul[float64](array.Add[float64](a, b), array.Scalar(2.0))
//	_ = array.Assign(dst, e) // single pass, no temporaries
//
// Assign detects when the destination buffer also appears on the
// right-hand side with a different layout and spills to a temporary,
// so in-place updates such as a = a + aᵀ stay correct.
//
// # Supported Element Types
//
// The DType constraint covers bool, every fixed-width integer type,
// int, uint, uintptr, float32, and float64. Arithmetic requires
// Numeric; bitwise operations require Integer; the transcendental
// helpers require Float.
package array
