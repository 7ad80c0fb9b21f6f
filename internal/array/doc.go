// Package array implements an n-dimensional array algebra with
// NumPy-style semantics: shapes and broadcasting, strided views,
// index- and mask-based selections, and a lazy expression engine.
//
// The package is organized in layers, leaves first:
//
//   - Shape/Index algebra: extents, strides, broadcasting, and the
//     mapping between coordinates and flat positions.
//   - Array[T]: the owning container. It holds a contiguous buffer and
//     is the only type that owns memory.
//   - View[T]: a non-owning strided projection over an array's buffer,
//     produced by slicing, transposition, reshaping, and diagonals.
//     Writing through a view mutates the parent array in place.
//   - Selection[T]: a non-owning list of flat positions into an
//     array's buffer, produced by index lists and boolean masks.
//     Supports gather and scatter access.
//   - Expr[T]: a lazily evaluated expression. Arithmetic, comparison,
//     and logical constructors build operation nodes instead of
//     computing results; the broadcast shape is computed at
//     construction and incompatible operands panic immediately.
//     Materialize and Assign evaluate the tree in a single pass with
//     no intermediate allocations.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, 3}, array.Shape{3})
//	b, _ := array.FromSlice([]float64{10, 20, 30}, array.Shape{3})
//	sum := array.Materialize(array.Mul(array.Add(a, b), array.Scalar(2.0)))
//	// sum holds [22 44 66]
//
// Views, selections, and expressions hold references into their
// parent's buffer and must not outlive it. Within a single goroutine
// this reduces to ordinary value lifetime; the package performs no
// synchronization and concurrent mutation is undefined.
package array
