package array

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Materialize evaluates an expression into a new owning row-major
// array in a single pass: one output allocation, every flat position
// evaluated exactly once, and no intermediate arrays regardless of
// the expression's depth.
//
// Example:
//
//	r := array.Materialize(array.Sub(array.Mul(a, b), c))
func Materialize[T DType](e Expr[T]) *Array[T] {
	out := Zeros[T](e.Shape())
	materializeInto(out, e)
	return out
}

// Assign evaluates an expression into an existing destination, which
// may be an owning array, a view, or a selection. The expression must
// broadcast to the destination's shape without widening it.
//
// When a leaf of the expression aliases the destination's buffer with
// the identical layout, the write runs in place; any other aliasing
// first materializes the expression into a temporary so evaluation
// never observes its own output.
func Assign[T DType](dst Mutable[T], e Expr[T]) error {
	le, err := liftOnto(dst, e)
	if err != nil {
		return err
	}
	if da, ok := dst.(*Array[T]); ok {
		materializeInto(da, le)
		return nil
	}
	shape := dst.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		dst.setItem(ix, le.item(ix))
		incIndex(ix, shape)
	}
	return nil
}

// Fill sets every element of the destination to the given value.
func Fill[T DType](dst Mutable[T], v T) {
	if da, ok := dst.(*Array[T]); ok {
		for i := range da.data {
			da.data[i] = v
		}
		return
	}
	shape := dst.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		dst.setItem(ix, v)
		incIndex(ix, shape)
	}
}

// liftOnto widens e to the destination's shape, verifying that the
// broadcast does not grow past it, and spills aliased operands.
func liftOnto[T DType](dst Mutable[T], e Expr[T]) (Expr[T], error) {
	dstShape := dst.Shape()
	s, _, err := BroadcastShapes(dstShape, e.Shape())
	if err != nil {
		return nil, errors.Wrapf(err, "assigning to destination %v", dstShape)
	}
	if !s.Equal(dstShape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "expression shape %v broadcasts beyond destination %v",
			e.Shape(), dstShape)
	}
	le := e
	if !e.Shape().Equal(dstShape) {
		le = e.lift(dstShape)
	}
	if aliasHazard(dst, le) {
		le = Materialize(le)
	}
	return le, nil
}

// materializeInto writes every element of e into out. The shapes are
// trusted to be equal. Row-major output tries the flat fast paths
// before falling back to the coordinate walk.
func materializeInto[T DType](out *Array[T], e Expr[T]) {
	if out.order == RowMajor && evalFlat(out.data, e) {
		return
	}
	if src, ok := e.(*Array[T]); ok && src.order == out.order {
		copy(out.data, src.data)
		return
	}
	if out.order == RowMajor {
		if ev := flatReader(e); ev != nil {
			for i := range out.data {
				out.data[i] = ev(i)
			}
			return
		}
	}
	shape := out.shape
	ix := make(Index, len(shape))
	for i := 0; i < len(out.data); i++ {
		out.setItem(ix, e.item(ix))
		incIndex(ix, shape)
	}
}

// evalFlat evaluates e into flat row-major storage when the top of the
// tree is flat-addressable, and reports whether it did. Shallow trees
// over contiguous row-major operands take this path with no
// per-element calls; deeper flat trees go through flatReader and
// everything else falls back to the coordinate walk.
func evalFlat[T DType](dst []T, e Expr[T]) bool {
	switch n := e.(type) {
	case *Array[T]:
		if n.order == RowMajor {
			copy(dst, n.data)
			return true
		}
	case *scalarNode[T]:
		for i := range dst {
			dst[i] = n.value
		}
		return true
	case *unaryNode[T]:
		cd, cs, cScalar, ok := flatOperand(n.child)
		if !ok {
			return false
		}
		if cScalar {
			v := n.fn(cs)
			for i := range dst {
				dst[i] = v
			}
		} else {
			for i := range dst {
				dst[i] = n.fn(cd[i])
			}
		}
		return true
	case *binaryNode[T]:
		ad, as, aScalar, aok := flatOperand(n.a)
		bd, bs, bScalar, bok := flatOperand(n.b)
		if !aok || !bok {
			return false
		}
		switch {
		case aScalar && bScalar:
			v := n.fn(as, bs)
			for i := range dst {
				dst[i] = v
			}
		case aScalar:
			for i := range dst {
				dst[i] = n.fn(as, bd[i])
			}
		case bScalar:
			for i := range dst {
				dst[i] = n.fn(ad[i], bs)
			}
		default:
			for i := range dst {
				dst[i] = n.fn(ad[i], bd[i])
			}
		}
		return true
	}
	return false
}

// flatOperand extracts a row-major contiguous buffer or a constant
// from an operand, when it has one.
func flatOperand[T DType](e Expr[T]) (data []T, scalar T, isScalar, ok bool) {
	switch n := e.(type) {
	case *Array[T]:
		if n.order == RowMajor {
			return n.data, scalar, false, true
		}
	case *scalarNode[T]:
		return nil, n.value, true, true
	}
	return nil, scalar, false, false
}

// opAssign applies dst = fn(dst, src) element-wise in place.
func opAssign[T DType](dst Mutable[T], src Expr[T], fn func(T, T) T) error {
	le, err := liftOnto(dst, src)
	if err != nil {
		return err
	}
	if da, ok := dst.(*Array[T]); ok && da.order == RowMajor {
		if fd, fs, fScalar, flat := flatOperand(le); flat {
			if fScalar {
				for i := range da.data {
					da.data[i] = fn(da.data[i], fs)
				}
			} else {
				for i := range da.data {
					da.data[i] = fn(da.data[i], fd[i])
				}
			}
			return nil
		}
	}
	shape := dst.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		dst.setItem(ix, fn(dst.item(ix), le.item(ix)))
		incIndex(ix, shape)
	}
	return nil
}

// AddAssign applies dst += src element-wise in place. The source may
// be any expression that broadcasts to the destination's shape.
//
// Example:
//
//	err := array.AddAssign[float64](a, array.Scalar(1.0))
func AddAssign[T Numeric](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x + y })
}

// SubAssign applies dst -= src element-wise in place.
func SubAssign[T Numeric](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x - y })
}

// MulAssign applies dst *= src element-wise in place.
func MulAssign[T Numeric](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x * y })
}

// DivAssign applies dst /= src element-wise in place.
func DivAssign[T Numeric](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x / y })
}

// ModAssign applies dst %= src element-wise in place.
func ModAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x % y })
}

// AndAssign applies dst &= src element-wise in place.
func AndAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x & y })
}

// OrAssign applies dst |= src element-wise in place.
func OrAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x | y })
}

// XorAssign applies dst ^= src element-wise in place.
func XorAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x ^ y })
}

// ShlAssign applies dst <<= src element-wise in place.
func ShlAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x << y })
}

// ShrAssign applies dst >>= src element-wise in place.
func ShrAssign[T Integer](dst Mutable[T], src Expr[T]) error {
	return opAssign(dst, src, func(x, y T) T { return x >> y })
}

// leafRef identifies the storage a leaf references: the buffer's base
// pointer and, for strided leaves, the layout over it.
type leafRef struct {
	ptr     unsafe.Pointer
	offset  int
	shape   Shape
	strides []int
	regular bool
}

func bufPtr[T DType](data []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(data))
}

// refs implements Expr.
func (a *Array[T]) refs(fn func(leafRef)) {
	fn(leafRef{ptr: bufPtr(a.data), offset: 0, shape: a.shape, strides: a.strides, regular: true})
}

// refs implements Expr.
func (v *View[T]) refs(fn func(leafRef)) {
	fn(leafRef{ptr: bufPtr(v.data), offset: v.offset, shape: v.shape, strides: v.strides, regular: true})
}

// refs implements Expr. Selections have no affine layout, so any
// overlap with a destination counts as a hazard.
func (s *Selection[T]) refs(fn func(leafRef)) {
	fn(leafRef{ptr: bufPtr(s.data)})
}

// aliasHazard reports whether any leaf of e shares the destination's
// buffer without being layout-identical to it.
func aliasHazard[T DType](dst Mutable[T], e Expr[T]) bool {
	var d leafRef
	dst.refs(func(r leafRef) { d = r })
	if d.ptr == nil {
		return false
	}
	hazard := false
	e.refs(func(r leafRef) {
		if r.ptr != d.ptr {
			return
		}
		if !sameLayout(r, d) {
			hazard = true
		}
	})
	return hazard
}

// sameLayout reports whether two regular references address the same
// storage positions in the same order. Strides on length-1 axes never
// contribute to an offset and are ignored.
func sameLayout(a, b leafRef) bool {
	if !a.regular || !b.regular || a.offset != b.offset || !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] > 1 && a.strides[i] != b.strides[i] {
			return false
		}
	}
	return true
}
