package array

import (
	"math"

	"github.com/pkg/errors"
)

// Reductions fold over the lazy element sequence of an expression
// without materializing it. Whole-array forms reduce every element;
// axis forms reduce along one axis and return an array of reduced
// rank. A negative axis counts from the end.

// Sum returns the sum of all elements. The sum of an empty expression
// is zero.
func Sum[T Numeric](e Expr[T]) T {
	var acc T
	for v := range Values(e) {
		acc += v
	}
	return acc
}

// Prod returns the product of all elements. The product of an empty
// expression is one.
func Prod[T Numeric](e Expr[T]) T {
	acc := T(1)
	for v := range Values(e) {
		acc *= v
	}
	return acc
}

// Min returns the smallest element. Reducing an empty expression is
// an error.
func Min[T Numeric](e Expr[T]) (T, error) {
	var acc T
	first := true
	for v := range Values(e) {
		if first || v < acc {
			acc = v
			first = false
		}
	}
	if first {
		return acc, errors.Wrapf(ErrInvalidArgument, "min of empty expression with shape %v", e.Shape())
	}
	return acc, nil
}

// Max returns the largest element. Reducing an empty expression is an
// error.
func Max[T Numeric](e Expr[T]) (T, error) {
	var acc T
	first := true
	for v := range Values(e) {
		if first || v > acc {
			acc = v
			first = false
		}
	}
	if first {
		return acc, errors.Wrapf(ErrInvalidArgument, "max of empty expression with shape %v", e.Shape())
	}
	return acc, nil
}

// Mean returns the arithmetic mean of all elements as float64.
// Reducing an empty expression is an error.
func Mean[T Numeric](e Expr[T]) (float64, error) {
	n := e.Shape().NumElements()
	if n == 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "mean of empty expression with shape %v", e.Shape())
	}
	sum := 0.0
	for v := range Values(e) {
		sum += float64(v)
	}
	return sum / float64(n), nil
}

// Var returns the variance of all elements with the given delta
// degrees of freedom: the squared deviations from the mean are summed
// and divided by n-ddof. A denominator that is not positive is an
// explicit error, never a silent NaN.
func Var[T Numeric](e Expr[T], ddof int) (float64, error) {
	n := e.Shape().NumElements()
	if n-ddof <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "variance denominator %d-%d is not positive", n, ddof)
	}
	mu, err := Mean(e)
	if err != nil {
		return 0, err
	}
	sq := 0.0
	for v := range Values(e) {
		d := float64(v) - mu
		sq += d * d
	}
	return sq / float64(n-ddof), nil
}

// Std returns the standard deviation of all elements with the given
// delta degrees of freedom.
func Std[T Numeric](e Expr[T], ddof int) (float64, error) {
	variance, err := Var(e, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// ArgMax returns the logical flat position of the largest element.
// Ties resolve to the first occurrence in flat order.
func ArgMax[T Numeric](e Expr[T]) (int, error) {
	return argReduce(e, func(v, best T) bool { return v > best })
}

// ArgMin returns the logical flat position of the smallest element.
// Ties resolve to the first occurrence in flat order.
func ArgMin[T Numeric](e Expr[T]) (int, error) {
	return argReduce(e, func(v, best T) bool { return v < best })
}

func argReduce[T Numeric](e Expr[T], better func(v, best T) bool) (int, error) {
	var best T
	arg := -1
	i := 0
	for v := range Values(e) {
		if arg < 0 || better(v, best) {
			best = v
			arg = i
		}
		i++
	}
	if arg < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "arg reduction of empty expression with shape %v", e.Shape())
	}
	return arg, nil
}

// AllTrue reports whether every element of a boolean expression is
// true. It is true for an empty expression.
func AllTrue(e Expr[bool]) bool {
	for v := range Values(e) {
		if !v {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one element of a boolean
// expression is true. It is false for an empty expression.
func AnyTrue(e Expr[bool]) bool {
	for v := range Values(e) {
		if v {
			return true
		}
	}
	return false
}

// Equal reports whether two expressions have the same shape and equal
// elements everywhere.
func Equal[T DType](a, b Expr[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	shape := a.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		if a.item(ix) != b.item(ix) {
			return false
		}
		incIndex(ix, shape)
	}
	return true
}

// AllClose reports whether two expressions have the same shape and
// every pair of elements is within atol plus rtol times the magnitude
// of the second. Comparisons involving NaN are false.
func AllClose[T Float](a, b Expr[T], rtol, atol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	shape := a.Shape()
	n := shape.NumElements()
	ix := make(Index, len(shape))
	for i := 0; i < n; i++ {
		x, y := float64(a.item(ix)), float64(b.item(ix))
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false
		}
		incIndex(ix, shape)
	}
	return true
}

// normalizeAxis resolves a possibly negative axis selector for the
// given rank.
func normalizeAxis(axis, rank int) (int, error) {
	ax := axis
	if ax < 0 {
		ax += rank
	}
	if ax < 0 || ax >= rank {
		return 0, errors.Wrapf(ErrInvalidArgument, "axis %d out of range for rank %d", axis, rank)
	}
	return ax, nil
}

// removeAxis returns the shape with one axis dropped.
func removeAxis(shape Shape, ax int) Shape {
	out := make(Shape, 0, len(shape)-1)
	out = append(out, shape[:ax]...)
	return append(out, shape[ax+1:]...)
}

// axisFold iterates the reduced output in logical flat order, calling
// cell with a reusable full-rank index positioned at the cell and the
// extent of the reduced axis.
func axisFold[T DType, R DType](e Expr[T], ax int, out *Array[R], cell func(full Index, dim int) R) {
	shape := e.Shape()
	dim := shape[ax]
	full := make(Index, len(shape))
	outIx := make(Index, len(out.shape))
	for i := 0; i < len(out.data); i++ {
		k := 0
		for a := range full {
			if a == ax {
				continue
			}
			full[a] = outIx[k]
			k++
		}
		out.data[i] = cell(full, dim)
		incIndex(outIx, out.shape)
	}
}

// SumAxis sums along one axis, returning an array of reduced rank.
//
// Example:
//
//	m, _ := array.From2D([][]int{{1, 2, 3}, {4, 5, 6}})
//	s, _ := array.SumAxis[int](m, 0) // [5 7 9]
func SumAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[T](removeAxis(e.Shape(), ax))
	axisFold(e, ax, out, func(full Index, dim int) T {
		var acc T
		for d := 0; d < dim; d++ {
			full[ax] = d
			acc += e.item(full)
		}
		return acc
	})
	return out, nil
}

// ProdAxis multiplies along one axis, returning an array of reduced
// rank.
func ProdAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[T](removeAxis(e.Shape(), ax))
	axisFold(e, ax, out, func(full Index, dim int) T {
		acc := T(1)
		for d := 0; d < dim; d++ {
			full[ax] = d
			acc *= e.item(full)
		}
		return acc
	})
	return out, nil
}

// MinAxis takes the minimum along one axis. Reducing an empty axis to
// a non-empty result is an error.
func MinAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return minMaxAxis(e, axis, "min", func(v, best T) bool { return v < best })
}

// MaxAxis takes the maximum along one axis. Reducing an empty axis to
// a non-empty result is an error.
func MaxAxis[T Numeric](e Expr[T], axis int) (*Array[T], error) {
	return minMaxAxis(e, axis, "max", func(v, best T) bool { return v > best })
}

func minMaxAxis[T Numeric](e Expr[T], axis int, name string, better func(v, best T) bool) (*Array[T], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[T](removeAxis(e.Shape(), ax))
	if e.Shape()[ax] == 0 && len(out.data) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s over empty axis %d of shape %v", name, axis, e.Shape())
	}
	axisFold(e, ax, out, func(full Index, dim int) T {
		full[ax] = 0
		best := e.item(full)
		for d := 1; d < dim; d++ {
			full[ax] = d
			if v := e.item(full); better(v, best) {
				best = v
			}
		}
		return best
	})
	return out, nil
}

// MeanAxis averages along one axis as float64. Reducing an empty axis
// to a non-empty result is an error.
func MeanAxis[T Numeric](e Expr[T], axis int) (*Array[float64], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[float64](removeAxis(e.Shape(), ax))
	dim := e.Shape()[ax]
	if dim == 0 && len(out.data) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "mean over empty axis %d of shape %v", axis, e.Shape())
	}
	axisFold(e, ax, out, func(full Index, _ int) float64 {
		sum := 0.0
		for d := 0; d < dim; d++ {
			full[ax] = d
			sum += float64(e.item(full))
		}
		return sum / float64(dim)
	})
	return out, nil
}

// VarAxis computes the variance along one axis as float64 with the
// given delta degrees of freedom. A denominator that is not positive
// is an explicit error.
func VarAxis[T Numeric](e Expr[T], axis, ddof int) (*Array[float64], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[float64](removeAxis(e.Shape(), ax))
	dim := e.Shape()[ax]
	if dim-ddof <= 0 && len(out.data) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "variance denominator %d-%d is not positive", dim, ddof)
	}
	axisFold(e, ax, out, func(full Index, _ int) float64 {
		sum := 0.0
		for d := 0; d < dim; d++ {
			full[ax] = d
			sum += float64(e.item(full))
		}
		mu := sum / float64(dim)
		sq := 0.0
		for d := 0; d < dim; d++ {
			full[ax] = d
			dv := float64(e.item(full)) - mu
			sq += dv * dv
		}
		return sq / float64(dim-ddof)
	})
	return out, nil
}

// StdAxis computes the standard deviation along one axis as float64
// with the given delta degrees of freedom.
func StdAxis[T Numeric](e Expr[T], axis, ddof int) (*Array[float64], error) {
	out, err := VarAxis(e, axis, ddof)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = math.Sqrt(out.data[i])
	}
	return out, nil
}

// ArgMaxAxis returns the position of the largest element along one
// axis, first occurrence on ties. Reducing an empty axis to a
// non-empty result is an error.
func ArgMaxAxis[T Numeric](e Expr[T], axis int) (*Array[int], error) {
	return argAxis(e, axis, "argmax", func(v, best T) bool { return v > best })
}

// ArgMinAxis returns the position of the smallest element along one
// axis, first occurrence on ties. Reducing an empty axis to a
// non-empty result is an error.
func ArgMinAxis[T Numeric](e Expr[T], axis int) (*Array[int], error) {
	return argAxis(e, axis, "argmin", func(v, best T) bool { return v < best })
}

func argAxis[T Numeric](e Expr[T], axis int, name string, better func(v, best T) bool) (*Array[int], error) {
	ax, err := normalizeAxis(axis, e.Shape().Rank())
	if err != nil {
		return nil, err
	}
	out := Zeros[int](removeAxis(e.Shape(), ax))
	if e.Shape()[ax] == 0 && len(out.data) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s over empty axis %d of shape %v", name, axis, e.Shape())
	}
	axisFold(e, ax, out, func(full Index, dim int) int {
		full[ax] = 0
		best := e.item(full)
		arg := 0
		for d := 1; d < dim; d++ {
			full[ax] = d
			if v := e.item(full); better(v, best) {
				best = v
				arg = d
			}
		}
		return arg
	})
	return out, nil
}
