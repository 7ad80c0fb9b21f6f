package array

import (
	"math"

	"github.com/pkg/errors"
)

// rangeNode is a lazy arithmetic progression. Elements are computed
// from the start value and step on demand, so a range never allocates
// element storage.
type rangeNode[T Numeric] struct {
	start, step T
	shape       Shape
}

func (r *rangeNode[T]) Shape() Shape { return r.shape }

func (r *rangeNode[T]) item(ix Index) T { return r.start + T(ix[0])*r.step }

func (r *rangeNode[T]) lift(to Shape) Expr[T] {
	if r.shape.Equal(to) {
		return r
	}
	return broadcast[T](r, to)
}

func (r *rangeNode[T]) refs(func(leafRef)) {}

// Arange returns the lazy half-open progression start, start+step, ...
// stopping before stop. A step of zero is an error; an empty interval
// yields an empty expression.
//
// Example:
//
//	r, _ := array.Arange[int](0, 10, 3) // 0 3 6 9
func Arange[T Numeric](start, stop, step T) (Expr[T], error) {
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "arange step must not be zero")
	}
	n := int(math.Ceil(float64(stop-start) / float64(step)))
	if n < 0 {
		n = 0
	}
	return &rangeNode[T]{start: start, step: step, shape: Shape{n}}, nil
}

// linspaceNode spaces num points evenly over a closed interval. The
// last point is exactly stop rather than an accumulation of steps.
type linspaceNode[T Float] struct {
	start, stop T
	shape       Shape
}

func (l *linspaceNode[T]) Shape() Shape { return l.shape }

func (l *linspaceNode[T]) item(ix Index) T {
	n := l.shape[0]
	i := ix[0]
	if i == n-1 {
		return l.stop
	}
	step := (l.stop - l.start) / T(n-1)
	return l.start + T(i)*step
}

func (l *linspaceNode[T]) lift(to Shape) Expr[T] {
	if l.shape.Equal(to) {
		return l
	}
	return broadcast[T](l, to)
}

func (l *linspaceNode[T]) refs(func(leafRef)) {}

// Linspace returns num evenly spaced points from start to stop
// inclusive. With num of one the single point is start; a negative
// num is an error.
func Linspace[T Float](start, stop T, num int) (Expr[T], error) {
	if num < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "linspace point count %d is negative", num)
	}
	if num == 1 {
		return Scalar(start).lift(Shape{1}), nil
	}
	return &linspaceNode[T]{start: start, stop: stop, shape: Shape{num}}, nil
}

// Logspace returns num points whose logarithms in the given base are
// evenly spaced from start to stop, so the sequence runs from
// base**start to base**stop inclusive.
func Logspace[T Float](start, stop T, num int, base float64) (Expr[T], error) {
	exps, err := Linspace(start, stop, num)
	if err != nil {
		return nil, err
	}
	return Apply(exps, func(v T) T { return T(math.Pow(base, float64(v))) }), nil
}

// Geomspace returns num points evenly spaced on a geometric scale
// from start to stop inclusive. The endpoints must be nonzero and
// share a sign.
func Geomspace[T Float](start, stop T, num int) (Expr[T], error) {
	if start == 0 || stop == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "geomspace endpoints must not be zero")
	}
	if (start < 0) != (stop < 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "geomspace endpoints %v and %v differ in sign", start, stop)
	}
	sign := T(1)
	if start < 0 {
		sign = -1
	}
	exps, err := Linspace(T(math.Log10(math.Abs(float64(start)))), T(math.Log10(math.Abs(float64(stop)))), num)
	if err != nil {
		return nil, err
	}
	out := Apply(exps, func(v T) T { return sign * T(math.Pow(10, float64(v))) })
	if num == 0 {
		return out, nil
	}
	// Pin the endpoints so round-tripping through logarithms cannot
	// perturb them.
	return &endpointNode[T]{child: out, first: start, last: stop}, nil
}

// endpointNode overrides the first and last element of a rank-1
// expression with exact values.
type endpointNode[T Float] struct {
	child       Expr[T]
	first, last T
}

func (p *endpointNode[T]) Shape() Shape { return p.child.Shape() }

func (p *endpointNode[T]) item(ix Index) T {
	switch ix[0] {
	case 0:
		return p.first
	case p.child.Shape()[0] - 1:
		return p.last
	}
	return p.child.item(ix)
}

func (p *endpointNode[T]) lift(to Shape) Expr[T] {
	if p.Shape().Equal(to) {
		return p
	}
	return broadcast[T](p, to)
}

func (p *endpointNode[T]) refs(fn func(leafRef)) { p.child.refs(fn) }
