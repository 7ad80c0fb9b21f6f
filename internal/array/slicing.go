package array

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Spec selects elements along one axis of a slicing operation.
// Build values with Idx, All, Range, RangeStep, From, To, and Step.
// Negative start, stop, and index values count from the end of the
// axis; range bounds are clamped to the axis like Python slices, and
// a single index out of bounds is an error.
type Spec struct {
	index    int
	start    int
	stop     int
	step     int
	hasIndex bool
	hasStart bool
	hasStop  bool
}

// Idx selects a single position along an axis, reducing the rank of
// the result by one. Negative positions count from the end.
func Idx(i int) Spec {
	return Spec{index: i, hasIndex: true, step: 1}
}

// All selects the whole axis.
func All() Spec {
	return Spec{step: 1}
}

// Range selects the half-open interval [start, stop) with step 1.
func Range(start, stop int) Spec {
	return Spec{start: start, stop: stop, hasStart: true, hasStop: true, step: 1}
}

// RangeStep selects [start, stop) visiting every step-th position.
// A negative step walks the axis backwards; step must not be zero.
func RangeStep(start, stop, step int) Spec {
	return Spec{start: start, stop: stop, hasStart: true, hasStop: true, step: step}
}

// From selects everything from start to the end of the axis.
func From(start int) Spec {
	return Spec{start: start, hasStart: true, step: 1}
}

// To selects everything from the beginning of the axis up to stop.
func To(stop int) Spec {
	return Spec{stop: stop, hasStop: true, step: 1}
}

// Step selects the whole axis visiting every step-th position.
// Step(-1) reverses the axis.
func Step(step int) Spec {
	return Spec{step: step}
}

// resolve computes the start position and element count for the spec
// applied to an axis of size n, following Python slice semantics.
func (sp Spec) resolve(n int) (start, count int, err error) {
	if sp.hasIndex {
		i := sp.index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return 0, 0, errors.Wrapf(ErrIndexOutOfRange, "index %d out of bounds (size %d)", sp.index, n)
		}
		return i, 1, nil
	}
	step := sp.step
	if step == 0 {
		return 0, 0, errors.Wrapf(ErrInvalidArgument, "slice step must not be zero")
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	start = upper
	if step > 0 {
		start = lower
	}
	if sp.hasStart {
		start = sp.start
		if start < 0 {
			start += n
		}
		start = min(max(start, lower), upper)
	}

	stop := lower
	if step > 0 {
		stop = upper
	}
	if sp.hasStop {
		stop = sp.stop
		if stop < 0 {
			stop += n
		}
		stop = min(max(stop, lower), upper)
	}

	if step > 0 && start < stop {
		count = (stop-start-1)/step + 1
	} else if step < 0 && start > stop {
		count = (start-stop-1)/(-step) + 1
	}
	return start, count, nil
}

// slice derives offset, shape, and strides for the specs applied to
// a strided layout. Per-axis failures are aggregated.
func sliceLayout(shape Shape, strides []int, offset int, specs []Spec) (int, Shape, []int, error) {
	if len(specs) > len(shape) {
		return 0, nil, nil, errors.Wrapf(ErrInvalidArgument, "%d slice specs for rank %d", len(specs), len(shape))
	}
	var (
		outShape   Shape
		outStrides []int
		errs       error
	)
	for a := range shape {
		sp := All()
		if a < len(specs) {
			sp = specs[a]
		}
		start, count, err := sp.resolve(shape[a])
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "axis %d", a))
			continue
		}
		if count > 0 {
			offset += start * strides[a]
		}
		if sp.hasIndex {
			continue
		}
		outShape = append(outShape, count)
		outStrides = append(outStrides, sp.step*strides[a])
	}
	if errs != nil {
		return 0, nil, nil, errs
	}
	if outShape == nil {
		outShape = Shape{}
		outStrides = []int{}
	}
	return offset, outShape, outStrides, nil
}

// Slice returns a strided view selecting the requested elements.
// Axes without a spec default to All. A spec built with Idx removes
// its axis from the result.
//
// Example:
//
//	a := array.Zeros[float64](array.Shape{4, 5})
//	v, _ := a.Slice(array.Range(1, 3), array.Step(2)) // shape (2, 3)
func (a *Array[T]) Slice(specs ...Spec) (*View[T], error) {
	return a.view().Slice(specs...)
}

// Slice returns a view selecting the requested elements of the view.
func (v *View[T]) Slice(specs ...Spec) (*View[T], error) {
	offset, shape, strides, err := sliceLayout(v.shape, v.strides, v.offset, specs)
	if err != nil {
		return nil, err
	}
	return &View[T]{data: v.data, offset: offset, shape: shape, strides: strides, order: v.order}, nil
}
