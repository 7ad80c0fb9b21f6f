package array

import "github.com/pkg/errors"

// Structural routines reorder how an expression is read without
// touching element values. Each returns a lazy node over its operand,
// so reversing or shifting a large array costs nothing until the
// result is consumed.

// reverseNode reads flipped axes back to front.
type reverseNode[T DType] struct {
	child   Expr[T]
	flip    []bool
	scratch Index
}

func (r *reverseNode[T]) Shape() Shape { return r.child.Shape() }

func (r *reverseNode[T]) item(ix Index) T {
	shape := r.child.Shape()
	for a, i := range ix {
		if r.flip[a] {
			r.scratch[a] = shape[a] - 1 - i
		} else {
			r.scratch[a] = i
		}
	}
	return r.child.item(r.scratch)
}

func (r *reverseNode[T]) lift(to Shape) Expr[T] {
	if r.Shape().Equal(to) {
		return r
	}
	return broadcast[T](r, to)
}

func (r *reverseNode[T]) refs(fn func(leafRef)) { r.child.refs(fn) }

// Reverse flips the element order along the given axes, or along
// every axis when none are given. Axes may be negative to count from
// the end; a repeated or out of range axis is an error.
func Reverse[T DType](e Expr[T], axes ...int) (Expr[T], error) {
	rank := e.Shape().Rank()
	flip := make([]bool, rank)
	if len(axes) == 0 {
		for a := range flip {
			flip[a] = true
		}
	}
	for _, axis := range axes {
		ax, err := normalizeAxis(axis, rank)
		if err != nil {
			return nil, err
		}
		if flip[ax] {
			return nil, errors.Wrapf(ErrInvalidArgument, "axis %d repeated in reverse", axis)
		}
		flip[ax] = true
	}
	return &reverseNode[T]{child: e, flip: flip, scratch: make(Index, rank)}, nil
}

// shiftNode reads an axis rotated by a fixed amount.
type shiftNode[T DType] struct {
	child   Expr[T]
	ax      int
	count   int
	scratch Index
}

func (s *shiftNode[T]) Shape() Shape { return s.child.Shape() }

func (s *shiftNode[T]) item(ix Index) T {
	n := s.child.Shape()[s.ax]
	copy(s.scratch, ix)
	s.scratch[s.ax] = (ix[s.ax] - s.count + n) % n
	return s.child.item(s.scratch)
}

func (s *shiftNode[T]) lift(to Shape) Expr[T] {
	if s.Shape().Equal(to) {
		return s
	}
	return broadcast[T](s, to)
}

func (s *shiftNode[T]) refs(fn func(leafRef)) { s.child.refs(fn) }

// Shift rotates elements along one axis by count positions. Elements
// pushed past the end wrap around to the start, so a positive count
// moves values toward higher indices. The count may exceed the axis
// extent or be negative.
func Shift[T DType](e Expr[T], axis, count int) (Expr[T], error) {
	rank := e.Shape().Rank()
	ax, err := normalizeAxis(axis, rank)
	if err != nil {
		return nil, err
	}
	n := e.Shape()[ax]
	if n > 0 {
		count = ((count % n) + n) % n
	} else {
		count = 0
	}
	return &shiftNode[T]{child: e, ax: ax, count: count, scratch: make(Index, rank)}, nil
}

// diagNode reads the offset diagonal of a rank-2 expression.
type diagNode[T DType] struct {
	child   Expr[T]
	offset  int
	shape   Shape
	scratch Index
}

func (d *diagNode[T]) Shape() Shape { return d.shape }

func (d *diagNode[T]) item(ix Index) T {
	row, col := ix[0], ix[0]+d.offset
	if d.offset < 0 {
		row, col = ix[0]-d.offset, ix[0]
	}
	d.scratch[0], d.scratch[1] = row, col
	return d.child.item(d.scratch)
}

func (d *diagNode[T]) lift(to Shape) Expr[T] {
	if d.shape.Equal(to) {
		return d
	}
	return broadcast[T](d, to)
}

func (d *diagNode[T]) refs(fn func(leafRef)) { d.child.refs(fn) }

// Diagonal returns the offset diagonal of a rank-2 expression as a
// lazy rank-1 expression. A positive offset selects a diagonal above
// the main one, a negative offset below; a diagonal that leaves the
// matrix has length zero.
func Diagonal[T DType](e Expr[T], offset int) (Expr[T], error) {
	shape := e.Shape()
	if shape.Rank() != 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "diagonal requires rank 2, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	n := 0
	if offset >= 0 {
		n = min(rows, cols-offset)
	} else {
		n = min(rows+offset, cols)
	}
	n = max(n, 0)
	return &diagNode[T]{child: e, offset: offset, shape: Shape{n}, scratch: make(Index, 2)}, nil
}
