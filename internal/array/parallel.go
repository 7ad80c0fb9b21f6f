package array

import "github.com/ndkit/nd/internal/parallel"

// MaterializeParallel evaluates an expression into a new owning
// row-major array like Materialize, splitting the element range
// across goroutines. Only trees whose nodes read independent flat
// positions are chunked: contiguous row-major leaves, constants,
// ranges, selections, and elementwise nodes over them. Trees holding
// broadcast or structural nodes share per-call scratch and evaluate
// sequentially instead.
//
// Element functions passed to Apply, Combine, and Clamp may be called
// from multiple goroutines at once and must be safe for that.
//
// Example:
//
//	r := array.MaterializeParallel(array.Mul(a, b), parallel.DefaultConfig())
func MaterializeParallel[T DType](e Expr[T], cfg parallel.Config) *Array[T] {
	out := Zeros[T](e.Shape())
	if len(out.data) == 0 {
		return out
	}
	if !cfg.Enabled {
		materializeInto(out, e)
		return out
	}
	ev := flatReader(e)
	if ev == nil {
		materializeInto(out, e)
		return out
	}
	data := out.data
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = ev(i)
		}
	}, cfg)
	return out
}

// flatLeaf is satisfied by leaves that can read their elements at
// logical flat positions directly.
type flatLeaf[T DType] interface {
	// flatRead returns a reader over flat positions, or nil when the
	// leaf's layout does not follow flat row-major order.
	flatRead() func(int) T
}

// flatReader builds a per-element reader over logical flat positions,
// or nil when some node of the tree cannot provide one. Construction
// lifted every operand to the root shape, so a single flat position
// addresses the same element in every node, and none of the accepted
// nodes holds shared evaluation state.
func flatReader[T DType](e Expr[T]) func(int) T {
	switch n := e.(type) {
	case flatLeaf[T]:
		return n.flatRead()
	case *unaryNode[T]:
		child := flatReader(n.child)
		if child == nil {
			return nil
		}
		fn := n.fn
		return func(i int) T { return fn(child(i)) }
	case *binaryNode[T]:
		a := flatReader(n.a)
		b := flatReader(n.b)
		if a == nil || b == nil {
			return nil
		}
		fn := n.fn
		return func(i int) T { return fn(a(i), b(i)) }
	case *whereNode[T]:
		cond := flatReader[bool](n.cond)
		x := flatReader(n.x)
		y := flatReader(n.y)
		if cond == nil || x == nil || y == nil {
			return nil
		}
		return func(i int) T {
			if cond(i) {
				return x(i)
			}
			return y(i)
		}
	}
	return nil
}

// flatRead implements flatLeaf for owning storage.
func (a *Array[T]) flatRead() func(int) T {
	if a.order != RowMajor {
		return nil
	}
	data := a.data
	return func(i int) T { return data[i] }
}

// flatRead implements flatLeaf. Only views laid out dense row-major
// from their base offset read flat; strided projections do not.
func (v *View[T]) flatRead() func(int) T {
	if !contiguous(v.shape, v.strides, RowMajor) {
		return nil
	}
	data, offset := v.data, v.offset
	return func(i int) T { return data[offset+i] }
}

// flatRead implements flatLeaf. Selection order is flat order.
func (s *Selection[T]) flatRead() func(int) T {
	data, locs := s.data, s.locs
	return func(i int) T { return data[locs[i]] }
}

// flatRead implements flatLeaf.
func (n *scalarNode[T]) flatRead() func(int) T {
	v := n.value
	return func(int) T { return v }
}

// flatRead implements flatLeaf. A range stays rank 1 until lifted, so
// the flat position is its coordinate.
func (r *rangeNode[T]) flatRead() func(int) T {
	start, step := r.start, r.step
	return func(i int) T { return start + T(i)*step }
}

// flatRead implements flatLeaf.
func (l *linspaceNode[T]) flatRead() func(int) T {
	last := l.shape[0] - 1
	start, stop := l.start, l.stop
	step := (stop - start) / T(last)
	return func(i int) T {
		if i == last {
			return stop
		}
		return start + T(i)*step
	}
}
