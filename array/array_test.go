// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ndkit/nd/array"
)

// TestExprInterfaces verifies the public aliases satisfy the
// expression contracts.
func TestExprInterfaces(_ *testing.T) {
	var _ array.Expr[float64] = (*array.Array[float64])(nil)
	var _ array.Expr[float64] = (*array.View[float64])(nil)
	var _ array.Expr[float64] = (*array.Selection[float64])(nil)
	var _ array.Mutable[float64] = (*array.Array[float64])(nil)
	var _ array.Mutable[float64] = (*array.View[float64])(nil)
	var _ array.Mutable[float64] = (*array.Selection[float64])(nil)
}

// TestCreationAPI verifies the public creation surface.
func TestCreationAPI(t *testing.T) {
	a := array.Zeros[float64](array.Shape{2, 3})
	if !a.Shape().Equal(array.Shape{2, 3}) {
		t.Errorf("Zeros shape = %v, want [2 3]", a.Shape())
	}
	if a.DType() != array.Float64 {
		t.Errorf("DType = %v, want float64", a.DType())
	}

	id := array.Eye[float64](3)
	if id.At(1, 1) != 1 || id.At(0, 1) != 0 {
		t.Error("Eye is not an identity matrix")
	}

	b, err := array.FromSlice([]int32{1, 2, 3, 4}, array.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if b.At(1, 0) != 3 {
		t.Errorf("At(1, 0) = %v, want 3", b.At(1, 0))
	}

	c := array.Full(array.Shape{2}, true, array.WithOrder(array.ColMajor))
	if c.Order() != array.ColMajor {
		t.Errorf("Order = %v, want ColMajor", c.Order())
	}

	r := array.Rand[float64](array.Shape{20}, rand.New(rand.NewPCG(1, 2)))
	for _, v := range r.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Rand sample %v outside [0, 1)", v)
		}
	}
}

// TestSlicingAPI verifies spec constructors and view write-through.
func TestSlicingAPI(t *testing.T) {
	m := array.FromFunc(array.Shape{4, 4}, func(ix array.Index) float64 {
		return float64(ix[0]*4 + ix[1])
	})

	block, err := m.Slice(array.Range(1, 3), array.RangeStep(0, 4, 2))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if !block.Shape().Equal(array.Shape{2, 2}) {
		t.Fatalf("Slice shape = %v, want [2 2]", block.Shape())
	}
	if block.At(0, 1) != 6 {
		t.Errorf("block.At(0, 1) = %v, want 6", block.At(0, 1))
	}

	block.Set(-1, 0, 0)
	if m.At(1, 0) != -1 {
		t.Error("View write did not reach the parent array")
	}

	rev, err := m.Slice(array.Step(-1))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if rev.At(0, 0) != m.At(3, 0) {
		t.Error("Step(-1) did not reverse the leading axis")
	}

	row, err := m.Slice(array.Idx(2))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if !row.Shape().Equal(array.Shape{4}) {
		t.Errorf("Idx slice shape = %v, want [4]", row.Shape())
	}
}

// TestExpressionAPI verifies lazy construction, materialization, and
// assignment through the public wrappers.
func TestExpressionAPI(t *testing.T) {
	a, err := array.FromSlice([]float64{1, 2, 3}, array.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	b, err := array.FromSlice([]float64{10, 20, 30}, array.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	e := array.Mul[float64](array.Add[float64](a, b), array.Scalar(2.0))
	c := array.Materialize(e)
	want := []float64{22, 44, 66}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("Element %d = %v, want %v", i, c.Data()[i], w)
		}
	}

	dst := array.Zeros[float64](array.Shape{3})
	if err := array.Assign(dst, array.Neg[float64](a)); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if dst.At(2) != -3 {
		t.Errorf("Assign result = %v, want -3", dst.At(2))
	}

	if err := array.AddAssign(dst, array.Scalar(1.0)); err != nil {
		t.Fatalf("AddAssign failed: %v", err)
	}
	if dst.At(0) != 0 {
		t.Errorf("AddAssign result = %v, want 0", dst.At(0))
	}

	masked := array.Where(array.Gt[float64](a, array.Scalar(1.5)), a, array.Scalar(0.0))
	if array.At(masked, 0) != 0 || array.At(masked, 2) != 3 {
		t.Error("Where selected the wrong branches")
	}
}

// TestIndirectAPI verifies selections through the public surface.
func TestIndirectAPI(t *testing.T) {
	a, err := array.FromSlice([]int{10, 11, 12, 13}, array.Shape{4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	sel, err := a.TakeFlat([]int{3, 1})
	if err != nil {
		t.Fatalf("TakeFlat failed: %v", err)
	}
	g := sel.Gather()
	if g.At(0) != 13 || g.At(1) != 11 {
		t.Errorf("Gather = %v, want [13 11]", g.Data())
	}

	array.Fill[int](sel, 0)
	if a.At(3) != 0 || a.At(1) != 0 || a.At(0) != 10 {
		t.Errorf("Fill result = %v, want [10 0 12 0]", a.Data())
	}
}

// TestReductionAPI verifies reductions and axis variants.
func TestReductionAPI(t *testing.T) {
	m, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if got := array.Sum[float64](m); got != 21 {
		t.Errorf("Sum = %v, want 21", got)
	}
	mean, err := array.Mean[float64](m)
	if err != nil || mean != 3.5 {
		t.Errorf("Mean = %v (err %v), want 3.5", mean, err)
	}

	cols, err := array.SumAxis[float64](m, 0)
	if err != nil {
		t.Fatalf("SumAxis failed: %v", err)
	}
	if cols.At(2) != 9 {
		t.Errorf("SumAxis(0) last = %v, want 9", cols.At(2))
	}

	arg, err := array.ArgMax[float64](m)
	if err != nil || arg != 5 {
		t.Errorf("ArgMax = %v (err %v), want 5", arg, err)
	}

	mask := array.Gt[float64](m, array.Scalar(4.0))
	if array.AllTrue(mask) || !array.AnyTrue(mask) {
		t.Error("Mask staples disagree with the data")
	}
}

// TestGeneratorAPI verifies the lazy index-space generators.
func TestGeneratorAPI(t *testing.T) {
	e, err := array.Arange[int](0, 10, 3)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	if !e.Shape().Equal(array.Shape{4}) {
		t.Fatalf("Arange shape = %v, want [4]", e.Shape())
	}
	if array.At(e, 3) != 9 {
		t.Errorf("Arange last = %v, want 9", array.At(e, 3))
	}

	lin, err := array.Linspace(0.0, 1.0, 5)
	if err != nil {
		t.Fatalf("Linspace failed: %v", err)
	}
	if array.At(lin, 4) != 1.0 {
		t.Errorf("Linspace endpoint = %v, want exactly 1", array.At(lin, 4))
	}
}

// TestStructuralAPI verifies the structural routines.
func TestStructuralAPI(t *testing.T) {
	a, err := array.FromSlice([]int{1, 2, 3}, array.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	rev, err := array.Reverse[int](a)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if array.At(rev, 0) != 3 {
		t.Errorf("Reverse first = %v, want 3", array.At(rev, 0))
	}

	sh, err := array.Shift[int](a, 0, 1)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	if array.At(sh, 0) != 3 {
		t.Errorf("Shift first = %v, want 3", array.At(sh, 0))
	}

	m, err := array.FromSlice([]int{1, 2, 3, 4}, array.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	d, err := array.Diagonal[int](m, 0)
	if err != nil {
		t.Fatalf("Diagonal failed: %v", err)
	}
	if array.At(d, 1) != 4 {
		t.Errorf("Diagonal last = %v, want 4", array.At(d, 1))
	}
}

// TestErrorSentinels verifies the re-exported errors classify
// failures from the public surface.
func TestErrorSentinels(t *testing.T) {
	a := array.Zeros[float64](array.Shape{2, 3})

	if _, err := a.Reshape(array.Shape{5}); !errors.Is(err, array.ErrShapeMismatch) {
		t.Errorf("Reshape error = %v, want ErrShapeMismatch", err)
	}
	if _, err := a.Slice(array.Idx(9)); !errors.Is(err, array.ErrIndexOutOfRange) {
		t.Errorf("Slice error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := array.Arange[int](0, 5, 0); !errors.Is(err, array.ErrInvalidArgument) {
		t.Errorf("Arange error = %v, want ErrInvalidArgument", err)
	}
}

// TestBroadcastShapesAPI verifies the shape utility.
func TestBroadcastShapesAPI(t *testing.T) {
	shape, widened, err := array.BroadcastShapes(array.Shape{3, 1}, array.Shape{1, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !shape.Equal(array.Shape{3, 4}) || !widened {
		t.Errorf("BroadcastShapes = %v widened=%v, want [3 4] true", shape, widened)
	}
}

// TestParallelAPI verifies parallel evaluation matches the sequential
// result on both chunked and fallback expressions.
func TestParallelAPI(t *testing.T) {
	n := 20_000
	a := array.FromFunc(array.Shape{n}, func(ix array.Index) float64 { return float64(ix[0]) })

	cfg := array.DefaultParallelConfig()
	cfg.MinChunkSize = 128

	e := array.Add(array.Mul[float64](a, a), array.Scalar(1.0))
	got := array.MaterializeParallel(e, cfg)
	if !array.Equal[float64](got, array.Materialize(e)) {
		t.Error("Parallel result differs from sequential result")
	}
	if v := got.Data()[100]; v != 100*100+1 {
		t.Errorf("Element 100 = %v, want 10001", v)
	}

	rev, err := array.Reverse[float64](a)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	back := array.MaterializeParallel(rev, cfg)
	if v := back.Data()[0]; v != float64(n-1) {
		t.Errorf("Reversed first element = %v, want %d", v, n-1)
	}
}
