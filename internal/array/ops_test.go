package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticOps(t *testing.T) {
	a, err := FromSlice([]float64{5, 6, 7, 8}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr Expr[float64]
		want []float64
	}{
		{"add", Add[float64](a, b), []float64{6, 8, 10, 12}},
		{"sub", Sub[float64](a, b), []float64{4, 4, 4, 4}},
		{"mul", Mul[float64](a, b), []float64{5, 12, 21, 32}},
		{"div", Div[float64](a, b), []float64{5, 3, 7.0 / 3.0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Materialize(tt.expr).Data())
		})
	}
}

func TestIntegerOps(t *testing.T) {
	a, err := FromSlice([]int{7, 12, 5, 8}, Shape{4})
	require.NoError(t, err)
	b, err := FromSlice([]int{3, 5, 4, 2}, Shape{4})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr Expr[int]
		want []int
	}{
		{"mod", Mod[int](a, b), []int{1, 2, 1, 0}},
		{"and", And[int](a, b), []int{3, 4, 4, 0}},
		{"or", Or[int](a, b), []int{7, 13, 5, 10}},
		{"xor", Xor[int](a, b), []int{4, 9, 1, 10}},
		{"shl", Shl[int](a, b), []int{56, 384, 80, 32}},
		{"shr", Shr[int](a, b), []int{0, 0, 0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Materialize(tt.expr).Data())
		})
	}
}

func TestUnaryOps(t *testing.T) {
	a, err := FromSlice([]int{-2, 0, 3}, Shape{3})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, -3}, Materialize(Neg[int](a)).Data())
	assert.Equal(t, []int{2, 0, 3}, Materialize(Abs[int](a)).Data())
	assert.Equal(t, []int{1, -1, -4}, Materialize(Invert[int](a)).Data())
	assert.Equal(t, []int{-1, 0, 2}, Materialize(Clamp[int](a, -1, 2)).Data())
}

func TestComparisonOps(t *testing.T) {
	a, err := FromSlice([]int{1, 5, 3}, Shape{3})
	require.NoError(t, err)
	b, err := FromSlice([]int{2, 5, 1}, Shape{3})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr Expr[bool]
		want []bool
	}{
		{"eq", Eq[int](a, b), []bool{false, true, false}},
		{"ne", Ne[int](a, b), []bool{true, false, true}},
		{"lt", Lt[int](a, b), []bool{true, false, false}},
		{"le", Le[int](a, b), []bool{true, true, false}},
		{"gt", Gt[int](a, b), []bool{false, false, true}},
		{"ge", Ge[int](a, b), []bool{false, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Materialize(tt.expr).Data())
		})
	}
}

func TestLogicalOps(t *testing.T) {
	a, err := FromSlice([]bool{true, true, false, false}, Shape{4})
	require.NoError(t, err)
	b, err := FromSlice([]bool{true, false, true, false}, Shape{4})
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, false, false}, Materialize(LogicalAnd(a, b)).Data())
	assert.Equal(t, []bool{true, true, true, false}, Materialize(LogicalOr(a, b)).Data())
	assert.Equal(t, []bool{false, false, true, true}, Materialize(LogicalNot(a)).Data())
}

func TestWhere(t *testing.T) {
	a, err := FromSlice([]int{1, -2, 3, -4}, Shape{4})
	require.NoError(t, err)

	// Negative values are replaced with zero.
	out := Materialize(Where(Lt[int](a, Scalar(0)), Scalar(0), a))
	assert.Equal(t, []int{1, 0, 3, 0}, out.Data())
}

func TestWhereBroadcast(t *testing.T) {
	cond, err := FromSlice([]bool{true, false, true}, Shape{3})
	require.NoError(t, err)
	x, err := From2D([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	out := Materialize(Where[int](cond, x, Scalar(0)))
	assert.True(t, out.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, []int{1, 0, 3, 4, 0, 6}, out.Data())
}

func TestWhereShapeMismatchPanics(t *testing.T) {
	cond := Zeros[bool](Shape{3})
	x := Zeros[int](Shape{4})

	assertPanicErr(t, ErrShapeMismatch, func() { Where[int](cond, x, Scalar(0)) })
}

func TestCompareBroadcast(t *testing.T) {
	m, err := From2D([][]int{{1, 5}, {7, 2}})
	require.NoError(t, err)

	mask := Materialize(Gt[int](m, Scalar(4)))
	assert.Equal(t, []bool{false, true, true, false}, mask.Data())
}

func TestApply(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	out := Materialize(Apply[float64](a, func(v float64) float64 { return v*v + 1 }))
	assert.Equal(t, []float64{2, 5, 10}, out.Data())
}

func TestCombine(t *testing.T) {
	a, err := FromSlice([]float64{1, 8, 27}, Shape{3})
	require.NoError(t, err)
	b, err := FromSlice([]float64{3, 2, 3}, Shape{3})
	require.NoError(t, err)

	out := Materialize(Combine[float64](a, b, func(x, y float64) float64 {
		return math.Pow(x, 1/y)
	}))
	assert.InDeltaSlice(t, []float64{1, 2 * math.Sqrt2, 3}, out.Data(), 1e-9)
}

func TestMathOps(t *testing.T) {
	a, err := FromSlice([]float64{0, 1, 2}, Shape{3})
	require.NoError(t, err)

	exp := Materialize(Exp[float64](a))
	assert.InDeltaSlice(t, []float64{1, math.E, math.E * math.E}, exp.Data(), 1e-12)

	sq := Materialize(Sqrt[float64](Materialize(Exp[float64](a))))
	assert.InDelta(t, math.Sqrt(math.E), sq.At(1), 1e-12)

	logs := Materialize(Log[float64](exp))
	assert.InDeltaSlice(t, []float64{0, 1, 2}, logs.Data(), 1e-12)

	pows := Materialize(Pow[float64](a, 2))
	assert.Equal(t, []float64{0, 1, 4}, pows.Data())

	s := Materialize(Sin[float64](a))
	c := Materialize(Cos[float64](a))
	th := Materialize(Tanh[float64](a))
	assert.InDelta(t, math.Sin(2), s.At(2), 1e-12)
	assert.InDelta(t, math.Cos(2), c.At(2), 1e-12)
	assert.InDelta(t, math.Tanh(2), th.At(2), 1e-12)
}

func TestClampFloat(t *testing.T) {
	a, err := FromSlice([]float64{-1.5, 0.25, 9}, Shape{3})
	require.NoError(t, err)

	out := Materialize(Clamp[float64](a, 0, 1))
	assert.Equal(t, []float64{0, 0.25, 1}, out.Data())
}
