package array

// Expression constructors. Each builds an operation node instead of
// computing a result; the broadcast shape of the operands is computed
// immediately and incompatible shapes panic with ErrShapeMismatch at
// construction, not at evaluation.

// mustBroadcast computes the broadcast shape of two operands, panicking
// on incompatibility.
func mustBroadcast(a, b Shape) Shape {
	s, _, err := BroadcastShapes(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

func unary[T DType](e Expr[T], fn func(T) T) Expr[T] {
	return &unaryNode[T]{child: e, shape: e.Shape().Clone(), fn: fn}
}

func binary[T DType](a, b Expr[T], fn func(T, T) T) Expr[T] {
	shape := mustBroadcast(a.Shape(), b.Shape())
	return &binaryNode[T]{a: a.lift(shape), b: b.lift(shape), shape: shape, fn: fn}
}

func compare[T DType](a, b Expr[T], fn func(T, T) bool) Expr[bool] {
	shape := mustBroadcast(a.Shape(), b.Shape())
	return &cmpNode[T]{a: a.lift(shape), b: b.lift(shape), shape: shape, fn: fn}
}

// Add returns the lazy element-wise sum of two expressions.
//
// Example:
//
//	sum := array.Materialize(array.Add(a, b))
func Add[T Numeric](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub returns the lazy element-wise difference of two expressions.
func Sub[T Numeric](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul returns the lazy element-wise product of two expressions.
func Mul[T Numeric](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div returns the lazy element-wise quotient of two expressions.
// Integer division by zero panics at evaluation, as in Go.
func Div[T Numeric](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// Mod returns the lazy element-wise remainder with Go semantics.
func Mod[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x % y })
}

// And returns the lazy element-wise bitwise conjunction.
func And[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x & y })
}

// Or returns the lazy element-wise bitwise disjunction.
func Or[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x | y })
}

// Xor returns the lazy element-wise bitwise exclusive or.
func Xor[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x ^ y })
}

// Shl returns the lazy element-wise left shift of a by b positions.
func Shl[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x << y })
}

// Shr returns the lazy element-wise right shift of a by b positions.
func Shr[T Integer](a, b Expr[T]) Expr[T] {
	return binary(a, b, func(x, y T) T { return x >> y })
}

// Neg returns the lazy element-wise negation.
func Neg[T Numeric](e Expr[T]) Expr[T] {
	return unary(e, func(x T) T { return -x })
}

// Abs returns the lazy element-wise absolute value.
func Abs[T Numeric](e Expr[T]) Expr[T] {
	return unary(e, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Invert returns the lazy element-wise bitwise complement.
func Invert[T Integer](e Expr[T]) Expr[T] {
	return unary(e, func(x T) T { return ^x })
}

// Clamp returns a lazy expression limiting every element to [lo, hi].
func Clamp[T Numeric](e Expr[T], lo, hi T) Expr[T] {
	return unary(e, func(x T) T {
		return min(max(x, lo), hi)
	})
}

// Eq returns the lazy element-wise equality comparison.
func Eq[T DType](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// Ne returns the lazy element-wise inequality comparison.
func Ne[T DType](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// Lt returns the lazy element-wise less-than comparison.
func Lt[T Numeric](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// Le returns the lazy element-wise less-or-equal comparison.
func Le[T Numeric](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// Gt returns the lazy element-wise greater-than comparison.
func Gt[T Numeric](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// Ge returns the lazy element-wise greater-or-equal comparison.
func Ge[T Numeric](a, b Expr[T]) Expr[bool] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// LogicalAnd returns the lazy element-wise conjunction of two boolean
// expressions.
func LogicalAnd(a, b Expr[bool]) Expr[bool] {
	return binary(a, b, func(x, y bool) bool { return x && y })
}

// LogicalOr returns the lazy element-wise disjunction of two boolean
// expressions.
func LogicalOr(a, b Expr[bool]) Expr[bool] {
	return binary(a, b, func(x, y bool) bool { return x || y })
}

// LogicalNot returns the lazy element-wise negation of a boolean
// expression.
func LogicalNot(e Expr[bool]) Expr[bool] {
	return unary(e, func(x bool) bool { return !x })
}

// Where returns a lazy element-wise select: where cond holds the
// result takes its element from x, elsewhere from y. All three
// operands broadcast together.
//
// Example:
//
//	r := array.Where(array.Gt(a, array.Scalar(0.0)), a, array.Neg(a))
func Where[T DType](cond Expr[bool], x, y Expr[T]) Expr[T] {
	shape := mustBroadcast(mustBroadcast(cond.Shape(), x.Shape()), y.Shape())
	return &whereNode[T]{cond: cond.lift(shape), x: x.lift(shape), y: y.lift(shape), shape: shape}
}

// Apply returns a lazy expression mapping fn over every element. It is
// the extension point for custom unary operations.
//
// Example:
//
//	squared := array.Apply(a, func(x float64) float64 { return x * x })
func Apply[T DType](e Expr[T], fn func(T) T) Expr[T] {
	return unary(e, fn)
}

// Combine returns a lazy expression merging two operands with fn. It
// is the extension point for custom binary operations and follows the
// same broadcasting rules as the built-in operators.
func Combine[T DType](a, b Expr[T], fn func(T, T) T) Expr[T] {
	return binary(a, b, fn)
}
