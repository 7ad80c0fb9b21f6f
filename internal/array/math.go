package array

import "math"

// Elementwise math wrappers. Each is a unary operation tag over the
// Apply extension point, computed in float64 precision.

// Exp returns the lazy element-wise natural exponential.
func Exp[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Exp(float64(x))) })
}

// Log returns the lazy element-wise natural logarithm.
func Log[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Log(float64(x))) })
}

// Sqrt returns the lazy element-wise square root.
func Sqrt[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// Pow returns the lazy element-wise power x**p.
func Pow[T Float](e Expr[T], p T) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Pow(float64(x), float64(p))) })
}

// Sin returns the lazy element-wise sine.
func Sin[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Sin(float64(x))) })
}

// Cos returns the lazy element-wise cosine.
func Cos[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Cos(float64(x))) })
}

// Tanh returns the lazy element-wise hyperbolic tangent.
func Tanh[T Float](e Expr[T]) Expr[T] {
	return Apply(e, func(x T) T { return T(math.Tanh(float64(x))) })
}
