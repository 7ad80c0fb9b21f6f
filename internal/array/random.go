package array

import (
	"math"
	"math/rand/v2"
)

// Rand creates an array of independent uniform samples in [0, 1).
// The caller supplies the source, so seeding it makes runs
// reproducible. Panics if the shape is invalid.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	a := array.Rand[float64](array.Shape{2, 3}, rng)
func Rand[T Float](shape Shape, rng *rand.Rand, opts ...Option) *Array[T] {
	a := Zeros[T](shape, opts...)
	for i := range a.data {
		a.data[i] = T(rng.Float64())
	}
	return a
}

// Randn creates an array of independent samples from the standard
// normal distribution, generated with the Box-Muller transform.
// Panics if the shape is invalid.
func Randn[T Float](shape Shape, rng *rand.Rand, opts ...Option) *Array[T] {
	a := Zeros[T](shape, opts...)
	for i := range a.data {
		u1 := rng.Float64()
		for u1 == 0 {
			u1 = rng.Float64()
		}
		u2 := rng.Float64()
		a.data[i] = T(math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2))
	}
	return a
}
