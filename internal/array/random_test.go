package array

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a := Rand[float64](Shape{50, 4}, rng)

	require.True(t, a.Shape().Equal(Shape{50, 4}))
	for i, v := range a.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Element %d = %v, want [0, 1)", i, v)
		}
	}
}

func TestRandReproducible(t *testing.T) {
	a := Rand[float64](Shape{100}, rand.New(rand.NewPCG(7, 7)))
	b := Rand[float64](Shape{100}, rand.New(rand.NewPCG(7, 7)))
	c := Rand[float64](Shape{100}, rand.New(rand.NewPCG(8, 8)))

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandnMoments(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 11))
	a := Randn[float64](Shape{10_000}, rng)

	mean, err := Mean[float64](a)
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 0.05)

	variance, err := Var[float64](a, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, variance, 0.1)
}

func TestRandnFloat32(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	a := Randn[float32](Shape{100}, rng)

	var seen bool
	for _, v := range a.Data() {
		if v != 0 {
			seen = true
		}
		if v < -10 || v > 10 {
			t.Fatalf("Sample %v implausibly far from zero", v)
		}
	}
	assert.True(t, seen, "all samples are zero")
}

func TestRandInvalidShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Panics(t, func() { Rand[float64](Shape{-1}, rng) })
	assert.Panics(t, func() { Randn[float64](Shape{2, -2}, rng) })
}
