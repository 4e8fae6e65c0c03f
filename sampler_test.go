package rrt

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestUniformSamplerStaysInBounds(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	s := UniformSampler{NX: 10, NY: 20}
	for i := 0; i < 100; i++ {
		x, y := s.Sample(rng)
		test.That(t, x, test.ShouldBeBetweenOrEqual, 0, 9)
		test.That(t, y, test.ShouldBeBetweenOrEqual, 0, 19)
	}
}

func TestEllipseSamplerFallsBackWhenCBestInfinite(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	g := NewGrid(30, 30, 1, 0, 0)
	s := EllipseSampler{Grid: g, StartX: 0, StartY: 0, GoalX: 29, GoalY: 29, Fallback: UniformSampler{NX: 30, NY: 30}}

	x, y := s.Sample(rng, math.Inf(1))
	test.That(t, g.InBounds(x, y), test.ShouldBeTrue)
}

func TestEllipseSamplerStaysWithinGrid(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	g := NewGrid(50, 50, 1, 0, 0)
	s := EllipseSampler{Grid: g, StartX: 5, StartY: 5, GoalX: 45, GoalY: 45, Fallback: UniformSampler{NX: 50, NY: 50}}

	cMin := DistF(5, 5, 45, 45)
	for i := 0; i < 50; i++ {
		x, y := s.Sample(rng, cMin*1.5)
		test.That(t, g.InBounds(x, y), test.ShouldBeTrue)
	}
}

func TestTDistributionRadialStaysInUnitInterval(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	radial := TDistributionRadial(1)
	for i := 0; i < 200; i++ {
		r, theta := radial(rng)
		test.That(t, r, test.ShouldBeBetweenOrEqual, 0.0, 1.0)
		test.That(t, theta, test.ShouldBeBetweenOrEqual, 0.0, 2*math.Pi)
	}
}

func TestPriorSetSamplerStaysNearPath(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))
	g := NewGrid(100, 100, 1, 0, 0)
	path := []*Node{{X: 50, Y: 50}}
	s := PriorSetSampler{Grid: g, Path: path, R: 5}

	for i := 0; i < 50; i++ {
		x, y := s.Sample(rng)
		test.That(t, Dist(50, 50, x, y), test.ShouldBeLessThanOrEqualTo, 5.0+1e-9)
	}
}

func TestPriorSetSamplerEmptyPathFallsBackUniform(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	g := NewGrid(10, 10, 1, 0, 0)
	s := PriorSetSampler{Grid: g, Path: nil, R: 5}
	x, y := s.Sample(rng)
	test.That(t, g.InBounds(x, y), test.ShouldBeTrue)
}
