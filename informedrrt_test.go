package rrt

import (
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestRunInformedRRTFindsPath(t *testing.T) {
	t.Parallel()
	g := openGrid(30, 30)
	cfg := DefaultConfig()
	cfg.SamplePoints = 2500
	cfg.OptimizationR = 8
	e := newEngine(g, cfg, 21, 1, 1, 26, 26)

	chain, stats, err := runInformedRRT(e, NewCancel())
	test.That(t, err, test.ShouldBeNil)
	assertValidChain(t, g, chain)
	test.That(t, stats.FinalCBest, test.ShouldBeGreaterThan, 0)
}

func TestEllipseSampleMembershipOnceCBestKnown(t *testing.T) {
	t.Parallel()
	g := openGrid(40, 40)
	ellipse := EllipseSampler{
		Grid: g, StartX: 2, StartY: 2, GoalX: 37, GoalY: 37,
		Fallback: UniformSampler{NX: 40, NY: 40},
	}
	cMin := DistF(2, 2, 37, 37)
	cBest := cMin * 1.3

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 30; i++ {
		x, y := ellipse.Sample(rng, cBest)
		dStart := DistF(2, 2, float64(x), float64(y))
		dGoal := DistF(float64(x), float64(y), 37, 37)
		// Ellipse membership: the sum of distances to both foci never
		// exceeds the major axis (2a = cBest), up to rounding slack from
		// snapping the continuous sample to an integer cell.
		test.That(t, dStart+dGoal, test.ShouldBeLessThanOrEqualTo, cBest+2.0)
	}
}
