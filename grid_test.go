package rrt

import (
	"testing"

	"go.viam.com/test"
)

func TestGridIndexBijection(t *testing.T) {
	t.Parallel()
	g := NewGrid(10, 7, 1, 0, 0)
	for y := 0; y < g.NY; y++ {
		for x := 0; x < g.NX; x++ {
			id := g.GridToIndex(x, y)
			gotX, gotY := g.IndexToGrid(id)
			test.That(t, gotX, test.ShouldEqual, x)
			test.That(t, gotY, test.ShouldEqual, y)
		}
	}
}

func TestWorldMapRoundTrip(t *testing.T) {
	t.Parallel()
	g := NewGrid(10, 10, 0.5, -2, -2)
	w := g.MapToWorld(3, 4)
	mx, my, ok := g.WorldToMap(w)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, mx, test.ShouldEqual, 3)
	test.That(t, my, test.ShouldEqual, 4)
}

func TestWorldToMapOffGrid(t *testing.T) {
	t.Parallel()
	g := NewGrid(5, 5, 1, 0, 0)
	_, _, ok := g.WorldToMap(World{X: 100, Y: 100})
	test.That(t, ok, test.ShouldBeFalse)
}

func TestLineOfSightBlockedByLethal(t *testing.T) {
	t.Parallel()
	g := NewGrid(10, 10, 1, 0, 0)
	g.Cost[g.GridToIndex(5, 5)] = Lethal
	test.That(t, g.LineOfSight(0, 5, 9, 5), test.ShouldBeFalse)
	test.That(t, g.LineOfSight(0, 0, 9, 0), test.ShouldBeTrue)
}

func TestLineOfSightOffGrid(t *testing.T) {
	t.Parallel()
	g := NewGrid(10, 10, 1, 0, 0)
	test.That(t, g.LineOfSight(0, 0, 20, 20), test.ShouldBeFalse)
}

func TestOutlinePaintsBorderLethal(t *testing.T) {
	t.Parallel()
	g := NewGrid(5, 5, 1, 0, 0)
	g.Outline()
	test.That(t, g.IsLethal(0, 0), test.ShouldBeTrue)
	test.That(t, g.IsLethal(4, 4), test.ShouldBeTrue)
	test.That(t, g.IsLethal(2, 2), test.ShouldBeFalse)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 1, 0, 0)
	cp := g.Clone()
	cp.Cost[0] = Lethal
	test.That(t, g.Cost[0], test.ShouldEqual, uint8(0))
}

func TestEdgeCostScalesWithObstacleFactor(t *testing.T) {
	t.Parallel()
	g := NewGrid(10, 10, 1, 0, 0)
	g.Cost[g.GridToIndex(2, 0)] = 200

	zero := g.EdgeCost(0, 0, 0, 2, 0)
	scaled := g.EdgeCost(1, 0, 0, 2, 0)
	test.That(t, scaled, test.ShouldBeGreaterThan, zero)
}

func TestCostAtOffGridIsLethal(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 1, 0, 0)
	test.That(t, g.CostAt(-1, 0), test.ShouldEqual, uint8(Lethal))
}
