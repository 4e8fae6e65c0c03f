package rrt

import (
	"testing"

	"go.viam.com/test"
)

func TestNeighborManagerSerialMatchesParallel(t *testing.T) {
	t.Parallel()
	set := NewSampleSet()
	for i := 0; i < 50; i++ {
		set.Insert(&Node{X: i, Y: 0, ID: i, PID: -1})
	}

	serial := &neighborManager{nCPU: 1}
	parallel := &neighborManager{nCPU: 4}

	// Force the parallel path regardless of set size by calling its internal
	// sharded scan directly would require exporting it; instead this checks
	// that both managers agree at a size below the threshold, where both
	// take the serial branch, and is extended below at a forced size.
	gotSerial := serial.Nearest(set, 49, 0)
	gotParallel := parallel.Nearest(set, 49, 0)
	test.That(t, gotSerial.ID, test.ShouldEqual, gotParallel.ID)
}

func TestNeighborManagerAboveThresholdAgreesWithSerialScan(t *testing.T) {
	t.Parallel()
	set := NewSampleSet()
	for i := 0; i < parallelNeighborThreshold+10; i++ {
		set.Insert(&Node{X: i % 100, Y: i / 100, ID: i, PID: -1})
	}

	parallel := &neighborManager{nCPU: 4}
	want := set.Nearest(37, 3)
	got := parallel.Nearest(set, 37, 3)
	test.That(t, Dist(got.X, got.Y, 37, 3), test.ShouldEqual, Dist(want.X, want.Y, 37, 3))
}

func TestNeighborManagerWithinDelegatesToSet(t *testing.T) {
	t.Parallel()
	set := NewSampleSet()
	set.Insert(&Node{X: 0, Y: 0, ID: 0, PID: -1})
	set.Insert(&Node{X: 100, Y: 100, ID: 1, PID: -1})

	nm := &neighborManager{nCPU: 2}
	within := nm.Within(set, 0, 0, 1)
	test.That(t, len(within), test.ShouldEqual, 1)
}

func TestNeighborManagerWorkersFloorsAtOne(t *testing.T) {
	t.Parallel()
	nm := &neighborManager{nCPU: 0}
	test.That(t, nm.workers(), test.ShouldEqual, 1)
}
