// Package rrtutils holds statistical diagnostics for the asymptotic-
// optimality testable property SPEC_FULL.md §8/§12 describes: run a
// cost-reducing variant (RRT*, Informed RRT*, Quick-Informed RRT*) across an
// increasing sample budget and check that cBest trends down and stabilizes
// rather than wandering or diverging.
package rrtutils

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
)

// ConvergenceSample is one (sample_points, final cBest) observation from a
// sequence of Plan calls at increasing budgets.
type ConvergenceSample struct {
	SamplePoints int
	CBest        float64
}

// ConvergenceReport summarizes a ConvergenceSample series.
type ConvergenceReport struct {
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	Monotonic  bool // true if cBest never increased across the series
	Histogram  string
}

// Summarize computes descriptive statistics over a convergence series and
// renders an ASCII histogram of the cBest distribution, the way a test or
// the demo command reports on a batch of repeated plans.
func Summarize(samples []ConvergenceSample) (ConvergenceReport, error) {
	if len(samples) == 0 {
		return ConvergenceReport{}, fmt.Errorf("rrtutils: no samples to summarize")
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.CBest
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return ConvergenceReport{}, fmt.Errorf("rrtutils: mean: %w", err)
	}
	stddev, err := stats.StandardDeviation(values)
	if err != nil {
		return ConvergenceReport{}, fmt.Errorf("rrtutils: stddev: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return ConvergenceReport{}, fmt.Errorf("rrtutils: min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return ConvergenceReport{}, fmt.Errorf("rrtutils: max: %w", err)
	}

	monotonic := true
	for i := 1; i < len(samples); i++ {
		if samples[i].CBest > samples[i-1].CBest+1e-9 {
			monotonic = false
			break
		}
	}

	var buf strings.Builder
	hist, err := histogram.Hist(histogramBinCount(len(values)), values)
	if err == nil {
		_ = histogram.Fprint(&buf, hist, histogram.Linear(60))
	}

	return ConvergenceReport{
		Mean:      mean,
		StdDev:    stddev,
		Min:       min,
		Max:       max,
		Monotonic: monotonic,
		Histogram: buf.String(),
	}, nil
}

// histogramBinCount picks a small, fixed bin count for the sample sizes a
// convergence test realistically runs (tens to low hundreds of repeats), per
// uniplot's own guidance of preferring few, readable bins over a
// data-driven rule like Sturges'.
func histogramBinCount(n int) int {
	switch {
	case n < 5:
		return 1
	case n < 20:
		return 5
	default:
		return 10
	}
}
