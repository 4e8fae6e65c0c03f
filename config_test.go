package rrt

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestDefaultConfigValidates(t *testing.T) {
	t.Parallel()
	test.That(t, DefaultConfig().Validate(), test.ShouldBeNil)
}

func TestWithOptionsOverrideDefaults(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	for _, opt := range []Option{
		WithPlannerName(VariantRRTStar),
		WithSamplePoints(1000),
		WithSampleMaxD(3.5),
		WithObstacleFactor(0.9),
	} {
		opt(&cfg)
	}
	test.That(t, cfg.PlannerName, test.ShouldEqual, VariantRRTStar)
	test.That(t, cfg.SamplePoints, test.ShouldEqual, 1000)
	test.That(t, cfg.SampleMaxD, test.ShouldEqual, 3.5)
	test.That(t, cfg.ObstacleFactor, test.ShouldEqual, 0.9)
}

func TestValidateRejectsUnknownVariant(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.PlannerName = Variant("not-a-real-variant")
	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	var cfgErr *ConfigurationError
	test.That(t, errors.As(err, &cfgErr), test.ShouldBeTrue)
}

func TestValidateRejectsNonPositiveSamplePoints(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.SamplePoints = 0
	test.That(t, cfg.Validate(), test.ShouldNotBeNil)
}

func TestValidateRejectsNonPositiveSampleMaxD(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.SampleMaxD = -1
	test.That(t, cfg.Validate(), test.ShouldNotBeNil)
}

func TestValidateRejectsNegativeOptimizationRadius(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.OptimizationR = -5
	test.That(t, cfg.Validate(), test.ShouldNotBeNil)
}
