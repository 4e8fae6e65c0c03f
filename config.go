package rrt

// Config is the value passed to an Engine; there is no module-level
// configuration state anywhere in this package (spec.md §9).
type Config struct {
	PlannerName Variant

	// Seed drives the per-call RNG (spec.md §8.4's determinism invariant:
	// identical Config and start/goal with the same nonzero Seed always
	// returns the same path). Zero means "no seed requested": Plan draws a
	// fresh random seed each call, so two calls may diverge.
	Seed int64

	SamplePoints   int
	SampleMaxD     float64
	OptimizationR  float64
	ObstacleFactor float64
	OutlineMap     bool
	DefaultTol     float64

	// Quick-Informed only.
	PriorSampleSetR  float64
	RewireThreadsNum int
	StepExtendD      float64
	TDistrFreedom    float64
}

// Option mutates a Config under construction, the way daoran-rdk's
// PlannerOptions is assembled field by field rather than via a map of
// untyped options.
type Option func(*Config)

// DefaultConfig returns the spec.md §6 documented defaults.
func DefaultConfig() Config {
	return Config{
		PlannerName:      VariantRRT,
		SamplePoints:     500,
		SampleMaxD:       5.0,
		OptimizationR:    10.0,
		ObstacleFactor:   0.5,
		OutlineMap:       false,
		DefaultTol:       0.0,
		PriorSampleSetR:  10.0,
		RewireThreadsNum: 2,
		StepExtendD:      5.0,
		TDistrFreedom:    1.0,
	}
}

// WithPlannerName selects the variant.
func WithPlannerName(v Variant) Option { return func(c *Config) { c.PlannerName = v } }

// WithSeed fixes the per-call RNG seed, making Plan reproducible: the same
// Config and start/goal pair with the same nonzero seed always grows the
// same tree and returns the same path (spec.md §8.4).
func WithSeed(seed int64) Option { return func(c *Config) { c.Seed = seed } }

// WithSamplePoints sets the iteration budget.
func WithSamplePoints(n int) Option { return func(c *Config) { c.SamplePoints = n } }

// WithSampleMaxD sets the steering step, in cell units.
func WithSampleMaxD(d float64) Option { return func(c *Config) { c.SampleMaxD = d } }

// WithOptimizationRadius sets the RRT*-family rewire neighborhood radius.
func WithOptimizationRadius(r float64) Option { return func(c *Config) { c.OptimizationR = r } }

// WithObstacleFactor sets the traversal cost scale factor.
func WithObstacleFactor(f float64) Option { return func(c *Config) { c.ObstacleFactor = f } }

// WithOutlineMap toggles lethal border injection at plan() entry.
func WithOutlineMap(on bool) Option { return func(c *Config) { c.OutlineMap = on } }

// WithDefaultTolerance sets the world-frame goal acceptance radius.
func WithDefaultTolerance(t float64) Option { return func(c *Config) { c.DefaultTol = t } }

// WithPriorSampleSetRadius sets Quick-Informed's prior-set disk radius.
func WithPriorSampleSetRadius(r float64) Option { return func(c *Config) { c.PriorSampleSetR = r } }

// WithRewireThreads sets Quick-Informed's parallel-rewire shard count.
func WithRewireThreads(n int) Option { return func(c *Config) { c.RewireThreadsNum = n } }

// WithStepExtendD sets Quick-Informed's adaptive steering step.
func WithStepExtendD(d float64) Option { return func(c *Config) { c.StepExtendD = d } }

// WithTDistributionFreedom sets Quick-Informed's t-distribution tail
// parameter.
func WithTDistributionFreedom(v float64) Option { return func(c *Config) { c.TDistrFreedom = v } }

// Validate enforces spec.md §7's ConfigurationError invariants.
func (c Config) Validate() error {
	switch c.PlannerName {
	case VariantRRT, VariantRRTStar, VariantRRTConnect, VariantInformedRRT, VariantQuickInformed:
	default:
		return &ConfigurationError{Field: "planner_name", Reason: "unrecognized planner variant " + string(c.PlannerName)}
	}
	if c.SamplePoints <= 0 {
		return &ConfigurationError{Field: "sample_points", Reason: "must be positive"}
	}
	if c.SampleMaxD <= 0 {
		return &ConfigurationError{Field: "sample_max_d", Reason: "must be positive"}
	}
	if c.OptimizationR < 0 {
		return &ConfigurationError{Field: "optimization_r", Reason: "must not be negative"}
	}
	if c.PriorSampleSetR < 0 {
		return &ConfigurationError{Field: "prior_sample_set_r", Reason: "must not be negative"}
	}
	if c.RewireThreadsNum < 0 {
		return &ConfigurationError{Field: "rewire_threads_num", Reason: "must not be negative"}
	}
	if c.StepExtendD < 0 {
		return &ConfigurationError{Field: "step_extend_d", Reason: "must not be negative"}
	}
	return nil
}
