package rrt

import "fmt"

// Variant selects which planner family member configure() instantiates.
type Variant string

// Recognized planner_name values.
const (
	VariantRRT           Variant = "rrt"
	VariantRRTStar       Variant = "rrt_star"
	VariantRRTConnect    Variant = "rrt_connect"
	VariantInformedRRT   Variant = "informed_rrt"
	VariantQuickInformed Variant = "quick_informed_rrt"
)

// ConfigurationError reports an invalid Config: unknown planner name,
// non-positive sample_points/sample_max_d, or a negative radius. No planner
// is usable until the caller fixes it.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gridrrt: invalid configuration field %q: %s", e.Field, e.Reason)
}

// OffGridError reports that start or goal fell outside the cost grid.
type OffGridError struct {
	Which string // "start" or "goal"
	World World
}

func (e *OffGridError) Error() string {
	return fmt.Sprintf("gridrrt: %s world point %v is off the cost grid", e.Which, e.World)
}

// NoPathFound reports that the sample budget was exhausted without a
// feasible start-goal connection.
type NoPathFound struct {
	Iterations int
}

func (e *NoPathFound) Error() string {
	return fmt.Sprintf("gridrrt: no path found after %d iterations", e.Iterations)
}

// CancellationRequested reports that the caller's cancellation handle (or
// deadline) fired before a solution was found. Same shape as NoPathFound,
// distinguished for callers that care why planning stopped.
type CancellationRequested struct {
	Iterations int
}

func (e *CancellationRequested) Error() string {
	return fmt.Sprintf("gridrrt: planning cancelled after %d iterations", e.Iterations)
}

// errGoalLethal is returned (wrapped in OffGridError's sibling path) when
// the goal cell itself is lethal; spec.md §6 routes it through the same
// "failure, no plan" mechanism as an off-grid goal.
var errGoalLethal = fmt.Errorf("gridrrt: goal cell is lethal")
