// Package rrt is a family of sampling-based global path planners for 2D
// occupancy-grid navigation: RRT, RRT*, RRT-Connect, Informed RRT*, and
// Quick-Informed RRT*. Given a static cost grid, a start cell, and a goal
// cell, Planner.Plan produces a collision-free polyline of grid cells from
// start to goal.
//
// The navigation host (plug-in bus, blackboard, service endpoint,
// visualization) is explicitly out of scope: this package exposes a pure
// plan(start, goal) -> (path, expansion trace) entry point plus
// configuration, and leaves presentation, transport, and lifecycle to the
// caller.
package rrt

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/viam-labs/gridrrt/internal/logginfra"
)

// state names the FSM spec.md §4.9 documents for a single plan() call.
// Idle -> Initialized -> Growing -> {Found, Exhausted} -> Extracted|NoPath
// -> Idle.
type state int

const (
	stateIdle state = iota
	stateInitialized
	stateGrowing
	stateFound
	stateExhausted
	stateExtracted
	stateNoPath
)

// Planner is the host-facing entry point. A single Planner is not
// reentrant on Plan: a call must complete before the next begins.
type Planner struct {
	mu     sync.Mutex // guards grid/cfg mutation between calls, and state
	grid   *Grid
	cfg    Config
	logger logginfra.Logger
	closer func() error

	state state

	lastPath  []World
	lastStats Stats
}

// NewPlanner validates cfg and builds a Planner over grid. grid is treated
// as the host's live grid: the host is responsible for not mutating it
// concurrently with a Plan call in progress (spec.md §5's "shared lock the
// host provides").
func NewPlanner(grid *Grid, cfg Config, logger logginfra.Logger) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logginfra.NewNop()
	}
	return &Planner{grid: grid, cfg: cfg, logger: logger, state: stateIdle}, nil
}

// Configure applies options to a copy of the current Config, validates it,
// and swaps it in only if valid — never instantiates partially-valid state.
func (p *Planner) Configure(opts ...Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.cfg
	for _, opt := range opts {
		opt(&next)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	p.cfg = next
	return nil
}

// SetFactor mutates obstacle_factor between calls, per spec.md §6.
func (p *Planner) SetFactor(factor float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.ObstacleFactor = factor
}

// CostGrid returns the grid snapshot the planner currently holds.
func (p *Planner) CostGrid() *Grid {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grid
}

// WorldToMap exposes the grid's world->map conversion.
func (p *Planner) WorldToMap(w World) (mx, my int, ok bool) {
	return p.CostGrid().WorldToMap(w)
}

// MapToWorld exposes the grid's map->world conversion.
func (p *Planner) MapToWorld(mx, my int) World {
	return p.CostGrid().MapToWorld(mx, my)
}

// GridToIndex exposes the grid's cell-to-index bijection.
func (p *Planner) GridToIndex(x, y int) int {
	return p.CostGrid().GridToIndex(x, y)
}

// IndexToGrid exposes the grid's index-to-cell bijection.
func (p *Planner) IndexToGrid(id int) (x, y int) {
	return p.CostGrid().IndexToGrid(id)
}

// LastSuccessfulPath is the host-side "history_path" convenience spec.md §6
// waves off as not a core invariant: the most recent non-empty path
// returned by Plan, or nil if none has succeeded yet.
func (p *Planner) LastSuccessfulPath() []World {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPath
}

// Plan is the core entry point: plan(start, goal) -> (path, expansion
// trace). cancel may be nil, in which case the run proceeds to budget
// exhaustion with no deadline. stats carries the supplemental telemetry of
// SPEC_FULL.md §12.
func (p *Planner) Plan(startWorld, goalWorld World, cancel *Cancel) (success bool, path []World, trace *ExpansionTrace, stats Stats, err error) {
	p.mu.Lock()
	grid := p.grid
	cfg := p.cfg
	logger := p.logger
	p.mu.Unlock()

	runID := uuid.New().String()
	logger.Debugf("gridrrt: plan %s starting variant=%s", runID, cfg.PlannerName)

	p.setState(stateInitialized)

	if cfg.OutlineMap {
		grid = grid.Clone()
		grid.Outline()
	}

	startX, startY, startOK := grid.WorldToMap(startWorld)
	if !startOK {
		p.setState(stateIdle)
		return false, nil, nil, Stats{}, &OffGridError{Which: "start", World: startWorld}
	}
	goalX, goalY, goalOK := grid.WorldToMap(goalWorld)
	if !goalOK {
		p.setState(stateIdle)
		return false, nil, nil, Stats{}, &OffGridError{Which: "goal", World: goalWorld}
	}
	if grid.IsLethal(goalX, goalY) {
		p.setState(stateIdle)
		return false, nil, nil, Stats{}, fmt.Errorf("gridrrt: plan %s: %w", runID, errGoalLethal)
	}

	if cancel == nil {
		cancel = NewCancel()
	}

	seed := cfg.Seed
	if seed == 0 {
		seedBytes := uuid.New()
		seed = int64(binary.BigEndian.Uint64(seedBytes[:8])) //nolint:gosec // planning seed, not a security boundary
	}
	e := newEngine(grid, cfg, seed, startX, startY, goalX, goalY)

	p.setState(stateGrowing)

	var chain []*Node
	var runErr error
	switch cfg.PlannerName {
	case VariantRRT:
		chain, stats, runErr = runRRT(e, cancel)
	case VariantRRTStar:
		chain, stats, runErr = runRRTStar(e, cancel)
	case VariantRRTConnect:
		chain, stats, runErr = runRRTConnect(e, cancel)
	case VariantInformedRRT:
		chain, stats, runErr = runInformedRRT(e, cancel)
	case VariantQuickInformed:
		chain, stats, runErr = runQuickInformedRRT(e, cancel)
	default:
		// Unreachable: Configure/NewPlanner already validated PlannerName.
		runErr = &ConfigurationError{Field: "planner_name", Reason: "unrecognized at plan time"}
	}

	if runErr != nil {
		p.setState(stateExhausted)
		p.setState(stateNoPath)
		logger.Warnf("gridrrt: plan %s failed after %d iterations: %v", runID, stats.Iterations, runErr)
		return false, nil, e.trace, stats, fmt.Errorf("plan %s: %w", runID, runErr)
	}

	p.setState(stateFound)
	worldPath := cellsToWorld(grid, chain, goalWorld)
	p.setState(stateExtracted)

	p.mu.Lock()
	p.lastPath = worldPath
	p.lastStats = stats
	p.mu.Unlock()

	logger.Infof("gridrrt: plan %s succeeded after %d iterations, cost=%.3f", runID, stats.Iterations, stats.FinalCBest)
	return true, worldPath, e.trace, stats, nil
}

// cellsToWorld converts an ordered chain of grid cells to world
// coordinates, replacing the trailing waypoint with the exact goal pose to
// avoid quantization drift (spec.md §4.9).
func cellsToWorld(grid *Grid, chain []*Node, goalWorld World) []World {
	out := make([]World, len(chain))
	for i, n := range chain {
		out[i] = grid.MapToWorld(n.X, n.Y)
	}
	if len(out) > 0 {
		out[len(out)-1] = goalWorld
	}
	return out
}

func (p *Planner) setState(s state) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// SetCloser registers a cleanup function (typically a logger's appender
// flush/close) to be combined into a future Close call.
func (p *Planner) SetCloser(fn func() error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closer = fn
}

// Close releases any resources a caller-supplied logger holds open (a
// file-backed appender, say) and combines the close error with any
// caller-supplied plan error via multierr, the way a host tearing down a
// planner alongside an in-flight plan error would want both surfaced.
func (p *Planner) Close(planErr error) error {
	if p.closer == nil {
		return planErr
	}
	return multierr.Append(planErr, p.closer())
}
