package pathfind

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/floorpath/layout"
)

// Sentinel errors returned by the floor searches.
var (
	// ErrNilFloor indicates that a nil *layout.Floor was passed.
	ErrNilFloor = errors.New("pathfind: floor is nil")

	// ErrWrongFloor indicates that start or dest lies on a different floor.
	ErrWrongFloor = errors.New("pathfind: coordinate is not on this floor")

	// ErrOutOfBounds indicates that start or dest lies outside the floor.
	ErrOutOfBounds = errors.New("pathfind: coordinate out of bounds")

	// ErrNilHeuristic indicates WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("pathfind: heuristic must not be nil")
)

// Edge and segment costs in search units.
const (
	// StraightCost is the cost of an orthogonal step.
	StraightCost = 10
	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost = 14
)

// Heuristic estimates the remaining cost to dest from the absolute axis
// distances dx and dy.
type Heuristic func(dx, dy int) int

// Manhattan is 10 × (dx + dy). It overestimates diagonal moves, so A* with
// it favours straight runs and may return a path costlier than the optimum.
func Manhattan(dx, dy int) int {
	return StraightCost * (dx + dy)
}

// Octile is the exact 10/14 cost on an empty grid. It never overestimates,
// so A* with it returns minimum-cost paths.
func Octile(dx, dy int) int {
	if dx < dy {
		dx, dy = dy, dx
	}

	return StraightCost*dx + (DiagonalCost-StraightCost)*dy
}

// Result is a path found on one floor.
type Result struct {
	// Path lists the cells from start to dest inclusive.
	Path []layout.Coordinate
	// Cost is the accumulated g of dest.
	Cost int
	// Expanded counts the cells moved to the closed set.
	Expanded int
}

// Finder is a single-floor search. AStar and ThetaStar implement it.
type Finder interface {
	// Name identifies the algorithm in logs and metrics.
	Name() string
	// FindPath searches f from start to dest.
	FindPath(f *layout.Floor, start, dest layout.Coordinate) (*Result, error)
	// FindPathContext is FindPath with cancellation.
	FindPathContext(ctx context.Context, f *layout.Floor, start, dest layout.Coordinate) (*Result, error)
}

// Options configures a Finder.
type Options struct {
	// Logger receives one debug event per search. Defaults to zerolog.Nop().
	Logger zerolog.Logger
	// Meter supplies the search instruments. Nil uses the global meter.
	Meter metric.Meter
	// Heuristic estimates the remaining cost. Defaults to Manhattan.
	Heuristic Heuristic
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMeter sets the meter used to create the search counters.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		o.Meter = m
	}
}

// WithHeuristic replaces the remaining-cost estimate. A nil h panics.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns Options with a no-op logger, the global meter and
// the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		Meter:     nil,
		Heuristic: Manhattan,
	}
}
