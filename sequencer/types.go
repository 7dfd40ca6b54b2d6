package sequencer

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/floorpath/connector"
	"github.com/katalvlaran/floorpath/layout"
	"github.com/katalvlaran/floorpath/pathfind"
)

var (
	// ErrBuildingNil is returned by New for a nil building.
	ErrBuildingNil = errors.New("sequencer: building is nil")

	// ErrOutOfBuilding indicates a start or dest outside every floor.
	ErrOutOfBuilding = errors.New("sequencer: coordinate outside building")

	// ErrUnknownPolicy is returned by PolicyByName.
	ErrUnknownPolicy = errors.New("sequencer: unknown policy")

	// ErrNilFinder and ErrNilPolicy are the panic values of WithFinder and
	// WithPolicy given nil.
	ErrNilFinder = errors.New("sequencer: finder is nil")
	ErrNilPolicy = errors.New("sequencer: policy is nil")
)

// Route is a path through the building.
type Route struct {
	// Path is every leg's path concatenated, from start to dest.
	Path []layout.Coordinate
	// Cost is the sum of the leg costs.
	Cost int
	// Sequence is the connector sequence used; empty on a single floor.
	Sequence connector.Sequence
	// Legs holds the per-floor search results in travel order.
	Legs []*pathfind.Result
	// Elapsed is the wall-clock time spent evaluating this route.
	Elapsed time.Duration
}

// Options configures a Sequencer.
type Options struct {
	Finder       pathfind.Finder
	Policy       Policy
	Logger       zerolog.Logger
	Meter        metric.Meter
	MaxSequences int
	Transfers    bool
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns Theta* legs, the ShortestCost policy, a no-op logger,
// the global meter, no sequence cap and links-only enumeration.
func DefaultOptions() Options {
	return Options{
		Finder:       pathfind.NewThetaStar(),
		Policy:       ShortestCost,
		Logger:       zerolog.Nop(),
		Meter:        nil,
		MaxSequences: 0,
		Transfers:    false,
	}
}

// WithFinder sets the single-floor search. Panics on nil.
func WithFinder(f pathfind.Finder) Option {
	return func(o *Options) {
		if f == nil {
			panic(ErrNilFinder.Error())
		}
		o.Finder = f
	}
}

// WithPolicy sets the route selection policy. Panics on nil.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p == nil {
			panic(ErrNilPolicy.Error())
		}
		o.Policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMeter sets the meter for the sequencer counters.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		o.Meter = m
	}
}

// WithMaxSequences caps the number of connector sequences considered per
// query. Zero or less means no cap.
func WithMaxSequences(n int) Option {
	return func(o *Options) {
		o.MaxSequences = n
	}
}

// WithTransfers lets connector sequences change connectors on intermediate
// floors. See connector.WithTransfers.
func WithTransfers(enabled bool) Option {
	return func(o *Options) {
		o.Transfers = enabled
	}
}
