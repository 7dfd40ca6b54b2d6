package connector

import (
	"context"
	"errors"

	"github.com/katalvlaran/floorpath/layout"
)

var (
	// ErrGraphNil is returned when a nil *Graph is passed to Enumerate.
	ErrGraphNil = errors.New("connector: graph is nil")

	// ErrFloorNotFound indicates a floor index outside the building.
	ErrFloorNotFound = errors.New("connector: floor not found")

	// ErrInvalidLimit is the panic value of WithMaxDepth and WithMaxSequences
	// when given a limit below one.
	ErrInvalidLimit = errors.New("connector: limit must be at least 1")
)

// Sequence lists the connector cells of one route in travel order, starting
// on the start floor and ending on the destination floor.
type Sequence []layout.Coordinate

// Option configures Enumerate.
type Option func(*Options)

// Options holds the parameters of one enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if positive, is the longest sequence recorded. Routes that
	// would need more connectors are not explored. Default 0 (no limit).
	MaxDepth int

	// MaxSequences, if positive, stops the search once that many sequences
	// are recorded. Default 0 (no limit).
	MaxSequences int

	// OnSequence, if non-nil, is called with each recorded sequence. The
	// slice is owned by the caller of Enumerate. Returning an error aborts.
	OnSequence func(Sequence) error

	// Transfers enables same-floor transfer steps between links.
	Transfers bool
}

// DefaultOptions returns Options with a background context and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxDepth:     0,
		MaxSequences: 0,
		OnSequence:   nil,
		Transfers:    false,
	}
}

// WithContext sets the context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps sequence length at n connectors. Panics if n < 1.
func WithMaxDepth(n int) Option {
	if n < 1 {
		panic(ErrInvalidLimit.Error())
	}

	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithMaxSequences stops the search after n sequences. Panics if n < 1.
func WithMaxSequences(n int) Option {
	if n < 1 {
		panic(ErrInvalidLimit.Error())
	}

	return func(o *Options) {
		o.MaxSequences = n
	}
}

// WithOnSequence installs a hook called for every recorded sequence.
func WithOnSequence(fn func(Sequence) error) Option {
	return func(o *Options) {
		o.OnSequence = fn
	}
}

// WithTransfers lets the search alternate links with same-floor transfers.
func WithTransfers() Option {
	return func(o *Options) {
		o.Transfers = true
	}
}
