package sequencer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/floorpath/connector"
	"github.com/katalvlaran/floorpath/internal/telemetry"
	"github.com/katalvlaran/floorpath/layout"
	"github.com/katalvlaran/floorpath/pathfind"
)

// Reasons a candidate is dropped, used as the "reason" metric attribute.
const (
	reasonOdd          = "odd"
	reasonStraddle     = "straddle"
	reasonDisconnected = "disconnected"
	reasonNoPath       = "no_path"
)

// Sequencer answers cross-floor queries on one building. It holds no
// per-query state and is safe for concurrent use.
type Sequencer struct {
	building *layout.Building
	graph    *connector.Graph
	finder   pathfind.Finder
	policy   Policy
	log      zerolog.Logger
	maxSeq   int
	transfer bool

	enumerated metric.Int64Counter
	candidates metric.Int64Counter
	discarded  metric.Int64Counter
}

// New builds a Sequencer over b.
func New(b *layout.Building, opts ...Option) (*Sequencer, error) {
	if b == nil {
		return nil, ErrBuildingNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Sequencer{
		building:   b,
		graph:      connector.NewGraph(b),
		finder:     o.Finder,
		policy:     o.Policy,
		log:        o.Logger,
		maxSeq:     o.MaxSequences,
		transfer:   o.Transfers,
		enumerated: telemetry.Counter(o.Meter, telemetry.SequenceEnumerated, "Connector sequences enumerated"),
		candidates: telemetry.Counter(o.Meter, telemetry.SequenceCandidates, "Candidate routes evaluated successfully"),
		discarded:  telemetry.Counter(o.Meter, telemetry.SequenceDiscarded, "Candidate routes discarded"),
	}, nil
}

// Building returns the building the Sequencer was built over.
func (s *Sequencer) Building() *layout.Building {
	return s.building
}

// FindPath returns the route chosen by the policy from start to dest, or nil
// if no candidate succeeds.
func (s *Sequencer) FindPath(start, dest layout.Coordinate) (*Route, error) {
	return s.FindPathContext(context.Background(), start, dest)
}

// FindPathContext is FindPath with cancellation of enumeration and searches.
func (s *Sequencer) FindPathContext(ctx context.Context, start, dest layout.Coordinate) (*Route, error) {
	for _, c := range [2]layout.Coordinate{start, dest} {
		if !s.building.Contains(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBuilding, c)
		}
	}

	if start.Z == dest.Z {
		return s.singleFloor(ctx, start, dest)
	}

	opts := []connector.Option{connector.WithContext(ctx)}
	if s.maxSeq > 0 {
		opts = append(opts, connector.WithMaxSequences(s.maxSeq))
	}
	if s.transfer {
		opts = append(opts, connector.WithTransfers())
	}
	seqs, err := connector.Enumerate(s.graph, start.Z, dest.Z, opts...)
	if err != nil {
		return nil, err
	}
	s.enumerated.Add(ctx, int64(len(seqs)))

	var best *Route
	for i, seq := range seqs {
		route, reason, err := s.evaluate(ctx, start, dest, seq)
		if err != nil {
			return nil, err
		}
		if route == nil {
			s.discarded.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
			s.log.Debug().Int("candidate", i).Str("reason", reason).Msg("candidate discarded")
			continue
		}
		s.candidates.Add(ctx, 1)
		if best == nil || s.policy(route, best) {
			best = route
		}
	}

	ev := s.log.Debug().
		Stringer("start", start).
		Stringer("dest", dest).
		Int("sequences", len(seqs)).
		Bool("found", best != nil)
	if best != nil {
		ev = ev.Int("cost", best.Cost).Int("cells", len(best.Path))
	}
	ev.Msg("route selected")

	return best, nil
}

func (s *Sequencer) singleFloor(ctx context.Context, start, dest layout.Coordinate) (*Route, error) {
	f, _ := s.building.Floor(start.Z)
	begin := time.Now()
	res, err := s.finder.FindPathContext(ctx, f, start, dest)
	if err != nil || res == nil {
		return nil, err
	}

	return &Route{
		Path:    res.Path,
		Cost:    res.Cost,
		Legs:    []*pathfind.Result{res},
		Elapsed: time.Since(begin),
	}, nil
}

// evaluate searches every leg of one candidate. A nil route comes with the
// reason it was dropped.
func (s *Sequencer) evaluate(ctx context.Context, start, dest layout.Coordinate, seq connector.Sequence) (*Route, string, error) {
	if len(seq)%2 != 0 {
		return nil, reasonOdd, nil
	}

	waypoints := make([]layout.Coordinate, 0, len(seq)+2)
	waypoints = append(waypoints, start)
	waypoints = append(waypoints, seq...)
	waypoints = append(waypoints, dest)

	begin := time.Now()
	route := &Route{Sequence: seq, Legs: make([]*pathfind.Result, 0, len(waypoints)/2)}
	for j := 0; j < len(waypoints); j += 2 {
		from, to := waypoints[j], waypoints[j+1]
		if from.Z != to.Z {
			return nil, reasonStraddle, nil
		}
		if regions, _ := s.building.Regions(from.Z); !regions.Connected(from, to) {
			return nil, reasonDisconnected, nil
		}
		f, _ := s.building.Floor(from.Z)
		leg, err := s.finder.FindPathContext(ctx, f, from, to)
		if err != nil {
			return nil, "", err
		}
		if leg == nil {
			return nil, reasonNoPath, nil
		}
		route.Legs = append(route.Legs, leg)
		route.Path = append(route.Path, leg.Path...)
		route.Cost += leg.Cost
	}
	route.Elapsed = time.Since(begin)

	return route, "", nil
}
