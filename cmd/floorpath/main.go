// Command floorpath loads a building description and prints the route for
// one query.
//
// Usage:
//
//	floorpath --config ./dir [--algorithm astar] [--policy fewest-waypoints]
//
// Settings come from dir/floorpath.{json,yaml,toml}, FLOORPATH_* environment
// variables and flags, flags taking precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/floorpath/internal/config"
	"github.com/katalvlaran/floorpath/internal/logging"
	"github.com/katalvlaran/floorpath/layout"
	"github.com/katalvlaran/floorpath/pathfind"
	"github.com/katalvlaran/floorpath/sequencer"
)

// errNoRoute is returned by run when the query has no route.
var errNoRoute = errors.New("no route")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "floorpath:", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, loads the configuration and answers the configured
// query. The route is written to out, logs to logw.
func run(ctx context.Context, args []string, out, logw io.Writer) error {
	fs := pflag.NewFlagSet("floorpath", pflag.ContinueOnError)
	fs.SetOutput(logw)
	dir := fs.String("config", ".", "directory holding floorpath.{json,yaml,toml}")
	fs.String("logLevel", "info", "trace, debug, info, warn or error")
	fs.String("algorithm", "thetastar", "astar or thetastar")
	fs.String("heuristic", "manhattan", "manhattan or octile")
	fs.String("policy", "shortest-cost", "shortest-cost, fewest-waypoints or fastest-compute")
	fs.Int("maxSequences", 0, "cap on connector sequences per query, 0 for none")
	fs.Bool("transfers", false, "allow changing connectors on intermediate floors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.Load(*dir); err != nil {
		return err
	}
	// Only flags given on the command line override file and environment.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if err := viper.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}
	log := logging.New(logw, cfg.LogLevel)

	route, err := query(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("query failed")
		return err
	}

	fmt.Fprintf(out, "cost %d, %d cells\n", route.Cost, len(route.Path))
	for _, c := range route.Path {
		fmt.Fprintln(out, c)
	}

	return nil
}

// query builds the building and sequencer described by cfg and runs its query.
func query(ctx context.Context, cfg config.Config, log zerolog.Logger) (*sequencer.Route, error) {
	b, err := cfg.Building.Build()
	if err != nil {
		return nil, err
	}
	finder, err := cfg.Finder(pathfind.WithLogger(log))
	if err != nil {
		return nil, err
	}
	policy, err := sequencer.PolicyByName(cfg.Policy)
	if err != nil {
		return nil, err
	}

	s, err := sequencer.New(b,
		sequencer.WithFinder(finder),
		sequencer.WithPolicy(policy),
		sequencer.WithLogger(log),
		sequencer.WithMaxSequences(cfg.MaxSequences),
		sequencer.WithTransfers(cfg.Transfers),
	)
	if err != nil {
		return nil, err
	}

	start, dest := cfg.Query.Start.Coordinate(), cfg.Query.Dest.Coordinate()
	log.Info().
		Int("floors", b.NumFloors()).
		Int("connectors", b.NumConnectors()).
		Str("algorithm", finder.Name()).
		Stringer("start", start).
		Stringer("dest", dest).
		Msg("building loaded")

	route, err := s.FindPathContext(ctx, start, dest)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("%w from %v to %v", errNoRoute, start, dest)
	}
	log.Info().
		Int("cost", route.Cost).
		Int("cells", len(route.Path)).
		Int("legs", len(route.Legs)).
		Str("connectors", sequenceString(route.Sequence)).
		Dur("elapsed", route.Elapsed).
		Msg("route found")

	return route, nil
}

func sequenceString(seq []layout.Coordinate) string {
	if len(seq) == 0 {
		return "none"
	}

	return fmt.Sprint(seq)
}
