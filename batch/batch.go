// Package batch evaluates several search profiles against one grid
// concurrently. The grid is read-only and shared; every profile runs its
// own independent search.
package batch

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// Report is the outcome of one profile.
type Report struct {
	Profile   config.Profile
	Strategy  dijkstra.Strategy
	Reachable bool
	Cost      int64 // meaningful only when Reachable
	States    int
	Settled   int
	Elapsed   time.Duration
}

// Options tunes Run.
type Options struct {
	Strategy dijkstra.Strategy
	// Workers caps concurrent searches; <= 0 means one per profile.
	Workers int
	// Hook, when set, adds search options per profile (e.g. a trace hook).
	Hook func(p config.Profile) []dijkstra.Option
}

// Run searches every profile and returns reports in profile order.
// An unreachable target is a normal report, not an error. The first
// structural error (bad grid, bad constraints, target out of range) cancels
// the profiles that have not started yet and is returned.
func Run(ctx context.Context, g *grid.Grid, profiles []config.Profile, opts Options) ([]Report, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}
	reports := make([]Report, len(profiles))

	eg, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		eg.SetLimit(opts.Workers)
	}
	for i, p := range profiles {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := runOne(g, p, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func runOne(g *grid.Grid, p config.Profile, opts Options) (Report, error) {
	searchOpts := p.Options(opts.Strategy)
	if opts.Hook != nil {
		searchOpts = append(searchOpts, opts.Hook(p)...)
	}

	start := time.Now()
	res, err := dijkstra.Search(g, searchOpts...)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Profile:  p,
		Strategy: opts.Strategy,
		States:   res.States(),
		Settled:  res.Settled,
		Elapsed:  time.Since(start),
	}
	cost, err := res.MinCost()
	switch {
	case err == nil:
		rep.Reachable, rep.Cost = true, cost
	case errors.Is(err, dijkstra.ErrUnreachable):
	default:
		return Report{}, err
	}

	return rep, nil
}
