// Command crucible prints the minimum entry cost of crossing a digit grid
// from its top-left to its bottom-right cell under straight-run constraints.
//
//	crucible -grid input.txt                 # standard (0..3) and ultra (3..10)
//	crucible -grid input.txt.zst -min 1 -max 4
//	crucible -grid input.txt -config configs/crucible.yaml -trace ./traces -db ./data/runs.db
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/crucible/batch"
	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/runlog"
	"github.com/katalvlaran/crucible/tracelog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("crucible", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		gridPath   = fs.String("grid", "", "path to the digit grid (*.zst is decompressed)")
		configPath = fs.String("config", "", "profiles yaml (default: standard and ultra)")
		minRun     = fs.Int("min", -1, "single profile: steps required before a turn (with -max)")
		maxRun     = fs.Int("max", -1, "single profile: steps allowed before a turn is forced (with -min)")
		strategy   = fs.String("strategy", "", "lazy | eager (overrides config)")
		workers    = fs.Int("workers", -1, "concurrent searches (overrides config; 0 = one per profile)")
		traceDir   = fs.String("trace", "", "write settle traces to <dir>/<grid digest>.jsonl.zst")
		dbPath     = fs.String("db", "", "record runs in this sqlite database")
		verbose    = fs.Bool("v", false, "log timings and state counts")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "[crucible] ", log.LstdFlags|log.Lmicroseconds)

	if *gridPath == "" {
		fmt.Fprintln(stderr, "missing -grid")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("load config: %v", err)
		return 1
	}
	if *minRun >= 0 || *maxRun >= 0 {
		cfg.Profiles = []config.Profile{{Name: "custom", MinRun: max(*minRun, 0), MaxRun: *maxRun}}
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Printf("config: %v", err)
		return 2
	}
	strat, _ := config.ParseStrategy(cfg.Strategy)

	g, err := grid.Load(*gridPath)
	if err != nil {
		logger.Printf("load grid: %v", err)
		return 1
	}
	digest := g.Digest()
	if *verbose {
		logger.Printf("grid %dx%d digest=%s strategy=%s profiles=%d", g.Width, g.Height, digest[:12], strat, len(cfg.Profiles))
	}

	opts := batch.Options{Strategy: strat, Workers: cfg.Workers}
	var tw *tracelog.Writer
	if *traceDir != "" {
		tw, err = tracelog.Create(*traceDir, digest)
		if err != nil {
			logger.Printf("trace: %v", err)
			return 1
		}
		opts.Hook = func(p config.Profile) []dijkstra.Option {
			return []dijkstra.Option{dijkstra.WithOnPop(tw.Hook(p.Name))}
		}
	}

	start := time.Now()
	reports, err := batch.Run(ctx, g, cfg.Profiles, opts)
	if tw != nil {
		if cerr := tw.Close(); cerr != nil {
			logger.Printf("trace close: %v", cerr)
		} else if *verbose {
			logger.Printf("trace written to %s", tw.Path())
		}
	}
	if err != nil {
		logger.Printf("search: %v", err)
		return 1
	}
	if *verbose {
		logger.Printf("%d profiles in %s", len(reports), time.Since(start))
	}

	for _, rep := range reports {
		if rep.Reachable {
			fmt.Fprintf(stdout, "%s: %d\n", rep.Profile.Name, rep.Cost)
		} else {
			fmt.Fprintf(stdout, "%s: unreachable\n", rep.Profile.Name)
		}
		if *verbose {
			logger.Printf("%s runs=%d..%d states=%d settled=%d elapsed=%s",
				rep.Profile.Name, rep.Profile.MinRun, rep.Profile.MaxRun, rep.States, rep.Settled, rep.Elapsed)
		}
	}

	if *dbPath != "" {
		idx, err := runlog.Open(*dbPath)
		if err != nil {
			logger.Printf("open db: %v", err)
			return 1
		}
		defer idx.Close()
		for _, rep := range reports {
			if _, err := idx.RecordReport(ctx, digest, g.Width, g.Height, rep); err != nil {
				logger.Printf("record %s: %v", rep.Profile.Name, err)
				return 1
			}
		}
	}

	return 0
}
