// Command taxisim reads a scenario, plays every client call against it and
// prints one report per call.
//
//	taxisim -config taxisim.yaml -input Input.txt [-seed 42] [-watch]
//
// With -watch the simulation is replayed every time the config file changes,
// until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/taxisim/config"
	"github.com/katalvlaran/taxisim/logging"
	"github.com/katalvlaran/taxisim/scenario"
	"github.com/katalvlaran/taxisim/simulator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "taxisim:", err)
		}
		os.Exit(1)
	}
}

type flags struct {
	config string
	input  string
	seed   int64
	watch  bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("taxisim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "Path to YAML config (built-in QnQ/Shopify defaults when empty)")
	fs.StringVar(&f.input, "input", "Input.txt", "Path to scenario input")
	fs.Int64Var(&f.seed, "seed", 0, "Decline RNG seed; overrides dispatch.seed when non-zero")
	fs.BoolVar(&f.watch, "watch", false, "Replay the simulation whenever the config file changes")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.watch && f.config == "" {
		return f, errors.New("-watch needs -config")
	}

	return f, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(f.config, nil)
	if err != nil {
		return err
	}
	cfg := loader.Config()

	logger, closer := logging.New(cfg.Logging)
	defer closer.Close()
	slog.SetDefault(logger)

	// ── First run ────────────────────────────────────────────────────────────
	if err := simulate(ctx, cfg, f, stdout, logger); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		logger.Info("config changed, replaying simulation", "version", newCfg.Version)
		if err := simulate(ctx, newCfg, f, stdout, logger); err != nil {
			logger.Warn("replay failed", "err", err)
		}
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stopWatch()

	<-ctx.Done()
	logger.Info("shutting down")

	return nil
}

// simulate parses the scenario under cfg, plays every call to out and
// exports metrics.
func simulate(ctx context.Context, cfg *config.Config, f flags, out io.Writer, logger *slog.Logger) error {
	sc, err := scenario.ParseFile(f.input, scenario.WithCompanies(cfg.Companies...))
	if err != nil {
		return err
	}
	stats := sc.Graph.Stats()
	logger.Info("scenario loaded",
		"input", f.input,
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"shops", stats.ShopCount,
		"clients", stats.ClientCount,
		"calls", len(sc.Calls))

	seed := cfg.Dispatch.Seed
	if f.seed != 0 {
		seed = f.seed
	}
	sim, err := simulator.New(sc.Graph, simulator.Config{
		Calls:    sc.Calls,
		Tariffs:  cfg.FareTariffs(),
		Currency: cfg.Currency,
	},
		simulator.WithDecider(simulator.NewRandomDecider(seed, cfg.Dispatch.DeclineProbability)),
		simulator.WithLogger(logger),
		simulator.WithCallTimeout(time.Duration(cfg.Dispatch.TimeoutMs)*time.Millisecond),
	)
	if err != nil {
		return err
	}

	reports, runErr := sim.Run(ctx, out)
	logger.Info("simulation finished", "reports", len(reports), "calls", len(sc.Calls))

	if path := cfg.Metrics.Textfile; path != "" {
		if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
			logger.Warn("metrics export failed", "path", path, "err", err)
		}
	}

	return runErr
}
