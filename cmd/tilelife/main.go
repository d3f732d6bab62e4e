// Command tilelife runs a tiled cellular automaton without a window and
// writes per-generation statistics, PNG frames and Prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tilelife/internal/config"
	"tilelife/internal/core"
	_ "tilelife/internal/sims/briansbrain"
	_ "tilelife/internal/sims/life"
)

func main() {
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilelife: %v\n", err)
		os.Exit(2)
	}
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	logger.Info("run complete",
		"run", sum.RunID,
		"generation", sum.Generation,
		"live", sum.Live,
		"births", sum.Births,
		"deaths", sum.Deaths,
		"elapsed", sum.Elapsed.Round(time.Millisecond),
	)
}
