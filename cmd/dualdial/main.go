// Command dualdial runs the space evaluation app: rotate the emotional
// (outer) and activity (inner) rings, save the pair under a place name and
// browse the saved history.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/internal/app"
	"github.com/phanxgames/dualdial/internal/config"
	"github.com/phanxgames/dualdial/internal/evaluation"
	"github.com/phanxgames/dualdial/internal/feedback"
	"github.com/phanxgames/dualdial/internal/inspect"
	"github.com/phanxgames/dualdial/internal/metrics"
	"github.com/phanxgames/dualdial/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens first.
func run() int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Defaults -> optional YAML (DUALDIAL_CONFIG) -> DUALDIAL_* env.
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := evaluation.NewStore()
	m := metrics.NewManager()

	opts := []app.Option{
		app.WithLogger(log.Named("app")),
		app.WithMetrics(m),
	}
	if cfg.Sound {
		opts = append(opts, app.WithTicker(feedback.NewTicker()))
	}
	a := app.New(cfg, store, opts...)
	defer a.Close()

	var runner *dualdial.TestRunner
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			log.Error(ctx, "read test script", logger.String("path", cfg.TestScript), logger.Error(err))
			return 1
		}
		runner, err = dualdial.LoadTestScript(data)
		if err != nil {
			log.Error(ctx, "load test script", logger.String("path", cfg.TestScript), logger.Error(err))
			return 1
		}
		a.RunScript(runner)
	}

	if cfg.InspectAddr != "" {
		srv := inspect.New(a, store,
			inspect.WithMetrics(m),
			inspect.WithLogger(log.Named("inspect")),
		)
		addr, err := srv.Start(cfg.InspectAddr)
		if err != nil {
			log.Error(ctx, "start inspector", logger.Error(err))
			return 1
		}
		log.Info(ctx, "inspector listening", logger.String("addr", addr))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(ctx, "inspector shutdown failed", logger.Error(err))
			}
		}()
	}

	go func() {
		<-ctx.Done()
		a.Stop()
	}()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error(ctx, "game loop failed", logger.Error(err))
		return 1
	}

	return scriptExitCode(ctx, log, runner)
}

// scriptExitCode logs the outcome of a scripted run and returns 1 if any
// expectation failed. Without a script it returns 0.
func scriptExitCode(ctx context.Context, log logger.Logger, runner *dualdial.TestRunner) int {
	if runner == nil {
		return 0
	}
	failures := runner.Failures()
	for _, f := range failures {
		log.Error(ctx, "script expectation failed", logger.String("detail", f))
	}
	if len(failures) > 0 {
		return 1
	}
	log.Info(ctx, "script passed")
	return 0
}
