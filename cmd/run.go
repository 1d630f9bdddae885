package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bnema/tabsweep/internal/adapters/host/stream"
	"github.com/bnema/tabsweep/internal/adapters/metrics"
	"github.com/bnema/tabsweep/internal/adapters/notify/chain"
	"github.com/bnema/tabsweep/internal/adapters/notify/desktop"
	"github.com/bnema/tabsweep/internal/adapters/notify/logged"
	"github.com/bnema/tabsweep/internal/adapters/watch"
	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/config"
	"github.com/bnema/tabsweep/internal/logging"
	"github.com/bnema/tabsweep/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const eventBuffer = 64

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler, reading host events on stdin and writing effects to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runDaemon(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runDaemon serves the host until its input ends or ctx is cancelled.
func runDaemon(ctx context.Context, app *app, in io.Reader, out, errOut io.Writer) error {
	logger, err := newLogger(app.cfg, errOut)
	if err != nil {
		return err
	}
	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(app.cfg.State.Path), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	archiveRepo, closeArchive, err := app.openArchive(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeArchive(); err != nil {
			log.Warn().Err(err).Msg("close archive")
		}
	}()

	emitter := stream.NewEmitter(out)
	table := stream.NewTable(emitter)

	notifier, err := newNotifier(app.cfg.Notify.Backend, emitter)
	if err != nil {
		return err
	}

	var observer ports.EvictionObserver = ports.NopObserver{}
	var metricsObserver *metrics.Observer
	if app.cfg.Metrics.Addr != "" {
		metricsObserver = metrics.NewObserver()
		observer = metricsObserver
	}

	clock := ports.SystemClock{}
	scheduler := application.NewScheduler(table, application.Components{
		Activity:   application.NewActivityTracker(),
		Pins:       application.NewPinRegistry(app.repo),
		Settings:   application.NewSettingsStore(app.repo, app.cfg.Settings()),
		Archive:    application.NewClosedArchive(archiveRepo, app.cfg.Archive.Retention),
		Warnings:   application.NewWarningCoordinator(clock, notifier),
		Countdowns: app.repo,
		Observer:   observer,
	}, clock)
	if err := scheduler.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("loading persisted state failed, starting from defaults")
	}

	loop := application.NewLoop(scheduler, eventBuffer)
	server := stream.NewServer(loop, table, emitter)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	// Reads from stdin do not observe ctx, so the group only waits for the server's result.
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(gctx, in)
		cancel()
	}()
	g.Go(func() error {
		select {
		case err := <-served:
			return err
		case <-gctx.Done():
			return nil
		}
	})

	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return runTicker(gctx, loop, application.TickInactiveTabs, app.cfg.Schedule.EvictInterval)
	})
	g.Go(func() error {
		return runTicker(gctx, loop, application.TickClosedTabsCleanup, app.cfg.Schedule.CleanupInterval)
	})
	g.Go(func() error {
		if err := watch.NewWatcher(app.cfg.State.Path, loop, 0).IgnoreOwnWrites(app.repo).Run(gctx); err != nil {
			log.Warn().Err(err).Msg("state watcher stopped")
		}
		return nil
	})
	if metricsObserver != nil {
		g.Go(func() error {
			return metrics.Serve(gctx, app.cfg.Metrics.Addr, metricsObserver)
		})
	}

	log.Info().
		Str("state", app.cfg.State.Path).
		Str("archive", app.cfg.Archive.Backend).
		Dur("evict_interval", app.cfg.Schedule.EvictInterval).
		Msg("scheduler started")

	err = g.Wait()
	log.Info().Msg("scheduler stopped")
	return err
}

func runTicker(ctx context.Context, loop *application.Loop, name string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := loop.Send(ctx, application.TickEvent{Name: name}); err != nil {
				if errors.Is(err, application.ErrLoopStopped) || ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func newNotifier(backend string, emitter *stream.Emitter) (ports.Notifier, error) {
	var primary ports.Notifier
	switch backend {
	case config.NotifyBackendStream:
		primary = emitter
	case config.NotifyBackendDesktop:
		primary = desktop.NewNotifier()
	default:
		return nil, fmt.Errorf("unsupported notify backend %q", backend)
	}

	return chain.NewNotifierChecked(primary, logged.Notifier{})
}

func newLogger(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = zerolog.SyncWriter(out)
	return logging.New(logCfg), nil
}
