package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/config"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/render"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/telemetry"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/transport/stream"
)

const shutdownTimeout = 5 * time.Second

// RunApp - runs the application: sensor events are read from stdin and the board is drawn on stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if closer, ok := in.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Debug("could not close input", "error", err)
			}
		}()
	}

	tel := telemetry.New(logger)
	tel.Install()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if totals, err := tel.Totals(shutdownCtx); err != nil {
			log.Error("could not collect metrics", "error", err)
		} else {
			log.Info("session metrics", "totals", totals)
		}

		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Error("could not shutdown telemetry", "error", err)
		}
	}()

	lineup, err := conf.Game.Lineup()
	if err != nil {
		return fmt.Errorf("invalid lineup: %w", err)
	}

	session, err := controller.NewSession(logger, controller.Options{
		Lineup:        lineup,
		ComputerDelay: conf.Game.ComputerDelay,
		Detector:      motion.NewDetector(conf.Motion.DetectorOptions()),
		Meter:         tel.Meter(),
		Tracer:        tel.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}
	defer session.Close()

	var outMu sync.Mutex
	draw := func(state controller.State) {
		outMu.Lock()
		defer outMu.Unlock()

		if err := render.Text(out, state); err != nil {
			log.Error("could not render board", "error", err)
		}
	}

	session.Subscribe(draw)
	draw(session.State())

	log.Info("Reading sensor events", "session_id", session.ID(), "sample_period", conf.Motion.SamplePeriod)

	server := stream.New(logger, session, conf.Motion.SamplePeriodMs())
	if err = server.Serve(ctx, in); err != nil {
		return fmt.Errorf("sensor stream error: %w", err)
	}

	return nil
}
