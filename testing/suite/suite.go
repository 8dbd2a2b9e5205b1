package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/telemetry"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Telemetry *telemetry.Telemetry
}

// New returns a context bounded by maxWaitDuration and a suite with a debug logger and in-memory
// telemetry.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tel := telemetry.New(logger)
	t.Cleanup(func() {
		t.Helper()

		if err := tel.Shutdown(context.Background()); err != nil {
			t.Fatalf("could not shutdown telemetry: %v", err)
		}
	})

	return ctx, &Suite{
		T:         t,
		Logger:    logger,
		Telemetry: tel,
	}
}

// Totals collects the current counter values.
func (that *Suite) Totals(ctx context.Context) map[string]int64 {
	that.Helper()

	totals, err := that.Telemetry.Totals(ctx)
	if err != nil {
		that.Fatalf("could not collect metrics: %v", err)
	}

	return totals
}
