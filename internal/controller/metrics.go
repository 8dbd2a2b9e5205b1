package controller

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	MetricMoves         = "tictactoe.moves"
	MetricShakes        = "tictactoe.shakes"
	MetricGamesFinished = "tictactoe.games.finished"

	ResultPlayerOne = "player_one"
	ResultPlayerTwo = "player_two"
	ResultDraw      = "draw"
)

type metrics struct {
	moves    metric.Int64Counter
	shakes   metric.Int64Counter
	finished metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	moves, err := meter.Int64Counter(MetricMoves, metric.WithDescription("Marks placed on the board"))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricMoves, err)
	}

	shakes, err := meter.Int64Counter(MetricShakes, metric.WithDescription("Shakes reported by the motion detector"))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricShakes, err)
	}

	finished, err := meter.Int64Counter(MetricGamesFinished, metric.WithDescription("Games that ended in a win or a draw"))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricGamesFinished, err)
	}

	return &metrics{moves: moves, shakes: shakes, finished: finished}, nil
}

func (that *metrics) move(ctx context.Context, seat SeatKind) {
	that.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("seat", string(seat))))
}

func (that *metrics) shake(ctx context.Context) {
	that.shakes.Add(ctx, 1)
}

func (that *metrics) gameFinished(ctx context.Context, result string) {
	that.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
