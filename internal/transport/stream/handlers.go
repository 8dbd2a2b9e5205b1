package stream

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
)

func (that *Server) handleAccelerometer(ctx context.Context, msg *Message) error {
	if len(msg.Args) != 3 && len(msg.Args) != 4 {
		return fmt.Errorf("%w: %s expects x y z [periodMs], got %d values", apperror.ErrMalformedLine, msg.Action, len(msg.Args))
	}

	var axes [3]float64
	for i := range axes {
		value, err := strconv.ParseFloat(msg.Args[i], 64)
		if err != nil {
			return fmt.Errorf("%w: axis %d: %w", apperror.ErrMalformedLine, i, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: axis %d is not a finite number: %q", apperror.ErrMalformedLine, i, msg.Args[i])
		}
		axes[i] = value
	}

	periodMs := that.periodMs
	if len(msg.Args) == 4 {
		value, err := strconv.Atoi(msg.Args[3])
		if err != nil || value <= 0 {
			return fmt.Errorf("%w: period %q", apperror.ErrMalformedLine, msg.Args[3])
		}
		periodMs = value
	}

	shaken, err := that.session.OnSample(ctx, periodMs, motion.Vector{X: axes[0], Y: axes[1], Z: axes[2]})
	if shaken {
		that.logger.Debug("shake detected", "line", msg.Line)
	}

	return err
}

func (that *Server) handleKeys(ctx context.Context, msg *Message) error {
	if len(msg.Args) != 2 {
		return fmt.Errorf("%w: %s expects two levels, got %d", apperror.ErrMalformedLine, msg.Action, len(msg.Args))
	}

	left, err := parseLevel(msg.Args[0])
	if err != nil {
		return err
	}

	right, err := parseLevel(msg.Args[1])
	if err != nil {
		return err
	}

	that.session.OnButtonState(ctx, left, right)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message) error {
	if len(msg.Args) == 0 {
		return that.session.NewGame(ctx)
	}

	if len(msg.Args) != 3 {
		return fmt.Errorf("%w: %s expects no arguments or <X|O> <seat> <seat>", apperror.ErrMalformedLine, msg.Action)
	}

	mark, err := entity.ParseMark(msg.Args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedLine, err)
	}

	playerOne, err := controller.ParseSeat(msg.Args[1])
	if err != nil {
		return fmt.Errorf("%w: player one: %w", apperror.ErrMalformedLine, err)
	}

	playerTwo, err := controller.ParseSeat(msg.Args[2])
	if err != nil {
		return fmt.Errorf("%w: player two: %w", apperror.ErrMalformedLine, err)
	}

	return that.session.NewGameWith(ctx, controller.Lineup{
		PlayerOneMark: mark,
		PlayerOne:     playerOne,
		PlayerTwo:     playerTwo,
	})
}

func (that *Server) handleResetScore(_ context.Context, msg *Message) error {
	if len(msg.Args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments", apperror.ErrMalformedLine, msg.Action)
	}

	that.session.ResetScore()

	return nil
}

func parseLevel(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: button level %q", apperror.ErrMalformedLine, s)
	}
}
