package controller

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/tictactoe"
)

type SeatKind string

const (
	SeatHuman    SeatKind = "human"
	SeatComputer SeatKind = "computer"
)

// Seat says who plays one side of the board: a person moving with the sensor tag, or a computer
// driven by a Strategy.
type Seat struct {
	Kind     SeatKind
	Strategy tictactoe.Strategy
}

func Human() Seat {
	return Seat{Kind: SeatHuman}
}

func Computer(strategy tictactoe.Strategy) Seat {
	return Seat{Kind: SeatComputer, Strategy: strategy}
}

// ParseSeat maps a configured seat name to a seat. "human" is a person, any strategy name is a
// computer with a fresh instance of that strategy.
func ParseSeat(name string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(SeatHuman):
		return Human(), nil
	case tictactoe.RandomStrategyName:
		return Computer(tictactoe.NewRandomStrategy(nil)), nil
	default:
		return Seat{}, fmt.Errorf("%w: %q", apperror.ErrUnknownSeat, name)
	}
}

func (that Seat) IsComputer() bool {
	return that.Kind == SeatComputer
}

// String returns "human" or the strategy name.
func (that Seat) String() string {
	if that.IsComputer() && that.Strategy != nil {
		return that.Strategy.Name()
	}
	return string(that.Kind)
}

func (that Seat) validate() error {
	switch that.Kind {
	case SeatHuman:
		return nil
	case SeatComputer:
		if that.Strategy == nil {
			return fmt.Errorf("%w: computer seat without strategy", apperror.ErrInvalidLineup)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownSeat, that.Kind)
	}
}

// Lineup assigns seats and marks for a game. Player two always plays the other mark; X moves first
// whoever holds it.
type Lineup struct {
	PlayerOneMark entity.Mark
	PlayerOne     Seat
	PlayerTwo     Seat
}

func (that Lineup) Validate() error {
	if !that.PlayerOneMark.IsPlayer() {
		return fmt.Errorf("%w: player one mark %q", apperror.ErrInvalidLineup, string(that.PlayerOneMark))
	}

	if err := that.PlayerOne.validate(); err != nil {
		return fmt.Errorf("player one: %w", err)
	}

	if err := that.PlayerTwo.validate(); err != nil {
		return fmt.Errorf("player two: %w", err)
	}

	return nil
}

func (that Lineup) PlayerTwoMark() entity.Mark {
	return that.PlayerOneMark.Opponent()
}

// seatOf returns the seat playing mark and whether it belongs to player one.
func (that Lineup) seatOf(mark entity.Mark) (Seat, bool) {
	if mark == that.PlayerOneMark {
		return that.PlayerOne, true
	}
	return that.PlayerTwo, false
}
