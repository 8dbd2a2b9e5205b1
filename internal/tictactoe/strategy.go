package tictactoe

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
)

// View is the read-only side of a Game handed to a Strategy.
type View interface {
	Get(row, col int) entity.Mark
	Board() entity.Board
	IsFinished() bool
	CurrentPlayer() entity.Mark
}

// Strategy picks the next move for an automated player. Decide must return an empty, in-bounds
// cell and must not call back into the game it is deciding for.
type Strategy interface {
	Decide(view View) entity.Move
	Name() string
}

const RandomStrategyName = "random"

// RandomStrategy takes the center when it is free and otherwise draws uniformly random cells until it
// hits an empty one.
type RandomStrategy struct {
	rnd *rand.Rand
}

// NewRandomStrategy returns a strategy that draws from rnd. A nil rnd uses a randomly seeded source.
func NewRandomStrategy(rnd *rand.Rand) *RandomStrategy {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok
	}

	return &RandomStrategy{rnd: rnd}
}

func (that *RandomStrategy) Name() string {
	return RandomStrategyName
}

// Decide never returns on a full board, so it refuses finished games up front.
func (that *RandomStrategy) Decide(view View) entity.Move {
	if view.Get(entity.Center.Row, entity.Center.Col) == entity.EmptyCell {
		return entity.Center
	}

	if view.IsFinished() {
		panic(fmt.Errorf("%s strategy: %w", that.Name(), apperror.ErrGameFinished))
	}

	for {
		move := entity.Move{
			Row: that.rnd.IntN(entity.BoardSize),
			Col: that.rnd.IntN(entity.BoardSize),
		}

		if view.Get(move.Row, move.Col) == entity.EmptyCell {
			return move
		}
	}
}
