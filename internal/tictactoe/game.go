// Package tictactoe implements the rules of a single game of tic-tac-toe: whose turn it is, when the
// game ends and who won. Automated players plug in through the Strategy interface.
//
// X always plays first. The package does not track which side is human: any mix of Play and
// PlayAutomated calls is accepted. A finished game cannot be reset, create a new Game instead.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
)

type execState int

const (
	stateIdle execState = iota
	stateDeciding
)

// Game is not safe for concurrent use.
type Game struct {
	board    entity.Board
	status   entity.Status
	turn     entity.Mark
	winner   entity.Mark
	moves    int
	strategy Strategy
	exec     execState
}

func NewGame() *Game {
	return &Game{
		status: entity.StatusWaiting,
		turn:   entity.PlayerX,
		winner: entity.EmptyCell,
	}
}

// Get returns the mark at a position, or EmptyCell. It panics on out-of-range coordinates.
func (that *Game) Get(row, col int) entity.Mark {
	mustBeOnBoard(row, col)
	return that.board[row][col]
}

// Board returns a copy of the board.
func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) Status() entity.Status {
	return that.status
}

// IsStarted reports whether at least one move has been played.
func (that *Game) IsStarted() bool {
	return that.status != entity.StatusWaiting
}

func (that *Game) IsFinished() bool {
	return that.status == entity.StatusFinished
}

// CurrentPlayer returns whose turn it is, or EmptyCell once the game has ended.
func (that *Game) CurrentPlayer() entity.Mark {
	return that.turn
}

// Winner returns PlayerX or PlayerO for a won game, PlayerTie for a draw and EmptyCell while the
// game is not finished.
func (that *Game) Winner() entity.Mark {
	return that.winner
}

func (that *Game) MoveCount() int {
	return that.moves
}

// BindStrategy sets the computer player used by PlayAutomated. A nil strategy unbinds it.
func (that *Game) BindStrategy(strategy Strategy) {
	that.strategy = strategy
}

func (that *Game) Strategy() Strategy {
	return that.strategy
}

// Play places the current player's mark at [row, col].
//
// It returns apperror.ErrGameFinished or apperror.ErrCellOccupied when the move is refused; the
// game is left untouched in that case. Out-of-range coordinates and calls made while a Strategy is
// deciding are programming errors and panic.
func (that *Game) Play(row, col int) error {
	if that.exec == stateDeciding {
		panic(fmt.Errorf("%w: play at [%d,%d]", apperror.ErrIllegalReentry, row, col))
	}

	mustBeOnBoard(row, col)

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: [%d,%d]", apperror.ErrCellOccupied, row, col)
	}

	played := that.turn
	that.board[row][col] = played
	that.moves++
	that.status = entity.StatusOngoing

	if winner, ended := that.checkGameEnd(row, col); ended {
		that.winner = winner
		that.turn = entity.EmptyCell
		that.status = entity.StatusFinished

		return nil
	}

	that.turn = played.Opponent()

	return nil
}

// PlayAutomated asks the bound Strategy for a move and plays it.
//
// It returns apperror.ErrGameFinished, without consulting the strategy, when the game is over. It
// panics when no strategy is bound or when the strategy answers with a position that is off the
// board or already taken: both indicate a bug in the caller or in the strategy.
func (that *Game) PlayAutomated() error {
	if that.exec == stateDeciding {
		panic(fmt.Errorf("%w: nested automated move", apperror.ErrIllegalReentry))
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.strategy == nil {
		panic(apperror.ErrNoStrategy)
	}

	move := that.decide()

	if !move.InBounds() {
		panic(fmt.Errorf("%w: %s returned %s", apperror.ErrInvalidStrategyMove, that.strategy.Name(), move))
	}

	if that.board[move.Row][move.Col] != entity.EmptyCell {
		panic(fmt.Errorf("%w: %s returned occupied %s", apperror.ErrInvalidStrategyMove, that.strategy.Name(), move))
	}

	return that.Play(move.Row, move.Col)
}

// decide runs the strategy with the reentry guard raised. The guard is lowered even if the
// strategy panics so that a recovered caller does not end up with a locked game.
func (that *Game) decide() entity.Move {
	that.exec = stateDeciding
	defer func() { that.exec = stateIdle }()

	return that.strategy.Decide(that)
}

// checkGameEnd inspects only the lines that go through the last move: a new three in a row must
// include it.
func (that *Game) checkGameEnd(row, col int) (entity.Mark, bool) {
	played := that.board[row][col]

	matchRow, matchCol := true, true
	for i := 0; i < entity.BoardSize; i++ {
		if that.board[row][i] != played {
			matchRow = false
		}
		if that.board[i][col] != played {
			matchCol = false
		}
	}

	matchDiag := false
	if row == col {
		matchDiag = true
		for i := 0; i < entity.BoardSize; i++ {
			if that.board[i][i] != played {
				matchDiag = false
				break
			}
		}
	}

	matchAnti := false
	if row+col == entity.BoardSize-1 {
		matchAnti = true
		for i := 0; i < entity.BoardSize; i++ {
			if that.board[i][entity.BoardSize-1-i] != played {
				matchAnti = false
				break
			}
		}
	}

	switch {
	case matchRow || matchCol || matchDiag || matchAnti:
		return played, true
	case that.board.IsFull():
		return entity.PlayerTie, true
	default:
		return entity.EmptyCell, false
	}
}

func mustBeOnBoard(row, col int) {
	if !(entity.Move{Row: row, Col: col}).InBounds() {
		panic(fmt.Errorf("%w: [%d,%d]", apperror.ErrInvalidCell, row, col))
	}
}
