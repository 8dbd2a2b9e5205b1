package entity

import (
	"fmt"
	"strings"
)

// Mark is the content of a board cell. The same type reports the current
// player and the winner of a game, where PlayerTie stands for a draw.
type Mark string

// Status is the lifecycle state of a game.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"

	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// BoardSize is fixed: win detection only knows about three in a row on a 3x3 board.
const BoardSize = 3

// Opponent returns the other player's mark. Anything that is not a player maps to EmptyCell.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	if that == EmptyCell {
		return "."
	}
	return string(that)
}

// ParseMark accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PlayerX):
		return PlayerX, nil
	case string(PlayerO):
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("unknown player mark %q", s)
	}
}

// Move is a zero-indexed board position.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Center is the middle cell of the board.
var Center = Move{Row: 1, Col: 1}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("[%d,%d]", that.Row, that.Col)
}

// Board holds the marks played so far, indexed [row][col].
type Board [BoardSize][BoardSize]Mark

func (that Board) Get(row, col int) Mark {
	return that[row][col]
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the free positions in row-major order.
func (that Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for r, row := range that {
		for c, cell := range row {
			if cell == EmptyCell {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}

	return cells
}
