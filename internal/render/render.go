// Package render draws a session snapshot as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
)

// Text writes the board with the cursor cell in brackets, followed by the turn or result and the
// score:
//
//	 X  .  .
//	 . [O] .
//	 .  .  X
//	turn: O (random, thinking)
//	score: X 0 | O 0 | draws 0
func Text(w io.Writer, state controller.State) error {
	var b strings.Builder

	for r, row := range state.Board {
		for c, cell := range row {
			if state.Cursor.Row == r && state.Cursor.Col == c {
				fmt.Fprintf(&b, "[%s]", cell)
			} else {
				fmt.Fprintf(&b, " %s ", cell)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(statusLine(state))
	b.WriteString("\n")

	fmt.Fprintf(&b, "score: %s %d | %s %d | draws %d\n",
		state.PlayerOneMark, state.Score.PlayerOne,
		state.PlayerOneMark.Opponent(), state.Score.PlayerTwo,
		state.Score.Draws,
	)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func statusLine(state controller.State) string {
	switch {
	case state.Winner == entity.PlayerTie:
		return "result: draw"
	case state.Winner.IsPlayer():
		return fmt.Sprintf("result: %s wins (%s)", state.Winner, seatName(state, state.Winner))
	}

	line := fmt.Sprintf("turn: %s (%s", state.CurrentPlayer, seatName(state, state.CurrentPlayer))
	if state.Thinking {
		line += ", thinking"
	}

	return line + ")"
}

func seatName(state controller.State, mark entity.Mark) string {
	if mark == state.PlayerOneMark {
		return state.PlayerOne
	}
	return state.PlayerTwo
}
