package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	// Contract violations. These are raised as panics, never returned.
	ErrNoStrategy          = errors.New("computer player has not been set")
	ErrInvalidStrategyMove = errors.New("computer player returned an invalid move")
	ErrIllegalReentry      = errors.New("move played while the computer player is deciding")

	ErrNotHumanTurn  = errors.New("current player is not a human")
	ErrSessionClosed = errors.New("session is closed")
	ErrUnknownSeat   = errors.New("unknown seat kind")
	ErrInvalidLineup = errors.New("invalid player lineup")
	ErrUnknownAction = errors.New("unknown action")
	ErrMalformedLine = errors.New("malformed input line")
	ErrInvalidConfig = errors.New("invalid configuration")
)
