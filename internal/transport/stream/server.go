// Package stream reads sensor tag events from a line-oriented text stream and forwards them to a
// game session. One event per line:
//
//	acc <x> <y> <z> [periodMs]   accelerometer sample in g
//	keys <left 0|1> <right 0|1>  button levels
//	new [X|O] [seat] [seat]      start a new game, optionally with a new lineup
//	reset                        reset the score
//
// Blank lines and lines starting with # are skipped.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
)

const (
	ActionAccelerometer = "acc"
	ActionKeys          = "keys"
	ActionNewGame       = "new"
	ActionResetScore    = "reset"
)

type uSession interface {
	OnSample(ctx context.Context, periodMs int, acc motion.Vector) (bool, error)
	OnButtonState(ctx context.Context, left, right bool) motion.Buttons
	NewGame(ctx context.Context) error
	NewGameWith(ctx context.Context, lineup controller.Lineup) error
	ResetScore()
}

// Message is one parsed input line.
type Message struct {
	Line   int
	Action string
	Args   []string
}

type Server struct {
	logger   *slog.Logger
	session  uSession
	periodMs int

	handlers map[string]func(ctx context.Context, message *Message) error
}

// New returns a server feeding session. periodMs is used for samples that do not carry their own
// period.
func New(logger *slog.Logger, session uSession, periodMs int) *Server {
	server := &Server{
		logger:   logger.With("component", "stream"),
		session:  session,
		periodMs: periodMs,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers[ActionAccelerometer] = server.handleAccelerometer
	server.handlers[ActionKeys] = server.handleKeys
	server.handlers[ActionNewGame] = server.handleNewGame
	server.handlers[ActionResetScore] = server.handleResetScore

	return server
}

// Serve processes reader line by line until it is exhausted or ctx is done. Bad lines and refused
// moves are logged and skipped; only read errors end the stream early. Serve does not close reader:
// when ctx ends first, the reading goroutine exits once the caller closes reader or it returns.
func (that *Server) Serve(ctx context.Context, reader io.Reader) error {
	log := that.logger.With("method", "Serve")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("stream stopped", "lines", lineNo)
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("end of input", "lines", lineNo)
				return nil
			}

			lineNo++
			if err := that.Handle(ctx, lineNo, line); err != nil {
				that.report(lineNo, line, err)
			}
		}
	}
}

// Handle parses and dispatches a single line.
func (that *Server) Handle(ctx context.Context, lineNo int, line string) error {
	message, ok := Parse(lineNo, line)
	if !ok {
		return nil
	}

	handler, found := that.handlers[message.Action]
	if !found {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
	}

	return handler(ctx, message)
}

// Parse splits a line into an action and its arguments. It reports false for blank and comment
// lines.
func Parse(lineNo int, line string) (*Message, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}

	fields := strings.Fields(line)

	return &Message{
		Line:   lineNo,
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}

func (that *Server) report(lineNo int, line string, err error) {
	switch {
	case errors.Is(err, apperror.ErrUnknownAction), errors.Is(err, apperror.ErrMalformedLine):
		that.logger.Warn("skipping input line", "line", lineNo, "text", line, "error", err)
	case errors.Is(err, apperror.ErrNotHumanTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished):
		that.logger.Info("move refused", "line", lineNo, "reason", err)
	default:
		that.logger.Error("failed to handle input line", "line", lineNo, "text", line, "error", err)
	}
}
