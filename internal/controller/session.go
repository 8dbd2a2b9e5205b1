// Package controller hosts a game session driven by a sensor tag: it owns the motion detector, the
// current game, the cursor and the scoreboard, and lets computer seats play after a thinking delay.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/telemetry"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/tictactoe"
)

const DefaultComputerDelay = 1500 * time.Millisecond

type Options struct {
	Lineup        Lineup
	ComputerDelay time.Duration

	// Optional collaborators. Zero values fall back to a default detector, timers and the global
	// otel providers.
	Detector  *motion.Detector
	Scheduler Scheduler
	Meter     metric.Meter
	Tracer    trace.Tracer
}

type Score struct {
	PlayerOne int `json:"player_one"`
	PlayerTwo int `json:"player_two"`
	Draws     int `json:"draws"`
}

// State is a snapshot of a session for rendering.
type State struct {
	SessionID     string        `json:"session_id"`
	GameID        string        `json:"game_id"`
	Board         entity.Board  `json:"board"`
	Cursor        entity.Move   `json:"cursor"`
	Status        entity.Status `json:"status"`
	CurrentPlayer entity.Mark   `json:"current_player"`
	Winner        entity.Mark   `json:"winner"`
	PlayerOneMark entity.Mark   `json:"player_one_mark"`
	PlayerOne     string        `json:"player_one"`
	PlayerTwo     string        `json:"player_two"`
	Score         Score         `json:"score"`
	Thinking      bool          `json:"thinking"`
}

// Session is safe for concurrent use. Listeners run outside the session lock and may call back into
// the session.
type Session struct {
	id  string
	log *slog.Logger

	detector  *motion.Detector
	scheduler Scheduler
	delay     time.Duration
	metrics   *metrics
	tracer    trace.Tracer

	mu       sync.Mutex
	lineup   Lineup
	game     *tictactoe.Game
	gameID   string
	cursor   entity.Move
	score    Score
	pending  Task
	turnSeq  uint64
	closed   bool
	listener func(State)
}

func NewSession(logger *slog.Logger, opts Options) (*Session, error) {
	if err := opts.Lineup.Validate(); err != nil {
		return nil, err
	}

	if opts.Detector == nil {
		opts.Detector = motion.NewDetector(motion.DefaultOptions())
	}

	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}

	if opts.Meter == nil {
		opts.Meter = otel.Meter(telemetry.InstrumentationName)
	}

	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(telemetry.InstrumentationName)
	}

	if opts.ComputerDelay < 0 {
		opts.ComputerDelay = 0
	}

	m, err := newMetrics(opts.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create session metrics: %w", err)
	}

	id := uuid.NewString()

	that := &Session{
		id:        id,
		log:       logger.With("component", "session", "session_id", id),
		detector:  opts.Detector,
		scheduler: opts.Scheduler,
		delay:     opts.ComputerDelay,
		metrics:   m,
		tracer:    opts.Tracer,
		lineup:    opts.Lineup,
		cursor:    entity.Center,
	}

	that.mu.Lock()
	that.startGameLocked()
	that.mu.Unlock()

	return that, nil
}

func (that *Session) ID() string {
	return that.id
}

// Subscribe sets the function called with a fresh snapshot after every change. Only one listener
// is kept.
func (that *Session) Subscribe(listener func(State)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listener = listener
}

func (that *Session) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// OnSample feeds an accelerometer reading to the detector and handles the resulting shake, if any.
// The returned error is the outcome of the shake, see OnShake.
func (that *Session) OnSample(ctx context.Context, periodMs int, acc motion.Vector) (bool, error) {
	that.mu.Lock()
	shaken := that.detector.OnSample(periodMs, acc)
	that.mu.Unlock()

	if !shaken {
		return false, nil
	}

	return true, that.OnShake(ctx)
}

// OnButtonState feeds the button levels. A left press moves the cursor one row down and a right
// press one column right, both wrapping around.
func (that *Session) OnButtonState(_ context.Context, left, right bool) motion.Buttons {
	that.mu.Lock()

	edges := that.detector.OnButtonState(left, right)
	if !edges.Any() {
		that.mu.Unlock()
		return edges
	}

	if edges.Left {
		that.cursor.Row = (that.cursor.Row + 1) % entity.BoardSize
	}
	if edges.Right {
		that.cursor.Col = (that.cursor.Col + 1) % entity.BoardSize
	}

	that.log.Debug("cursor moved", "cursor", that.cursor.String())
	state, listener := that.snapshotLocked(), that.listener
	that.mu.Unlock()

	notify(listener, state)

	return edges
}

// OnShake plays the current player's mark at the cursor, or starts the next game once the current
// one is over. It returns apperror.ErrNotHumanTurn while a computer seat is to move and
// apperror.ErrCellOccupied when the cursor is on a taken cell.
func (that *Session) OnShake(ctx context.Context) error {
	that.mu.Lock()

	if that.closed {
		that.mu.Unlock()
		return apperror.ErrSessionClosed
	}

	that.metrics.shake(ctx)

	if that.game.IsFinished() {
		that.startGameLocked()
		state, listener := that.snapshotLocked(), that.listener
		that.mu.Unlock()

		notify(listener, state)
		return nil
	}

	seat, _ := that.lineup.seatOf(that.game.CurrentPlayer())
	if seat.IsComputer() {
		that.mu.Unlock()
		return apperror.ErrNotHumanTurn
	}

	mark := that.game.CurrentPlayer()
	if err := that.game.Play(that.cursor.Row, that.cursor.Col); err != nil {
		that.mu.Unlock()
		that.log.Debug("shake ignored", "cursor", that.cursor.String(), "error", err)
		return fmt.Errorf("play at cursor: %w", err)
	}

	that.log.Info("human played", "game_id", that.gameID, "mark", mark.String(), "cell", that.cursor.String())
	that.afterMoveLocked(ctx, seat)

	state, listener := that.snapshotLocked(), that.listener
	that.mu.Unlock()

	notify(listener, state)

	return nil
}

// NewGame abandons the current game and starts a new one with the same lineup.
func (that *Session) NewGame(_ context.Context) error {
	that.mu.Lock()

	if that.closed {
		that.mu.Unlock()
		return apperror.ErrSessionClosed
	}

	that.startGameLocked()
	state, listener := that.snapshotLocked(), that.listener
	that.mu.Unlock()

	notify(listener, state)

	return nil
}

// NewGameWith changes the lineup and starts a new game. The score is kept.
func (that *Session) NewGameWith(ctx context.Context, lineup Lineup) error {
	if err := lineup.Validate(); err != nil {
		return err
	}

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return apperror.ErrSessionClosed
	}
	that.lineup = lineup
	that.mu.Unlock()

	return that.NewGame(ctx)
}

func (that *Session) ResetScore() {
	that.mu.Lock()

	that.score = Score{}
	that.log.Info("score reset")
	state, listener := that.snapshotLocked(), that.listener
	that.mu.Unlock()

	notify(listener, state)
}

// Close cancels a pending computer move. Later calls are no-ops.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.cancelComputerLocked()
	that.log.Info("session closed", "score", that.score)
}

func (that *Session) startGameLocked() {
	that.cancelComputerLocked()

	that.game = tictactoe.NewGame()
	that.gameID = uuid.NewString()

	that.log.Info("new game",
		"game_id", that.gameID,
		"player_one", that.lineup.PlayerOne.String(),
		"player_one_mark", that.lineup.PlayerOneMark.String(),
		"player_two", that.lineup.PlayerTwo.String(),
	)

	that.scheduleComputerLocked()
}

// afterMoveLocked records a move made by seat and either settles the score or hands the turn over.
func (that *Session) afterMoveLocked(ctx context.Context, seat Seat) {
	that.metrics.move(ctx, seat.Kind)

	if !that.game.IsFinished() {
		that.scheduleComputerLocked()
		return
	}

	winner := that.game.Winner()

	var result string
	switch winner {
	case that.lineup.PlayerOneMark:
		that.score.PlayerOne++
		result = ResultPlayerOne
	case that.lineup.PlayerTwoMark():
		that.score.PlayerTwo++
		result = ResultPlayerTwo
	default:
		that.score.Draws++
		result = ResultDraw
	}

	that.metrics.gameFinished(ctx, result)
	that.log.Info("game finished", "game_id", that.gameID, "winner", winner.String(), "result", result, "score", that.score)
}

// scheduleComputerLocked arms the thinking delay when a computer seat is to move. At most one
// computer move is pending at a time.
func (that *Session) scheduleComputerLocked() {
	if that.closed || that.game.IsFinished() {
		return
	}

	seat, _ := that.lineup.seatOf(that.game.CurrentPlayer())
	if !seat.IsComputer() {
		return
	}

	if that.pending != nil {
		that.log.Debug("computer already thinking")
		return
	}

	that.turnSeq++
	seq := that.turnSeq

	that.log.Debug("computer thinking", "mark", that.game.CurrentPlayer().String(), "delay", that.delay)
	that.pending = that.scheduler.Schedule(that.delay, func() {
		that.playComputer(context.Background(), seq)
	})
}

func (that *Session) cancelComputerLocked() {
	// a callback that already fired and waits on the lock sees a newer sequence and gives up
	that.turnSeq++

	if that.pending == nil {
		return
	}

	that.pending.Stop()
	that.pending = nil
}

func (that *Session) playComputer(ctx context.Context, seq uint64) {
	log := that.log.With("method", "playComputer")

	that.mu.Lock()

	if that.closed || seq != that.turnSeq || that.pending == nil {
		that.mu.Unlock()
		log.Debug("stale computer move dropped")
		return
	}
	that.pending = nil

	if that.game.IsFinished() {
		that.mu.Unlock()
		return
	}

	mark := that.game.CurrentPlayer()
	seat, _ := that.lineup.seatOf(mark)
	if !seat.IsComputer() {
		that.mu.Unlock()
		return
	}

	ctx, span := that.tracer.Start(ctx, "Session.playComputer", trace.WithAttributes(
		attribute.String("session.id", that.id),
		attribute.String("game.id", that.gameID),
		attribute.String("strategy", seat.String()),
		attribute.String("mark", mark.String()),
	))
	defer span.End()

	that.game.BindStrategy(seat.Strategy)
	before := that.game.Board()

	if err := that.game.PlayAutomated(); err != nil {
		that.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, apperror.ErrGameFinished) {
			log.Error("computer move failed", "error", err)
		}
		return
	}

	cell := playedCell(before, that.game.Board())
	span.SetAttributes(attribute.Int("move.row", cell.Row), attribute.Int("move.col", cell.Col))
	log.Info("computer played", "game_id", that.gameID, "mark", mark.String(), "cell", cell.String(), "strategy", seat.String())

	that.afterMoveLocked(ctx, seat)

	state, listener := that.snapshotLocked(), that.listener
	that.mu.Unlock()

	notify(listener, state)
}

func (that *Session) snapshotLocked() State {
	return State{
		SessionID:     that.id,
		GameID:        that.gameID,
		Board:         that.game.Board(),
		Cursor:        that.cursor,
		Status:        that.game.Status(),
		CurrentPlayer: that.game.CurrentPlayer(),
		Winner:        that.game.Winner(),
		PlayerOneMark: that.lineup.PlayerOneMark,
		PlayerOne:     that.lineup.PlayerOne.String(),
		PlayerTwo:     that.lineup.PlayerTwo.String(),
		Score:         that.score,
		Thinking:      that.pending != nil,
	}
}

func notify(listener func(State), state State) {
	if listener != nil {
		listener(state)
	}
}

func playedCell(before, after entity.Board) entity.Move {
	for r := range after {
		for c := range after[r] {
			if before[r][c] != after[r][c] {
				return entity.Move{Row: r, Col: c}
			}
		}
	}

	return entity.Move{Row: -1, Col: -1}
}
