package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
	mockedStream "github.com/rocketscienceinc/sensor-tictactoe/mocks/stream"
	"github.com/rocketscienceinc/sensor-tictactoe/testing/suite"
)

const testPeriodMs = 100

func TestParse(t *testing.T) {
	t.Run("Blank and comment lines are skipped", func(t *testing.T) {
		for _, line := range []string{"", "   ", "# a comment", "  #acc 1 2 3"} {
			_, ok := Parse(1, line)
			assert.False(t, ok, "%q", line)
		}
	})

	t.Run("Action is case insensitive", func(t *testing.T) {
		message, ok := Parse(7, "  ACC 0.1\t0.2 0.3  ")

		require.True(t, ok)
		assert.Equal(t, &Message{Line: 7, Action: ActionAccelerometer, Args: []string{"0.1", "0.2", "0.3"}}, message)
	})
}

func TestServer_Handle(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Accelerometer sample with the default period", func(t *testing.T) {
		// Given: a session expecting one sample
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().
			OnSample(mock.Anything, testPeriodMs, motion.Vector{X: 0.5, Y: -1, Z: 1.25}).
			Return(false, nil).
			Once()
		server := New(s.Logger, session, testPeriodMs)

		// When: an acc line without period is handled
		err := server.Handle(ctx, 1, "acc 0.5 -1 1.25")

		// Then: the sample reached the session
		require.NoError(t, err)
	})

	t.Run("Accelerometer sample with its own period", func(t *testing.T) {
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().
			OnSample(mock.Anything, 250, motion.Vector{Z: 1}).
			Return(true, nil).
			Once()
		server := New(s.Logger, session, testPeriodMs)

		require.NoError(t, server.Handle(ctx, 1, "acc 0 0 1 250"))
	})

	t.Run("Shake outcome is passed back", func(t *testing.T) {
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().
			OnSample(mock.Anything, testPeriodMs, mock.Anything).
			Return(true, apperror.ErrNotHumanTurn).
			Once()
		server := New(s.Logger, session, testPeriodMs)

		err := server.Handle(ctx, 1, "acc 2 0 1")

		require.ErrorIs(t, err, apperror.ErrNotHumanTurn)
	})

	t.Run("Keys", func(t *testing.T) {
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().
			OnButtonState(mock.Anything, true, false).
			Return(motion.Buttons{Left: true}).
			Once()
		server := New(s.Logger, session, testPeriodMs)

		require.NoError(t, server.Handle(ctx, 1, "keys 1 0"))
	})

	t.Run("New game keeps the lineup", func(t *testing.T) {
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().NewGame(mock.Anything).Return(nil).Once()
		server := New(s.Logger, session, testPeriodMs)

		require.NoError(t, server.Handle(ctx, 1, "new"))
	})

	t.Run("New game with a lineup", func(t *testing.T) {
		// Given: a session expecting O for a human against the random computer
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().
			NewGameWith(mock.Anything, mock.MatchedBy(func(lineup controller.Lineup) bool {
				return lineup.PlayerOneMark == entity.PlayerO &&
					lineup.PlayerOne.Kind == controller.SeatHuman &&
					lineup.PlayerTwo.IsComputer()
			})).
			Return(nil).
			Once()
		server := New(s.Logger, session, testPeriodMs)

		// When: the new line names the lineup
		err := server.Handle(ctx, 1, "new o human random")

		// Then: the session got it
		require.NoError(t, err)
	})

	t.Run("Reset score", func(t *testing.T) {
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().ResetScore().Return().Once()
		server := New(s.Logger, session, testPeriodMs)

		require.NoError(t, server.Handle(ctx, 1, "reset"))
	})

	t.Run("Comment does nothing", func(t *testing.T) {
		server := New(s.Logger, mockedStream.NewMockuSession(t), testPeriodMs)

		require.NoError(t, server.Handle(ctx, 1, "# keys 1 1"))
	})

	t.Run("Unknown action", func(t *testing.T) {
		server := New(s.Logger, mockedStream.NewMockuSession(t), testPeriodMs)

		err := server.Handle(ctx, 1, "gyro 1 2 3")

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})

	t.Run("Malformed lines never reach the session", func(t *testing.T) {
		server := New(s.Logger, mockedStream.NewMockuSession(t), testPeriodMs)

		for _, line := range []string{
			"acc 1 2",
			"acc 1 2 3 4 5",
			"acc x 0 1",
			"acc NaN 0 0",
			"acc 0 -Inf 1",
			"acc 1e999 0 0",
			"acc 0 0 1 -5",
			"acc 0 0 1 soon",
			"keys 1",
			"keys 1 2",
			"new X",
			"new Z human human",
			"new X human minimax",
			"reset now",
		} {
			err := server.Handle(ctx, 1, line)
			require.ErrorIs(t, err, apperror.ErrMalformedLine, line)
		}
	})
}

func TestServer_Serve(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Processes every line and skips bad ones", func(t *testing.T) {
		// Given: a script with a bad line in the middle
		session := mockedStream.NewMockuSession(t)
		session.EXPECT().OnSample(mock.Anything, testPeriodMs, motion.Vector{Z: 1}).Return(false, nil).Twice()
		session.EXPECT().OnButtonState(mock.Anything, false, true).Return(motion.Buttons{Right: true}).Once()
		session.EXPECT().ResetScore().Return().Once()
		server := New(s.Logger, session, testPeriodMs)

		input := strings.Join([]string{
			"# warm up",
			"acc 0 0 1",
			"bogus",
			"",
			"keys 0 1",
			"acc 0 0 1",
			"reset",
		}, "\n")

		// When: the stream is served
		err := server.Serve(ctx, strings.NewReader(input))

		// Then: it ends cleanly at end of input
		require.NoError(t, err)
	})

	t.Run("Read error ends the stream", func(t *testing.T) {
		server := New(s.Logger, mockedStream.NewMockuSession(t), testPeriodMs)
		errBroken := errors.New("broken pipe")

		err := server.Serve(ctx, iotest.ErrReader(errBroken))

		require.ErrorIs(t, err, errBroken)
	})

	t.Run("Cancelled context stops serving", func(t *testing.T) {
		server := New(s.Logger, mockedStream.NewMockuSession(t), testPeriodMs)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		blocked, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		err := server.Serve(cancelled, blocked)

		require.NoError(t, err)
	})
}
