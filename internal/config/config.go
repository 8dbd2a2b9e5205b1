package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/sensor-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/controller"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sensor-tictactoe/internal/motion"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Motion   Motion `yaml:"motion"`
	Game     Game   `yaml:"game"`
}

type Motion struct {
	SamplePeriod time.Duration `yaml:"sample-period" env:"MOTION_SAMPLE_PERIOD" env-default:"100ms"`
	FilterTau    time.Duration `yaml:"filter-tau" env:"MOTION_FILTER_TAU" env-default:"100ms"`
	Cooldown     time.Duration `yaml:"cooldown" env:"MOTION_COOLDOWN" env-default:"1000ms"`
	Threshold    float64       `yaml:"threshold" env:"MOTION_THRESHOLD" env-default:"0.8"`
}

type Game struct {
	ComputerDelay time.Duration `yaml:"computer-delay" env:"GAME_COMPUTER_DELAY" env-default:"1500ms"`
	PlayerOneMark string        `yaml:"player-one-mark" env:"GAME_PLAYER_ONE_MARK" env-default:"X"`
	PlayerOne     string        `yaml:"player-one" env:"GAME_PLAYER_ONE" env-default:"human"`
	PlayerTwo     string        `yaml:"player-two" env:"GAME_PLAYER_TWO" env-default:"random"`
}

// MustLoad is Load for startup code: any error aborts with a panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path and applies environment overrides. A missing file is not an error: the
// environment and the defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch strings.ToLower(that.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	if that.Motion.SamplePeriod.Milliseconds() <= 0 {
		return fmt.Errorf("%w: motion.sample-period must be at least 1ms", apperror.ErrInvalidConfig)
	}

	if that.Motion.FilterTau <= 0 {
		return fmt.Errorf("%w: motion.filter-tau must be positive", apperror.ErrInvalidConfig)
	}

	if that.Motion.Cooldown < 0 {
		return fmt.Errorf("%w: motion.cooldown must not be negative", apperror.ErrInvalidConfig)
	}

	if that.Motion.Threshold <= 0 {
		return fmt.Errorf("%w: motion.threshold must be positive", apperror.ErrInvalidConfig)
	}

	if that.Game.ComputerDelay < 0 {
		return fmt.Errorf("%w: game.computer-delay must not be negative", apperror.ErrInvalidConfig)
	}

	if _, err := that.Game.Lineup(); err != nil {
		return fmt.Errorf("%w: game: %w", apperror.ErrInvalidConfig, err)
	}

	return nil
}

func (that Motion) SamplePeriodMs() int {
	return int(that.SamplePeriod.Milliseconds())
}

func (that Motion) DetectorOptions() motion.Options {
	return motion.Options{
		FilterTau: that.FilterTau,
		Cooldown:  that.Cooldown,
		Threshold: that.Threshold,
	}
}

// Lineup builds the seats. Computer seats get their own strategy instance on every call.
func (that Game) Lineup() (controller.Lineup, error) {
	mark, err := entity.ParseMark(that.PlayerOneMark)
	if err != nil {
		return controller.Lineup{}, fmt.Errorf("player-one-mark: %w", err)
	}

	playerOne, err := controller.ParseSeat(that.PlayerOne)
	if err != nil {
		return controller.Lineup{}, fmt.Errorf("player-one: %w", err)
	}

	playerTwo, err := controller.ParseSeat(that.PlayerTwo)
	if err != nil {
		return controller.Lineup{}, fmt.Errorf("player-two: %w", err)
	}

	return controller.Lineup{PlayerOneMark: mark, PlayerOne: playerOne, PlayerTwo: playerTwo}, nil
}
