package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env:"GOMOKU_BOARD_SIZE" env-default:"15"`
	WinLength int    `yaml:"win-length" env:"GOMOKU_WIN_LENGTH" env-default:"5"`
	Rule      string `yaml:"rule" env:"GOMOKU_RULE" env-default:"freestyle"`
	Black     string `yaml:"black" env:"GOMOKU_BLACK" env-default:"Black"`
	White     string `yaml:"white" env:"GOMOKU_WHITE" env-default:"White"`
	NoColor   bool   `yaml:"no-color" env:"NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the config file at path. A missing file is not an error: the
// environment and the defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err = config.Game.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Game) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidConfig, that.BoardSize)
	}

	if that.WinLength < 1 || that.WinLength > that.BoardSize {
		return fmt.Errorf("%w: win length %d on a %dx%d board", apperror.ErrInvalidConfig, that.WinLength, that.BoardSize, that.BoardSize)
	}

	if _, err := that.WinCondition(); err != nil {
		return err
	}

	return nil
}

func (that *Game) WinCondition() (gomoku.WinCondition, error) {
	condition, err := gomoku.WinConditionFor(that.Rule, that.WinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to build win condition: %w", err)
	}

	return condition, nil
}

// EngineOptions turns the game section into engine options.
func (that *Game) EngineOptions() (gomoku.Options, error) {
	condition, err := that.WinCondition()
	if err != nil {
		return gomoku.Options{}, err
	}

	return gomoku.Options{
		Size:      that.BoardSize,
		Win:       condition,
		BlackName: that.Black,
		WhiteName: that.White,
	}, nil
}
