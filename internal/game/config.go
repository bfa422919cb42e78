package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config carries the balance values of a session. Distances are in terminal
// cells and speeds in cells per second.
type Config struct {
	Rows            int           `env:"BREAKOUT_ROWS" envDefault:"12"`
	Cols            int           `env:"BREAKOUT_COLS" envDefault:"18"`
	BrickWidth      int           `env:"BREAKOUT_BRICK_WIDTH" envDefault:"3"`
	BrickTop        int           `env:"BREAKOUT_BRICK_TOP" envDefault:"2"`
	Height          int           `env:"BREAKOUT_HEIGHT" envDefault:"30"`
	PaddleWidth     int           `env:"BREAKOUT_PADDLE_WIDTH" envDefault:"7"`
	PaddleStep      int           `env:"BREAKOUT_PADDLE_STEP" envDefault:"2"`
	Lives           int           `env:"BREAKOUT_LIVES" envDefault:"3"`
	MinSpeed        float64       `env:"BREAKOUT_BALL_MIN_SPEED" envDefault:"10"`
	MaxSpeed        float64       `env:"BREAKOUT_BALL_MAX_SPEED" envDefault:"20"`
	SpeedMultiplier float64       `env:"BREAKOUT_BALL_SPEED_MULTIPLIER" envDefault:"1.1"`
	StageDelay      time.Duration `env:"BREAKOUT_STAGE_DELAY" envDefault:"4s"`
	GameOverDelay   time.Duration `env:"BREAKOUT_GAME_OVER_DELAY" envDefault:"3s"`
	Seed            int64         `env:"BREAKOUT_SEED" envDefault:"0"`
}

// DefaultConfig returns the values used when no environment overrides are set.
func DefaultConfig() Config {
	return Config{
		Rows:            12,
		Cols:            18,
		BrickWidth:      3,
		BrickTop:        2,
		Height:          30,
		PaddleWidth:     7,
		PaddleStep:      2,
		Lives:           3,
		MinSpeed:        10,
		MaxSpeed:        20,
		SpeedMultiplier: 1.1,
		StageDelay:      4 * time.Second,
		GameOverDelay:   3 * time.Second,
	}
}

// Width is the playfield width: one brick per column.
func (c Config) Width() int { return c.Cols * c.BrickWidth }

// PaddleRow is the row the paddle sits on.
func (c Config) PaddleRow() int { return c.Height - 2 }

// Validate reports the first value that cannot produce a playable field.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: level must have at least one row and column", ErrInvalidConfig)
	case c.BrickWidth <= 0:
		return fmt.Errorf("%w: brick width must be positive", ErrInvalidConfig)
	case c.BrickTop < 0:
		return fmt.Errorf("%w: brick top must not be negative", ErrInvalidConfig)
	case c.Height < c.BrickTop+c.Rows+4:
		return fmt.Errorf("%w: height %d leaves no room below the bricks", ErrInvalidConfig, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleWidth > c.Width():
		return fmt.Errorf("%w: paddle width must be in [1, %d]", ErrInvalidConfig, c.Width())
	case c.PaddleStep <= 0:
		return fmt.Errorf("%w: paddle step must be positive", ErrInvalidConfig)
	case c.Lives < 0:
		return fmt.Errorf("%w: lives must not be negative", ErrInvalidConfig)
	case c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: ball speed range [%g, %g] is empty", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	case c.SpeedMultiplier < 1:
		return fmt.Errorf("%w: speed multiplier must be at least 1", ErrInvalidConfig)
	case c.StageDelay < 0 || c.GameOverDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}

	return nil
}
