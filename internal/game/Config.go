package game

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultScreenWidth     = 800
	DefaultScreenHeight    = 600
	DefaultCellSize        = 20
	DefaultFramesPerSecond = 15
	MaxFramesPerSecond     = 240
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config describes the playing field and pacing of a game.
type Config struct {
	ScreenWidth     int
	ScreenHeight    int
	CellSize        int
	FramesPerSecond int
	// FoodAvoidsBody keeps new food off cells covered by the snake.
	FoodAvoidsBody bool
	// Seed of 0 means seed from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:     DefaultScreenWidth,
		ScreenHeight:    DefaultScreenHeight,
		CellSize:        DefaultCellSize,
		FramesPerSecond: DefaultFramesPerSecond,
	}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth < c.CellSize || c.ScreenWidth%c.CellSize != 0 {
		return fmt.Errorf("%w: width %d is not a positive multiple of cell size %d", ErrInvalidConfig, c.ScreenWidth, c.CellSize)
	}
	if c.ScreenHeight < c.CellSize || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: height %d is not a positive multiple of cell size %d", ErrInvalidConfig, c.ScreenHeight, c.CellSize)
	}
	if c.FramesPerSecond <= 0 || c.FramesPerSecond > MaxFramesPerSecond {
		return fmt.Errorf("%w: frames per second must be between 1 and %d, got %d", ErrInvalidConfig, MaxFramesPerSecond, c.FramesPerSecond)
	}
	return nil
}

func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FramesPerSecond)
}

func (c Config) Grid() Grid {
	return Grid{Width: c.ScreenWidth, Height: c.ScreenHeight, CellSize: c.CellSize}
}
