// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
)

// Launch parameter limits.
const (
	MinFPS   = 1
	MaxFPS   = 100
	MinSpeed = 1
	MaxSpeed = 10
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Rules  SnakeRules  `yaml:"rules"`
	Timing SnakeTiming `yaml:"timing"`
	Launch SnakeLaunch `yaml:"launch"`
}

// SnakeBoard defines the window and grid geometry.
type SnakeBoard struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	CellSize    int `yaml:"cell_size"`
	HeaderCells int `yaml:"header_cells"`
}

// SnakeRules defines lives, obstacle counts, and spawn positions.
type SnakeRules struct {
	StartLives    int         `yaml:"start_lives"`
	MaxLives      int         `yaml:"max_lives"`
	InitialLength int         `yaml:"initial_length"`
	MinObstacles  int         `yaml:"min_obstacles"`
	MaxObstacles  int         `yaml:"max_obstacles"`
	Spawn         PointConfig `yaml:"spawn"`
	FirstItem     PointConfig `yaml:"first_item"`
}

// PointConfig is a board position in config files.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeTiming defines the base intervals that speed divides.
type SnakeTiming struct {
	BaseMoveIntervalUS int64 `yaml:"base_move_interval_us"`
	SpecialItemTTLUS   int64 `yaml:"special_item_ttl_us"`
}

// SnakeLaunch holds the two operator-supplied constants.
type SnakeLaunch struct {
	FPS   int `yaml:"fps"`
	Speed int `yaml:"speed"`
}

// MoveInterval returns the movement period in microseconds.
func (c SnakeConfig) MoveInterval() int64 {
	return c.Timing.BaseMoveIntervalUS / int64(c.Launch.Speed)
}

// RenderInterval returns the repaint period in microseconds.
func (c SnakeConfig) RenderInterval() int64 {
	return 1_000_000 / int64(c.Launch.FPS)
}

// SpecialItemTTL returns how long a bonus or penalty item stays, in microseconds.
func (c SnakeConfig) SpecialItemTTL() int64 {
	return c.Timing.SpecialItemTTLUS / int64(c.Launch.Speed)
}

// RegionTop returns the y coordinate where the playable region starts.
func (c SnakeConfig) RegionTop() int {
	return c.Board.HeaderCells * c.Board.CellSize
}

// ValidateLaunch checks the frame rate and speed ranges.
func (c SnakeConfig) ValidateLaunch() error {
	if c.Launch.FPS < MinFPS || c.Launch.FPS > MaxFPS {
		return fmt.Errorf("%w: frame rate %d outside [%d, %d]", ErrInvalid, c.Launch.FPS, MinFPS, MaxFPS)
	}
	if c.Launch.Speed < MinSpeed || c.Launch.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalid, c.Launch.Speed, MinSpeed, MaxSpeed)
	}
	return nil
}

// Validate checks the whole configuration.
func (c SnakeConfig) Validate() error {
	if err := c.ValidateLaunch(); err != nil {
		return err
	}

	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalid)
	}
	if b.Width <= 0 || b.Height <= 0 || b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a positive multiple of cell_size %d",
			ErrInvalid, b.Width, b.Height, b.CellSize)
	}
	if b.HeaderCells < 0 || c.RegionTop() >= b.Height {
		return fmt.Errorf("%w: header_cells %d leaves no playable region", ErrInvalid, b.HeaderCells)
	}
	regionH := b.Height - c.RegionTop()
	if b.Width <= b.CellSize || regionH <= b.CellSize {
		return fmt.Errorf("%w: playable region must be more than one cell each way", ErrInvalid)
	}

	r := c.Rules
	if r.MaxLives < 1 || r.StartLives < 1 || r.StartLives > r.MaxLives {
		return fmt.Errorf("%w: start_lives %d must be in [1, max_lives %d]", ErrInvalid, r.StartLives, r.MaxLives)
	}
	if r.InitialLength < 2 {
		return fmt.Errorf("%w: initial_length %d must be at least 2", ErrInvalid, r.InitialLength)
	}
	if r.MinObstacles < 1 || r.MinObstacles > r.MaxObstacles {
		return fmt.Errorf("%w: obstacle range [%d, %d] is empty", ErrInvalid, r.MinObstacles, r.MaxObstacles)
	}
	if r.MaxObstacles*b.CellSize > b.Width || r.MaxObstacles*b.CellSize > regionH {
		return fmt.Errorf("%w: obstacles of %d cells do not fit the region", ErrInvalid, r.MaxObstacles)
	}
	if err := c.validateCell("spawn", r.Spawn); err != nil {
		return err
	}
	if err := c.validateCell("first_item", r.FirstItem); err != nil {
		return err
	}

	if c.Timing.BaseMoveIntervalUS <= 0 || c.Timing.SpecialItemTTLUS <= 0 {
		return fmt.Errorf("%w: timing intervals must be positive", ErrInvalid)
	}
	return nil
}

func (c SnakeConfig) validateCell(name string, p PointConfig) error {
	cell := c.Board.CellSize
	if p.X%cell != 0 || p.Y%cell != 0 {
		return fmt.Errorf("%w: %s (%d, %d) is not on the grid", ErrInvalid, name, p.X, p.Y)
	}
	if p.X < 0 || p.X >= c.Board.Width || p.Y < c.RegionTop() || p.Y >= c.Board.Height {
		return fmt.Errorf("%w: %s (%d, %d) is outside the playable region", ErrInvalid, name, p.X, p.Y)
	}
	return nil
}
