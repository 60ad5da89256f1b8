package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:       800,
			Height:      600,
			CellSize:    20,
			HeaderCells: 2,
		},
		Rules: SnakeRules{
			StartLives:    3,
			MaxLives:      5,
			InitialLength: 5,
			MinObstacles:  5,
			MaxObstacles:  12,
			Spawn:         PointConfig{X: 340, Y: 300},
			FirstItem:     PointConfig{X: 540, Y: 300},
		},
		Timing: SnakeTiming{
			BaseMoveIntervalUS: 500_000,
			SpecialItemTTLUS:   35_000_000,
		},
		Launch: SnakeLaunch{
			FPS:   30,
			Speed: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
