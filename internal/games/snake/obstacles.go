package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Obstacle is a wall segment one cell thick, flush against one border of the
// playable region.
type Obstacle struct {
	Side Direction
	Rect core.Rect
}

// ObstacleSet holds the walls of one round. It is built whole and never
// mutated afterwards.
type ObstacleSet struct {
	obstacles []Obstacle
}

// GenerateObstacles draws a new set: a count in [minN, maxN], and per obstacle
// a border and a length of [minN, maxN] cells. The offset along the border is
// drawn uniformly over the window and snapped to the grid.
func GenerateObstacles(rng core.RandomSource, b Board, minN, maxN int) ObstacleSet {
	count := minN + rng.Intn(maxN-minN+1)
	obstacles := make([]Obstacle, 0, count)

	r := b.Region
	for i := 0; i < count; i++ {
		length := (minN + rng.Intn(maxN-minN+1)) * b.Cell
		side := Direction(rng.Intn(4))

		var rect core.Rect
		switch side {
		case DirUp:
			x := core.Wrap(r.X, r.Right(), core.SnapToCell(b.Cell, rng.Intn(b.Width-b.Cell)))
			rect = core.NewRect(x, r.Y, b.Cell, length)
		case DirDown:
			x := core.Wrap(r.X, r.Right(), core.SnapToCell(b.Cell, rng.Intn(b.Width-b.Cell)))
			rect = core.NewRect(x, r.Bottom()-length, b.Cell, length)
		case DirLeft:
			y := core.Wrap(r.Y, r.Bottom(), core.SnapToCell(b.Cell, rng.Intn(b.Height-b.Cell)))
			rect = core.NewRect(r.X, y, length, b.Cell)
		case DirRight:
			y := core.Wrap(r.Y, r.Bottom(), core.SnapToCell(b.Cell, rng.Intn(b.Height-b.Cell)))
			rect = core.NewRect(r.Right()-length, y, length, b.Cell)
		}
		obstacles = append(obstacles, Obstacle{Side: side, Rect: rect})
	}

	return ObstacleSet{obstacles: obstacles}
}

// NewObstacleSet wraps a fixed list of obstacles.
func NewObstacleSet(obstacles ...Obstacle) ObstacleSet {
	return ObstacleSet{obstacles: append([]Obstacle(nil), obstacles...)}
}

// Contains reports whether p lies inside any obstacle.
func (s ObstacleSet) Contains(p core.Point) bool {
	for _, o := range s.obstacles {
		if o.Rect.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// Len returns the number of obstacles.
func (s ObstacleSet) Len() int {
	return len(s.obstacles)
}

// All returns a copy of the obstacles.
func (s ObstacleSet) All() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}
