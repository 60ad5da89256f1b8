package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Stage     Stage
	Score     int
	Lives     int
	MaxLives  int
	Body      []core.Point // head first
	Heading   Direction
	Item      Item
	ItemTTL   int64 // remaining lifetime of a special item, microseconds
	Obstacles []Obstacle
	Board     Board
	Speed     int
	FPS       int
	Moves     int
}

// Head returns the first body segment.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Stage:     s.stage,
		Score:     s.score,
		Lives:     s.creature.Lives(),
		MaxLives:  s.cfg.Rules.MaxLives,
		Body:      s.creature.Body(),
		Heading:   s.creature.Heading(),
		Item:      s.item,
		ItemTTL:   s.itemRemaining(),
		Obstacles: s.obstacles.All(),
		Board:     s.board,
		Speed:     s.cfg.Launch.Speed,
		FPS:       s.cfg.Launch.FPS,
		Moves:     s.moves,
	}
}

// itemRemaining freezes the special item countdown while paused.
func (s *Session) itemRemaining() int64 {
	ttl := s.cfg.SpecialItemTTL()
	if s.stage.Has(StagePaused) {
		if !s.item.Kind.Special() {
			return 0
		}
		return max(0, ttl-s.specialElapsed)
	}
	return s.item.Remaining(s.clock.Now(), ttl)
}
