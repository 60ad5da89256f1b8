package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// farAway is a playable cell the default spawn never travels through
// while moving along y=300.
var farAway = core.Point{X: 0, Y: 580}

// newTestSession builds a session with the default config, a manual clock,
// and no obstacles.
func newTestSession(t *testing.T, opts ...Option) (*Session, *core.ManualClock) {
	t.Helper()
	return newTestSessionWith(t, config.DefaultSnakeConfig(), opts...)
}

func newTestSessionWith(t *testing.T, cfg config.SnakeConfig, opts ...Option) (*Session, *core.ManualClock) {
	t.Helper()
	clock := &core.ManualClock{}
	s, err := New(cfg, clock, rand.New(rand.NewSource(42)), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.obstacles = NewObstacleSet()
	s.item = Item{Pos: farAway, Kind: ItemNormal}
	return s, clock
}

// playing returns a started test session.
func playing(t *testing.T, opts ...Option) (*Session, *core.ManualClock) {
	t.Helper()
	s, clock := newTestSession(t, opts...)
	s.Handle(core.ActionStart)
	if s.Stage() != StagePlaying {
		t.Fatalf("expected playing after start, got %v", s.Stage())
	}
	return s, clock
}

// ahead returns the cell the head will enter on the next move.
func ahead(s *Session) core.Point {
	return s.board.Step(s.creature.Head(), s.creature.Velocity())
}
