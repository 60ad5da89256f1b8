package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// EndCause explains why a round ended.
type EndCause string

const (
	CauseCollision EndCause = "collision"
	CausePenalty   EndCause = "penalty_item"
	CauseBoardFull EndCause = "board_full"
)

// World is what the creature touches during one move: the board, the item,
// the obstacles and the random source used to replace the item.
type World struct {
	Board      Board
	Item       *Item
	Obstacles  *ObstacleSet
	Rng        core.RandomSource
	Now        int64
	MaxLives   int
	SpecialTTL int64
}

// Outcome reports what happened during one move.
type Outcome struct {
	Head     core.Point
	Collided bool // head is on the body or an obstacle
	LifeLost bool // the collision cost a life (latch was open)
	Ate      bool
	Eaten    ItemKind
	Grew     bool
	Expired  bool // a special item timed out and was replaced
	Died     bool
	Cause    EndCause
	Err      error // item placement failure
}

// Creature is the snake: body segments with the head at index 0, a velocity
// of one cell per move, lives and the collision latch.
type Creature struct {
	body    []core.Point
	vel     core.Point
	heading Direction
	step    int
	lives   int
	latch   bool // true while the head stays inside a collision region
}

// NewCreature builds a straight body of length cells ending at spawn, heading right.
func NewCreature(b Board, spawn core.Point, length, lives int) *Creature {
	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Point{
			X: core.Wrap(b.Region.X, b.Region.Right(), spawn.X-i*b.Cell),
			Y: spawn.Y,
		}
	}
	return &Creature{
		body:    body,
		vel:     DirRight.Unit(b.Cell),
		heading: DirRight,
		step:    b.Cell,
		lives:   lives,
	}
}

// Head returns the first segment.
func (c *Creature) Head() core.Point {
	return c.body[0]
}

// Body returns a copy of the segments, head first.
func (c *Creature) Body() []core.Point {
	return append([]core.Point(nil), c.body...)
}

// Len returns the number of segments.
func (c *Creature) Len() int {
	return len(c.body)
}

// Lives returns the remaining lives.
func (c *Creature) Lives() int {
	return c.lives
}

// Latched reports whether the collision latch is set.
func (c *Creature) Latched() bool {
	return c.latch
}

// Velocity returns the per-move displacement. It is zero while paused.
func (c *Creature) Velocity() core.Point {
	return c.vel
}

// SetVelocity replaces the velocity. A non-zero velocity also sets the heading.
func (c *Creature) SetVelocity(v core.Point) {
	c.vel = v
	if d, ok := headingOf(v); ok {
		c.heading = d
	}
}

// Heading returns the direction of travel.
func (c *Creature) Heading() Direction {
	return c.heading
}

// ChangeDirection turns the creature if d is perpendicular to the current axis
// of travel, read from the first two segments: equal x means moving
// vertically. Requests along the axis, reversals included, are dropped.
func (c *Creature) ChangeDirection(d Direction) bool {
	vertical := c.body[0].X == c.body[1].X
	if d.Vertical() == vertical {
		return false
	}
	c.SetVelocity(d.Unit(c.step))
	return true
}

// Occupies reports whether p is on any segment.
func (c *Creature) Occupies(p core.Point) bool {
	for _, seg := range c.body {
		if seg == p {
			return true
		}
	}
	return false
}

// onBody reports whether p is on a segment other than the head.
func (c *Creature) onBody(p core.Point) bool {
	for _, seg := range c.body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance performs one move.
func (c *Creature) Advance(w *World) Outcome {
	newHead := w.Board.Step(c.Head(), c.vel)
	out := Outcome{Head: newHead}

	if c.onBody(newHead) || w.Obstacles.Contains(newHead) {
		out.Collided = true
		if !c.latch {
			c.latch = true
			c.lives--
			out.LifeLost = true
			if c.lives <= 0 {
				c.lives = 0
				out.Died, out.Cause = true, CauseCollision
				return out
			}
		}
	} else {
		c.latch = false
	}

	if newHead == w.Item.Pos {
		out.Ate, out.Eaten = true, w.Item.Kind
		switch w.Item.Kind {
		case ItemNormal:
			out.Grew = true
		case ItemBonusLife:
			c.lives = min(c.lives+1, w.MaxLives)
		case ItemPenaltyLife:
			c.lives--
			if c.lives <= 0 {
				c.lives = 0
				out.Died, out.Cause = true, CausePenalty
				return out
			}
		}
		out.Err = w.Item.Regenerate(w.Rng, w.Board, c.blocked(newHead, w.Obstacles), w.Now)
	}

	c.body = append([]core.Point{newHead}, c.body...)
	if !out.Grew {
		c.body = c.body[:len(c.body)-1]
	}

	if !out.Ate && w.Item.Expired(w.Now, w.SpecialTTL) {
		out.Expired = true
		out.Err = w.Item.Regenerate(w.Rng, w.Board, c.blocked(newHead, w.Obstacles), w.Now)
	}

	return out
}

// blocked returns the placement filter for items: body, head and obstacles.
func (c *Creature) blocked(head core.Point, obstacles *ObstacleSet) func(core.Point) bool {
	return func(p core.Point) bool {
		return p == head || c.Occupies(p) || obstacles.Contains(p)
	}
}
