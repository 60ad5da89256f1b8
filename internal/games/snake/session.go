// Package snake implements the snake simulation: movement on a toroidal grid,
// collisions against the body and border walls, items, and the
// start/playing/paused/game-over lifecycle.
package snake

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Stage is a bitmask of the session lifecycle. A paused session is
// StagePlaying|StagePaused.
type Stage uint8

const (
	StageStart    Stage = 1 << 0
	StagePlaying  Stage = 1 << 1
	StagePaused   Stage = 1 << 2
	StageGameOver Stage = 1 << 3
)

// Has reports whether s shares any bit with mask.
func (s Stage) Has(mask Stage) bool {
	return s&mask != 0
}

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StagePlaying:
		return "playing"
	case StagePlaying | StagePaused:
		return "paused"
	case StageGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	Score  int
	Moves  int
	Length int
	Cause  EndCause
}

// Session owns all game state. It is not safe for concurrent use; one control
// loop feeds it commands and ticks.
type Session struct {
	cfg    config.SnakeConfig
	board  Board
	clock  core.Clock
	rng    core.RandomSource
	logger *log.Logger

	onRoundEnd func(RoundResult)

	stage     Stage
	score     int
	moves     int
	creature  *Creature
	item      Item
	obstacles ObstacleSet

	savedVelocity  core.Point
	specialElapsed int64
	focused        bool
	quit           bool

	moveGate   Gate
	renderGate Gate
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithRoundEndHook registers fn to be called each time a round ends.
func WithRoundEndHook(fn func(RoundResult)) Option {
	return func(s *Session) {
		s.onRoundEnd = fn
	}
}

// New validates cfg and creates a session in the start stage.
func New(cfg config.SnakeConfig, clock core.Clock, rng core.RandomSource, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		board:      NewBoard(cfg),
		clock:      clock,
		rng:        rng,
		logger:     log.New(io.Discard),
		moveGate:   NewGate(cfg.MoveInterval()),
		renderGate: NewGate(cfg.RenderInterval()),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.reset(); err != nil {
		return nil, err
	}
	s.stage = StageStart
	return s, nil
}

// reset builds a fresh round: creature, obstacles, item, score.
func (s *Session) reset() error {
	now := s.clock.Now()
	rules := s.cfg.Rules

	s.creature = NewCreature(s.board, core.Point{X: rules.Spawn.X, Y: rules.Spawn.Y}, rules.InitialLength, rules.StartLives)
	s.obstacles = GenerateObstacles(s.rng, s.board, rules.MinObstacles, rules.MaxObstacles)
	s.score = 0
	s.moves = 0
	s.savedVelocity = core.Point{}
	s.specialElapsed = 0

	first := core.Point{X: rules.FirstItem.X, Y: rules.FirstItem.Y}
	blocked := s.creature.blocked(s.creature.Head(), &s.obstacles)
	if !blocked(first) {
		s.item = Item{Pos: first, Kind: ItemNormal, SpawnedAt: now}
		return nil
	}
	return s.item.Regenerate(s.rng, s.board, blocked, now)
}

// Handle applies one input command.
func (s *Session) Handle(a core.Action) {
	if s.quit {
		return
	}

	switch a {
	case core.ActionQuit:
		s.quit = true
		s.logger.Info("quit", "stage", s.stage, "score", s.score)
	case core.ActionStart:
		if s.stage == StageStart {
			s.setStage(StagePlaying)
		}
	case core.ActionRestart:
		s.restart()
	case core.ActionPause:
		s.pause()
	case core.ActionResume:
		s.resume()
	case core.ActionUp:
		s.turn(DirUp)
	case core.ActionDown:
		s.turn(DirDown)
	case core.ActionLeft:
		s.turn(DirLeft)
	case core.ActionRight:
		s.turn(DirRight)
	case core.ActionFocusEnter:
		s.setFocus(true)
	case core.ActionFocusLeave:
		s.setFocus(false)
	}
}

func (s *Session) turn(d Direction) {
	if s.stage != StagePlaying {
		return
	}
	if s.creature.ChangeDirection(d) {
		s.logger.Debug("turn", "heading", d)
	}
}

func (s *Session) restart() {
	if s.stage == StageStart {
		return
	}
	if err := s.reset(); err != nil {
		s.logger.Error("restart failed", "err", err)
		s.endRound(CauseBoardFull)
		return
	}
	s.logger.Info("restart", "obstacles", s.obstacles.Len())
	s.setStage(StagePlaying)
}

func (s *Session) pause() {
	if s.stage != StagePlaying {
		return
	}
	s.specialElapsed = s.clock.Now() - s.item.SpawnedAt
	s.savedVelocity = s.creature.Velocity()
	s.creature.SetVelocity(core.Point{})
	s.setStage(StagePlaying | StagePaused)
}

func (s *Session) resume() {
	if s.stage != StagePlaying|StagePaused {
		return
	}
	s.creature.SetVelocity(s.savedVelocity)
	s.item.SpawnedAt = s.clock.Now() - s.specialElapsed
	s.setStage(StagePlaying)
}

// setFocus pauses on losing focus and resumes on regaining it. Only changes
// of the focus state count; repeated reports of the same state are ignored.
func (s *Session) setFocus(inside bool) {
	switch {
	case inside && !s.focused:
		s.resume()
	case !inside && s.focused:
		s.pause()
	}
	s.focused = inside
}

func (s *Session) setStage(st Stage) {
	if st == s.stage {
		return
	}
	s.logger.Debug("stage", "from", s.stage, "to", st)
	s.stage = st
}

// TickResult tells the control loop what fired this iteration.
type TickResult struct {
	Moved  bool // the move gate fired
	Render bool // the render gate fired; a new frame should be drawn
}

// Tick samples the clock and runs at most one move and at most one render
// trigger. After quit it does nothing.
func (s *Session) Tick() TickResult {
	if s.quit {
		return TickResult{}
	}

	var res TickResult
	now := s.clock.Now()
	if s.moveGate.Ready(now) {
		s.advance(now)
		s.moveGate.Mark(now)
		res.Moved = true
	}
	if s.renderGate.Ready(now) {
		s.renderGate.Mark(now)
		res.Render = true
	}
	return res
}

// Advance moves the creature one cell. It is a no-op unless the stage is
// exactly StagePlaying.
func (s *Session) Advance() {
	s.advance(s.clock.Now())
}

// advance moves at time now, the same instant the move gate was checked at.
func (s *Session) advance(now int64) {
	if s.stage != StagePlaying {
		return
	}

	out := s.creature.Advance(&World{
		Board:      s.board,
		Item:       &s.item,
		Obstacles:  &s.obstacles,
		Rng:        s.rng,
		Now:        now,
		MaxLives:   s.cfg.Rules.MaxLives,
		SpecialTTL: s.cfg.SpecialItemTTL(),
	})
	s.moves++

	if out.LifeLost {
		s.logger.Info("collision", "x", out.Head.X, "y", out.Head.Y, "lives", s.creature.Lives())
	}
	if out.Ate {
		if out.Eaten == ItemNormal {
			s.score++
		}
		s.logger.Info("ate item", "kind", out.Eaten, "score", s.score, "lives", s.creature.Lives())
	}
	if out.Expired {
		s.logger.Debug("special item expired", "next", s.item.Kind)
	}

	switch {
	case out.Died:
		s.endRound(out.Cause)
	case errors.Is(out.Err, ErrBoardFull):
		s.endRound(CauseBoardFull)
	case out.Err != nil:
		s.logger.Error("item placement", "err", out.Err)
	}
}

func (s *Session) endRound(cause EndCause) {
	s.setStage(StageGameOver)
	res := RoundResult{
		Score:  s.score,
		Moves:  s.moves,
		Length: s.creature.Len(),
		Cause:  cause,
	}
	s.logger.Info("game over", "cause", cause, "score", res.Score, "moves", res.Moves)
	if s.onRoundEnd != nil {
		s.onRoundEnd(res)
	}
}

// Stage returns the lifecycle stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Quitting reports whether a quit command was received.
func (s *Session) Quitting() bool {
	return s.quit
}

// Board returns the board geometry.
func (s *Session) Board() Board {
	return s.board
}

// PollInterval returns how often the control loop should call Tick, in microseconds.
func (s *Session) PollInterval() int64 {
	return PollInterval(s.moveGate.Interval, s.renderGate.Interval)
}
