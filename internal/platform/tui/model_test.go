package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T) (Model, *snake.Session, *core.ManualClock) {
	t.Helper()
	s, clock := newTestSession(t)
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = 120, 40
	return NewModel(s, nil, rt, nil), s, clock
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelInputAppliedOnTick(t *testing.T) {
	m, s, _ := newTestModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Stage() != snake.StageStart {
		t.Fatal("input must wait for the next tick")
	}

	m, cmd := step(t, m, TickMsg{})
	if s.Stage() != snake.StagePlaying {
		t.Errorf("stage = %v after tick, expected playing", s.Stage())
	}
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if m.frame == "" {
		t.Error("first tick did not render a frame")
	}
}

func TestModelTurnsInArrivalOrder(t *testing.T) {
	m, s, _ := newTestModel(t)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg{})

	// Both turns are perpendicular to the still horizontal body; the later one wins.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	step(t, m, TickMsg{})

	if got := s.Snapshot().Heading; got != snake.DirDown {
		t.Errorf("heading = %v, expected the last perpendicular turn", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, s, _ := newTestModel(t)

	m, _ = step(t, m, runeKey("q"))
	m, cmd := step(t, m, TickMsg{})

	if !s.Quitting() {
		t.Fatal("session did not receive quit")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelFocusPausesAndResumes(t *testing.T) {
	m, s, _ := newTestModel(t)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg{})

	m, _ = step(t, m, tea.BlurMsg{})
	m, _ = step(t, m, TickMsg{})
	if s.Stage() != snake.StagePlaying|snake.StagePaused {
		t.Fatalf("stage = %v after blur, expected paused", s.Stage())
	}

	m, _ = step(t, m, tea.FocusMsg{})
	step(t, m, TickMsg{})
	if s.Stage() != snake.StagePlaying {
		t.Errorf("stage = %v after focus, expected playing", s.Stage())
	}
}

func TestModelFrameCachedUntilRenderGate(t *testing.T) {
	m, s, clock := newTestModel(t)
	m, _ = step(t, m, TickMsg{})
	startFrame := m.frame

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg{})
	if s.Stage() != snake.StagePlaying {
		t.Fatal("setup: expected playing")
	}
	if m.frame != startFrame {
		t.Error("frame rebuilt before the render gate fired")
	}

	clock.Advance(40_000)
	m, _ = step(t, m, TickMsg{})
	if m.frame == startFrame {
		t.Error("frame not rebuilt after the render gate fired")
	}
	if strings.Contains(screenText(m.screen), "S N A K E") {
		t.Error("start panel still drawn while playing")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = step(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("? did not expand help")
	}
	if m.queue.Len() != 1 { // the initial focus report only
		t.Errorf("help key was queued as an action, queue length %d", m.queue.Len())
	}

	m, _ = step(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("? did not collapse help")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected a too-small message for 40x20")
	}

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 31})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("80x31 should fit the board and help line")
	}
}

func TestRoundRecorderAndHistory(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultSnakeConfig()
	record := RoundRecorder(store, cfg, log.New(io.Discard))
	record(snake.RoundResult{Score: 5, Moves: 40, Length: 10, Cause: snake.CauseCollision})
	record(snake.RoundResult{Score: 2, Moves: 12, Length: 7, Cause: snake.CausePenalty})

	rounds, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[1].Cause != "collision" || rounds[0].Speed != cfg.Launch.Speed {
		t.Fatalf("unexpected rounds: %+v", rounds)
	}

	h := NewHistory()
	if err := h.Load(store); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if h.Len() != 2 {
		t.Errorf("history shows %d rounds, expected 2", h.Len())
	}
	if !strings.Contains(h.View(), "ROUNDS 2  best 5  avg 3.5  moves 52") {
		t.Errorf("history title does not sum up the rounds:\n%s", h.View())
	}
}

func TestRoundRecorderWithoutStore(t *testing.T) {
	record := RoundRecorder(nil, config.DefaultSnakeConfig(), log.New(io.Discard))
	record(snake.RoundResult{Score: 1}) // must not panic

	h := NewHistory()
	if err := h.Load(nil); err != nil {
		t.Errorf("Load(nil) = %v", err)
	}
	if !strings.Contains(h.View(), "No rounds finished yet.") {
		t.Error("empty history message missing")
	}
}
