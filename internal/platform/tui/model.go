package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model that drives a snake session.
type Model struct {
	session *snake.Session
	queue   *core.InputQueue
	store   *storage.Store
	screen  *core.Screen
	keys    *KeyMapper
	help    help.Model
	history *History
	logger  *log.Logger

	poll     time.Duration
	frame    string // last rendered frame, rebuilt when the render gate fires
	stage    snake.Stage
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for session. rt carries the terminal size known
// at launch; later sizes arrive as WindowSizeMsg.
func NewModel(session *snake.Session, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := ScreenSize(session.Board())
	queue := &core.InputQueue{}
	// The terminal has focus when the program starts; only later changes are reported.
	queue.Push(core.ActionFocusEnter)

	hm := help.New()
	hm.Width = rt.ScreenW

	return Model{
		session: session,
		queue:   queue,
		store:   store,
		screen:  core.NewScreen(w, h),
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    hm,
		history: NewHistory(),
		logger:  logger,
		poll:    pollDuration(session.PollInterval()),
		stage:   session.Stage(),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.poll)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.queue.Push(core.ActionFocusEnter)
		return m, nil

	case tea.BlurMsg:
		m.queue.Push(core.ActionFocusLeave)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	m.queue.Push(m.keys.MapKey(msg))
	return m, nil
}

// handleTick applies queued input in arrival order, then polls the session gates.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if n := m.queue.Len(); n > 1 {
		m.logger.Debug("several actions in one tick", "count", n)
	}
	for _, a := range m.queue.Drain() {
		m.session.Handle(a)
	}

	res := m.session.Tick()
	if m.session.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if stage := m.session.Stage(); stage != m.stage {
		if stage == snake.StageGameOver {
			if err := m.history.Load(m.store); err != nil {
				m.logger.Error("load round history", "err", err)
			}
		}
		m.stage = stage
	}

	if res.Render || m.frame == "" {
		m.frame = m.renderFrame()
	}

	return m, tickCmd(m.poll)
}

func (m Model) renderFrame() string {
	DrawFrame(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// tooSmall reports whether the terminal cannot hold the board and help line.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.",
				m.screen.Width(), m.screen.Height()+1, m.width, m.height))
	}

	frame := m.frame
	if frame == "" {
		frame = m.renderFrame()
	}
	if m.stage == snake.StageGameOver && m.width >= m.screen.Width()+historyWidth {
		frame = lipgloss.JoinHorizontal(lipgloss.Top, frame, "  ", m.history.View())
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return frame + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for session and blocks until it quits.
func Run(session *snake.Session, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, store, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Pause when the terminal loses focus
		tea.WithFPS(rt.FPS),
	)

	_, err := p.Run()
	return err
}
