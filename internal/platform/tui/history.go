package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// History layout constants
const (
	historyRows  = 10
	historyWidth = 52 // table plus cell padding, border and gap
)

// RoundRecorder returns a round end hook that appends each round to store.
// Failures are logged; the game goes on without the record.
func RoundRecorder(store *storage.Store, cfg config.SnakeConfig, logger *log.Logger) func(snake.RoundResult) {
	return func(r snake.RoundResult) {
		if store == nil {
			return
		}
		id, err := store.RecordRound(storage.Round{
			Score:  r.Score,
			Moves:  r.Moves,
			Length: r.Length,
			Cause:  string(r.Cause),
			Speed:  cfg.Launch.Speed,
			FPS:    cfg.Launch.FPS,
		})
		if err != nil {
			logger.Error("record round", "err", err)
			return
		}
		logger.Debug("round recorded", "id", id, "score", r.Score)
	}
}

// History shows the rounds played in this process.
type History struct {
	table  table.Model
	rounds []storage.Round
	stats  storage.Stats
}

// NewHistory creates an empty round table.
func NewHistory() *History {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "End", Width: 12},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return &History{table: t}
}

// Load refreshes the table from store.
func (h *History) Load(store *storage.Store) error {
	if store == nil {
		return nil
	}

	rounds, err := store.Recent(historyRows)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	h.rounds = rounds
	h.stats = stats
	h.updateRows()
	return nil
}

func (h *History) updateRows() {
	rows := make([]table.Row, len(h.rounds))
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Moves),
			strings.ReplaceAll(r.Cause, "_", " "),
			r.EndedAt.Local().Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// Len returns the number of rounds shown.
func (h *History) Len() int {
	return len(h.rounds)
}

// View renders the table under a title summing up every round played.
func (h *History) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := titleStyle.Render(fmt.Sprintf("ROUNDS %d  best %d  avg %.1f  moves %d",
		h.stats.Rounds, h.stats.Best, h.stats.AvgScore, h.stats.TotalMoves))
	if len(h.rounds) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No rounds finished yet.")
		return boxStyle.Render(title + "\n\n" + empty)
	}
	return boxStyle.Render(title + "\n\n" + h.table.View())
}
