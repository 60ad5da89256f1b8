package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// cellColumns is how many terminal columns one board cell takes, so cells
// look roughly square.
const cellColumns = 2

const allStages = snake.StageStart | snake.StagePlaying | snake.StagePaused | snake.StageGameOver

// layer draws one part of a frame. It runs when the snapshot stage shares a
// bit with stages.
type layer struct {
	stages snake.Stage
	draw   func(*core.Screen, snake.Snapshot)
}

// layers are drawn in order, later ones on top.
var layers = []layer{
	{allStages, drawHeader},
	{snake.StagePlaying | snake.StageGameOver, drawObstacles},
	{snake.StagePlaying | snake.StageGameOver, drawItem},
	{snake.StagePlaying | snake.StageGameOver, drawCreature},
	{snake.StageStart, drawStartPanel},
	{snake.StagePaused, drawPausePanel},
	{snake.StageGameOver, drawGameOverPanel},
}

// ScreenSize returns the terminal size in characters needed for board b.
func ScreenSize(b snake.Board) (width, height int) {
	return b.Columns() * cellColumns, b.Height / b.Cell
}

// DrawFrame draws snap onto s, resizing s to fit the board.
func DrawFrame(s *core.Screen, snap snake.Snapshot) {
	w, h := ScreenSize(snap.Board)
	if s.Width() != w || s.Height() != h {
		s.Resize(w, h)
	} else {
		s.Clear()
	}

	for _, l := range layers {
		if snap.Stage.Has(l.stages) {
			l.draw(s, snap)
		}
	}
}

// cellAt maps a board position to the terminal column and row of its cell.
func cellAt(b snake.Board, p core.Point) (x, y int) {
	return p.X / b.Cell * cellColumns, p.Y / b.Cell
}

func drawHeader(s *core.Screen, snap snake.Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(0, snap.MaxLives-snap.Lives))
	left := fmt.Sprintf(" SCORE %d  %s", snap.Score, hearts)
	s.DrawText(0, 0, left, core.ColorTomato)

	right := fmt.Sprintf("SPEED %d  FPS %d ", snap.Speed, snap.FPS)
	s.DrawText(s.Width()-len(right), 0, right, core.ColorGray)

	if snap.Stage.Has(snake.StagePlaying) && snap.Item.Kind.Special() {
		timer := fmt.Sprintf("%s %ds", itemLabel(snap.Item.Kind), (snap.ItemTTL+999_999)/1_000_000)
		s.DrawTextCentered(0, timer, core.ColorTurquoise)
	}

	if rows := snap.Board.HeaderRows(); rows > 1 {
		s.DrawHLine(0, rows-1, s.Width(), '─', core.ColorWhite)
	}
}

func itemLabel(k snake.ItemKind) string {
	switch k {
	case snake.ItemBonusLife:
		return "BONUS"
	case snake.ItemPenaltyLife:
		return "PENALTY"
	default:
		return "ITEM"
	}
}

func drawObstacles(s *core.Screen, snap snake.Snapshot) {
	b := snap.Board
	for _, o := range snap.Obstacles {
		x, y := cellAt(b, core.Point{X: o.Rect.X, Y: o.Rect.Y})
		r := core.NewRect(x, y, o.Rect.W/b.Cell*cellColumns, o.Rect.H/b.Cell)
		s.DrawRect(r, '▒', core.ColorKhaki)
	}
}

func drawItem(s *core.Screen, snap snake.Snapshot) {
	glyph, color := "()", core.ColorBlue
	switch snap.Item.Kind {
	case snake.ItemBonusLife:
		glyph, color = "++", core.ColorTurquoise
	case snake.ItemPenaltyLife:
		glyph, color = "××", core.ColorTurquoise
	}
	x, y := cellAt(snap.Board, snap.Item.Pos)
	s.DrawText(x, y, glyph, color)
}

func drawCreature(s *core.Screen, snap snake.Snapshot) {
	// Tail first so the head wins where segments overlap.
	for i := len(snap.Body) - 1; i >= 1; i-- {
		x, y := cellAt(snap.Board, snap.Body[i])
		s.DrawText(x, y, "██", core.ColorGreen)
	}
	if len(snap.Body) > 0 {
		x, y := cellAt(snap.Board, snap.Head())
		s.DrawText(x, y, headGlyph(snap.Heading), core.ColorGold)
	}
}

func headGlyph(d snake.Direction) string {
	switch d {
	case snake.DirUp:
		return "▀▀"
	case snake.DirDown:
		return "▄▄"
	case snake.DirLeft:
		return "▐█"
	default:
		return "█▌"
	}
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a box with lines centered over the playable region.
func drawPanel(s *core.Screen, snap snake.Snapshot, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 6
	height := len(lines) + 2

	top := snap.Board.HeaderRows()
	x := core.Clamp((s.Width()-width)/2, 0, s.Width())
	y := core.Clamp(top+(s.Height()-top-height)/2, top, s.Height())
	s.DrawBox(core.NewRect(x, y, width, height), core.ColorGray)

	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l.text, l.color)
	}
}

func drawStartPanel(s *core.Screen, snap snake.Snapshot) {
	drawPanel(s, snap, []panelLine{
		{"S N A K E", core.ColorTomato},
		{"", core.ColorDefault},
		{"steer with WASD or the arrows", core.ColorGray},
		{"eat () to grow, ++ gives a life, ×× takes one", core.ColorGray},
		{"", core.ColorDefault},
		{"press enter to start", core.ColorDimGray},
	})
}

func drawPausePanel(s *core.Screen, snap snake.Snapshot) {
	drawPanel(s, snap, []panelLine{
		{"PAUSED", core.ColorTomato},
		{"press y to resume", core.ColorDimGray},
		{"r to restart, q to quit", core.ColorDimGray},
	})
}

func drawGameOverPanel(s *core.Screen, snap snake.Snapshot) {
	drawPanel(s, snap, []panelLine{
		{"GAME OVER", core.ColorTomato},
		{fmt.Sprintf("score %d  length %d", snap.Score, len(snap.Body)), core.ColorGray},
		{"", core.ColorDefault},
		{"r to play again, q to quit", core.ColorDimGray},
	})
}
