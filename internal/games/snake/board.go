package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents a heading or the border an obstacle is anchored to.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirRight
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Unit returns the velocity of one step of the given size in direction d.
func (d Direction) Unit(step int) core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -step}
	case DirDown:
		return core.Point{Y: step}
	case DirLeft:
		return core.Point{X: -step}
	default:
		return core.Point{X: step}
	}
}

// headingOf derives a heading from a non-zero velocity.
func headingOf(v core.Point) (Direction, bool) {
	switch {
	case v.Y < 0:
		return DirUp, true
	case v.Y > 0:
		return DirDown, true
	case v.X < 0:
		return DirLeft, true
	case v.X > 0:
		return DirRight, true
	}
	return DirRight, false
}

// Board is the window geometry. Region is the playable part below the header band;
// movement, items and obstacles are confined to it.
type Board struct {
	Width  int
	Height int
	Cell   int
	Region core.Rect
}

// NewBoard derives the board from config.
func NewBoard(cfg config.SnakeConfig) Board {
	top := cfg.RegionTop()
	return Board{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Cell:   cfg.Board.CellSize,
		Region: core.NewRect(0, top, cfg.Board.Width, cfg.Board.Height-top),
	}
}

// Step moves p by v, wrapping each axis within the region's own bounds.
func (b Board) Step(p, v core.Point) core.Point {
	n := p.Add(v)
	return core.Point{
		X: core.Wrap(b.Region.X, b.Region.Right(), n.X),
		Y: core.Wrap(b.Region.Y, b.Region.Bottom(), n.Y),
	}
}

// Playable reports whether p lies inside the playable region.
func (b Board) Playable(p core.Point) bool {
	return b.Region.ContainsPoint(p)
}

// Columns returns the region width in cells.
func (b Board) Columns() int {
	return b.Region.W / b.Cell
}

// Rows returns the region height in cells.
func (b Board) Rows() int {
	return b.Region.H / b.Cell
}

// HeaderRows returns the header band height in cells.
func (b Board) HeaderRows() int {
	return b.Region.Y / b.Cell
}

// freeCells lists every playable cell not rejected by exclude, row by row.
func (b Board) freeCells(exclude func(core.Point) bool) []core.Point {
	var free []core.Point
	rows, cols := b.Rows(), b.Columns()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := core.Point{X: b.Region.X + col*b.Cell, Y: b.Region.Y + row*b.Cell}
			if !exclude(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
