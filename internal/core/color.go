package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Palette used by the snake screens.
const (
	ColorDefault Color = iota
	ColorGreen         // snake body
	ColorGold          // snake head
	ColorBlue          // normal item
	ColorTurquoise     // special item
	ColorTomato        // score, hearts, titles
	ColorGray          // hints
	ColorDimGray       // start and game over text
	ColorKhaki         // obstacles
	ColorWhite         // header separator
)
