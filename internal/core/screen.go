package core

import (
	"strings"
)

// HalfBlock is the upper half block. Its foreground paints the top pixel of a
// cell and its background the bottom one.
const HalfBlock = '▀'

// Cell is one terminal character with truecolor attributes.
type Cell struct {
	Rune rune
	FG   RGB
	BG   RGB
}

// blank is what Clear writes.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer. It decouples drawing from the terminal: the
// viewer paints pixels and text into it and the platform turns rows into
// styled strings.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// SetPixels paints one cell as two stacked pixels.
func (s *Screen) SetPixels(x, y int, top, bottom RGB) {
	s.Set(x, y, Cell{Rune: HalfBlock, FG: top, BG: bottom})
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground color. Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg RGB) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, Cell{Rune: r, FG: fg})
		i++
	}
}

// String converts the screen to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
