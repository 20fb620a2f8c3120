package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hazard-arena/internal/arena"
	"github.com/vovakirdan/hazard-arena/internal/core"
)

// bannerFG is the text color of DrawBanner.
var bannerFG = core.RGB{R: 255, G: 255, B: 255}

// cellStyle is the part of a cell that decides its lipgloss style.
type cellStyle struct {
	fg, bg core.RGB
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		st, ok := styles[cs]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(cs.fg.Hex())).
				Background(lipgloss.Color(cs.bg.Hex()))
			styles[cs] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			start := cellStyle{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if (cellStyle{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// PaintBuffer downsamples the buffer onto the whole screen, two pixel rows
// per cell, using nearest-neighbour sampling.
func PaintBuffer(s *core.Screen, b *arena.Buffer) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 || b == nil || b.W == 0 || b.H == 0 {
		return
	}

	rows := 2 * h
	for cy := 0; cy < h; cy++ {
		top := (2 * cy) * b.H / rows
		bottom := (2*cy + 1) * b.H / rows
		for cx := 0; cx < w; cx++ {
			px := cx * b.W / w
			s.SetPixels(cx, cy, sample(b, px, top), sample(b, px, bottom))
		}
	}
}

// DrawBanner writes text centered on the screen over whatever is painted there.
func DrawBanner(s *core.Screen, text string) {
	n := len([]rune(text))
	if n == 0 || s.Height() == 0 {
		return
	}
	s.DrawText((s.Width()-n)/2, s.Height()/2, text, bannerFG)
}

func sample(b *arena.Buffer, x, y int) core.RGB {
	c, _ := b.At(x, y)
	return core.RGBFromFloat(c.R, c.G, c.B)
}

// classHex returns the terminal color of a player color class.
func classHex(class int) lipgloss.Color {
	c := arena.ClassColor(class)
	return lipgloss.Color(core.RGBFromFloat(c.R, c.G, c.B).Hex())
}
