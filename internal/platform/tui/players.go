package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hazard-arena/internal/arena"
)

// Player panel layout constants
const (
	minWidthForTable = 90 // Minimum terminal width to show the panel beside the arena
	tableWidth       = 34 // Panel width including its border
)

// newPlayerTable creates the player table sized for the given height.
func newPlayerTable(height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Color", Width: 8},
		{Title: "Score", Width: 6},
		{Title: "State", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(height-4, 3)), // Leave room for header and border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// playerRows builds one table row per player in id order.
func playerRows(players []*arena.Player, danger int) []table.Row {
	rows := make([]table.Row, len(players))
	for i, p := range players {
		state := "alive"
		switch {
		case !p.Alive:
			state = "out"
		case p.Color == danger:
			state = "danger"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.ID),
			arena.ClassName(p.Color),
			fmt.Sprintf("%d", p.Score),
			state,
		}
	}
	return rows
}

// renderPlayerPanel wraps the table in a border.
func renderPlayerPanel(t table.Model) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return style.Render(t.View())
}
