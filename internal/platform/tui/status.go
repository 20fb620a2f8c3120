package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hazard-arena/internal/arena"
)

var (
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	idleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// warnSeconds matches the window in which the hazard color pulses.
const warnSeconds = 3.0

// statusLine renders the one-line summary shown above the arena.
func statusLine(st arena.Status, paused bool, clock float64) string {
	var parts []string

	switch {
	case paused:
		parts = append(parts, pausedStyle.Render("❚❚ PAUSED"))
	case st.Running:
		parts = append(parts, runningStyle.Render("● RUNNING"))
	default:
		parts = append(parts, idleStyle.Render("○ IDLE"))
	}

	if st.Running {
		danger := lipgloss.NewStyle().Bold(true).Foreground(classHex(st.DangerColor))
		parts = append(parts, labelStyle.Render("danger ")+danger.Render(st.DangerColorName))

		countdown := fmt.Sprintf("%.1fs", max(st.TimeUntilChange, 0))
		if st.TimeUntilChange < warnSeconds {
			countdown = warnStyle.Render(countdown)
		}
		parts = append(parts, labelStyle.Render("change ")+countdown)
		parts = append(parts, labelStyle.Render("players ")+fmt.Sprintf("%d/%d", st.AlivePlayers, st.TotalPlayers))
	}

	parts = append(parts,
		labelStyle.Render("blobs ")+fmt.Sprintf("%d", st.BlobCount),
		labelStyle.Render("zones ")+fmt.Sprintf("%d", st.SafeZoneCount),
		labelStyle.Render("t ")+fmt.Sprintf("%.1f", clock),
	)
	return strings.Join(parts, "  ")
}
