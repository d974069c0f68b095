package tui

import (
	"fmt"
	"strings"

	"horairectl/pkg/planner"

	"github.com/charmbracelet/lipgloss"
)

var chipStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// Chips renders the course list as a row of bordered labels.
func Chips(courses []string) string {
	if len(courses) == 0 {
		return mutedStyle.Render("Aucun cours")
	}

	chips := make([]string, 0, len(courses))
	for _, code := range courses {
		chips = append(chips, chipStyle.Render(code+" ✕"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// RenderState lays out everything the planner shows: chips, indicator, alert, grid and legend.
func RenderState(state planner.State) string {
	var b strings.Builder

	b.WriteString(Chips(state.Courses))
	b.WriteString("\n")
	b.WriteString(accentStyle.Bold(true).Render(fmt.Sprintf("Horaire %s", state.IndexLabel())))
	if sections := state.Current(); len(sections) > 0 {
		b.WriteString(mutedStyle.Render("  " + strings.Join(sections, ", ")))
	}
	b.WriteString("\n")

	if state.Alert != "" {
		b.WriteString(errorStyle.Render("⚠ " + state.Alert))
		b.WriteString("\n")
	}

	if state.Grid != nil {
		b.WriteString(state.Grid.View())
		b.WriteString("\n")
		if legend := state.Grid.Legend(); legend != "" {
			b.WriteString(legend)
			b.WriteString("\n")
		}
	}

	return b.String()
}
