package calendar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cellWidth is the printable width of a weekday column
const cellWidth = 18

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Width(cellWidth)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Width(cellWidth)
)

// View renders the grid as a terminal table. A session's label is printed on the
// first row of its block; the following rows only carry the background colour.
func (g *Grid) View() string {
	upper := cases.Upper(language.French)

	headers := []string{"Heure"}
	for _, d := range Weekdays {
		headers = append(headers, upper.String(d.String()))
	}

	rows := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		line := make([]string, Columns)
		line[0] = row[0].Text
		for col := 1; col < Columns; col++ {
			c := row[col]
			if !c.Occupied {
				continue
			}
			if i > 0 && g.Rows[i-1][col].Occupied && g.Rows[i-1][col].Text == c.Text {
				continue
			}
			line[col] = truncate(c.Text, cellWidth)
		}
		rows[i] = line
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col == 0 {
					return timeStyle.Bold(true)
				}
				return headerStyle
			}
			if col == 0 {
				return timeStyle
			}
			c, ok := g.Cell(row, col)
			if !ok || !c.Occupied {
				return emptyStyle
			}
			return emptyStyle.
				Background(lipgloss.Color(c.Color.Hex())).
				Foreground(lipgloss.Color("0"))
		})

	return t.Render()
}

// Legend lists every course on the grid next to a swatch of its colour.
func (g *Grid) Legend() string {
	var parts []string
	for _, code := range g.Courses() {
		color := RGB{}
		for _, row := range g.Rows {
			found := false
			for _, c := range row[1:] {
				if c.Occupied && c.Course == code {
					color = c.Color
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render("██")
		parts = append(parts, swatch+" "+code)
	}
	return strings.Join(parts, "   ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
