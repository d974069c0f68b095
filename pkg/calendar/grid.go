package calendar

import (
	"errors"
	"fmt"
)

// Columns is the fixed grid width: the time label column plus one per weekday.
const Columns = 6

// Default visible window, 9:00 to 22:00.
const (
	DefaultStartHour = 9
	DefaultEndHour   = 22
)

// ErrEmptyInterval is returned when a session does not end after it starts.
var ErrEmptyInterval = errors.New("session ends before it starts")

// Cell is a single half-hour slot of one column
type Cell struct {
	Text     string
	Tooltip  string
	Course   string
	Color    RGB
	Occupied bool
}

// Grid is the weekly calendar matrix. Rows are half-hour slots starting at StartHour.
type Grid struct {
	StartHour int
	EndHour   int
	Rows      [][]Cell
}

// ValidateHours checks that a grid window is non-empty and inside a single day.
func ValidateHours(startHour, endHour int) error {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return fmt.Errorf("invalid grid window %dh-%dh: need 0 <= start < end <= 24", startHour, endHour)
	}
	return nil
}

// NewGrid builds an empty grid with two rows per hour in [startHour, endHour).
// Every call allocates fresh rows so grids never share cells.
func NewGrid(startHour, endHour int) *Grid {
	rowCount := (endHour - startHour) * 2
	if rowCount < 0 {
		rowCount = 0
	}

	g := &Grid{
		StartHour: startHour,
		EndHour:   endHour,
		Rows:      make([][]Cell, rowCount),
	}

	hour := startHour
	for i := range g.Rows {
		row := make([]Cell, Columns)
		minute := 0
		if i%2 == 1 {
			minute = 30
		}
		row[0].Text = Clock{Hour: hour, Minute: minute}.String()
		if i%2 == 1 {
			hour++
		}
		g.Rows[i] = row
	}

	return g
}

// RowCount returns the number of half-hour rows.
func (g *Grid) RowCount() int {
	return len(g.Rows)
}

// Cell returns the cell at row, column. ok is false outside the grid.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= Columns {
		return Cell{}, false
	}
	return g.Rows[row][col], true
}

// Empty reports whether no session has been drawn on the grid.
func (g *Grid) Empty() bool {
	for _, row := range g.Rows {
		for _, c := range row[1:] {
			if c.Occupied {
				return false
			}
		}
	}
	return true
}

// Courses returns the distinct course codes drawn on the grid, in first-seen order
// scanning day by day.
func (g *Grid) Courses() []string {
	seen := make(map[string]bool)
	var courses []string
	for col := 1; col < Columns; col++ {
		for _, row := range g.Rows {
			c := row[col]
			if c.Occupied && !seen[c.Course] {
				seen[c.Course] = true
				courses = append(courses, c.Course)
			}
		}
	}
	return courses
}

// Placement is where a session lands on a grid: rows [RowStart, RowEnd) of Day's column.
type Placement struct {
	Day      Weekday
	RowStart int
	RowEnd   int
}

// Column returns the grid column of the placement.
func (p Placement) Column() int {
	return p.Day.Column()
}

// MapSession computes the rows a session covers on a grid starting at startHour.
// A start at :30 or later begins on the second half-hour row of that hour; any
// non-zero end minute extends the block by one row. Rows may fall outside the
// grid, callers clip them.
func MapSession(s ClassSession, startHour int) (Placement, error) {
	day, err := ParseWeekday(s.Day)
	if err != nil {
		return Placement{}, err
	}

	start, err := ParseClock(s.StartTime)
	if err != nil {
		return Placement{}, fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return Placement{}, fmt.Errorf("end time: %w", err)
	}

	if end.Minutes() <= start.Minutes() {
		return Placement{}, fmt.Errorf("%w: %s-%s", ErrEmptyInterval, s.StartTime, s.EndTime)
	}

	rowStart := (start.Hour - startHour) * 2
	if start.Minute >= 30 {
		rowStart++
	}

	rowEnd := (end.Hour - startHour) * 2
	if end.Minute > 0 {
		rowEnd++
	}

	// 9h40-9h50 would otherwise round to nothing; a valid interval always
	// covers at least one row (rowEnd > rowStart whenever end > start)
	if rowEnd <= rowStart {
		rowEnd = rowStart + 1
	}

	return Placement{Day: day, RowStart: rowStart, RowEnd: rowEnd}, nil
}

// Paint writes the session into every row of p that exists on the grid.
// Whatever was in those cells before is overwritten.
func (g *Grid) Paint(p Placement, s ClassSession, color RGB) int {
	painted := 0
	col := p.Column()
	for row := p.RowStart; row < p.RowEnd; row++ {
		if row < 0 || row >= len(g.Rows) {
			continue
		}
		g.Rows[row][col] = Cell{
			Text:     s.Label(),
			Tooltip:  s.Tooltip(),
			Course:   s.CourseCode(),
			Color:    color,
			Occupied: true,
		}
		painted++
	}
	return painted
}
