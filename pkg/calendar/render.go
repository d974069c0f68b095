package calendar

import (
	"horairectl/pkg/logger"
)

// Renderer draws sessions on a fresh grid for every render and keeps the last result.
type Renderer struct {
	StartHour int
	EndHour   int
	Palette   *Palette

	current *Grid
}

// NewRenderer returns a renderer for the [startHour, endHour) window.
// A nil palette gets a clock-seeded one.
func NewRenderer(startHour, endHour int, palette *Palette) *Renderer {
	if palette == nil {
		palette = NewPalette()
	}
	r := &Renderer{
		StartHour: startHour,
		EndHour:   endHour,
		Palette:   palette,
	}
	r.current = NewGrid(startHour, endHour)
	return r
}

// Grid returns the grid produced by the last Render or Clear.
func (r *Renderer) Grid() *Grid {
	return r.current
}

// Clear replaces the current grid with an empty one.
func (r *Renderer) Clear() *Grid {
	r.current = NewGrid(r.StartHour, r.EndHour)
	return r.current
}

// Render discards the previous grid and draws sessions in order. When two
// sessions share a cell the later one wins. Sessions with bad day or time
// data are logged and skipped.
func (r *Renderer) Render(sessions []ClassSession) *Grid {
	g := NewGrid(r.StartHour, r.EndHour)

	for _, s := range sessions {
		p, err := MapSession(s, r.StartHour)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("class", s.Name).
				Str("day", s.Day).
				Str("start", s.StartTime).
				Str("end", s.EndTime).
				Msg("skipping session with invalid data")
			continue
		}

		color := r.Palette.ColorFor(s.CourseCode(), s.Type)
		if g.Paint(p, s, color) == 0 {
			logger.Debug().Str("class", s.Name).Msg("session falls outside the visible hours")
		}
	}

	r.current = g
	return g
}
