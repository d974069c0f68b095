package tui

import (
	"strings"
	"testing"

	"horairectl/pkg/calendar"
	"horairectl/pkg/planner"
)

func TestRenderStateEmpty(t *testing.T) {
	state := planner.State{Grid: calendar.NewGrid(9, 22)}
	out := RenderState(state)

	if !strings.Contains(out, "Horaire 1/1") {
		t.Errorf("expected empty indicator 1/1, got:\n%s", out)
	}
	if !strings.Contains(out, "Aucun cours") {
		t.Errorf("expected empty chip placeholder, got:\n%s", out)
	}
	if !strings.Contains(out, "09:00") {
		t.Errorf("expected the grid to be rendered, got:\n%s", out)
	}
}

func TestRenderStateWithAlert(t *testing.T) {
	state := planner.State{
		Courses: []string{"INF1120", "MAT1234"},
		Grid:    calendar.NewGrid(9, 22),
		Alert:   planner.AlertNoSchedule,
	}
	out := RenderState(state)

	for _, want := range []string{"INF1120", "MAT1234", planner.AlertNoSchedule} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderStateShowsSections(t *testing.T) {
	renderer := calendar.NewRenderer(9, 22, calendar.NewSeededPalette(1))
	sessions := []calendar.ClassSession{
		{Name: "INF1120-A", Day: "Lundi", StartTime: "9h30", EndTime: "12h30", Group: "10", Type: calendar.TypeLecture},
	}
	state := planner.State{
		Courses:   []string{"INF1120"},
		Schedules: [][]string{{"INF1120-A"}, {"INF1120-B"}},
		Sessions:  sessions,
		Grid:      renderer.Render(sessions),
	}
	out := RenderState(state)

	if !strings.Contains(out, "Horaire 1/2") {
		t.Errorf("expected indicator 1/2, got:\n%s", out)
	}
	if !strings.Contains(out, "INF1120-A") {
		t.Errorf("expected current section names, got:\n%s", out)
	}
}
