package calendar

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(9, 22, NewSeededPalette(1))

	sessions := []ClassSession{
		{Name: "INF1120-automne2025-A", Day: "Lundi", StartTime: "9h30", EndTime: "11h", Group: "10", Type: TypeLecture, Teacher: "Tremblay, Marie", Location: "PK-1140"},
		{Name: "INF1120-automne2025-A", Day: "Mercredi", StartTime: "14h", EndTime: "16h", Group: "10", Type: TypeWorkshop},
	}

	g := r.Render(sessions)

	for row := 1; row < 4; row++ {
		c := g.Rows[row][1]
		if !c.Occupied || c.Text != "INF1120 - Groupe 10" {
			t.Errorf("row %d monday: expected INF1120 block, got %+v", row, c)
		}
	}
	if g.Rows[0][1].Occupied || g.Rows[4][1].Occupied {
		t.Errorf("block leaked outside rows [1,4)")
	}

	tip := g.Rows[1][1].Tooltip
	for _, want := range []string{"Cours: INF1120", "Enseignant: Tremblay, Marie", "Local: PK-1140", "Heure: 9h30 - 11h"} {
		if !strings.Contains(tip, want) {
			t.Errorf("tooltip missing %q:\n%s", want, tip)
		}
	}

	lecture := g.Rows[1][1].Color
	workshop := g.Rows[10][3].Color
	if workshop != lecture.Brighten(10) {
		t.Errorf("workshop colour %s should be the lecture colour brightened by 10%%, got %s", lecture.Brighten(10).Hex(), workshop.Hex())
	}

	if r.Grid() != g {
		t.Errorf("renderer should keep the last rendered grid")
	}
}

func TestRenderer_LastWriteWins(t *testing.T) {
	r := NewRenderer(9, 22, NewSeededPalette(1))

	g := r.Render([]ClassSession{
		{Name: "INF1120-A", Day: "Mardi", StartTime: "10h", EndTime: "12h", Group: "10"},
		{Name: "MAT1234-B", Day: "Mardi", StartTime: "11h", EndTime: "13h", Group: "20"},
	})

	if got := g.Rows[2][2].Text; got != "INF1120 - Groupe 10" {
		t.Errorf("10:00 should still be INF1120, got %q", got)
	}
	if got := g.Rows[4][2].Text; got != "MAT1234 - Groupe 20" {
		t.Errorf("11:00 should be overwritten by MAT1234, got %q", got)
	}
}

func TestRenderer_SkipsBadSessions(t *testing.T) {
	r := NewRenderer(9, 22, NewSeededPalette(1))

	g := r.Render([]ClassSession{
		{Name: "BAD1000-A", Day: "Dimanche", StartTime: "9h", EndTime: "10h"},
		{Name: "BAD2000-A", Day: "Lundi", StartTime: "midi", EndTime: "13h"},
		{Name: "EARLY100-A", Day: "Lundi", StartTime: "7h", EndTime: "8h"},
		{Name: "INF1120-A", Day: "Vendredi", StartTime: "21h", EndTime: "23h", Group: "30"},
	})

	courses := g.Courses()
	if len(courses) != 1 || courses[0] != "INF1120" {
		t.Fatalf("expected only INF1120 on the grid, got %v", courses)
	}

	// 21:00 and 21:30 exist, 22:00 and later are clipped
	if !g.Rows[24][5].Occupied || !g.Rows[25][5].Occupied {
		t.Errorf("expected the visible part of the late session to be drawn")
	}
}

func TestRenderer_ClearResets(t *testing.T) {
	r := NewRenderer(9, 22, nil)
	r.Render([]ClassSession{{Name: "INF1120-A", Day: "Lundi", StartTime: "9h", EndTime: "10h"}})

	g := r.Clear()
	if !g.Empty() || g.RowCount() != 26 {
		t.Errorf("expected Clear to produce an empty 26-row grid")
	}
}

func TestGrid_View(t *testing.T) {
	r := NewRenderer(9, 12, NewSeededPalette(3))
	g := r.Render([]ClassSession{{Name: "INF1120-A", Day: "Lundi", StartTime: "9h", EndTime: "10h30", Group: "10"}})

	out := g.View()
	for _, want := range []string{"09:00", "11:30", "LUNDI", "VENDREDI", "INF1120 - Groupe"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "INF1120 - Groupe") != 1 {
		t.Errorf("label should be printed once per block:\n%s", out)
	}

	if !strings.Contains(g.Legend(), "INF1120") {
		t.Errorf("legend should list INF1120, got %q", g.Legend())
	}
}
