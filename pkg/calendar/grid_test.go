package calendar

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(9, 22)

	if g.RowCount() != 26 {
		t.Fatalf("expected 26 rows for 9h-22h, got %d", g.RowCount())
	}
	for i, row := range g.Rows {
		if len(row) != Columns {
			t.Fatalf("row %d: expected %d columns, got %d", i, Columns, len(row))
		}
	}

	expected := map[int]string{0: "09:00", 1: "09:30", 2: "10:00", 25: "21:30"}
	for row, label := range expected {
		if g.Rows[row][0].Text != label {
			t.Errorf("row %d: expected label %s, got %s", row, label, g.Rows[row][0].Text)
		}
	}

	if !g.Empty() {
		t.Errorf("a fresh grid should have no occupied cells")
	}
}

func TestNewGrid_Independent(t *testing.T) {
	a := NewGrid(9, 22)
	b := NewGrid(9, 22)

	a.Rows[3][2] = Cell{Text: "INF1120 - Groupe 10", Occupied: true}

	if b.Rows[3][2].Occupied || b.Rows[3][2].Text != "" {
		t.Errorf("grids built by separate calls must not share cells")
	}
	for i := range b.Rows {
		if a.Rows[i][0].Text != b.Rows[i][0].Text {
			t.Errorf("row %d labels differ between identical calls", i)
		}
	}
}

func TestNewGrid_InvertedBounds(t *testing.T) {
	g := NewGrid(12, 9)
	if g.RowCount() != 0 {
		t.Errorf("expected an inverted window to give 0 rows, got %d", g.RowCount())
	}
	if err := ValidateHours(12, 9); err == nil {
		t.Errorf("expected ValidateHours to reject 12h-9h")
	}
	if err := ValidateHours(8, 23); err != nil {
		t.Errorf("unexpected error for 8h-23h: %v", err)
	}
}

func TestMapSession(t *testing.T) {
	s := ClassSession{Name: "INF1120-automne2025-A", Day: "Lundi", StartTime: "9h30", EndTime: "11h"}

	p, err := MapSession(s, 9)
	if err != nil {
		t.Fatalf("MapSession failed: %v", err)
	}
	if p.Column() != 1 || p.RowStart != 1 || p.RowEnd != 4 {
		t.Errorf("expected column 1 rows [1,4), got column %d rows [%d,%d)", p.Column(), p.RowStart, p.RowEnd)
	}
}

func TestMapSession_Rounding(t *testing.T) {
	tests := []struct {
		start, end       string
		rowStart, rowEnd int
	}{
		{"9h", "12h", 0, 6},
		{"9h29", "10h", 0, 2},
		{"9h30", "10h01", 1, 3},
		{"13h45", "15h15", 9, 13},
		{"18h", "21h", 18, 24},
		{"9h40", "9h50", 1, 2},
	}

	for _, tt := range tests {
		s := ClassSession{Day: "Mercredi", StartTime: tt.start, EndTime: tt.end}
		p, err := MapSession(s, 9)
		if err != nil {
			t.Errorf("%s-%s: unexpected error %v", tt.start, tt.end, err)
			continue
		}
		if p.RowStart != tt.rowStart || p.RowEnd != tt.rowEnd {
			t.Errorf("%s-%s: expected rows [%d,%d), got [%d,%d)", tt.start, tt.end, tt.rowStart, tt.rowEnd, p.RowStart, p.RowEnd)
		}
		if p.Day != Wednesday {
			t.Errorf("expected Wednesday, got %v", p.Day)
		}
	}
}

func TestMapSession_EndAfterStart(t *testing.T) {
	// Every valid interval must cover at least one row.
	for startMin := 8 * 60; startMin < 22*60; startMin += 5 {
		for endMin := startMin + 5; endMin <= 22*60; endMin += 25 {
			s := ClassSession{
				Day:       "Jeudi",
				StartTime: clockString(startMin),
				EndTime:   clockString(endMin),
			}
			p, err := MapSession(s, 9)
			if err != nil {
				t.Fatalf("%s-%s: unexpected error %v", s.StartTime, s.EndTime, err)
			}
			if p.RowEnd <= p.RowStart {
				t.Fatalf("%s-%s: rowEnd %d is not after rowStart %d", s.StartTime, s.EndTime, p.RowEnd, p.RowStart)
			}
		}
	}
}

func clockString(minutes int) string {
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%d", minutes/60, minutes%60)
}

func TestMapSession_Errors(t *testing.T) {
	tests := []struct {
		name    string
		session ClassSession
		want    error
	}{
		{"saturday", ClassSession{Day: "Samedi", StartTime: "9h", EndTime: "10h"}, ErrUnknownDay},
		{"empty day", ClassSession{Day: "", StartTime: "9h", EndTime: "10h"}, ErrUnknownDay},
		{"garbage start", ClassSession{Day: "Lundi", StartTime: "neuf heures", EndTime: "10h"}, ErrInvalidTime},
		{"garbage end", ClassSession{Day: "Lundi", StartTime: "9h", EndTime: "10hxx"}, ErrInvalidTime},
		{"reversed", ClassSession{Day: "Lundi", StartTime: "11h", EndTime: "9h30"}, ErrEmptyInterval},
		{"zero length", ClassSession{Day: "Lundi", StartTime: "11h", EndTime: "11h"}, ErrEmptyInterval},
	}

	for _, tt := range tests {
		_, err := MapSession(tt.session, 9)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	for _, d := range Weekdays {
		got, err := ParseWeekday(d.String())
		if err != nil || got != d {
			t.Errorf("ParseWeekday(%q) = %v, %v", d.String(), got, err)
		}
	}

	got, err := ParseWeekday("  vendredi ")
	if err != nil || got != Friday || got.Column() != 5 {
		t.Errorf("expected lower-case vendredi to map to column 5, got %v (%v)", got, err)
	}
}

func TestParseClock(t *testing.T) {
	tests := map[string]Clock{
		"9h30":  {9, 30},
		"14h":   {14, 0},
		"8H05":  {8, 5},
		" 12h ": {12, 0},
		"24h":   {24, 0},
	}
	for in, want := range tests {
		got, err := ParseClock(in)
		if err != nil {
			t.Errorf("ParseClock(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %+v, expected %+v", in, got, want)
		}
	}

	for _, bad := range []string{"", "h30", "25h", "9h75", "24h30"} {
		if _, err := ParseClock(bad); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("expected ParseClock(%q) to fail with ErrInvalidTime, got %v", bad, err)
		}
	}
}
