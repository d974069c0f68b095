package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"horairectl/pkg/calendar"
)

func TestGenerateICS(t *testing.T) {
	sessions := []calendar.ClassSession{
		{
			Name:      "INF1120-automne2025-A",
			Day:       "Mercredi",
			StartTime: "9h30",
			EndTime:   "12h30",
			Group:     "10",
			Location:  "PK-1140",
			Type:      "Cours magistral",
		},
	}

	// Friday 2025-09-05; the export starts on Wednesday 2025-09-03
	weekOf := time.Date(2025, time.September, 5, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(sessions, weekOf, 15, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:INF1120 - Groupe 10") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:PK-1140") {
		t.Errorf("Expected ICS to contain room location")
	}

	// 03-Sep-2025 09:30 Montreal time (EDT) is 13:30 UTC.
	if !strings.Contains(output, "DTSTART:20250903T133000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	if !strings.Contains(output, "RRULE:FREQ=WEEKLY;COUNT=15") {
		t.Errorf("Expected weekly recurrence rule, got: \n%s", output)
	}
}

func TestGenerateICSFromParsedMonday(t *testing.T) {
	sessions := []calendar.ClassSession{
		{Name: "INF1120-A", Day: "Lundi", StartTime: "9h30", EndTime: "12h30", Group: "10"},
	}

	// What the CLI and TUI get from a "first week of classes" prompt
	weekOf, err := time.Parse("2006-01-02", "2025-09-01")
	if err != nil {
		t.Fatalf("time.Parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := GenerateICS(sessions, weekOf, 15, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	// Monday 01-Sep-2025 09:30 EDT is 13:30 UTC
	if !strings.Contains(buf.String(), "DTSTART:20250901T133000Z") {
		t.Errorf("expected the export to start on the given Monday, got: \n%s", buf.String())
	}
}

func TestGenerateICSSkipsInvalidSessions(t *testing.T) {
	sessions := []calendar.ClassSession{
		{Name: "BAD1000", Day: "Samedi", StartTime: "9h", EndTime: "10h"},
		{Name: "BAD2000", Day: "Lundi", StartTime: "11h", EndTime: "10h"},
		{Name: "BAD3000", Day: "Lundi", StartTime: "abc", EndTime: "10h"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(sessions, time.Now(), 0, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("expected no events for invalid sessions, got: \n%s", buf.String())
	}
}

func TestMondayOf(t *testing.T) {
	sunday := time.Date(2025, time.September, 7, 18, 0, 0, 0, time.UTC)
	got := MondayOf(sunday)
	want := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MondayOf(%v) = %v, want %v", sunday, got, want)
	}
}
