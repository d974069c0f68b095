package exporter

import (
	"fmt"
	"io"
	"time"

	"horairectl/pkg/calendar"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// DefaultWeeks is the length of a regular UQAM semester
const DefaultWeeks = 15

// uidNamespace scopes event UIDs so that re-exporting the same schedule updates events in place
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://etudier.uqam.ca/horairectl"))

// MondayOf returns midnight of the Monday of the week containing t.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GenerateICS writes one weekly recurring event per session, starting the week of weekOf
// and repeating weeks times. Sessions with an unknown day or bad times are skipped.
func GenerateICS(sessions []calendar.ClassSession, weekOf time.Time, weeks int, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//horairectl//FR")

	// Timezone location for Montreal
	loc, err := time.LoadLocation("America/Montreal")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	// Only the calendar date of weekOf counts: a date parsed as UTC midnight must not
	// slide to the previous day once read in Montreal time
	y, m, d := weekOf.Date()
	monday := MondayOf(time.Date(y, m, d, 0, 0, 0, 0, loc))

	for _, s := range sessions {
		day, err := calendar.ParseWeekday(s.Day)
		if err != nil {
			continue
		}
		start, err := calendar.ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		end, err := calendar.ParseClock(s.EndTime)
		if err != nil || end.Minutes() <= start.Minutes() {
			continue
		}

		date := monday.AddDate(0, 0, day.Column()-1)
		startTime := time.Date(date.Year(), date.Month(), date.Day(), start.Hour, start.Minute, 0, 0, loc)
		endTime := time.Date(date.Year(), date.Month(), date.Day(), end.Hour, end.Minute, 0, 0, loc)

		uid := uuid.NewSHA1(uidNamespace, []byte(fmt.Sprintf("%s|%s|%s|%s", s.Name, s.Day, s.StartTime, s.Type)))

		event := cal.AddEvent(uid.String())
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(s.Label())
		event.SetLocation(s.Location)
		event.SetDescription(s.Tooltip())
		event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", weeks))
	}

	return cal.SerializeTo(w)
}
