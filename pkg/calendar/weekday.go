package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDay is returned when a session names a day outside Monday..Friday.
var ErrUnknownDay = errors.New("unknown day")

// Weekday is a teaching day. Its value is the grid column the day is drawn in.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists every day the grid has a column for, in column order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayLabels = map[Weekday]string{
	Monday:    "Lundi",
	Tuesday:   "Mardi",
	Wednesday: "Mercredi",
	Thursday:  "Jeudi",
	Friday:    "Vendredi",
}

// String returns the French label used by the schedule server
func (d Weekday) String() string {
	if label, ok := weekdayLabels[d]; ok {
		return label
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// Column returns the grid column of the day; column 0 holds the time labels.
func (d Weekday) Column() int {
	return int(d)
}

// ParseWeekday resolves a French day label, ignoring case and surrounding spaces.
func ParseWeekday(label string) (Weekday, error) {
	label = strings.TrimSpace(label)
	for _, d := range Weekdays {
		if strings.EqualFold(weekdayLabels[d], label) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, label)
}
