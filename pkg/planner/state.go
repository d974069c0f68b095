package planner

import (
	"fmt"
	"strings"

	"horairectl/pkg/calendar"
)

// State is everything the UI shows: the course list, the alternatives returned by
// the server, which one is displayed and its rendered grid.
type State struct {
	Courses   []string
	Schedules [][]string
	Index     int
	Sessions  []calendar.ClassSession
	Grid      *calendar.Grid
	Busy      bool
	// Alert is the message to show after a failed action, empty otherwise
	Alert string
}

// IndexLabel returns the "{index+1}/{count}" indicator; an empty state reads "1/1".
func (s State) IndexLabel() string {
	if len(s.Schedules) == 0 {
		return "1/1"
	}
	return fmt.Sprintf("%d/%d", s.Index+1, len(s.Schedules))
}

// Current returns the section names of the displayed schedule.
func (s State) Current() []string {
	if s.Index < 0 || s.Index >= len(s.Schedules) {
		return nil
	}
	return s.Schedules[s.Index]
}

// HasNext reports whether a following alternative exists.
func (s State) HasNext() bool {
	return s.Index < len(s.Schedules)-1
}

// HasPrev reports whether a preceding alternative exists.
func (s State) HasPrev() bool {
	return s.Index > 0 && len(s.Schedules) > 0
}

func (s State) clone() State {
	out := s
	out.Courses = append([]string(nil), s.Courses...)
	out.Schedules = append([][]string(nil), s.Schedules...)
	out.Sessions = append([]calendar.ClassSession(nil), s.Sessions...)
	return out
}

// ParseCourses splits a comma separated list of course codes, upper-casing them and
// dropping blanks and repeats.
func ParseCourses(input string) []string {
	seen := make(map[string]bool)
	var courses []string
	for _, part := range strings.Split(input, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		courses = append(courses, code)
	}
	return courses
}
