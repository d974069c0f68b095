package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned for time strings that are not in the "9h30" format.
var ErrInvalidTime = errors.New("invalid time")

// Clock is a time of day with minute precision
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "9h30", "14h" or "9H05". A missing minute part means 0.
func ParseClock(s string) (Clock, error) {
	raw := strings.TrimSpace(s)
	hourStr, minStr, _ := strings.Cut(strings.ToLower(raw), "h")

	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minute := 0
	if minStr = strings.TrimSpace(minStr); minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute > 0) {
		return Clock{}, fmt.Errorf("%w: %q out of range", ErrInvalidTime, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns the number of minutes since midnight
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as "HH:MM"
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
