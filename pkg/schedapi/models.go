package schedapi

import "horairectl/pkg/calendar"

// ScheduleResponse is the body returned by POST /schedule
type ScheduleResponse struct {
	Schedules [][]string `json:"schedules"`
}

// ClassDetailsResponse is the body returned by GET /class_details
type ClassDetailsResponse struct {
	ClassDetails []calendar.ClassSession `json:"class_details"`
	Error        string                  `json:"error,omitempty"`
}
