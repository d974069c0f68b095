package calendar

import "strings"

// ClassSession is one weekly meeting of a course section, as returned by /class_details
type ClassSession struct {
	Name      string `json:"name"`       // "INF1120-automne2025-A"
	Day       string `json:"day"`        // "Lundi"
	StartTime string `json:"start_time"` // "9h30"
	EndTime   string `json:"end_time"`   // "12h30"
	Group     string `json:"group"`
	Teacher   string `json:"teacher"`
	Location  string `json:"location"`
	Type      string `json:"type"` // "Cours magistral", "Atelier"
	Dates     string `json:"dates"`
}

// CourseCode returns the sigle without its section qualifier
func (s ClassSession) CourseCode() string {
	code, _, _ := strings.Cut(s.Name, "-")
	return code
}

// Label is the text shown inside every cell the session occupies.
func (s ClassSession) Label() string {
	return s.CourseCode() + " - Groupe " + s.Group
}

// Tooltip joins every display-only field, one per line.
func (s ClassSession) Tooltip() string {
	var b strings.Builder
	b.WriteString("Cours: " + s.CourseCode())
	b.WriteString("\nEnseignant: " + s.Teacher)
	b.WriteString("\nJour: " + s.Day)
	b.WriteString("\nHeure: " + s.StartTime + " - " + s.EndTime)
	b.WriteString("\nGroupe: " + s.Group)
	b.WriteString("\nLocal: " + s.Location)
	b.WriteString("\nType: " + s.Type)
	b.WriteString("\nDates: " + s.Dates)
	return b.String()
}
