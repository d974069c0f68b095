package scraper

import (
	"path/filepath"

	"horairectl/pkg/calendar"
	"horairectl/pkg/diskcache"
)

func sectionsCacheName(sigle string) string {
	return "sections/" + filepath.Base(sigle)
}

// readCache checks if a valid, unexpired cache exists for this course
func readCache(sigle string) ([]calendar.ClassSession, bool) {
	return diskcache.Read[[]calendar.ClassSession](sectionsCacheName(sigle), diskcache.DefaultTTL)
}

// writeCache saves the sections to disk
func writeCache(sigle string, sessions []calendar.ClassSession) {
	diskcache.Write(sectionsCacheName(sigle), sessions)
}
