package scraper

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"horairectl/pkg/calendar"
)

func TestSectionsCacheReadWrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	sigle := "INF1120"

	if sessions, ok := readCache(sigle); ok || sessions != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	want := []calendar.ClassSession{
		{
			Name:      "INF1120-automne2025-A",
			Day:       "Lundi",
			StartTime: "9h30",
			EndTime:   "12h30",
			Group:     "10",
			Location:  "PK-1140",
			Type:      "Cours magistral",
		},
	}
	writeCache(sigle, want)

	expectedPath := filepath.Join(tempDir, ".horairectl_cache", "sections", "INF1120.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	got, ok := readCache(sigle)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("loaded sessions do not match written sessions.\nGot: %+v\nExpected: %+v", got, want)
	}
}
