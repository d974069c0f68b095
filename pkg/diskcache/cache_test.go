package diskcache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type session struct {
	Name string `json:"name"`
	Day  string `json:"day"`
}

func TestCacheReadWrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	name := "sections/INF1120"

	// 1. Read non-existent cache
	if got, ok := Read[[]session](name, DefaultTTL); ok || got != nil {
		t.Errorf("expected Read to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	want := []session{{Name: "INF1120-automne2025-A", Day: "Lundi"}}
	Write(name, want)

	expectedPath := filepath.Join(tempDir, ".horairectl_cache", "sections", "INF1120.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	// 3. Read existing valid cache
	got, ok := Read[[]session](name, DefaultTTL)
	if !ok {
		t.Fatalf("expected Read to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("loaded value does not match written value.\nGot: %+v\nExpected: %+v", got, want)
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	name := "catalog_expired"
	writeAt(name, []string{"OLD1000"}, time.Now().Add(-24*time.Hour))

	if _, ok := Read[[]string](name, DefaultTTL); ok {
		t.Errorf("expected Read to reject expired cache (24h old, limit is 12h), but it incorrectly succeeded")
	}
	if _, ok := Read[[]string](name, 48*time.Hour); !ok {
		t.Errorf("expected Read to accept the same entry with a 48h limit")
	}
}

func TestCacheCorruptFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	path, err := Path("broken")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt cache: %v", err)
	}

	if _, ok := Read[[]string]("broken", DefaultTTL); ok {
		t.Errorf("expected Read to reject a corrupt cache file")
	}
}
