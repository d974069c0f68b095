package diskcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL determines how long fetched data is kept before refreshing
const DefaultTTL = 12 * time.Hour

// Entry represents the disk data format
type Entry[T any] struct {
	Timestamp time.Time `json:"timestamp"`
	Data      T         `json:"data"`
}

// Path returns ~/.horairectl_cache/<name>.json, creating the directories it needs.
// name may contain a sub-directory, e.g. "sections/INF1120".
func Path(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	path := filepath.Join(homeDir, ".horairectl_cache", filepath.FromSlash(name)+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return path, nil
}

// Read returns the cached value for name if it exists and is younger than ttl
func Read[T any](name string, ttl time.Duration) (T, bool) {
	var zero T

	path, err := Path(name)
	if err != nil {
		return zero, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, false
	}

	var entry Entry[T]
	if err := json.Unmarshal(data, &entry); err != nil {
		return zero, false
	}

	if time.Since(entry.Timestamp) > ttl {
		return zero, false
	}

	return entry.Data, true
}

// Write saves value to disk; failures only cost a refetch
func Write[T any](name string, value T) {
	writeAt(name, value, time.Now())
}

func writeAt[T any](name string, value T, ts time.Time) {
	path, err := Path(name)
	if err != nil {
		return
	}

	entry := Entry[T]{
		Timestamp: ts,
		Data:      value,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
