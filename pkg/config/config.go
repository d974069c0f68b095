package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"horairectl/pkg/calendar"

	"github.com/joho/godotenv"
)

// DefaultServerURL is where the schedule generator runs when started locally
const DefaultServerURL = "http://127.0.0.1:5000"

// Environment variables that override the config file.
const (
	EnvServer    = "HORAIRE_SERVER"
	EnvSeason    = "HORAIRE_SEASON"
	EnvStartHour = "HORAIRE_START_HOUR"
	EnvEndHour   = "HORAIRE_END_HOUR"
)

// ErrInvalidSeason is returned for season names the server does not know
var ErrInvalidSeason = errors.New("season must look like hiver2026, ete2026 or automne2025")

var seasonRe = regexp.MustCompile(`^(hiver|ete|automne)[0-9]{4}$`)

// ValidateSeason accepts an empty season (none sent) or a semester name followed by a year.
func ValidateSeason(season string) error {
	if season == "" || seasonRe.MatchString(season) {
		return nil
	}
	return fmt.Errorf("%q: %w", season, ErrInvalidSeason)
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	ServerURL    string   `json:"server_url,omitempty"`
	Season       string   `json:"season,omitempty"` // e.g. "automne2025"
	StartHour    int      `json:"start_hour,omitempty"`
	EndHour      int      `json:"end_hour,omitempty"`
	SavedCourses []string `json:"saved_courses,omitempty"`
	AccentColor  string   `json:"accent_color,omitempty"`
}

// Server returns the configured server URL or the local default.
func (c *AppConfig) Server() string {
	if c.ServerURL == "" {
		return DefaultServerURL
	}
	return c.ServerURL
}

// Hours returns the visible grid window, falling back to 9h-22h when unset.
func (c *AppConfig) Hours() (int, int) {
	start, end := c.StartHour, c.EndHour
	if start == 0 && end == 0 {
		return calendar.DefaultStartHour, calendar.DefaultEndHour
	}
	if end == 0 {
		end = calendar.DefaultEndHour
	}
	return start, end
}

// Validate reports settings that would produce a broken grid.
func (c *AppConfig) Validate() error {
	start, end := c.Hours()
	if err := calendar.ValidateHours(start, end); err != nil {
		return err
	}
	return ValidateSeason(c.Season)
}

// getConfigPath returns the absolute path to ~/.horairectl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".horairectl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv reads the config file, then applies a .env file from the working
// directory (if any) and HORAIRE_* variables on top. Overrides are not saved.
func LoadWithEnv() (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// A missing .env is the normal case
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvServer); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvSeason); v != "" {
		cfg.Season = v
	}
	if v := os.Getenv(EnvStartHour); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStartHour, v, err)
		}
		cfg.StartHour = h
	}
	if v := os.Getenv(EnvEndHour); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvEndHour, v, err)
		}
		cfg.EndHour = h
	}
	return nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
