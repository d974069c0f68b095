package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"horairectl/pkg/calendar"
	"horairectl/pkg/config"
	"horairectl/pkg/planner"
	"horairectl/pkg/tui"

	"github.com/spf13/cobra"
)

// parseHourRange reads "8-21" into its bounds.
func parseHourRange(s string) (int, int, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected START-END, e.g. 8-21")
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start hour: %w", err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end hour: %w", err)
	}
	if err := calendar.ValidateHours(start, end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage horairectl configuration",
	Long:  "View or edit your local configuration settings (schedule server, season, grid hours, saved courses).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		changed := false

		if flags.Changed("set-server") {
			server, _ := flags.GetString("set-server")
			if err := tui.ValidateServerURL(server); err != nil {
				return err
			}
			cfg.ServerURL = strings.TrimRight(server, "/")
			changed = true
		}
		if flags.Changed("set-season") {
			season, _ := flags.GetString("set-season")
			if err := config.ValidateSeason(season); err != nil {
				return err
			}
			cfg.Season = season
			changed = true
		}
		if flags.Changed("set-hours") {
			hours, _ := flags.GetString("set-hours")
			cfg.StartHour, cfg.EndHour, err = parseHourRange(hours)
			if err != nil {
				return err
			}
			changed = true
		}
		if flags.Changed("set-courses") {
			courses, _ := flags.GetString("set-courses")
			cfg.SavedCourses = planner.ParseCourses(courses)
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			fmt.Println(tui.DescribeConfig(cfg))
			return nil
		}

		if show, _ := flags.GetBool("show"); show {
			fmt.Println(tui.DescribeConfig(cfg))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-server", "", "Set the schedule server URL")
	configCmd.Flags().String("set-season", "", "Set the season, e.g. automne2025 (empty to unset)")
	configCmd.Flags().String("set-hours", "", "Set the grid hours, e.g. 8-21")
	configCmd.Flags().String("set-courses", "", "Set the saved courses, e.g. INF1120,MAT1234")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
