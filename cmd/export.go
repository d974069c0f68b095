package cmd

import (
	"fmt"
	"os"
	"time"

	"horairectl/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [SIGLE...]",
	Short: "Directly export a timetable to an ICS file",
	Long:  `Generate a timetable for the given courses and export the chosen alternative to an ICS file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		input, err := coursesFromArgs(args, cfg)
		if err != nil {
			return err
		}

		index, _ := cmd.Flags().GetInt("index")
		output, _ := cmd.Flags().GetString("output")
		weekStr, _ := cmd.Flags().GetString("week")
		weeks, _ := cmd.Flags().GetInt("weeks")

		weekOf := time.Now()
		if weekStr != "" {
			weekOf, err = time.Parse("2006-01-02", weekStr)
			if err != nil {
				return fmt.Errorf("invalid --week %q: %w", weekStr, err)
			}
		}

		state, err := loadSchedule(cfg, input, index)
		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}

		if len(state.Sessions) == 0 {
			return fmt.Errorf("no sessions found for %s", input)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(state.Sessions, weekOf, weeks, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d sessions of schedule %s to %s\n", len(state.Sessions), state.IndexLabel(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("index", "i", 1, "Which alternative to export (1-based)")
	exportCmd.Flags().StringP("output", "o", "horaire.ics", "Output file path")
	exportCmd.Flags().StringP("week", "w", "", "Any date in the first week of classes (YYYY-MM-DD), defaults to this week")
	exportCmd.Flags().Int("weeks", exporter.DefaultWeeks, "Number of weekly occurrences")
}
