package cmd

import (
	"fmt"
	"strings"

	"horairectl/pkg/calendar"
	"horairectl/pkg/scraper"
	"horairectl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections SIGLE",
	Short: "List the official sections of a course",
	Long:  `Scrape etudier.uqam.ca for every section of a course: group, teacher, days, times and rooms.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		sigle := strings.ToUpper(strings.TrimSpace(args[0]))
		letter, _ := cmd.Flags().GetString("grid")

		client := scraper.NewClient()
		var sessions []calendar.ClassSession

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching sections of %s...", sigle)).
			Action(func() {
				sessions, err = client.FetchSections(sigle)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch sections: %w", err)
		}

		names, bySection := scraper.Sections(sessions)
		if len(names) == 0 {
			return fmt.Errorf("no sections published for %s", sigle)
		}

		if letter != "" {
			suffix := "-" + strings.ToUpper(letter)
			for _, name := range names {
				if strings.HasSuffix(name, suffix) {
					start, end := cfg.Hours()
					renderer := calendar.NewRenderer(start, end, nil)
					fmt.Println(name)
					fmt.Println(tui.SectionView(renderer, bySection[name]))
					return nil
				}
			}
			return fmt.Errorf("no section %s for %s", strings.ToUpper(letter), sigle)
		}

		for _, name := range names {
			fmt.Printf("\n%s\n", name)
			for _, s := range bySection[name] {
				fmt.Printf("  • %-9s %s - %-6s %-10s %s (gr. %s, %s)\n",
					s.Day, s.StartTime, s.EndTime, s.Location, s.Type, s.Group, s.Teacher)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().StringP("grid", "g", "", "Draw the section with this letter (A, B, ...) on the weekly grid")
}
