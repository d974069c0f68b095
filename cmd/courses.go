package cmd

import (
	"context"
	"fmt"

	"horairectl/pkg/schedapi"
	"horairectl/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [PREFIX]",
	Short: "Suggest course codes from the catalogue",
	Long: `Complete the last term of a comma separated list of course codes using the
catalogue published by the schedule server. With --program, list the codes of a
programme page on etudier.uqam.ca instead.`,
	Example: `  horairectl courses INF11
  horairectl courses "INF1120, mat"
  horairectl courses --program "programme?code=7316"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, _ := cmd.Flags().GetString("program")
		if program != "" {
			return printProgramCourses(program)
		}

		if len(args) == 0 {
			return fmt.Errorf("a prefix is required, e.g. horairectl courses INF11")
		}

		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		client := schedapi.NewClient(cfg.Server())

		var catalog []string
		_ = spinner.New().
			Title("Loading course catalogue...").
			Action(func() {
				catalog, err = client.FetchCatalog(context.Background())
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not load the course catalogue: %w", err)
		}

		suggestions := schedapi.Suggest(catalog, args[0], limit)
		if len(suggestions) == 0 {
			fmt.Println("No matching course codes.")
			return nil
		}

		for _, code := range suggestions {
			fmt.Println(schedapi.Complete(args[0], code))
		}
		return nil
	},
}

func printProgramCourses(path string) error {
	client := scraper.NewClient()
	var sigles []string
	var err error

	_ = spinner.New().
		Title("Fetching programme courses...").
		Action(func() {
			sigles, err = client.FetchProgramCourses(path)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch programme: %w", err)
	}

	for _, s := range sigles {
		fmt.Println(s)
	}
	fmt.Printf("\n%d courses\n", len(sigles))
	return nil
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.Flags().IntP("limit", "n", schedapi.MaxSuggestions, "Maximum number of suggestions")
	coursesCmd.Flags().StringP("program", "p", "", "Programme page path on etudier.uqam.ca")
}
