package tui

import (
	"fmt"
	"strings"

	"horairectl/pkg/calendar"
	"horairectl/pkg/config"
	"horairectl/pkg/scraper"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// SectionView renders one section of a course on its own grid, followed by the
// details of every session.
func SectionView(renderer *calendar.Renderer, sessions []calendar.ClassSession) string {
	var b strings.Builder

	grid := renderer.Render(sessions)
	b.WriteString(grid.View())
	b.WriteString("\n")

	for _, s := range sessions {
		b.WriteString(mutedStyle.Render(s.Tooltip()))
		b.WriteString("\n\n")
	}
	return b.String()
}

// RunSectionsTUI looks up the sections UQAM publishes for a course and shows them one at a time.
func RunSectionsTUI(cfg *config.AppConfig) error {
	var sigle string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sigle du cours").
				Placeholder("INF1120").
				Value(&sigle),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	sigle = strings.ToUpper(strings.TrimSpace(sigle))
	if sigle == "" {
		return nil
	}

	client := scraper.NewClient()
	var sessions []calendar.ClassSession
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching sections of %s from etudier.uqam.ca...", sigle)).
		Action(func() {
			sessions, err = client.FetchSections(sigle)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch sections: %w", err)
	}

	names, bySection := scraper.Sections(sessions)
	if len(names) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No sections published for %s!", sigle)))
		return nil
	}

	start, end := cfg.Hours()
	renderer := calendar.NewRenderer(start, end, nil)

	for {
		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(fmt.Sprintf("%d sections found", len(names))).
					Options(append(huh.NewOptions(names...), huh.NewOption("Back", ""))...).
					Value(&choice),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if choice == "" {
			return nil
		}

		fmt.Println(accentStyle.Bold(true).Render(choice))
		fmt.Println(SectionView(renderer, bySection[choice]))
	}
}
