package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"horairectl/pkg/calendar"
	"horairectl/pkg/config"
	"horairectl/pkg/exporter"
	"horairectl/pkg/logger"
	"horairectl/pkg/planner"
	"horairectl/pkg/schedapi"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// NewController wires a planner controller to the configured schedule server.
func NewController(cfg *config.AppConfig) (*planner.Controller, *schedapi.Client) {
	client := schedapi.NewClient(cfg.Server())
	client.Season = cfg.Season

	start, end := cfg.Hours()
	renderer := calendar.NewRenderer(start, end, nil)
	return planner.New(client, renderer), client
}

// runAction runs a controller action behind a spinner.
func runAction(title string, action func() (planner.State, error)) planner.State {
	var state planner.State
	var err error

	_ = spinner.New().
		Title(title).
		Action(func() {
			state, err = action()
		}).
		Run()

	if err != nil && !errors.Is(err, planner.ErrStale) {
		logger.Debug().Err(err).Msg("planner action failed")
	}
	return state
}

// RunPlannerTUI runs the interactive loop: enter courses, browse alternatives,
// add or remove courses and export the displayed schedule.
func RunPlannerTUI(cfg *config.AppConfig) error {
	ctrl, client := NewController(cfg)
	ctx := context.Background()

	input := strings.Join(cfg.SavedCourses, ", ")

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sigles des cours").
				Description("Comma separated, e.g. INF1120, MAT1234").
				Placeholder("INF1120, MAT1234").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if len(planner.ParseCourses(input)) == 0 {
		fmt.Println(errorStyle.Render("No course codes entered!"))
		return nil
	}

	state := runAction("Generating schedules...", func() (planner.State, error) {
		return ctrl.Submit(ctx, input)
	})

	for {
		fmt.Println(RenderState(state))

		var options []huh.Option[string]
		if state.HasNext() {
			options = append(options, huh.NewOption("▶ Next schedule", "next"))
		}
		if state.HasPrev() {
			options = append(options, huh.NewOption("◀ Previous schedule", "prev"))
		}
		options = append(options, huh.NewOption("➕ Add a course", "add"))
		if len(state.Courses) > 0 {
			options = append(options, huh.NewOption("➖ Remove a course", "remove"))
			options = append(options, huh.NewOption("💾 Save course list", "save"))
		}
		if len(state.Sessions) > 0 {
			options = append(options, huh.NewOption("📤 Export to .ics", "export"))
		}
		options = append(options, huh.NewOption("Back", "back"))

		var action string
		actionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Action").
					Options(options...).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := actionForm.Run(); err != nil {
			return err
		}

		switch action {
		case "next":
			state = runAction("Loading next schedule...", func() (planner.State, error) {
				return ctrl.Next(ctx)
			})
		case "prev":
			state = runAction("Loading previous schedule...", func() (planner.State, error) {
				return ctrl.Prev(ctx)
			})
		case "add":
			code, err := pickCourse(ctx, client)
			if err != nil {
				return err
			}
			if code != "" {
				state = runAction(fmt.Sprintf("Adding %s...", code), func() (planner.State, error) {
					return ctrl.Add(ctx, code)
				})
			}
		case "remove":
			code, err := pickRemoval(state.Courses)
			if err != nil {
				return err
			}
			state = runAction(fmt.Sprintf("Removing %s...", code), func() (planner.State, error) {
				return ctrl.Remove(ctx, code)
			})
		case "save":
			if err := saveCourses(state.Courses); err != nil {
				return err
			}
		case "export":
			if err := exportState(state); err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
			}
		default:
			return nil
		}
	}
}

// pickCourse asks for the start of a course code and offers catalogue completions.
func pickCourse(ctx context.Context, client *schedapi.Client) (string, error) {
	var prefix string

	prefixForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course code").
				Description("Type the beginning of a sigle, e.g. INF11").
				Value(&prefix),
		),
	).WithTheme(GetTheme())

	if err := prefixForm.Run(); err != nil {
		return "", err
	}

	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", nil
	}

	var catalog []string
	var fetchErr error

	_ = spinner.New().
		Title("Loading course catalogue...").
		Action(func() {
			catalog, fetchErr = client.FetchCatalog(ctx)
		}).
		Run()

	if fetchErr != nil {
		logger.Warn().Err(fetchErr).Msg("course catalogue unavailable, using the code as typed")
		return prefix, nil
	}

	suggestions := schedapi.Suggest(catalog, prefix, schedapi.MaxSuggestions)
	if len(suggestions) == 1 && suggestions[0] == prefix {
		return prefix, nil
	}

	options := make([]huh.Option[string], 0, len(suggestions)+1)
	for _, code := range suggestions {
		options = append(options, huh.NewOption(code, code))
	}
	options = append(options, huh.NewOption(fmt.Sprintf("Use %q as typed", prefix), prefix))

	var choice string
	selectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Suggestions").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(GetTheme())

	if err := selectForm.Run(); err != nil {
		return "", err
	}

	return choice, nil
}

func pickRemoval(courses []string) (string, error) {
	var code string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove which course?").
				Options(huh.NewOptions(courses...)...).
				Value(&code),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return code, nil
}

// saveCourses stores the course list in the config file. The file is reloaded so
// that .env and flag overrides are not written back.
func saveCourses(courses []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfg.SavedCourses = courses
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d courses.\n", len(courses))))
	return nil
}

func exportState(state planner.State) error {
	outputFile := "horaire.ics"
	weekStr := time.Now().Format("2006-01-02")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("First week of classes").
				Description("Any date in that week, YYYY-MM-DD").
				Value(&weekStr).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	weekOf, err := time.Parse("2006-01-02", weekStr)
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(state.Sessions, weekOf, exporter.DefaultWeeks, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Exported %d sessions to %s\n", len(state.Sessions), outputFile)))
	return nil
}
