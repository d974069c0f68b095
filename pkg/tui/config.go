package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"horairectl/pkg/calendar"
	"horairectl/pkg/config"
	"horairectl/pkg/planner"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Schedule Server", "server"),
						huh.NewOption("Set Season", "season"),
						huh.NewOption("Set Grid Hours", "hours"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "server":
			err = runSetServerTUI(cfg)
		case "season":
			err = runSetSeasonTUI(cfg)
		case "hours":
			err = runSetHoursTUI(cfg)
		case "courses":
			err = runSetSavedCoursesTUI(cfg)
		case "view":
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig formats the settings stored in ~/.horairectl.json.
func DescribeConfig(cfg *config.AppConfig) string {
	var b strings.Builder

	b.WriteString(accentStyle.Render("\n--- Current Configuration (~/.horairectl.json) ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Server: %s\n", cfg.Server())
	if cfg.Season == "" {
		b.WriteString("Season: Not set\n")
	} else {
		fmt.Fprintf(&b, "Season: %s\n", cfg.Season)
	}
	start, end := cfg.Hours()
	fmt.Fprintf(&b, "Grid Hours: %dh - %dh\n", start, end)
	fmt.Fprintf(&b, "Saved Courses: %s\n", strings.Join(cfg.SavedCourses, ", "))
	fmt.Fprintf(&b, "Accent Color: %s\n", cfg.AccentColor)

	return b.String()
}

// ValidateServerURL accepts absolute http(s) URLs.
func ValidateServerURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL such as %s", config.DefaultServerURL)
	}
	return nil
}

func runSetServerTUI(cfg *config.AppConfig) error {
	input := cfg.Server()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule server URL").
				Description("Where the schedule generator is running.").
				Value(&input).
				Validate(ValidateServerURL),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.ServerURL = strings.TrimRight(input, "/")
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Server set to %s\n", cfg.ServerURL)))
	return nil
}

func runSetSeasonTUI(cfg *config.AppConfig) error {
	input := cfg.Season

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Season").
				Description("hiver, ete or automne followed by the year. Leave empty to let the server decide.").
				Placeholder("automne2025").
				Value(&input).
				Validate(func(s string) error {
					return config.ValidateSeason(strings.TrimSpace(s))
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Season = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Season saved.\n"))
	return nil
}

func validateHour(s string) error {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number of hours")
	}
	if h < 0 || h > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}

func runSetHoursTUI(cfg *config.AppConfig) error {
	start, end := cfg.Hours()
	startStr, endStr := strconv.Itoa(start), strconv.Itoa(end)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First hour shown").
				Value(&startStr).
				Validate(validateHour),
			huh.NewInput().
				Title("Last hour shown").
				Value(&endStr).
				Validate(validateHour),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	start, _ = strconv.Atoi(strings.TrimSpace(startStr))
	end, _ = strconv.Atoi(strings.TrimSpace(endStr))

	if err := calendar.ValidateHours(start, end); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	cfg.StartHour, cfg.EndHour = start, end
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ The grid now spans %dh to %dh.\n", start, end)))
	return nil
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
	input := strings.Join(cfg.SavedCourses, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Saved courses").
				Description("Pre-filled when building a schedule. Comma separated.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCourses = planner.ParseCourses(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d courses.\n", len(cfg.SavedCourses))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for horairectl").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s UQAM Blue", colorBlock(DefaultAccent)), DefaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Teal", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if _, err := calendar.ParseHex(str); err != nil || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
