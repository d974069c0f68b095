package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"horairectl/pkg/config"
	"horairectl/pkg/planner"
	"horairectl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// coursesFromArgs joins positional arguments, falling back to the saved course list.
func coursesFromArgs(args []string, cfg *config.AppConfig) (string, error) {
	input := strings.Join(args, ",")
	if len(planner.ParseCourses(input)) == 0 {
		input = strings.Join(cfg.SavedCourses, ",")
	}
	if len(planner.ParseCourses(input)) == 0 {
		return "", fmt.Errorf("no course codes given and no saved courses in the config")
	}
	return input, nil
}

// loadSchedule submits the courses and moves to the 1-based alternative index.
func loadSchedule(cfg *config.AppConfig, input string, index int) (planner.State, error) {
	ctrl, _ := tui.NewController(cfg)
	ctx := context.Background()

	var state planner.State
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Generating schedules for %s...", strings.Join(planner.ParseCourses(input), ", "))).
		Action(func() {
			state, err = ctrl.Submit(ctx, input)
			if err == nil && index > 1 {
				if index > len(state.Schedules) {
					err = fmt.Errorf("only %d schedules found, cannot show #%d", len(state.Schedules), index)
					return
				}
				state, err = ctrl.Goto(ctx, index-1)
			}
		}).
		Run()

	return state, err
}

var planCmd = &cobra.Command{
	Use:   "plan [SIGLE...]",
	Short: "Generate and display a timetable",
	Long: `Ask the schedule server for every conflict-free combination of the given courses
and draw one of them on the weekly grid. Without arguments the saved courses are used.`,
	Example: `  horairectl plan INF1120 MAT1234
  horairectl plan INF1120,MAT1234 --index 2`,
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

		state, err := loadSchedule(cfg, input, index)
		fmt.Println(tui.RenderState(state))

		if err != nil && !errors.Is(err, planner.ErrStale) {
			return fmt.Errorf("could not build a schedule: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().IntP("index", "i", 1, "Which alternative to display (1-based)")
}
