package cmd

import (
	"horairectl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to build timetables, browse official sections and edit settings interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return tui.RunTUI(cfg)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
