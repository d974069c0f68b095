package cmd

import (
	"fmt"
	"os"

	"horairectl/pkg/config"
	"horairectl/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "horairectl",
	Short: "A CLI and TUI for building UQAM course timetables",
	Long: `horairectl asks a schedule generation server for every conflict-free
combination of your courses and draws them on a weekly grid in the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := logger.WarnLevel
		if verbose {
			level = logger.DebugLevel
		}
		logger.Configure(logger.Config{Level: level, Pretty: true})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadSettings merges the config file, .env, HORAIRE_* variables and command line flags.
func loadSettings(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg, err := config.LoadWithEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL, _ = flags.GetString("server")
	}
	if flags.Changed("season") {
		cfg.Season, _ = flags.GetString("season")
	}
	if flags.Changed("start-hour") {
		cfg.StartHour, _ = flags.GetInt("start-hour")
	}
	if flags.Changed("end-hour") {
		cfg.EndHour, _ = flags.GetInt("end-hour")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs to stderr")
	rootCmd.PersistentFlags().String("server", "", "Schedule server URL (default from config, then "+config.DefaultServerURL+")")
	rootCmd.PersistentFlags().String("season", "", "Season sent to the server, e.g. automne2025")
	rootCmd.PersistentFlags().Int("start-hour", 0, "First hour shown on the grid")
	rootCmd.PersistentFlags().Int("end-hour", 0, "Last hour shown on the grid")
}
