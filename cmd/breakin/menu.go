package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/platform/tui"
	"github.com/vovakirdan/break-in/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, start a match or browse the history.
Pause a match and press B to return to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter         - Select
  Q             - Quit

Examples:
  breakin menu
  breakin menu --fps 30
  breakin menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write match events to this file")
}

func runMenu(_ *cobra.Command, _ []string) {
	// The menu applies its own preset, so load the config untouched.
	base, err := config.LoadBreakin(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty == "" {
		preset = config.DifficultyNormal
	}

	logger, closeLog, err := fileLogger(flagLogFile, "breakin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err = tui.RunSession(tui.MatchOptions{
		Runtime: runtimeConfig(),
		Config:  base,
		Preset:  preset,
		Mode:    storage.ModePlay,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
