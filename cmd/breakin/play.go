package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/platform/tui"
	"github.com/vovakirdan/break-in/internal/storage"
)

var (
	flagLogFile string
	flagNoAI    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in the terminal.

Paddle controls:
  Left/A, Right/D  - Move the paddle
  Space            - Launch held balls
  P/Esc            - Pause
  R                - New match (after the end)
  ?                - More keys
  Q/Ctrl+C         - Quit

Brick side:
  Drag a queued shape from the side panel onto the grid with the mouse,
  scroll while dragging to rotate it. Unless --no-ai is set the AI places
  shapes whenever no drag is in progress.

Difficulty options:
  easy   - 5 lives, slow shape spawns
  normal - 3 lives
  hard   - 1 life, fast shape spawns
  fixed  - Use the config file as is

Examples:
  breakin play
  breakin play --difficulty hard
  breakin play --no-ai
  breakin play --seed 42 --log-file match.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write match events to this file")
	playCmd.Flags().BoolVar(&flagNoAI, "no-ai", false, "Disable AI shape placement (mouse only)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagNoAI {
		cfg.Match.AIAutoplace = false
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

	err = tui.Run(tui.MatchOptions{
		Runtime: runtimeConfig(),
		Config:  cfg,
		Preset:  preset,
		Mode:    storage.ModePlay,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}
}
