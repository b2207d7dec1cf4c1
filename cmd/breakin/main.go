// breakin is a two-side arcade duel in the terminal: a paddle trying to
// break through to the top against a brick side dropping shapes on it.
//
// Usage:
//
//	breakin play             - Play a match (paddle on the keyboard, bricks on the mouse or AI)
//	breakin menu             - Start menu with difficulty picker and history
//	breakin sim              - Run a headless AI vs autopilot match
//	breakin serve            - Start SSH server for remote play
//	breakin history          - Show recent match results
//	breakin config           - Print the resolved match configuration
//	breakin list             - List drops, special bricks and shapes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible matches
//	--db <path>           - Set history database path (default: ~/.breakin/history.db)
//	--config <path>       - Custom match config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakin",
	Short: "Break-In - paddle vs bricks in your terminal",
	Long: `Break-In turns brick breaking into a duel. One side steers a paddle
and tries to break a ball through to the top of the screen. The other side
drops polyomino bricks onto the grid to wall it off, by mouse or by AI.

Available commands:
  play     - Play a match directly
  menu     - Interactive menu with difficulty picker
  sim      - Headless AI vs autopilot match
  serve    - Start SSH server for remote play
  history  - View match history
  config   - Print the resolved configuration
  list     - List drops, special bricks and shapes

Examples:
  breakin play
  breakin play --difficulty hard --no-ai
  breakin sim --seed 42 --seconds 300
  breakin serve --ssh :2222
  breakin history --limit 10`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakin/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
