package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/platform/report"
	"github.com/vovakirdan/break-in/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimNoSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless AI vs autopilot match",
	Long: `Run a match without a terminal UI. The AI places shapes for the brick
side and an autopilot steers the paddle under the lowest falling ball.
The match advances in fixed steps of 1/fps seconds until it ends or the
time limit is reached. Events are logged to stderr, the summary goes to
stdout and finished matches are saved to the history.

Examples:
  breakin sim
  breakin sim --seed 42
  breakin sim --seconds 120 --log-level debug
  breakin sim --difficulty hard --no-save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 600, "Maximum match time in seconds")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record the result")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// The brick side is always the AI here.
	cfg.Match.AIAutoplace = true

	logger, err := newLogger(os.Stderr, "breakin-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1 / float64(fps)

	game := breakin.New(cfg, seed)
	matchID := report.NewMatchID()
	mlog := report.MatchLogger(logger, matchID, seed)
	mlog.Info("match started", "preset", preset, "limit", flagSimSeconds)

	var pilot breakin.Autopilot
	var st breakin.State
	for st = game.State(); !st.Ended && st.GameTime < flagSimSeconds; {
		res := game.Step(pilot.Input(game), dt)
		report.LogEvents(mlog, res.Events)
		st = res.State
	}

	stats := game.Stats()
	winner := st.Winner.String()
	if !st.Ended {
		winner = "none (time limit)"
		mlog.Info("time limit reached", "time", st.GameTime)
	}

	fmt.Printf("Match %s\n", matchID)
	fmt.Printf("  Seed:          %d\n", seed)
	fmt.Printf("  Winner:        %s\n", winner)
	fmt.Printf("  Time:          %.1fs\n", st.GameTime)
	fmt.Printf("  Lives left:    %d\n", st.Lives)
	fmt.Printf("  Bricks broken: %d\n", stats.BricksBroken)
	fmt.Printf("  Balls lost:    %d\n", stats.BallsLost)
	fmt.Printf("  Placements:    %d\n", stats.Placements)
	snap := game.Snapshot()
	fmt.Printf("  Hash:          %016x\n", snap.Hash())

	if !st.Ended || flagSimNoSave {
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()
	report.Save(store, mlog, report.Record(matchID, game, string(preset), storage.ModeSim))
}
