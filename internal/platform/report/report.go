// Package report turns match events and results into log lines and
// history records. It is shared by the interactive host and headless runs.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/storage"
)

// NewLogger builds a timestamped logger at the named level.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// NewMatchID returns a fresh match identifier.
func NewMatchID() string {
	return uuid.NewString()
}

// MatchLogger scopes a logger to one match.
func MatchLogger(logger *log.Logger, matchID string, seed int64) *log.Logger {
	return logger.With("match", matchID, "seed", seed)
}

// LogEvents writes the notable events of one step. Sounds are debug noise.
func LogEvents(logger *log.Logger, events []breakin.Event) {
	for _, e := range events {
		switch e.Kind {
		case breakin.EventSound:
			logger.Debug("sound", "cue", e.Sound, "step", e.ComboStep, "volume", e.Volume)
		case breakin.EventBrickPlaced:
			logger.Info("shape placed", "x", e.Cell.X, "y", e.Cell.Y, "ai", e.ByAI)
		case breakin.EventPlacementRejected:
			logger.Info("placement rejected")
		case breakin.EventBrickBroken:
			logger.Debug("brick broken", "x", e.Cell.X, "y", e.Cell.Y)
		case breakin.EventBallLost:
			logger.Info("ball lost")
		case breakin.EventDropCaught:
			logger.Info("drop caught", "drop", e.Drop)
		case breakin.EventMatchEnded:
			logger.Info("match ended", "winner", e.Winner)
		}
	}
}

// Record builds the history row for a finished match.
func Record(matchID string, g *breakin.Game, preset, mode string) storage.MatchRecord {
	st := g.State()
	stats := g.Stats()
	return storage.MatchRecord{
		MatchID:      matchID,
		Seed:         g.Seed(),
		Preset:       preset,
		Mode:         mode,
		Winner:       st.Winner.String(),
		Duration:     st.GameTime,
		BricksBroken: stats.BricksBroken,
		BallsLost:    stats.BallsLost,
		Placements:   stats.Placements,
		LivesLeft:    st.Lives,
	}
}

// Save stores a finished match. A nil store is a no-op.
func Save(store *storage.Store, logger *log.Logger, rec storage.MatchRecord) {
	if store == nil {
		return
	}
	if _, err := store.SaveMatch(rec); err != nil {
		logger.Warn("could not save match", "error", err)
		return
	}
	logger.Debug("match saved")
}
