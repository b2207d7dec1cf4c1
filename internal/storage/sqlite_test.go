package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, winner string, duration float64) MatchRecord {
	return MatchRecord{
		MatchID:      id,
		Seed:         42,
		Preset:       "normal",
		Mode:         ModeSim,
		Winner:       winner,
		Duration:     duration,
		BricksBroken: 17,
		BallsLost:    3,
		Placements:   5,
		LivesLeft:    1,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndLookup(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(record("m-1", "paddle", 91.5))
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive row id, got %d", id)
	}

	got, err := store.MatchByID("m-1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if got.Winner != "paddle" || got.Duration != 91.5 || got.Seed != 42 {
		t.Errorf("Unexpected record: %+v", got)
	}
	if got.BricksBroken != 17 || got.BallsLost != 3 || got.Placements != 5 || got.LivesLeft != 1 {
		t.Errorf("Stats not round-tripped: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	missing, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() for missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing match, got %+v", missing)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(record("dup", "bricks", 10)); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(record("dup", "paddle", 20)); err == nil {
		t.Error("Expected an error when saving the same match twice")
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveMatch(record(fmt.Sprintf("m-%d", i), "bricks", float64(i))); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches with limit, got %d", len(recent))
	}
	// Newest first.
	if recent[0].MatchID != "m-4" || recent[1].MatchID != "m-3" || recent[2].MatchID != "m-2" {
		t.Errorf("Matches not in expected order: %v, %v, %v", recent[0].MatchID, recent[1].MatchID, recent[2].MatchID)
	}

	all, err := store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 matches, got %d", len(all))
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() on empty store failed: %v", err)
	}
	if empty.Matches != 0 || empty.AvgDuration != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero totals, got %+v", empty)
	}

	store.SaveMatch(record("a", "paddle", 30))
	store.SaveMatch(record("b", "bricks", 60))
	store.SaveMatch(record("c", "bricks", 90))

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Matches != 3 {
		t.Errorf("Expected 3 matches, got %d", totals.Matches)
	}
	if totals.PaddleWins != 1 || totals.BricksWins != 2 {
		t.Errorf("Expected 1 paddle and 2 bricks wins, got %d and %d", totals.PaddleWins, totals.BricksWins)
	}
	if totals.AvgDuration != 60 {
		t.Errorf("Expected average duration 60, got %v", totals.AvgDuration)
	}
	if totals.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(record("a", "paddle", 1))
	store.SaveMatch(record("b", "bricks", 2))

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, _ := store.RecentMatches(10)
	if len(recent) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(recent))
	}
}
