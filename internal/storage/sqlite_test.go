package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func mustSave(t *testing.T, store *Store, gameID string, score int, reason string) ScoreEntry {
	t.Helper()
	e, err := store.SaveScore(ScoreRecord{GameID: gameID, Score: score, Reason: reason, Ticks: uint64(score / 10)})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return e
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "miner", 100, "player_quit")
	mustSave(t, store, "miner", 50, "out_of_fuel")
	mustSave(t, store, "miner", 200, "out_of_fuel")
	mustSave(t, store, "miner_small", 500, "out_of_fuel")

	scores, err := store.TopScores("miner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Reason != "out_of_fuel" || scores[1].Reason != "player_quit" {
		t.Errorf("Reasons not stored: %q, %q", scores[0].Reason, scores[1].Reason)
	}
	if scores[0].Ticks != 20 {
		t.Errorf("Ticks = %d, expected 20", scores[0].Ticks)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	small, err := store.TopScores("miner_small", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 miner_small score, got %d", len(small))
	}
}

func TestStoreRunID(t *testing.T) {
	store := openTestStore(t)

	e := mustSave(t, store, "miner", 10, "player_quit")
	if _, err := uuid.Parse(e.RunID); err != nil {
		t.Errorf("generated RunID %q is not a UUID: %v", e.RunID, err)
	}

	runID := uuid.NewString()
	if _, err := store.SaveScore(ScoreRecord{RunID: runID, GameID: "miner", Score: 5, Seed: ^uint64(0)}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	got, err := store.RunByID(runID)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if got.Score != 5 || got.Seed != ^uint64(0) {
		t.Errorf("RunByID() = %+v, expected score 5 and max seed", got)
	}

	// Duplicate run IDs are rejected
	if _, err := store.SaveScore(ScoreRecord{RunID: runID, GameID: "miner", Score: 6}); err == nil {
		t.Error("expected error saving a duplicate run ID")
	}
	if _, err := store.SaveScore(ScoreRecord{RunID: "not-a-uuid", GameID: "miner"}); err == nil {
		t.Error("expected error for malformed run ID")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100, "out_of_fuel")
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("miner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "miner", 100, "out_of_fuel")
	mustSave(t, store, "miner", 300, "out_of_fuel")
	mustSave(t, store, "miner", 200, "out_of_fuel")

	high, err = store.HighScore("miner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "miner", 100, "out_of_fuel")
	mustSave(t, store, "miner", 200, "out_of_fuel")
	mustSave(t, store, "miner_deep", 300, "out_of_fuel")

	if err := store.ClearScores("miner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	minerScores, _ := store.TopScores("miner", 10)
	if len(minerScores) != 0 {
		t.Errorf("Expected 0 miner scores after clear, got %d", len(minerScores))
	}

	deepScores, _ := store.TopScores("miner_deep", 10)
	if len(deepScores) != 1 {
		t.Errorf("miner_deep scores should not be affected by clearing miner")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i*10, "player_quit")
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "miner", 100, "out_of_fuel")
	mustSave(t, store, "miner", 300, "player_quit")
	mustSave(t, store, "miner", 200, "out_of_fuel")

	stats, err := store.GetGameStats("miner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 {
		t.Errorf("stats = %+v, expected 3 games and high score 300", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.OutOfFuel != 2 {
		t.Errorf("OutOfFuel = %d, expected 2", stats.OutOfFuel)
	}
	if stats.LongestTicks != 30 {
		t.Errorf("LongestTicks = %d, expected 30", stats.LongestTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.miner/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".miner", "scores.db")); err != nil {
		t.Errorf("Database file was not created under home: %v", err)
	}
}
