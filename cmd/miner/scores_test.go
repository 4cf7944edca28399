package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-miner/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintRun(t *testing.T) {
	store := testStore(t)
	saved, err := store.SaveScore(storage.ScoreRecord{
		GameID: "miner_small",
		Score:  510,
		Reason: "out_of_fuel",
		Ticks:  12,
		Seed:   ^uint64(0),
	})
	if err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printRun(&buf, store, saved.RunID); err != nil {
		t.Fatalf("printRun failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{saved.RunID, "Score:  510", "out_of_fuel after 12 ticks", "miner play miner_small --seed 18446744073709551615"} {
		if !strings.Contains(out, want) {
			t.Errorf("printRun output missing %q:\n%s", want, out)
		}
	}

	if err := printRun(&buf, store, uuid.NewString()); !errors.Is(err, errRunNotFound) {
		t.Errorf("printRun(unknown) error = %v, expected errRunNotFound", err)
	}
}

func TestPrintScoresAll(t *testing.T) {
	store := testStore(t)
	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore(storage.ScoreRecord{GameID: "miner", Score: i * 10, Reason: "player_quit"}); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	tests := []struct {
		all      bool
		expected int
	}{
		{false, 10},
		{true, 12},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := printScores(&buf, store, "miner", "Motherload", tt.all); err != nil {
			t.Fatalf("printScores failed: %v", err)
		}
		rows := strings.Count(buf.String(), "player_quit")
		if rows != tt.expected {
			t.Errorf("printScores(all=%v) rows = %d, expected %d", tt.all, rows, tt.expected)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printScores(&buf, testStore(t), "miner", "Motherload", false); err != nil {
		t.Fatalf("printScores failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}
