package storage

import (
	"path/filepath"
	"testing"
	"time"

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

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID := NewRunID()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("NewRunID() = %q is not a UUID", runID)
	}

	levels := []RunResult{
		{RunID: runID, LevelID: "lvl01", Player: "alice", Coins: 7, Deaths: 1, Duration: 12500 * time.Millisecond},
		{RunID: runID, LevelID: "lvl02", Player: "alice", Coins: 9, Deaths: 0, Duration: 20 * time.Second},
	}
	for _, r := range levels {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RunLevels(runID)
	if err != nil {
		t.Fatalf("RunLevels() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 levels in run, got %d", len(got))
	}
	if got[0].LevelID != "lvl01" || got[1].LevelID != "lvl02" {
		t.Errorf("Levels out of order: %s, %s", got[0].LevelID, got[1].LevelID)
	}
	if got[0].Duration != 12500*time.Millisecond {
		t.Errorf("Expected duration 12.5s, got %v", got[0].Duration)
	}
	if got[0].Player != "alice" || got[0].Coins != 7 || got[0].Deaths != 1 {
		t.Errorf("Unexpected run fields: %+v", got[0])
	}
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunResult{LevelID: "lvl01"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if _, err := uuid.Parse(runs[0].RunID); err != nil {
		t.Errorf("Generated run ID %q is not a UUID", runs[0].RunID)
	}

	if _, err := store.SaveRun(RunResult{RunID: "not-a-uuid", LevelID: "lvl01"}); err == nil {
		t.Error("Expected error for malformed run ID")
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	entries := []struct {
		level  string
		ms     int
		deaths int
	}{
		{"lvl01", 9000, 0},
		{"lvl01", 7000, 2},
		{"lvl01", 7000, 1},
		{"lvl01", 15000, 0},
		{"lvl02", 1000, 0},
	}
	for _, e := range entries {
		store.SaveRun(RunResult{
			LevelID:  e.level,
			Deaths:   e.deaths,
			Duration: time.Duration(e.ms) * time.Millisecond,
		})
	}

	best, err := store.BestRuns("lvl01", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(best))
	}

	expected := []struct {
		ms     int64
		deaths int
	}{{7000, 1}, {7000, 2}, {9000, 0}}
	for i, e := range expected {
		if best[i].Duration.Milliseconds() != e.ms || best[i].Deaths != e.deaths {
			t.Errorf("Rank %d: got %v/%d deaths, expected %dms/%d deaths",
				i, best[i].Duration, best[i].Deaths, e.ms, e.deaths)
		}
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LevelStats("lvl01")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Completions != 0 || stats.BestTime != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunResult{LevelID: "lvl01", Coins: 5, Deaths: 1, Duration: 10 * time.Second})
	store.SaveRun(RunResult{LevelID: "lvl01", Coins: 5, Deaths: 3, Duration: 8 * time.Second})

	stats, err = store.LevelStats("lvl01")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Completions != 2 {
		t.Errorf("Expected 2 completions, got %d", stats.Completions)
	}
	if stats.BestTime != 8*time.Second {
		t.Errorf("Expected best time 8s, got %v", stats.BestTime)
	}
	if stats.AvgDeaths != 2 {
		t.Errorf("Expected average deaths 2, got %f", stats.AvgDeaths)
	}
	if stats.TotalCoins != 10 {
		t.Errorf("Expected 10 coins, got %d", stats.TotalCoins)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunResult{LevelID: "lvl01"})
	store.SaveRun(RunResult{LevelID: "lvl02"})
	store.SaveRun(RunResult{LevelID: "lvl02"})

	if err := store.ClearRuns("lvl02"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].LevelID != "lvl01" {
		t.Errorf("Expected only lvl01 to remain, got %+v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}
