package storage

import (
	"os"
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

func saveRun(t *testing.T, store *Store, w, h int, elapsed time.Duration) {
	t.Helper()
	if _, err := store.SaveRun(Run{GameID: "mystery", Player: "tester", Width: w, Height: h, Elapsed: elapsed, Steps: 10, Bumps: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveRun(t, store, 13, 7, 5*time.Second)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.AllRuns(13, 7)
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, 13, 7, 12*time.Second)
	saveRun(t, store, 13, 7, 4500*time.Millisecond)
	saveRun(t, store, 13, 7, 30*time.Second)

	// Different size
	saveRun(t, store, 21, 11, time.Second)

	runs, err := store.BestTimes(13, 7, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be ordered fastest first
	expected := []time.Duration{4500 * time.Millisecond, 12 * time.Second, 30 * time.Second}
	for i, r := range runs {
		if r.Elapsed != expected[i] {
			t.Errorf("Run %d: expected %v, got %v", i, expected[i], r.Elapsed)
		}
		if r.GameID != "mystery" || r.Player != "tester" {
			t.Errorf("Run %d: unexpected game/player %q/%q", i, r.GameID, r.Player)
		}
		if r.Steps != 10 || r.Bumps != 2 {
			t.Errorf("Run %d: steps/bumps = %d/%d", i, r.Steps, r.Bumps)
		}
		if _, err := uuid.Parse(r.RunID); err != nil {
			t.Errorf("Run %d: run ID %q is not a UUID", i, r.RunID)
		}
	}

	// Check other size is separate
	other, err := store.BestTimes(21, 11, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(other) != 1 || other[0].Elapsed != time.Second {
		t.Errorf("Expected a single 1s run for 21x11, got %+v", other)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	if _, err := store.SaveRun(Run{RunID: id, GameID: "mystery", Width: 13, Height: 7, Elapsed: time.Second}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != id {
		t.Errorf("Expected run ID %s, got %+v", id, runs)
	}

	// Run IDs are unique
	if _, err := store.SaveRun(Run{RunID: id, GameID: "mystery", Width: 13, Height: 7}); err == nil {
		t.Error("Expected an error for a duplicate run ID")
	}
}

func TestStoreBestTimesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		saveRun(t, store, 13, 7, time.Duration(i)*time.Second)
	}

	runs, err := store.BestTimes(13, 7, 5)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	// Default limit
	runs, err = store.BestTimes(13, 7, 0)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(runs))
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestTime(13, 7)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best time for an empty store")
	}

	saveRun(t, store, 13, 7, 9*time.Second)
	saveRun(t, store, 13, 7, 3250*time.Millisecond)

	best, ok, err := store.BestTime(13, 7)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if !ok || best != 3250*time.Millisecond {
		t.Errorf("Expected best time 3.25s, got %v (ok=%v)", best, ok)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, 13, 7, time.Second)
	saveRun(t, store, 41, 17, 2*time.Second)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Width != 41 {
		t.Errorf("Expected most recent run first, got %dx%d", runs[0].Width, runs[0].Height)
	}
}

func TestStorePlayedSizes(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, 41, 17, time.Second)
	saveRun(t, store, 13, 7, time.Second)
	saveRun(t, store, 13, 7, 2*time.Second)

	sizes, err := store.PlayedSizes()
	if err != nil {
		t.Fatalf("PlayedSizes() failed: %v", err)
	}
	expected := []Size{{13, 7}, {41, 17}}
	if len(sizes) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, sizes)
	}
	for i := range expected {
		if sizes[i] != expected[i] {
			t.Errorf("Size %d: expected %v, got %v", i, expected[i], sizes[i])
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, 13, 7, time.Second)
	saveRun(t, store, 21, 11, time.Second)

	if err := store.ClearRuns(13, 7); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.AllRuns(13, 7)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.AllRuns(21, 11)
	if len(runs) != 1 {
		t.Errorf("Other sizes should be untouched, got %d runs", len(runs))
	}

	if err := store.ClearRuns(0, 0); err != nil {
		t.Fatalf("ClearRuns(0, 0) failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected an empty store, got %d runs", len(runs))
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRunStats(13, 7)
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	saveRun(t, store, 13, 7, 2*time.Second)
	saveRun(t, store, 13, 7, 4*time.Second)

	stats, err := store.GetRunStats(13, 7)
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Best != 2*time.Second {
		t.Errorf("Best = %v, expected 2s", stats.Best)
	}
	if stats.Average != 3*time.Second {
		t.Errorf("Average = %v, expected 3s", stats.Average)
	}
	if stats.TotalSteps != 20 || stats.TotalBumps != 4 {
		t.Errorf("steps/bumps = %d/%d, expected 20/4", stats.TotalSteps, stats.TotalBumps)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
