package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/energy-guardian/internal/progress"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSettingsKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get(progress.KeyDifficulty); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set(progress.KeyDifficulty, "Hard"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(progress.KeyDifficulty, "Easy"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(progress.KeyDifficulty)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "Easy" {
		t.Errorf("Expected Easy, got %q", v)
	}

	if err := store.Delete(progress.KeyDifficulty); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(progress.KeyDifficulty); ok {
		t.Error("Key still present after Delete()")
	}

	// Deleting an absent key is not an error
	if err := store.Delete("missing"); err != nil {
		t.Errorf("Delete() of absent key failed: %v", err)
	}
}

func TestProgressionOverStore(t *testing.T) {
	store := openTestStore(t)

	repo := progress.NewRepository(store, nil)
	prog, err := progress.OpenProgression(repo)
	if err != nil {
		t.Fatalf("OpenProgression() failed: %v", err)
	}
	if err := prog.UnlockNext(1); err != nil {
		t.Fatalf("UnlockNext() failed: %v", err)
	}

	// A second progression over the same store sees the unlock
	reopened, err := progress.OpenProgression(progress.NewRepository(store, nil))
	if err != nil {
		t.Fatalf("OpenProgression() failed: %v", err)
	}
	if !reopened.IsUnlocked(1) {
		t.Error("Level 2 should be unlocked after reopening")
	}
	if reopened.IsUnlocked(2) {
		t.Error("Level 3 should still be locked")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{RunID: "a", Level: 1, Difficulty: "Easy", Outcome: OutcomeFailed, Score: 100},
		{RunID: "b", Level: 1, Difficulty: "Medium", Outcome: OutcomeFailed, Score: 50},
		{RunID: "c", Level: 1, Difficulty: "Hard", Outcome: OutcomeCompleted, Score: 200, Energy: 200, EnergyGoal: 150, Lives: 2, TimeRemaining: 17},
		{RunID: "d", Level: 2, Difficulty: "Medium", Outcome: OutcomeCompleted, Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(1, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("Run %d: expected score %d, got %d", i, w, top[i].Score)
		}
	}

	best := top[0]
	if best.RunID != "c" || best.Difficulty != "Hard" || best.Outcome != OutcomeCompleted {
		t.Errorf("Unexpected best run: %+v", best)
	}
	if best.Energy != 200 || best.EnergyGoal != 150 || best.Lives != 2 || best.TimeRemaining != 17 {
		t.Errorf("Run fields not stored: %+v", best)
	}

	all, err := store.TopRuns(0, 10)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("Expected 4 runs led by 500, got %+v", all)
	}

	limited, err := store.TopRuns(1, 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	r := RunRecord{RunID: "same", Level: 1, Difficulty: "Easy", Outcome: OutcomeFailed}
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("Expected error when saving the same run twice")
	}
}

func TestRunByID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{RunID: "xyz", Player: "alice", Level: 3, Difficulty: "Hard", Outcome: OutcomeCompleted, Score: 210}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.RunByID("xyz")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil")
	}
	if r.Player != "alice" || r.Level != 3 || r.Score != 210 {
		t.Errorf("Unexpected run: %+v", r)
	}

	missing, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", missing)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	score, err := store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty level, got %d", score)
	}

	store.SaveRun(RunRecord{RunID: "1", Level: 1, Difficulty: "Easy", Outcome: OutcomeFailed, Score: 40})
	store.SaveRun(RunRecord{RunID: "2", Level: 1, Difficulty: "Easy", Outcome: OutcomeCompleted, Score: 155})

	score, err = store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 155 {
		t.Errorf("Expected high score 155, got %d", score)
	}
}

func TestAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{RunID: "1", Level: 1, Difficulty: "Easy", Outcome: OutcomeFailed, Score: 50})
	store.SaveRun(RunRecord{RunID: "2", Level: 1, Difficulty: "Easy", Outcome: OutcomeCompleted, Score: 150})
	store.SaveRun(RunRecord{RunID: "3", Level: 2, Difficulty: "Hard", Outcome: OutcomeFailed, Score: 30})

	stats, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	l1 := stats[1]
	if l1.Attempts != 2 || l1.Completions != 1 || l1.HighScore != 150 {
		t.Errorf("Unexpected level 1 stats: %+v", l1)
	}
	if l1.AvgScore != 100 {
		t.Errorf("Expected average 100, got %v", l1.AvgScore)
	}

	l2 := stats[2]
	if l2.Attempts != 1 || l2.Completions != 0 {
		t.Errorf("Unexpected level 2 stats: %+v", l2)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{RunID: "1", Level: 1, Difficulty: "Easy", Outcome: OutcomeFailed, Score: 50})
	store.SaveRun(RunRecord{RunID: "2", Level: 2, Difficulty: "Easy", Outcome: OutcomeFailed, Score: 60})

	if err := store.ClearRuns(1); err != nil {
		t.Fatalf("ClearRuns(1) failed: %v", err)
	}
	if runs, _ := store.TopRuns(0, 10); len(runs) != 1 || runs[0].Level != 2 {
		t.Errorf("Expected only the level 2 run to remain, got %+v", runs)
	}

	if err := store.ClearRuns(0); err != nil {
		t.Fatalf("ClearRuns(0) failed: %v", err)
	}
	if runs, _ := store.TopRuns(0, 10); len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}
