package storage

import (
	"path/filepath"
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "liftlog.db")
	if err := RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestLoadEmpty verifies a freshly migrated database yields an empty
// document with default settings.
func TestLoadEmpty(t *testing.T) {
	db := openTestDB(t)
	doc, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Programs) != 0 {
		t.Errorf("got %d programs, want 0", len(doc.Programs))
	}
	if doc.Settings.Units != models.UnitsKg {
		t.Errorf("units = %q, want default %q", doc.Settings.Units, models.UnitsKg)
	}
}

// TestSaveLoadRoundTrip verifies the document survives a save/load cycle
// intact.
func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	doc := models.NewDocument()
	doc.ActiveProgramID = "p1"
	doc.Programs = []models.Program{{
		ID: "p1", TemplateID: "full-body", Name: "Block", CurrentWeek: 2, IsActive: true,
		WorkoutLogs: []models.WorkoutLog{{
			WorkoutID:        "week1-day1",
			Completed:        true,
			SkippedExercises: []string{"week1-day1-ex2"},
			Exercises: []models.ExerciseLog{{
				ExerciseID: "week1-day1-ex1",
				Sets:       []models.SetLog{{Weight: 102.5, Reps: 5, Effort: 8, Status: models.SetCompleted}},
			}},
		}},
	}}

	if err := db.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ActiveProgramID != "p1" || len(got.Programs) != 1 {
		t.Fatalf("document shape lost: %+v", got)
	}
	log := got.Programs[0].FindLog("week1-day1")
	if log == nil || !log.Completed {
		t.Fatal("workout log lost")
	}
	set := log.Exercises[0].Sets[0]
	if set.Weight != 102.5 || set.Reps != 5 || set.Status != models.SetCompleted {
		t.Errorf("set = %+v", set)
	}
}

// TestSaveOverwrites verifies repeated saves keep exactly one current
// snapshot row.
func TestSaveOverwrites(t *testing.T) {
	db := openTestDB(t)

	doc := models.NewDocument()
	for i := 0; i < 3; i++ {
		doc.ActiveProgramID = string(rune('a' + i))
		if err := db.Save(doc); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	got, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ActiveProgramID != "c" {
		t.Errorf("active = %q, want latest write", got.ActiveProgramID)
	}
}

// TestHistoryPruned verifies the snapshot history keeps a bounded number of
// entries, newest first, and old snapshots stay loadable.
func TestHistoryPruned(t *testing.T) {
	db := openTestDB(t)

	doc := models.NewDocument()
	for i := 0; i < historyKeep+5; i++ {
		doc.CurrentWeek = i + 1
		if err := db.Save(doc); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	entries, err := db.History()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != historyKeep {
		t.Fatalf("got %d history entries, want %d", len(entries), historyKeep)
	}
	old, err := db.LoadHistory(entries[len(entries)-1].ID)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if old.CurrentWeek >= doc.CurrentWeek {
		t.Errorf("oldest retained week = %d, want earlier than %d", old.CurrentWeek, doc.CurrentWeek)
	}
}

// TestMigrationsIdempotent verifies running migrations twice is safe.
func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftlog.db")
	if err := RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
