package engine

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/templates"
)

func storeForDoc(t *testing.T, doc *models.Document) *Store {
	t.Helper()
	s := New(doc, &memSnap{}, templates.NewBuiltin(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

// TestMigrateLegacy verifies pre-multi-program flat state is wrapped into a
// single active program and the flat fields are cleared.
func TestMigrateLegacy(t *testing.T) {
	doc := models.NewDocument()
	doc.CurrentWeek = 3
	doc.WorkoutLogs = []models.WorkoutLog{
		{WorkoutID: "week1-day1", Exercises: []models.ExerciseLog{{ExerciseID: "squat", Sets: []models.SetLog{{Weight: 100, Reps: 5, Status: models.SetCompleted}}}}},
		{WorkoutID: "week3-day2", Completed: true},
	}
	doc.Substitutions = map[string]models.Substitution{"squat": {Name: "Leg Press"}}

	s := storeForDoc(t, doc)
	s.Migrate()

	snap := s.Snapshot()
	if len(snap.Programs) != 1 {
		t.Fatalf("got %d programs, want 1", len(snap.Programs))
	}
	p := snap.Programs[0]
	if !p.IsActive || snap.ActiveProgramID != p.ID {
		t.Error("synthesized program is not active")
	}
	if p.CurrentWeek != 3 {
		t.Errorf("current week = %d, want 3", p.CurrentWeek)
	}
	if len(p.WorkoutLogs) != 2 {
		t.Errorf("got %d logs, want 2", len(p.WorkoutLogs))
	}
	if p.Substitutions["squat"].Name != "Leg Press" {
		t.Error("substitutions not carried")
	}
	if p.CustomWeeksTotal < 3 || p.CustomDaysPerWeek < 2 {
		t.Errorf("structure %d weeks / %d days too small for the data", p.CustomWeeksTotal, p.CustomDaysPerWeek)
	}
	if len(snap.WorkoutLogs) != 0 || snap.CurrentWeek != 0 {
		t.Error("legacy flat fields not cleared")
	}
}

// TestMigrateLegacySkipsTrivial verifies an empty or fresh document is not
// wrapped into a program.
func TestMigrateLegacySkipsTrivial(t *testing.T) {
	s := storeForDoc(t, models.NewDocument())
	s.Migrate()
	if len(s.Snapshot().Programs) != 0 {
		t.Error("trivial document grew a program")
	}
}

// TestMigrateIdempotent verifies running the migration twice changes
// nothing the second time.
func TestMigrateIdempotent(t *testing.T) {
	doc := models.NewDocument()
	doc.CurrentWeek = 2
	doc.WorkoutLogs = []models.WorkoutLog{{WorkoutID: "week1-day1", Completed: true}}

	s := storeForDoc(t, doc)
	s.Migrate()
	first := s.Snapshot()
	s.Migrate()
	second := s.Snapshot()

	if len(first.Programs) != 1 || len(second.Programs) != 1 {
		t.Fatal("program count wrong")
	}
	if first.Programs[0].ID != second.Programs[0].ID {
		t.Error("second run produced a different program")
	}
}

// TestHydration verifies a template program missing its seeds gains them
// without touching real logged data, and gains logs for slots that did not
// exist yet.
func TestHydration(t *testing.T) {
	doc := models.NewDocument()
	doc.Programs = []models.Program{{
		ID:          "p1",
		TemplateID:  "full-body",
		Name:        "Old FB",
		CurrentWeek: 2,
		IsActive:    true,
		WorkoutLogs: []models.WorkoutLog{{
			WorkoutID: "week1-day1",
			Exercises: []models.ExerciseLog{{ExerciseID: "week1-day1-ex1", Sets: []models.SetLog{{Weight: 100, Reps: 5, Status: models.SetCompleted}}}},
		}},
	}}
	doc.ActiveProgramID = "p1"

	s := storeForDoc(t, doc)
	s.Migrate()

	p, _ := s.Program("p1")
	if !p.Hydrated {
		t.Error("program not flagged hydrated")
	}
	// 4 weeks x 2 days.
	if len(p.WorkoutLogs) != 8 {
		t.Fatalf("got %d logs, want 8", len(p.WorkoutLogs))
	}
	existing := p.FindLog("week1-day1")
	if len(existing.AddedExercises) == 0 {
		t.Error("existing log did not gain seeds")
	}
	ex := existing.FindExercise("week1-day1-ex1")
	if ex == nil || ex.Sets[0].Reps != 5 {
		t.Error("hydration touched logged performance data")
	}
}

// TestHydrationOneTime verifies the migrated flag stops repeat hydration,
// so user deletions are not resurrected on the next load.
func TestHydrationOneTime(t *testing.T) {
	doc := models.NewDocument()
	doc.Programs = []models.Program{{
		ID: "p1", TemplateID: "full-body", Name: "FB", CurrentWeek: 1, IsActive: true,
	}}
	doc.ActiveProgramID = "p1"

	s := storeForDoc(t, doc)
	s.Migrate()

	// User strips a day's seeds after hydration.
	s.DeleteExerciseFromWorkout("week1-day1", "week1-day1-ex1")
	before, _ := s.WorkoutLog("week1-day1")

	s.Migrate()
	after, _ := s.WorkoutLog("week1-day1")
	if len(after.AddedExercises) != len(before.AddedExercises) {
		t.Error("second load re-hydrated a reconciled program")
	}
	if !contains(after.DeletedExercises, "week1-day1-ex1") {
		t.Error("deletion record lost")
	}
}

// TestHydrationSkipsCustom verifies custom-sentinel programs are never
// hydrated.
func TestHydrationSkipsCustom(t *testing.T) {
	doc := models.NewDocument()
	doc.Programs = []models.Program{{
		ID: "p1", TemplateID: models.TemplateCustom, Name: "Mine", CurrentWeek: 1, IsActive: true,
		CustomWeeksTotal: 4, CustomDaysPerWeek: 3,
	}}
	doc.ActiveProgramID = "p1"

	s := storeForDoc(t, doc)
	s.Migrate()

	p, _ := s.Program("p1")
	if len(p.WorkoutLogs) != 0 {
		t.Error("custom program gained template logs")
	}
}

// TestSettings verifies settings round-trip and units validation.
func TestSettings(t *testing.T) {
	s, _ := newTestStore(t)

	if s.UpdateSettings(models.Settings{Units: "stone"}) {
		t.Error("invalid units accepted")
	}
	want := models.Settings{Units: models.UnitsLb, CascadeWeight: true, KeepScreenAwake: true}
	if !s.UpdateSettings(want) {
		t.Fatal("update failed")
	}
	if got := s.Settings(); got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

// TestClearAll verifies the full reset leaves a pristine document.
func TestClearAll(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateProgram("full-body", "FB", nil)
	s.ClearAll()

	snap := s.Snapshot()
	if len(snap.Programs) != 0 || snap.ActiveProgramID != "" {
		t.Error("clear left data behind")
	}
	if snap.Settings != models.DefaultSettings() {
		t.Error("settings not reset to defaults")
	}
}
