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

// memSnap counts snapshot writes; the engine must snapshot after every
// mutation.
type memSnap struct {
	saves int
}

func (m *memSnap) Save(*models.Document) error {
	m.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *memSnap) {
	t.Helper()
	snap := &memSnap{}
	s := New(models.NewDocument(), snap, templates.NewBuiltin(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s, snap
}

// activeNonArchived counts non-archived programs with the active flag set.
func activeNonArchived(s *Store) int {
	count := 0
	for _, p := range s.Programs(false) {
		if p.IsActive && !p.IsArchived {
			count++
		}
	}
	return count
}

// TestCreateProgramHydrates verifies a 2-day/4-week template yields a log
// for every (week, day) slot, each seeded with editable template exercises.
func TestCreateProgramHydrates(t *testing.T) {
	s, _ := newTestStore(t)

	id, ok := s.CreateProgram("full-body", "Test", nil)
	if !ok || id == "" {
		t.Fatal("create failed")
	}
	p, ok := s.Program(id)
	if !ok {
		t.Fatal("program not found after create")
	}
	if !p.IsActive {
		t.Error("new program should be active")
	}
	if len(p.WorkoutLogs) != 8 {
		t.Fatalf("got %d hydrated logs, want 8", len(p.WorkoutLogs))
	}
	for _, log := range p.WorkoutLogs {
		if len(log.AddedExercises) == 0 {
			t.Errorf("log %s has no seeded exercises", log.WorkoutID)
		}
		for _, ex := range log.AddedExercises {
			if !ex.FromTemplate {
				t.Errorf("seed %s not flagged as template-injected", ex.Name)
			}
			if ex.Category == models.CategoryWarmup {
				t.Errorf("warmup %s leaked into seeds", ex.Name)
			}
		}
	}
	if DeriveStatus(&p.WorkoutLogs[0]) != StatusNotStarted {
		t.Error("hydration alone must not start a workout")
	}
}

// TestCreateProgramEmptyName verifies empty and whitespace-only names are
// rejected.
func TestCreateProgramEmptyName(t *testing.T) {
	s, _ := newTestStore(t)
	if _, ok := s.CreateProgram("full-body", "   ", nil); ok {
		t.Error("whitespace-only name accepted")
	}
}

// TestSingleActiveInvariant verifies that across create, switch, archive,
// and delete, at most one non-archived program is active, and exactly one
// whenever any non-archived program exists.
func TestSingleActiveInvariant(t *testing.T) {
	s, _ := newTestStore(t)

	a, _ := s.CreateProgram("full-body", "A", nil)
	b, _ := s.CreateProgram("ppl", "B", nil)
	c, _ := s.CreateProgram("upper-lower", "C", nil)

	check := func(when string) {
		t.Helper()
		nonArchived := 0
		for _, p := range s.Programs(false) {
			if !p.IsArchived {
				nonArchived++
			}
		}
		active := activeNonArchived(s)
		if nonArchived == 0 && active != 0 {
			t.Errorf("%s: %d active with no programs", when, active)
		}
		if nonArchived > 0 && active != 1 {
			t.Errorf("%s: %d active, want exactly 1", when, active)
		}
	}

	check("after creates")
	s.SetActiveProgram(a)
	check("after switch")
	s.ArchiveProgram(a)
	check("after archiving active")
	s.DeleteProgram(b)
	check("after deleting")
	s.ArchiveProgram(c)
	check("after archiving last")
	s.RestoreProgram(a)
	check("after restore")
}

// TestArchiveActivePromotes verifies archiving the active program promotes
// one of the remaining programs and keeps the archived data intact.
func TestArchiveActivePromotes(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.CreateProgram("full-body", "A", nil)
	s.CreateProgram("ppl", "B", nil)
	s.CreateProgram("upper-lower", "C", nil)
	s.SetActiveProgram(a)

	s.LogExerciseSet("week1-day1", "week1-day1-ex1", 0, models.SetLog{Weight: 100, Reps: 5, Status: models.SetCompleted})
	before, _ := s.Program(a)

	if !s.ArchiveProgram(a) {
		t.Fatal("archive failed")
	}
	if activeNonArchived(s) != 1 {
		t.Errorf("active count = %d, want 1", activeNonArchived(s))
	}
	after, _ := s.Program(a)
	if !after.IsArchived {
		t.Error("program not archived")
	}
	if len(after.WorkoutLogs) != len(before.WorkoutLogs) {
		t.Error("archive changed workout logs")
	}
	if got, _ := s.Active(); got.ID == a {
		t.Error("archived program still active")
	}
}

// TestDeleteProgramCascades verifies deletion removes the program outright
// and clears the active pointer when nothing remains.
func TestDeleteProgramCascades(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "Only", nil)

	if !s.DeleteProgram(id) {
		t.Fatal("delete failed")
	}
	if _, ok := s.Program(id); ok {
		t.Error("program still present after delete")
	}
	if _, ok := s.Active(); ok {
		t.Error("active pointer should be cleared")
	}
	if s.DeleteProgram(id) {
		t.Error("second delete should be a no-op")
	}
}

// TestSetActiveProgramUnknown verifies switching to unknown or archived
// programs is a no-op.
func TestSetActiveProgramUnknown(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.CreateProgram("full-body", "A", nil)
	b, _ := s.CreateProgram("ppl", "B", nil)
	s.ArchiveProgram(a)

	if s.SetActiveProgram("nope") {
		t.Error("unknown id accepted")
	}
	if s.SetActiveProgram(a) {
		t.Error("archived program accepted")
	}
	if got, _ := s.Active(); got.ID != b {
		t.Errorf("active = %s, want %s", got.ID, b)
	}
}

// TestReorderProgramsAppendsUnseen verifies ids missing from the requested
// order end up appended, keeping their relative order.
func TestReorderProgramsAppendsUnseen(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.CreateProgram("full-body", "A", nil)
	b, _ := s.CreateProgram("ppl", "B", nil)
	c, _ := s.CreateProgram("upper-lower", "C", nil)

	s.ReorderPrograms([]string{c, "ghost", c})

	got := s.Programs(false)
	want := []string{c, a, b}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

// TestStructureClampWeeks verifies the week count can never drop below the
// program's current week.
func TestStructureClampWeeks(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("upper-lower", "UL", nil)
	s.SetCurrentWeek(id, 5)

	zero := 0
	s.UpdateProgramStructure(id, StructureUpdate{WeeksTotal: &zero})
	p, _ := s.Program(id)
	if p.CustomWeeksTotal < p.CurrentWeek {
		t.Errorf("weeks = %d below current week %d", p.CustomWeeksTotal, p.CurrentWeek)
	}

	big := 99
	s.UpdateProgramStructure(id, StructureUpdate{WeeksTotal: &big})
	p, _ = s.Program(id)
	if p.CustomWeeksTotal != MaxWeeks {
		t.Errorf("weeks = %d, want cap %d", p.CustomWeeksTotal, MaxWeeks)
	}
}

// TestStructureDays verifies day-count clamping, label refitting, and order
// reset.
func TestStructureDays(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "FB", nil)

	nine := 9
	s.UpdateProgramStructure(id, StructureUpdate{DaysPerWeek: &nine})
	p, _ := s.Program(id)
	if p.CustomDaysPerWeek != MaxDays {
		t.Errorf("days = %d, want %d", p.CustomDaysPerWeek, MaxDays)
	}
	if len(p.CustomDayLabels) != MaxDays {
		t.Errorf("labels = %v, want %d entries", p.CustomDayLabels, MaxDays)
	}
	// Original labels survive, the rest are generated.
	if p.CustomDayLabels[0] != "Full Body A" || p.CustomDayLabels[6] != "Day 7" {
		t.Errorf("labels = %v", p.CustomDayLabels)
	}
	if len(p.DayOrder) != MaxDays || p.DayOrder[0] != 1 || p.DayOrder[6] != 7 {
		t.Errorf("day order = %v, want ascending", p.DayOrder)
	}
}

// TestAddDayCap verifies adding days stops at seven.
func TestAddDayCap(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "FB", nil)
	for i := 0; i < 10; i++ {
		s.AddDayToProgram(id)
	}
	p, _ := s.Program(id)
	if p.CustomDaysPerWeek != MaxDays {
		t.Errorf("days = %d, want %d", p.CustomDaysPerWeek, MaxDays)
	}
	if s.AddDayToProgram(id) {
		t.Error("add beyond cap accepted")
	}
}

// TestCanRemoveDay verifies the removal guard refuses once data exists at
// or beyond the candidate day.
func TestCanRemoveDay(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("ppl", "PPL", nil)

	if !s.CanRemoveDay(id, 3) {
		t.Error("pristine day should be removable")
	}
	s.LogExerciseSet("week2-day3", "week2-day3-ex1", 0, models.SetLog{Weight: 60, Reps: 8, Status: models.SetCompleted})
	if s.CanRemoveDay(id, 3) {
		t.Error("day with training data should not be removable")
	}
	if s.CanRemoveDay(id, 2) {
		t.Error("data beyond day 2 should block removal")
	}
}

// TestRenameDayAndProgram verifies rename validation and per-day overrides.
func TestRenameDayAndProgram(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "FB", nil)

	if s.RenameProgram(id, "  ") {
		t.Error("blank rename accepted")
	}
	if !s.RenameProgram(id, "  Strength   Block ") {
		t.Fatal("rename failed")
	}
	p, _ := s.Program(id)
	if p.Name != "Strength Block" {
		t.Errorf("name = %q", p.Name)
	}

	if s.RenameWorkoutDay(id, 9, "Nope") {
		t.Error("out-of-range day accepted")
	}
	if !s.RenameWorkoutDay(id, 2, "Pull Day") {
		t.Fatal("day rename failed")
	}
	p, _ = s.Program(id)
	if p.DayNames[2] != "Pull Day" {
		t.Errorf("day name = %q", p.DayNames[2])
	}
}

// TestSaveAsTemplate verifies day bucketing and per-day name de-duplication.
func TestSaveAsTemplate(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "FB", nil)

	// Same exercise name appears in week 1 and week 2 of day 1; the
	// template keeps one copy per day.
	s.AddExerciseToWorkout("week1-day1", models.AddedExercise{Name: "Face Pull", Sets: 3, Reps: "15"})
	s.AddExerciseToWorkout("week2-day1", models.AddedExercise{Name: "face  pull", Sets: 3, Reps: "15"})

	tid, ok := s.SaveAsTemplate(id, " My Split ")
	if !ok {
		t.Fatal("save as template failed")
	}
	var ct models.CustomTemplate
	found := false
	for _, c := range s.CustomTemplates() {
		if c.ID == tid {
			ct, found = c, true
		}
	}
	if !found {
		t.Fatal("template not stored")
	}
	if ct.Name != "My Split" {
		t.Errorf("name = %q", ct.Name)
	}
	if ct.DaysPerWeek != 2 || len(ct.Days) != 2 {
		t.Fatalf("days = %d/%d, want 2", ct.DaysPerWeek, len(ct.Days))
	}
	facePulls := 0
	for _, ex := range ct.Days[0].Exercises {
		if ex.Name == "Face Pull" || ex.Name == "face  pull" {
			facePulls++
		}
	}
	if facePulls != 1 {
		t.Errorf("face pull appears %d times in day 1, want 1", facePulls)
	}

	// Deleting the source program must not delete the template.
	s.DeleteProgram(id)
	if len(s.CustomTemplates()) != 1 {
		t.Error("template lost with its source program")
	}
}

// TestCreateFromCustomTemplate verifies a saved template can seed a new
// program with its day structure repeated each week.
func TestCreateFromCustomTemplate(t *testing.T) {
	s, _ := newTestStore(t)
	src, _ := s.CreateProgram("full-body", "FB", nil)
	tid, _ := s.SaveAsTemplate(src, "Mine")

	id, ok := s.CreateProgram(tid, "From Mine", nil)
	if !ok {
		t.Fatal("create from custom template failed")
	}
	p, _ := s.Program(id)
	if len(p.WorkoutLogs) != 8 {
		t.Fatalf("got %d logs, want 8", len(p.WorkoutLogs))
	}
	if len(p.WorkoutLogs[0].AddedExercises) == 0 {
		t.Error("custom template hydration produced no seeds")
	}
}

// TestSubstitution verifies the one-substitution-per-exercise rule.
func TestSubstitution(t *testing.T) {
	s, _ := newTestStore(t)
	id, _ := s.CreateProgram("full-body", "FB", nil)

	if !s.SubstituteExercise(id, "week1-day1-ex1", models.Substitution{Name: "Goblet Squat"}) {
		t.Fatal("substitution failed")
	}
	s.SubstituteExercise(id, "week1-day1-ex1", models.Substitution{Name: "Hack Squat"})
	p, _ := s.Program(id)
	if len(p.Substitutions) != 1 {
		t.Fatalf("got %d substitutions, want 1", len(p.Substitutions))
	}
	if p.Substitutions["week1-day1-ex1"].Name != "Hack Squat" {
		t.Error("second substitution did not replace the first")
	}
	if !s.RemoveSubstitution(id, "week1-day1-ex1") {
		t.Fatal("remove substitution failed")
	}
	if s.RemoveSubstitution(id, "week1-day1-ex1") {
		t.Error("removing twice should be a no-op")
	}
}

// TestPersistOnEveryMutation verifies mutations write a snapshot and
// rejected operations do not.
func TestPersistOnEveryMutation(t *testing.T) {
	s, snap := newTestStore(t)
	s.CreateProgram("full-body", "FB", nil)
	before := snap.saves
	s.LogExerciseSet("week1-day1", "week1-day1-ex1", 0, models.SetLog{Weight: 80, Reps: 5})
	if snap.saves != before+1 {
		t.Errorf("saves = %d, want %d", snap.saves, before+1)
	}
	s.LogExerciseSet("bogus-id", "x", 0, models.SetLog{})
	if snap.saves != before+1 {
		t.Error("rejected mutation wrote a snapshot")
	}
}
