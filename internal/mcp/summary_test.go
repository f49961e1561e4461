package mcp

import (
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

// TestSummarizeVolume verifies per-week totals: sets, reps, and tonnage
// from logged sets, with untouched weeks omitted.
func TestSummarizeVolume(t *testing.T) {
	p := &models.Program{
		ID: "p1",
		WorkoutLogs: []models.WorkoutLog{
			{
				WorkoutID: "week1-day1",
				Completed: true,
				Exercises: []models.ExerciseLog{
					{ExerciseID: "week1-day1-ex0", Sets: []models.SetLog{
						{Weight: 100, Reps: 5},
						{Weight: 100, Reps: 5},
					}},
					{ExerciseID: "week1-day1-ex1", Sets: []models.SetLog{
						{Weight: 40, Reps: 10},
					}},
				},
			},
			{
				WorkoutID: "week1-day2",
				Exercises: []models.ExerciseLog{
					{ExerciseID: "week1-day2-ex0", Sets: []models.SetLog{
						{Weight: 60, Reps: 8},
					}},
				},
			},
			// Hydrated but untouched: must not appear in the summary.
			{WorkoutID: "week2-day1"},
		},
	}

	got := summarize(p)
	if len(got) != 1 {
		t.Fatalf("got %d weeks, want 1", len(got))
	}
	w := got[0]
	if w.Week != 1 {
		t.Errorf("week = %d", w.Week)
	}
	if w.WorkoutsLogged != 2 || w.WorkoutsCompleted != 1 {
		t.Errorf("workouts = %d/%d, want 2 logged, 1 completed", w.WorkoutsLogged, w.WorkoutsCompleted)
	}
	if w.SetsLogged != 4 {
		t.Errorf("sets = %d, want 4", w.SetsLogged)
	}
	if w.TotalReps != 28 {
		t.Errorf("reps = %d, want 28", w.TotalReps)
	}
	if want := 100*5.0 + 100*5.0 + 40*10.0 + 60*8.0; w.Tonnage != want {
		t.Errorf("tonnage = %.1f, want %.1f", w.Tonnage, want)
	}
}

// TestSummarizeSkipOnlyWeek verifies a week whose only activity is a skipped
// exercise counts as logged but contributes no volume.
func TestSummarizeSkipOnlyWeek(t *testing.T) {
	p := &models.Program{
		WorkoutLogs: []models.WorkoutLog{
			{WorkoutID: "week3-day1", SkippedExercises: []string{"week3-day1-ex0"}},
		},
	}

	got := summarize(p)
	if len(got) != 1 {
		t.Fatalf("got %d weeks, want 1", len(got))
	}
	if got[0].Week != 3 || got[0].WorkoutsLogged != 1 || got[0].SetsLogged != 0 {
		t.Errorf("summary = %+v", got[0])
	}
}

// TestSummarizeEmptyProgram verifies an untouched program summarizes to an
// empty slice.
func TestSummarizeEmptyProgram(t *testing.T) {
	if got := summarize(&models.Program{}); len(got) != 0 {
		t.Errorf("got %d weeks, want 0", len(got))
	}
}

// TestSummarizeWeekOrder verifies weeks come back in ascending order.
func TestSummarizeWeekOrder(t *testing.T) {
	p := &models.Program{
		WorkoutLogs: []models.WorkoutLog{
			{WorkoutID: "week4-day1", Completed: true},
			{WorkoutID: "week2-day1", Completed: true},
			{WorkoutID: "week9-day1", Completed: true},
		},
	}
	got := summarize(p)
	if len(got) != 3 {
		t.Fatalf("got %d weeks", len(got))
	}
	if got[0].Week != 2 || got[1].Week != 4 || got[2].Week != 9 {
		t.Errorf("order = %d, %d, %d", got[0].Week, got[1].Week, got[2].Week)
	}
}
