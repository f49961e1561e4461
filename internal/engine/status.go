package engine

import "github.com/meltforce/liftlog/internal/models"

// WorkoutStatus classifies a workout log's progress.
type WorkoutStatus string

const (
	StatusNotStarted WorkoutStatus = "not_started"
	StatusInProgress WorkoutStatus = "in_progress"
	StatusCompleted  WorkoutStatus = "completed"
)

// DeriveStatus classifies a workout log. It reads only the completed flag,
// the per-set reps/status fields, and the skipped-exercise list; structural
// edits (added exercises, deletions, overrides, ordering) never move a
// workout away from not-started on their own.
func DeriveStatus(log *models.WorkoutLog) WorkoutStatus {
	if log == nil {
		return StatusNotStarted
	}
	if log.Completed {
		return StatusCompleted
	}
	for _, ex := range log.Exercises {
		for _, set := range ex.Sets {
			if set.Reps > 0 || set.Status == models.SetSkipped {
				return StatusInProgress
			}
		}
	}
	if len(log.SkippedExercises) > 0 {
		return StatusInProgress
	}
	return StatusNotStarted
}

// hasTrainingData is the copy-forward guard: it additionally treats recorded
// effort and completed-set marks as progress, so a seeded-but-touched week
// is never overwritten.
func hasTrainingData(log *models.WorkoutLog) bool {
	if log == nil {
		return false
	}
	if log.Completed || len(log.SkippedExercises) > 0 {
		return true
	}
	for _, ex := range log.Exercises {
		for _, set := range ex.Sets {
			if set.Reps > 0 || set.Effort > 0 || set.Status != "" {
				return true
			}
		}
	}
	return false
}
