package models

import "time"

// SetStatus is the user-assigned outcome of a single set. An empty status
// with zero reps means the set has not been attempted yet.
type SetStatus string

const (
	SetCompleted SetStatus = "completed"
	SetSkipped   SetStatus = "skipped"
)

// WorkoutLog records one real-world session for a specific week+day slot.
// The WorkoutID is the slot key, "week{W}-day{D}". Logs are created lazily
// on first interaction with a slot and only removed by an explicit reset or
// whole-program deletion.
type WorkoutLog struct {
	WorkoutID string    `json:"workoutId"`
	Date      time.Time `json:"date"`

	Exercises []ExerciseLog `json:"exercises,omitempty"`
	Completed bool          `json:"completed"`

	// Exercise ids hidden from the working set without losing their data.
	SkippedExercises []string `json:"skippedExercises,omitempty"`
	// Template exercise ids structurally removed; hydration must not
	// resurrect these.
	DeletedExercises []string `json:"deletedExercises,omitempty"`
	// Exercises attached directly to this log, from hydration or the user.
	AddedExercises []AddedExercise `json:"addedExercises,omitempty"`
	// Explicit display order; ids not listed keep template/creation order.
	ExerciseOrder []string `json:"exerciseOrder,omitempty"`
	// Per-exercise overrides layered on top of template defaults.
	ExerciseOverrides map[string]ExerciseOverride `json:"exerciseOverrides,omitempty"`
}

// FindExercise returns the exercise log for the given exercise id, or nil.
func (l *WorkoutLog) FindExercise(exerciseID string) *ExerciseLog {
	for i := range l.Exercises {
		if l.Exercises[i].ExerciseID == exerciseID {
			return &l.Exercises[i]
		}
	}
	return nil
}

// IsSkipped reports whether the exercise id is in the skipped list.
func (l *WorkoutLog) IsSkipped(exerciseID string) bool {
	for _, id := range l.SkippedExercises {
		if id == exerciseID {
			return true
		}
	}
	return false
}

// ExerciseLog is one exercise's performance within a workout log, created
// lazily when its first set is logged.
type ExerciseLog struct {
	ExerciseID string   `json:"exerciseId"`
	Sets       []SetLog `json:"sets"`
	Completed  bool     `json:"completed,omitempty"`
}

// SetLog is a single set: weight, reps, perceived effort, and outcome.
type SetLog struct {
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Effort int       `json:"effort,omitempty"`
	Status SetStatus `json:"status,omitempty"`
}

// AddedExercise is an exercise instance attached directly to a log,
// independent of the static template definition. FromTemplate marks
// exercises injected during hydration, as opposed to manual additions.
type AddedExercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	TargetEffort int      `json:"targetEffort,omitempty"`
	RestSeconds  int      `json:"restSeconds,omitempty"`
	Category     string   `json:"category,omitempty"`
	ExerciseDBID string   `json:"exerciseDbId,omitempty"`
	MuscleGroup  []string `json:"muscleGroup,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
	FromTemplate bool     `json:"fromTemplate,omitempty"`
}

// ExerciseOverride adjusts a template exercise's targets for one workout.
// Nil fields leave the template value in place.
type ExerciseOverride struct {
	Sets         *int    `json:"sets,omitempty"`
	Reps         *string `json:"reps,omitempty"`
	TargetEffort *int    `json:"targetEffort,omitempty"`
	RestSeconds  *int    `json:"restSeconds,omitempty"`
}
