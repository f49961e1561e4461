package models

// PlannedWorkout is one day of a template at a given week, as returned by
// the template catalog.
type PlannedWorkout struct {
	ID                string             `json:"id"`
	Week              int                `json:"week"`
	Day               int                `json:"day"`
	DayName           string             `json:"dayName"`
	Exercises         []TemplateExercise `json:"exercises"`
	EstimatedDuration int                `json:"estimatedDuration"`
}

// TemplateExercise is one planned exercise slot inside a template day.
type TemplateExercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	TargetEffort int      `json:"targetEffort,omitempty"`
	RestSeconds  int      `json:"restSeconds,omitempty"`
	MuscleGroup  []string `json:"muscleGroup,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
	ExerciseDBID string   `json:"exerciseDbId,omitempty"`
}

// CategoryWarmup marks warmup slots, which hydration leaves out of the
// editable working set.
const CategoryWarmup = "warmup"

// CustomTemplate is a reusable day structure saved from an existing program.
// Its lifecycle is independent of the program it was derived from.
type CustomTemplate struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	DaysPerWeek int                 `json:"daysPerWeek"`
	WeeksTotal  int                 `json:"weeksTotal"`
	DayLabels   []string            `json:"dayLabels,omitempty"`
	Days        []CustomTemplateDay `json:"days"`
}

// CustomTemplateDay is one day's exercise list inside a custom template.
type CustomTemplateDay struct {
	Day       int             `json:"day"`
	Label     string          `json:"label,omitempty"`
	Exercises []AddedExercise `json:"exercises"`
}
