package models

import "time"

// TemplateCustom is the sentinel template id for programs built from scratch
// rather than from a catalog template.
const TemplateCustom = "custom"

// Program is one user-created training block: a named series of weeks and
// days seeded from a template (or built custom), holding all of its workout
// logs and per-program substitutions.
type Program struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"templateId"`
	Name        string     `json:"name"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CurrentWeek int        `json:"currentWeek"`

	WorkoutLogs   []WorkoutLog            `json:"workoutLogs"`
	Substitutions map[string]Substitution `json:"exerciseSubstitutions,omitempty"`

	IsActive   bool `json:"isActive"`
	IsArchived bool `json:"isArchived"`

	// Structural overrides. Zero values mean "use the template defaults".
	CustomWeeksTotal  int            `json:"customWeeksTotal,omitempty"`
	CustomDaysPerWeek int            `json:"customDaysPerWeek,omitempty"`
	CustomDayLabels   []string       `json:"customDayLabels,omitempty"`
	DayNames          map[int]string `json:"dayNames,omitempty"`
	DayOrder          []int          `json:"dayOrder,omitempty"`

	// Exercise names pinned to the progress charts.
	ChartExercises []string `json:"chartExercises,omitempty"`

	// Set once template hydration has run for this program.
	Hydrated bool `json:"templateHydrated,omitempty"`
}

// FindLog returns the workout log with the given id, or nil.
func (p *Program) FindLog(workoutID string) *WorkoutLog {
	for i := range p.WorkoutLogs {
		if p.WorkoutLogs[i].WorkoutID == workoutID {
			return &p.WorkoutLogs[i]
		}
	}
	return nil
}

// Substitution is a user-chosen replacement exercise standing in for a
// template exercise. Keyed per program by the original exercise id, so at
// most one substitution is active per exercise.
type Substitution struct {
	Name          string    `json:"name"`
	ExerciseDBID  string    `json:"exerciseDbId,omitempty"`
	MuscleGroups  []string  `json:"muscleGroups,omitempty"`
	Equipment     []string  `json:"equipment,omitempty"`
	SubstitutedAt time.Time `json:"substitutedAt"`
}
