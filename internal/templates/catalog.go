// Package templates provides the static workout template catalog. A catalog
// is pure: the same (templateID, week) pair always yields the same planned
// workouts.
package templates

import (
	"fmt"

	"github.com/meltforce/liftlog/internal/models"
)

// Defaults describes a template's structure before any per-program override.
type Defaults struct {
	Name        string
	WeeksTotal  int
	DaysPerWeek int
	DayLabels   []string
}

// Catalog resolves template ids to planned workouts and structural defaults.
type Catalog interface {
	// Workouts returns the planned workouts for one week of a template.
	// ok is false for unknown template ids (including "custom").
	Workouts(templateID string, week int) (workouts []models.PlannedWorkout, ok bool)
	// Defaults returns the template's structural defaults.
	Defaults(templateID string) (Defaults, bool)
}

// Builtin is the compiled-in catalog.
type Builtin struct{}

// NewBuiltin returns the compiled-in template catalog.
func NewBuiltin() *Builtin { return &Builtin{} }

// Workouts implements Catalog.
func (b *Builtin) Workouts(templateID string, week int) ([]models.PlannedWorkout, bool) {
	def, ok := builtinDefs[templateID]
	if !ok || week < 1 {
		return nil, false
	}

	workouts := make([]models.PlannedWorkout, 0, len(def.days))
	for di, day := range def.days {
		dayNum := di + 1
		w := models.PlannedWorkout{
			ID:                fmt.Sprintf("week%d-day%d", week, dayNum),
			Week:              week,
			Day:               dayNum,
			DayName:           day.name,
			EstimatedDuration: day.estimatedMinutes,
		}
		for si, ex := range day.exercises {
			w.Exercises = append(w.Exercises, plannedExercise(templateID, week, dayNum, si, ex))
		}
		workouts = append(workouts, w)
	}
	return workouts, true
}

// Defaults implements Catalog.
func (b *Builtin) Defaults(templateID string) (Defaults, bool) {
	def, ok := builtinDefs[templateID]
	if !ok {
		return Defaults{}, false
	}
	labels := make([]string, len(def.days))
	for i, d := range def.days {
		labels[i] = d.name
	}
	return Defaults{
		Name:        def.name,
		WeeksTotal:  def.weeks,
		DaysPerWeek: len(def.days),
		DayLabels:   labels,
	}, true
}

// plannedExercise materializes one exercise slot for a given week, applying
// the week's rep scheme. Ids embed week, day, and slot so that logged data
// keys stay unambiguous across the whole program.
func plannedExercise(templateID string, week, day, slot int, ex exerciseDef) models.TemplateExercise {
	sets, reps, effort := weekScheme(week, ex)
	return models.TemplateExercise{
		ID:           fmt.Sprintf("week%d-day%d-ex%d", week, day, slot),
		Name:         ex.name,
		Category:     ex.category,
		Sets:         sets,
		Reps:         reps,
		TargetEffort: effort,
		RestSeconds:  ex.restSeconds,
		MuscleGroup:  ex.muscles,
		Equipment:    ex.equipment,
	}
}

// weekScheme derives the week's working volume. Every fourth week is a
// deload: one set less, effort capped at 6. Warmups are untouched.
func weekScheme(week int, ex exerciseDef) (sets int, reps string, effort int) {
	sets, reps, effort = ex.sets, ex.reps, ex.targetEffort
	if ex.category == models.CategoryWarmup {
		return sets, reps, 0
	}
	if week%4 == 0 {
		if sets > 1 {
			sets--
		}
		if effort > 6 {
			effort = 6
		}
	}
	return sets, reps, effort
}
