package engine

import (
	"fmt"
	"strings"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/progression"
)

// RecommendWeightFor suggests a working weight for one exercise slot in the
// active program, based on the matching exercise's log one week earlier.
// Returns false when no program is active or the workout id is malformed.
func (s *Store) RecommendWeightFor(workoutID, exerciseID string) (progression.Recommendation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return progression.Recommendation{}, false
	}
	week, day, ok := ParseWorkoutID(workoutID)
	if !ok {
		return progression.Recommendation{}, false
	}

	spec := s.exerciseSpec(p, week, day, exerciseID)

	var lastWeek *models.ExerciseLog
	if week > 1 {
		if log := p.FindLog(WorkoutID(week-1, day)); log != nil {
			lastWeek = log.FindExercise(shiftExerciseID(exerciseID, week, week-1))
		}
	}
	return progression.RecommendWeight(spec, week, lastWeek), true
}

// exerciseSpec resolves the template definition for an exercise slot. Added
// exercises carry their own category; unknown ids fall back to a zero spec,
// which progresses at the isolation increment. Callers hold s.mu.
func (s *Store) exerciseSpec(p *models.Program, week, day int, exerciseID string) models.TemplateExercise {
	if planned, ok := s.templateWorkouts(p.TemplateID, week); ok {
		for _, w := range planned {
			if w.Day != day {
				continue
			}
			for _, ex := range w.Exercises {
				if ex.ID == exerciseID {
					return ex
				}
			}
		}
	}
	if log := p.FindLog(WorkoutID(week, day)); log != nil {
		for _, added := range log.AddedExercises {
			if added.ID == exerciseID {
				return models.TemplateExercise{
					ID:       added.ID,
					Name:     added.Name,
					Category: added.Category,
				}
			}
		}
	}
	return models.TemplateExercise{}
}

// shiftExerciseID rewrites a slot-embedded exercise id from one week to
// another. Ids without the week prefix (added exercises) are stable across
// weeks and pass through unchanged.
func shiftExerciseID(exerciseID string, from, to int) string {
	prefix := fmt.Sprintf("week%d-", from)
	if !strings.HasPrefix(exerciseID, prefix) {
		return exerciseID
	}
	return fmt.Sprintf("week%d-", to) + strings.TrimPrefix(exerciseID, prefix)
}
