package engine

import "github.com/meltforce/liftlog/internal/models"

// CopyWorkoutDayForward clones one day's structural edits into the same day
// of every later week of the active program. Target weeks that already show
// training data are left untouched; the rest get deep copies of the
// source's added exercises, deletions, ordering, and overrides. Carried-over
// exercise logs keep their weights as seeds but lose reps, effort, and
// completion marks, so a future week starts with a suggestion rather than a
// pre-completed session.
//
// Returns false when there is no active program, the id does not parse, or
// the source day has no structural content to propagate.
func (s *Store) CopyWorkoutDayForward(workoutID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return false
	}
	week, day, ok := ParseWorkoutID(workoutID)
	if !ok {
		return false
	}
	src := p.FindLog(workoutID)
	if src == nil {
		return false
	}
	if len(src.AddedExercises) == 0 && len(src.Exercises) == 0 &&
		len(src.ExerciseOverrides) == 0 && len(src.DeletedExercises) == 0 {
		return false
	}

	weeks, _, _ := s.programStructure(p)
	if week >= weeks {
		return false
	}

	for target := week + 1; target <= weeks; target++ {
		targetID := WorkoutID(target, day)
		log := p.FindLog(targetID)
		if hasTrainingData(log) {
			continue
		}
		if log == nil {
			log = s.ensureLog(p, targetID)
		}
		log.AddedExercises = cloneAddedExercises(src.AddedExercises)
		log.DeletedExercises = append([]string(nil), src.DeletedExercises...)
		log.ExerciseOrder = append([]string(nil), src.ExerciseOrder...)
		log.ExerciseOverrides = cloneOverrides(src.ExerciseOverrides)
		log.Exercises = seedFromExerciseLogs(src)
		log.SkippedExercises = nil
		log.Completed = false
	}

	s.persist()
	return true
}

// seedFromExerciseLogs copies the source's exercise logs with weights
// retained and performance fields zeroed.
func seedFromExerciseLogs(src *models.WorkoutLog) []models.ExerciseLog {
	out := cloneExerciseLogs(src.Exercises)
	for i := range out {
		out[i].Completed = false
		for j := range out[i].Sets {
			out[i].Sets[j].Reps = 0
			out[i].Sets[j].Effort = 0
			out[i].Sets[j].Status = ""
		}
	}
	return out
}
