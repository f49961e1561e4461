package engine

import (
	"math"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// LogExerciseSet upserts one set of one exercise in the active program's
// workout. The log and exercise log are created on demand, and the set list
// is padded with empty sets up to setIndex. Negative or non-finite weights
// are rejected. Calling twice with the same arguments is idempotent.
func (s *Store) LogExerciseSet(workoutID, exerciseID string, setIndex int, set models.SetLog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exerciseID == "" || setIndex < 0 || set.Reps < 0 {
		return false
	}
	if set.Weight < 0 || math.IsNaN(set.Weight) || math.IsInf(set.Weight, 0) {
		return false
	}

	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}

	ex := ensureExerciseLog(log, exerciseID)
	for len(ex.Sets) <= setIndex {
		ex.Sets = append(ex.Sets, models.SetLog{})
	}
	ex.Sets[setIndex] = set

	// Only a write that represents real progress, and that still leaves the
	// log in progress afterwards, marks the program as last trained. A tap
	// that is immediately zeroed out does not.
	if setShowsProgress(set) {
		s.noteTrained(p, log)
	}

	s.persist()
	return true
}

func setShowsProgress(set models.SetLog) bool {
	return set.Status == models.SetCompleted || set.Status == models.SetSkipped ||
		set.Reps > 0 || set.Weight > 0
}

// LogWorkout upserts a whole workout log into the active program, keyed by
// its workout id.
func (s *Store) LogWorkout(log models.WorkoutLog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return false
	}
	if _, _, ok := ParseWorkoutID(log.WorkoutID); !ok {
		return false
	}
	if log.Date.IsZero() {
		log.Date = s.now()
	}

	stored := cloneLog(&log)
	if existing := p.FindLog(log.WorkoutID); existing != nil {
		*existing = *stored
		s.noteTrained(p, existing)
	} else {
		p.WorkoutLogs = append(p.WorkoutLogs, *stored)
		s.noteTrained(p, &p.WorkoutLogs[len(p.WorkoutLogs)-1])
	}
	s.persist()
	return true
}

// WorkoutLogPatch is a partial update for an existing workout log. Nil
// fields are left unchanged.
type WorkoutLogPatch struct {
	Date             *time.Time
	Completed        *bool
	SkippedExercises *[]string
	ExerciseOrder    *[]string
}

// UpdateWorkoutLog patches fields of an existing log in the active program.
/// Unlike the set-logging path it does not create the log: patching nothing
// is a no-op.
func (s *Store) UpdateWorkoutLog(workoutID string, patch WorkoutLogPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return false
	}
	log := p.FindLog(workoutID)
	if log == nil {
		return false
	}
	if patch.Date != nil {
		log.Date = *patch.Date
	}
	if patch.Completed != nil {
		log.Completed = *patch.Completed
	}
	if patch.SkippedExercises != nil {
		log.SkippedExercises = append([]string(nil), (*patch.SkippedExercises)...)
	}
	if patch.ExerciseOrder != nil {
		log.ExerciseOrder = append([]string(nil), (*patch.ExerciseOrder)...)
	}
	s.noteTrained(p, log)
	s.persist()
	return true
}

// ResetWorkoutLog removes a slot's log entirely, returning the workout to
// its pristine never-touched state.
func (s *Store) ResetWorkoutLog(workoutID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return false
	}
	for i := range p.WorkoutLogs {
		if p.WorkoutLogs[i].WorkoutID == workoutID {
			p.WorkoutLogs = append(p.WorkoutLogs[:i], p.WorkoutLogs[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
