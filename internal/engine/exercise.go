package engine

import "github.com/meltforce/liftlog/internal/models"

// SkipExercise hides an exercise from the active workout's working set
// without deleting any logged sets. Skipping creates the log if needed.
func (s *Store) SkipExercise(workoutID, exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exerciseID == "" {
		return false
	}
	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}
	if !contains(log.SkippedExercises, exerciseID) {
		log.SkippedExercises = append(log.SkippedExercises, exerciseID)
	}
	s.noteTrained(p, log)
	s.persist()
	return true
}

// UnskipExercise returns a skipped exercise to the working set.
func (s *Store) UnskipExercise(workoutID, exerciseID string) bool {
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
	log.SkippedExercises = removeString(log.SkippedExercises, exerciseID)
	s.persist()
	return true
}

// IsExerciseSkipped reports whether an exercise is skipped in the active
// program's workout.
func (s *Store) IsExerciseSkipped(workoutID, exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	if p == nil {
		return false
	}
	log := p.FindLog(workoutID)
	return log != nil && log.IsSkipped(exerciseID)
}

// AddExerciseToWorkout appends a user-added exercise to the workout,
// creating the log if needed. The name is normalized and the entry flagged
// as manually added.
func (s *Store) AddExerciseToWorkout(workoutID string, ex models.AddedExercise) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex.Name = normalizeName(ex.Name)
	if ex.Name == "" {
		return false
	}
	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}
	if ex.ID == "" {
		ex.ID = "added-" + s.newID()
	}
	ex.FromTemplate = false
	log.AddedExercises = append(log.AddedExercises, ex)
	s.persist()
	return true
}

// RemoveAddedExercise removes an added exercise and any logged sets, skip
// flags, order entries, and overrides referencing it. It does not mark the
// id deleted: a purely-added exercise has no template definition that
// hydration could resurrect.
func (s *Store) RemoveAddedExercise(workoutID, exerciseID string) bool {
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

	found := false
	for i := range log.AddedExercises {
		if log.AddedExercises[i].ID == exerciseID {
			log.AddedExercises = append(log.AddedExercises[:i], log.AddedExercises[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	stripExerciseReferences(log, exerciseID)
	s.persist()
	return true
}

// DeleteExerciseFromWorkout structurally removes a template-originated
// exercise from a workout. The id is recorded as deleted so later hydration
// does not bring it back, and all of its logged data is stripped. Creates
// the log if needed so the deletion is remembered.
func (s *Store) DeleteExerciseFromWorkout(workoutID, exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exerciseID == "" {
		return false
	}
	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}
	if !contains(log.DeletedExercises, exerciseID) {
		log.DeletedExercises = append(log.DeletedExercises, exerciseID)
	}
	for i := range log.AddedExercises {
		if log.AddedExercises[i].ID == exerciseID {
			log.AddedExercises = append(log.AddedExercises[:i], log.AddedExercises[i+1:]...)
			break
		}
	}
	stripExerciseReferences(log, exerciseID)
	s.persist()
	return true
}

// stripExerciseReferences drops an exercise's sets, skip flag, order entry,
// and override from a log.
func stripExerciseReferences(log *models.WorkoutLog, exerciseID string) {
	for i := range log.Exercises {
		if log.Exercises[i].ExerciseID == exerciseID {
			log.Exercises = append(log.Exercises[:i], log.Exercises[i+1:]...)
			break
		}
	}
	log.SkippedExercises = removeString(log.SkippedExercises, exerciseID)
	log.ExerciseOrder = removeString(log.ExerciseOrder, exerciseID)
	delete(log.ExerciseOverrides, exerciseID)
}

// AddedExercisePatch is a partial update for an added exercise. Nil fields
// are left unchanged.
type AddedExercisePatch struct {
	Name         *string
	Sets         *int
	Reps         *string
	TargetEffort *int
	RestSeconds  *int
}

// UpdateAddedExercise patches an added exercise's own fields.
func (s *Store) UpdateAddedExercise(workoutID, exerciseID string, patch AddedExercisePatch) bool {
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
	for i := range log.AddedExercises {
		ex := &log.AddedExercises[i]
		if ex.ID != exerciseID {
			continue
		}
		if patch.Name != nil {
			if name := normalizeName(*patch.Name); name != "" {
				ex.Name = name
			}
		}
		if patch.Sets != nil && *patch.Sets > 0 {
			ex.Sets = *patch.Sets
		}
		if patch.Reps != nil {
			ex.Reps = *patch.Reps
		}
		if patch.TargetEffort != nil {
			ex.TargetEffort = *patch.TargetEffort
		}
		if patch.RestSeconds != nil && *patch.RestSeconds >= 0 {
			ex.RestSeconds = *patch.RestSeconds
		}
		s.persist()
		return true
	}
	return false
}

// UpdateExerciseOverride attaches or patches a sets/reps/effort/rest
// override for a template-originated exercise, creating the log if needed.
// Nil fields keep any existing override value.
func (s *Store) UpdateExerciseOverride(workoutID, exerciseID string, patch models.ExerciseOverride) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exerciseID == "" {
		return false
	}
	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}
	if log.ExerciseOverrides == nil {
		log.ExerciseOverrides = make(map[string]models.ExerciseOverride)
	}
	ov := log.ExerciseOverrides[exerciseID]
	if patch.Sets != nil {
		ov.Sets = patch.Sets
	}
	if patch.Reps != nil {
		ov.Reps = patch.Reps
	}
	if patch.TargetEffort != nil {
		ov.TargetEffort = patch.TargetEffort
	}
	if patch.RestSeconds != nil {
		ov.RestSeconds = patch.RestSeconds
	}
	log.ExerciseOverrides[exerciseID] = cloneOverride(ov)
	s.persist()
	return true
}

// ReorderExercises stores an explicit display order for a workout's
// exercises, creating the log if needed. Ids not listed fall back to
// template/creation order in the UI.
func (s *Store) ReorderExercises(workoutID string, orderedIDs []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.activeProgram()
	log := s.ensureLog(p, workoutID)
	if log == nil {
		return false
	}
	log.ExerciseOrder = append([]string(nil), orderedIDs...)
	s.persist()
	return true
}

func removeString(list []string, v string) []string {
	for i, s := range list {
		if s == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
