package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/models"
)

func (s *Server) handleGetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	log, ok := s.store.WorkoutLog(chi.URLParam(r, "workoutID"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout log not found"})
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleWorkoutStatus(w http.ResponseWriter, r *http.Request) {
	status := s.store.WorkoutStatusFor(chi.URLParam(r, "workoutID"))
	writeJSON(w, http.StatusOK, map[string]engine.WorkoutStatus{"status": status})
}

func (s *Server) handleWeekStatus(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week"})
		return
	}
	writeJSON(w, http.StatusOK, s.store.WeekStatus(week))
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.store.RecommendWeightFor(chi.URLParam(r, "workoutID"), chi.URLParam(r, "exerciseID"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active program or invalid workout id"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	setIndex, err := strconv.Atoi(chi.URLParam(r, "setIndex"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set index"})
		return
	}
	var set models.SetLog
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	if !s.store.LogExerciseSet(workoutID, chi.URLParam(r, "exerciseID"), setIndex, set) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set data or no active program"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	var log models.WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	log.WorkoutID = chi.URLParam(r, "workoutID")
	if !s.store.LogWorkout(log) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id or no active program"})
		return
	}
	stored, _ := s.store.WorkoutLog(log.WorkoutID)
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handlePatchWorkoutLog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date             *time.Time `json:"date"`
		Completed        *bool      `json:"completed"`
		SkippedExercises *[]string  `json:"skippedExercises"`
		ExerciseOrder    *[]string  `json:"exerciseOrder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	patch := engine.WorkoutLogPatch{
		Date:             req.Date,
		Completed:        req.Completed,
		SkippedExercises: req.SkippedExercises,
		ExerciseOrder:    req.ExerciseOrder,
	}
	if !s.store.UpdateWorkoutLog(workoutID, patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout log not found"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleResetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	if !s.store.ResetWorkoutLog(chi.URLParam(r, "workoutID")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout log not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

func (s *Server) handleSkipExercise(w http.ResponseWriter, r *http.Request) {
	if !s.store.SkipExercise(chi.URLParam(r, "workoutID"), chi.URLParam(r, "exerciseID")) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id or no active program"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"skipped": true})
}

func (s *Server) handleUnskipExercise(w http.ResponseWriter, r *http.Request) {
	if !s.store.UnskipExercise(chi.URLParam(r, "workoutID"), chi.URLParam(r, "exerciseID")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise was not skipped"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"skipped": false})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var ex models.AddedExercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	if !s.store.AddExerciseToWorkout(workoutID, ex) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise or no active program"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleUpdateAddedExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string `json:"name"`
		Sets         *int    `json:"sets"`
		Reps         *string `json:"reps"`
		TargetEffort *int    `json:"targetEffort"`
		RestSeconds  *int    `json:"restSeconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	patch := engine.AddedExercisePatch{
		Name:         req.Name,
		Sets:         req.Sets,
		Reps:         req.Reps,
		TargetEffort: req.TargetEffort,
		RestSeconds:  req.RestSeconds,
	}
	if !s.store.UpdateAddedExercise(workoutID, chi.URLParam(r, "exerciseID"), patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "added exercise not found"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleRemoveAddedExercise(w http.ResponseWriter, r *http.Request) {
	if !s.store.RemoveAddedExercise(chi.URLParam(r, "workoutID"), chi.URLParam(r, "exerciseID")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "added exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (s *Server) handleDeleteTemplateExercise(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteExerciseFromWorkout(chi.URLParam(r, "workoutID"), chi.URLParam(r, "exerciseID")) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id or no active program"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleUpdateOverride(w http.ResponseWriter, r *http.Request) {
	var override models.ExerciseOverride
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	if !s.store.UpdateExerciseOverride(workoutID, chi.URLParam(r, "exerciseID"), override) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id or no active program"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleReorderExercises(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workoutID := chi.URLParam(r, "workoutID")
	if !s.store.ReorderExercises(workoutID, req.Order) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout id or no active program"})
		return
	}
	log, _ := s.store.WorkoutLog(workoutID)
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleCopyForward(w http.ResponseWriter, r *http.Request) {
	if !s.store.CopyWorkoutDayForward(chi.URLParam(r, "workoutID")) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to copy forward"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"copied": true})
}
