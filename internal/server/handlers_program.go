package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/models"
)

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	sortLastTrained := r.URL.Query().Get("sort") == "last_trained"
	writeJSON(w, http.StatusOK, s.store.Programs(sortLastTrained))
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	program, ok := s.store.Program(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleGetActiveProgram(w http.ResponseWriter, r *http.Request) {
	program, ok := s.store.Active()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active program"})
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID  string   `json:"templateId"`
		Name        string   `json:"name"`
		WeeksTotal  int      `json:"weeksTotal"`
		DaysPerWeek int      `json:"daysPerWeek"`
		DayLabels   []string `json:"dayLabels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	var opts *engine.StructureOptions
	if req.WeeksTotal > 0 || req.DaysPerWeek > 0 || len(req.DayLabels) > 0 {
		opts = &engine.StructureOptions{
			WeeksTotal:  req.WeeksTotal,
			DaysPerWeek: req.DaysPerWeek,
			DayLabels:   req.DayLabels,
		}
	}

	id, ok := s.store.CreateProgram(req.TemplateID, req.Name, opts)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "program name is required"})
		return
	}
	program, _ := s.store.Program(id)
	writeJSON(w, http.StatusCreated, program)
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteProgram(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleArchiveProgram(w http.ResponseWriter, r *http.Request) {
	if !s.store.ArchiveProgram(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": true})
}

func (s *Server) handleRestoreProgram(w http.ResponseWriter, r *http.Request) {
	if !s.store.RestoreProgram(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restored": true})
}

func (s *Server) handleActivateProgram(w http.ResponseWriter, r *http.Request) {
	if !s.store.SetActiveProgram(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found or archived"})
		return
	}
	program, _ := s.store.Active()
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleRenameProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.store.RenameProgram(chi.URLParam(r, "id"), req.Name) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found or empty name"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"renamed": true})
}

func (s *Server) handleUpdateStructure(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeeksTotal  *int `json:"weeksTotal"`
		DaysPerWeek *int `json:"daysPerWeek"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	id := chi.URLParam(r, "id")
	if !s.store.UpdateProgramStructure(id, engine.StructureUpdate{WeeksTotal: req.WeeksTotal, DaysPerWeek: req.DaysPerWeek}) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	program, _ := s.store.Program(id)
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleAddDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.AddDayToProgram(id) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "cannot add day"})
		return
	}
	program, _ := s.store.Program(id)
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleCanRemoveDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid day"})
		return
	}
	ok := s.store.CanRemoveDay(chi.URLParam(r, "id"), day)
	writeJSON(w, http.StatusOK, map[string]bool{"canRemove": ok})
}

func (s *Server) handleRenameDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid day"})
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.store.RenameWorkoutDay(chi.URLParam(r, "id"), day, req.Name) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program or day not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"renamed": true})
}

func (s *Server) handleReorderDays(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []int `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	id := chi.URLParam(r, "id")
	if !s.store.ReorderWorkoutDays(id, req.Order) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	program, _ := s.store.Program(id)
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleReorderPrograms(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.store.ReorderPrograms(req.Order)
	writeJSON(w, http.StatusOK, s.store.Programs(false))
}

func (s *Server) handleSetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Week int `json:"week"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.store.SetCurrentWeek(chi.URLParam(r, "id"), req.Week) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found or week out of range"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"week": req.Week})
}

func (s *Server) handleSetChartExercises(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercises []string `json:"exercises"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.store.SetChartExercises(chi.URLParam(r, "id"), req.Exercises) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (s *Server) handleSaveAsTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	templateID, ok := s.store.SaveAsTemplate(chi.URLParam(r, "id"), req.Name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found or empty template name"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"templateId": templateID})
}

func (s *Server) handleSubstituteExercise(w http.ResponseWriter, r *http.Request) {
	var sub models.Substitution
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !s.store.SubstituteExercise(chi.URLParam(r, "id"), chi.URLParam(r, "exerciseID"), sub) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"substituted": true})
}

func (s *Server) handleRemoveSubstitution(w http.ResponseWriter, r *http.Request) {
	if !s.store.RemoveSubstitution(chi.URLParam(r, "id"), chi.URLParam(r, "exerciseID")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "substitution not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}
