package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/exercisedb"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *engine.Store
	search *exercisedb.Client
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *engine.Store, search *exercisedb.Client, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		search: search,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/document", s.handleGetDocument)
	s.router.Get("/api/v1/programs", s.handleListPrograms)
	s.router.Get("/api/v1/programs/active", s.handleGetActiveProgram)
	s.router.Get("/api/v1/programs/{id}", s.handleGetProgram)
	s.router.Get("/api/v1/programs/{id}/can-remove-day/{day}", s.handleCanRemoveDay)
	s.router.Get("/api/v1/workouts/{workoutID}", s.handleGetWorkoutLog)
	s.router.Get("/api/v1/workouts/{workoutID}/status", s.handleWorkoutStatus)
	s.router.Get("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/recommendation", s.handleRecommendation)
	s.router.Get("/api/v1/weeks/{week}/status", s.handleWeekStatus)
	s.router.Get("/api/v1/templates", s.handleListTemplates)
	s.router.Get("/api/v1/settings", s.handleGetSettings)
	s.router.Get("/api/v1/exercises/search", s.handleSearchExercises)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Post("/api/v1/programs", s.handleCreateProgram)
		r.Delete("/api/v1/programs/{id}", s.handleDeleteProgram)
		r.Post("/api/v1/programs/{id}/archive", s.handleArchiveProgram)
		r.Post("/api/v1/programs/{id}/restore", s.handleRestoreProgram)
		r.Post("/api/v1/programs/{id}/activate", s.handleActivateProgram)
		r.Put("/api/v1/programs/{id}/name", s.handleRenameProgram)
		r.Put("/api/v1/programs/{id}/structure", s.handleUpdateStructure)
		r.Post("/api/v1/programs/{id}/days", s.handleAddDay)
		r.Put("/api/v1/programs/{id}/days/{day}/name", s.handleRenameDay)
		r.Put("/api/v1/programs/{id}/days/order", s.handleReorderDays)
		r.Put("/api/v1/programs/{id}/week", s.handleSetCurrentWeek)
		r.Put("/api/v1/programs/{id}/chart-exercises", s.handleSetChartExercises)
		r.Post("/api/v1/programs/{id}/save-as-template", s.handleSaveAsTemplate)
		r.Put("/api/v1/programs/{id}/substitutions/{exerciseID}", s.handleSubstituteExercise)
		r.Delete("/api/v1/programs/{id}/substitutions/{exerciseID}", s.handleRemoveSubstitution)
		r.Put("/api/v1/programs/order", s.handleReorderPrograms)

		r.Put("/api/v1/workouts/{workoutID}", s.handleLogWorkout)
		r.Patch("/api/v1/workouts/{workoutID}", s.handlePatchWorkoutLog)
		r.Delete("/api/v1/workouts/{workoutID}", s.handleResetWorkoutLog)
		r.Put("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/sets/{setIndex}", s.handleLogSet)
		r.Post("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/skip", s.handleSkipExercise)
		r.Post("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/unskip", s.handleUnskipExercise)
		r.Post("/api/v1/workouts/{workoutID}/exercises", s.handleAddExercise)
		r.Patch("/api/v1/workouts/{workoutID}/exercises/{exerciseID}", s.handleUpdateAddedExercise)
		r.Delete("/api/v1/workouts/{workoutID}/exercises/{exerciseID}", s.handleRemoveAddedExercise)
		r.Post("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/delete", s.handleDeleteTemplateExercise)
		r.Put("/api/v1/workouts/{workoutID}/exercises/{exerciseID}/override", s.handleUpdateOverride)
		r.Put("/api/v1/workouts/{workoutID}/exercises/order", s.handleReorderExercises)
		r.Post("/api/v1/workouts/{workoutID}/copy-forward", s.handleCopyForward)

		r.Put("/api/v1/settings", s.handleUpdateSettings)
		r.Delete("/api/v1/templates/{id}", s.handleDeleteTemplate)
		r.Post("/api/v1/clear-all", s.handleClearAll)
	})
}
