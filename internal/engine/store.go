// Package engine owns all mutable training data: programs, workout logs,
// substitutions, custom templates, and settings. Every mutation runs to
// completion and snapshots the whole document afterwards. Operations on
// unknown program or workout ids are no-ops, never errors.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/templates"
)

// Snapshotter persists the whole document after a mutation.
type Snapshotter interface {
	Save(doc *models.Document) error
}

// Store is the state container. All access goes through its methods; the
// HTTP and MCP surfaces share one instance, so mutations serialize on the
// internal mutex.
type Store struct {
	mu      sync.Mutex
	doc     *models.Document
	snap    Snapshotter
	catalog templates.Catalog
	log     *slog.Logger

	now   func() time.Time
	newID func() string
}

// New creates a Store around a loaded document.
func New(doc *models.Document, snap Snapshotter, catalog templates.Catalog, log *slog.Logger) *Store {
	if doc == nil {
		doc = models.NewDocument()
	}
	return &Store{
		doc:     doc,
		snap:    snap,
		catalog: catalog,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// persist snapshots the document. Persistence failures are logged, not
// propagated: the in-memory state is already mutated and the next mutation
// retries the write.
func (s *Store) persist() {
	if s.snap == nil {
		return
	}
	if err := s.snap.Save(s.doc); err != nil {
		s.log.Error("snapshot write failed", "error", err)
	}
}

// activeProgram resolves the current-view projection. Callers hold s.mu.
func (s *Store) activeProgram() *models.Program {
	return s.doc.ActiveProgram()
}

// ensureLog returns the active program's log for the slot, creating it
// lazily on first interaction. Returns nil when no program is active or the
// key does not parse.
func (s *Store) ensureLog(p *models.Program, workoutID string) *models.WorkoutLog {
	if p == nil {
		return nil
	}
	if _, _, ok := ParseWorkoutID(workoutID); !ok {
		return nil
	}
	if log := p.FindLog(workoutID); log != nil {
		return log
	}
	p.WorkoutLogs = append(p.WorkoutLogs, models.WorkoutLog{
		WorkoutID: workoutID,
		Date:      s.now(),
	})
	return &p.WorkoutLogs[len(p.WorkoutLogs)-1]
}

// ensureExerciseLog returns the exercise log inside a workout log, creating
// it lazily when the first set is logged.
func ensureExerciseLog(log *models.WorkoutLog, exerciseID string) *models.ExerciseLog {
	if ex := log.FindExercise(exerciseID); ex != nil {
		return ex
	}
	log.Exercises = append(log.Exercises, models.ExerciseLog{ExerciseID: exerciseID})
	return &log.Exercises[len(log.Exercises)-1]
}

// noteTrained records first-activity and last-trained signals once a log
// shows derived progress. Uses the same predicate as DeriveStatus so the two
// signals cannot drift apart.
func (s *Store) noteTrained(p *models.Program, log *models.WorkoutLog) {
	if DeriveStatus(log) == StatusNotStarted {
		return
	}
	if p.StartedAt == nil {
		t := s.now()
		p.StartedAt = &t
	}
	s.doc.LastTrainedProgramID = p.ID
}

// normalizeName trims and collapses interior whitespace. Empty results are
// rejected by the callers.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Snapshot returns a deep copy of the document for read-only consumers.
func (s *Store) Snapshot() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

// Program returns a deep copy of one program.
func (s *Store) Program(id string) (models.Program, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.doc.FindProgram(id)
	if p == nil {
		return models.Program{}, false
	}
	return *cloneProgram(p), true
}

// Active returns a deep copy of the active program.
func (s *Store) Active() (models.Program, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.activeProgram()
	if p == nil {
		return models.Program{}, false
	}
	return *cloneProgram(p), true
}

// WorkoutLog returns a deep copy of one slot's log from the active program.
func (s *Store) WorkoutLog(workoutID string) (models.WorkoutLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.activeProgram()
	if p == nil {
		return models.WorkoutLog{}, false
	}
	log := p.FindLog(workoutID)
	if log == nil {
		return models.WorkoutLog{}, false
	}
	return *cloneLog(log), true
}

// WorkoutStatusFor derives the status of a slot in the active program. A
// missing log is simply not started.
func (s *Store) WorkoutStatusFor(workoutID string) WorkoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.activeProgram()
	if p == nil {
		return StatusNotStarted
	}
	return DeriveStatus(p.FindLog(workoutID))
}

// WeekStatus derives the status of every day in one week of the active
// program, keyed by slot id.
func (s *Store) WeekStatus(week int) map[string]WorkoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.activeProgram()
	if p == nil {
		return nil
	}
	_, days, _ := s.programStructure(p)
	out := make(map[string]WorkoutStatus, days)
	for day := 1; day <= days; day++ {
		id := WorkoutID(week, day)
		out[id] = DeriveStatus(p.FindLog(id))
	}
	return out
}

// programStructure resolves the effective week count, day count, and day
/// labels for a program: template defaults overlaid with the program's
// structural overrides. Callers hold s.mu.
func (s *Store) programStructure(p *models.Program) (weeks, days int, labels []string) {
	weeks, days = 4, 3
	if def, ok := s.templateDefaults(p.TemplateID); ok {
		weeks, days = def.WeeksTotal, def.DaysPerWeek
		labels = append([]string(nil), def.DayLabels...)
	}
	if p.CustomWeeksTotal > 0 {
		weeks = p.CustomWeeksTotal
	}
	if p.CustomDaysPerWeek > 0 {
		days = p.CustomDaysPerWeek
	}
	if len(p.CustomDayLabels) > 0 {
		labels = append([]string(nil), p.CustomDayLabels...)
	}
	labels = fitLabels(labels, days)
	return weeks, days, labels
}

// fitLabels pads or truncates a label list to the day count, generating
// "Day N" fillers.
func fitLabels(labels []string, days int) []string {
	out := make([]string, days)
	for i := 0; i < days; i++ {
		if i < len(labels) && labels[i] != "" {
			out[i] = labels[i]
		} else {
			out[i] = fmt.Sprintf("Day %d", i+1)
		}
	}
	return out
}

// templateDefaults resolves structural defaults from the built-in catalog or
// a saved custom template. Callers hold s.mu.
func (s *Store) templateDefaults(templateID string) (templates.Defaults, bool) {
	if def, ok := s.catalog.Defaults(templateID); ok {
		return def, true
	}
	for _, ct := range s.doc.CustomTemplates {
		if ct.ID == templateID {
			labels := make([]string, 0, len(ct.Days))
			for _, d := range ct.Days {
				labels = append(labels, d.Label)
			}
			return templates.Defaults{
				Name:        ct.Name,
				WeeksTotal:  ct.WeeksTotal,
				DaysPerWeek: ct.DaysPerWeek,
				DayLabels:   labels,
			}, true
		}
	}
	return templates.Defaults{}, false
}

// templateWorkouts resolves one week of planned workouts from the built-in
// catalog or a saved custom template. Custom templates repeat the same day
// structure every week. Callers hold s.mu.
func (s *Store) templateWorkouts(templateID string, week int) ([]models.PlannedWorkout, bool) {
	if planned, ok := s.catalog.Workouts(templateID, week); ok {
		return planned, true
	}
	for _, ct := range s.doc.CustomTemplates {
		if ct.ID != templateID {
			continue
		}
		planned := make([]models.PlannedWorkout, 0, len(ct.Days))
		for _, d := range ct.Days {
			w := models.PlannedWorkout{
				ID:      WorkoutID(week, d.Day),
				Week:    week,
				Day:     d.Day,
				DayName: d.Label,
			}
			for si, ex := range d.Exercises {
				spec := models.TemplateExercise{
					ID:           fmt.Sprintf("week%d-day%d-ex%d", week, d.Day, si),
					Name:         ex.Name,
					Category:     ex.Category,
					Sets:         ex.Sets,
					Reps:         ex.Reps,
					TargetEffort: ex.TargetEffort,
					RestSeconds:  ex.RestSeconds,
					MuscleGroup:  append([]string(nil), ex.MuscleGroup...),
					Equipment:    append([]string(nil), ex.Equipment...),
					ExerciseDBID: ex.ExerciseDBID,
				}
				w.Exercises = append(w.Exercises, spec)
			}
			planned = append(planned, w)
		}
		return planned, true
	}
	return nil, false
}
