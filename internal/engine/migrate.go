package engine

import "github.com/meltforce/liftlog/internal/models"

// Migrate runs both upgrade passes. It is idempotent and safe to run on
// every load; the document is persisted only when something changed.
func (s *Store) Migrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.migrateLegacy()
	if s.hydratePrograms() {
		changed = true
	}
	if changed {
		s.persist()
	}
}

// migrateLegacy wraps pre-multi-program flat state (top-level logs, week,
// substitutions) into a single synthesized program and makes it active.
// Callers hold s.mu.
func (s *Store) migrateLegacy() bool {
	d := s.doc
	if len(d.Programs) > 0 {
		return false
	}
	if len(d.WorkoutLogs) == 0 && d.CurrentWeek <= 1 {
		return false
	}

	week := d.CurrentWeek
	if week < 1 {
		week = 1
	}
	weeks, days := week, 1
	for i := range d.WorkoutLogs {
		if w, day, ok := ParseWorkoutID(d.WorkoutLogs[i].WorkoutID); ok {
			if w > weeks {
				weeks = w
			}
			if day > days {
				days = day
			}
		}
	}

	p := models.Program{
		ID:                s.newID(),
		TemplateID:        models.TemplateCustom,
		Name:              "My Training Block",
		CreatedAt:         s.now(),
		CurrentWeek:       week,
		WorkoutLogs:       d.WorkoutLogs,
		Substitutions:     d.Substitutions,
		IsActive:          true,
		CustomWeeksTotal:  weeks,
		CustomDaysPerWeek: clamp(days, MinDays, MaxDays),
		DayOrder:          ascending(clamp(days, MinDays, MaxDays)),
	}
	p.CustomDayLabels = fitLabels(nil, p.CustomDaysPerWeek)

	d.Programs = []models.Program{p}
	d.ActiveProgramID = p.ID
	d.WorkoutLogs = nil
	d.Substitutions = nil
	d.CurrentWeek = 0

	s.log.Info("migrated legacy flat state into program", "program", p.ID, "weeks", weeks, "days", days)
	return true
}

// hydratePrograms reconciles every template-based program with its
// template: logs missing their exercise seeds get them, and week/day slots
// that did not exist yet (for example after a week-count increase) get new
// logs. Real logged performance data is never touched. Each program is
// reconciled once, then flagged.
//
// Callers hold s.mu.
func (s *Store) hydratePrograms() bool {
	changed := false
	for i := range s.doc.Programs {
		p := &s.doc.Programs[i]
		if p.TemplateID == models.TemplateCustom || p.Hydrated {
			continue
		}
		if _, ok := s.templateDefaults(p.TemplateID); !ok {
			// Unknown template (catalog changed or custom template was
			// deleted); nothing to hydrate from.
			continue
		}
		weeks, days, _ := s.programStructure(p)
		s.hydrateProgram(p, weeks, days)
		s.log.Info("hydrated program from template", "program", p.ID, "template", p.TemplateID)
		changed = true
	}
	return changed
}

// UpdateSettings replaces the global user settings. Unknown units values
// are rejected.
func (s *Store) UpdateSettings(settings models.Settings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if settings.Units != models.UnitsKg && settings.Units != models.UnitsLb {
		return false
	}
	s.doc.Settings = settings
	s.persist()
	return true
}

// Settings returns the global user settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// ClearAll resets the document to a pristine state. Irreversible.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = models.NewDocument()
	s.persist()
	s.log.Warn("all training data cleared")
}
