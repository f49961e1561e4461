package engine

import (
	"sort"
	"strings"

	"github.com/meltforce/liftlog/internal/models"
)

// Program structure bounds. Week count additionally never shrinks below the
// program's current week.
const (
	MinWeeks = 1
	MaxWeeks = 52
	MinDays  = 1
	MaxDays  = 7
)

// StructureOptions override a template's default structure at creation.
type StructureOptions struct {
	WeeksTotal  int
	DaysPerWeek int
	DayLabels   []string
}

// CreateProgram creates a new program from a template (built-in, saved
// custom template, or the "custom" sentinel), hydrates its workout logs, and
// makes it the sole active program. Returns the new id, or false for an
// empty name.
func (s *Store) CreateProgram(templateID, name string, opts *StructureOptions) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeName(name)
	if name == "" {
		return "", false
	}

	weeks, days := 4, 3
	var labels []string
	if def, ok := s.templateDefaults(templateID); ok {
		weeks, days = def.WeeksTotal, def.DaysPerWeek
		labels = append([]string(nil), def.DayLabels...)
	}
	if opts != nil {
		if opts.WeeksTotal > 0 {
			weeks = clamp(opts.WeeksTotal, MinWeeks, MaxWeeks)
		}
		if opts.DaysPerWeek > 0 {
			days = clamp(opts.DaysPerWeek, MinDays, MaxDays)
		}
		if len(opts.DayLabels) > 0 {
			labels = append([]string(nil), opts.DayLabels...)
		}
	}

	p := models.Program{
		ID:                s.newID(),
		TemplateID:        templateID,
		Name:              name,
		CreatedAt:         s.now(),
		CurrentWeek:       1,
		IsActive:          true,
		CustomWeeksTotal:  weeks,
		CustomDaysPerWeek: days,
		CustomDayLabels:   fitLabels(labels, days),
		DayOrder:          ascending(days),
	}

	// Seed every (week, day) slot with the template's working exercises so
	// the days are editable without consulting the catalog again.
	s.hydrateProgram(&p, weeks, days)

	for i := range s.doc.Programs {
		s.doc.Programs[i].IsActive = false
	}
	s.doc.Programs = append(s.doc.Programs, p)
	s.doc.ActiveProgramID = p.ID

	s.persist()
	return p.ID, true
}

// hydrateProgram appends one log per (week, day) slot with template
// exercises converted to added-exercise seeds. Custom-sentinel programs have
// no template to hydrate from and start empty. Existing logs keep their
// data; slots that already have seeds are left alone.
func (s *Store) hydrateProgram(p *models.Program, weeks, days int) {
	if p.TemplateID == models.TemplateCustom {
		return
	}
	for week := 1; week <= weeks; week++ {
		planned, ok := s.templateWorkouts(p.TemplateID, week)
		if !ok {
			return
		}
		for _, w := range planned {
			if w.Day > days {
				continue
			}
			log := p.FindLog(w.ID)
			if log == nil {
				p.WorkoutLogs = append(p.WorkoutLogs, models.WorkoutLog{
					WorkoutID: w.ID,
					Date:      s.now(),
				})
				log = &p.WorkoutLogs[len(p.WorkoutLogs)-1]
			}
			if len(log.AddedExercises) > 0 {
				continue
			}
			log.AddedExercises = seedExercises(w, log.DeletedExercises)
		}
	}
	p.Hydrated = true
}

// seedExercises converts a planned workout's non-warmup exercises into
// added-exercise seeds, honoring prior structural deletions.
func seedExercises(w models.PlannedWorkout, deleted []string) []models.AddedExercise {
	var out []models.AddedExercise
	for _, ex := range w.Exercises {
		if ex.Category == models.CategoryWarmup {
			continue
		}
		if contains(deleted, ex.ID) {
			continue
		}
		out = append(out, models.AddedExercise{
			ID:           ex.ID,
			Name:         ex.Name,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			TargetEffort: ex.TargetEffort,
			RestSeconds:  ex.RestSeconds,
			Category:     ex.Category,
			ExerciseDBID: ex.ExerciseDBID,
			MuscleGroup:  append([]string(nil), ex.MuscleGroup...),
			Equipment:    append([]string(nil), ex.Equipment...),
			FromTemplate: true,
		})
	}
	return out
}

// DeleteProgram removes a program and all of its logs irrecoverably. If it
// was active, the first remaining non-archived program is promoted.
func (s *Store) DeleteProgram(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.doc.Programs {
		if s.doc.Programs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	wasActive := s.doc.Programs[idx].IsActive
	s.doc.Programs = append(s.doc.Programs[:idx], s.doc.Programs[idx+1:]...)
	if s.doc.ActiveProgramID == id {
		s.doc.ActiveProgramID = ""
	}
	if s.doc.LastTrainedProgramID == id {
		s.doc.LastTrainedProgramID = ""
	}
	if wasActive {
		s.promoteFirst()
	}
	s.persist()
	return true
}

// ArchiveProgram soft-deletes a program. Its data stays intact and it can be
// restored later. Archiving the active program promotes the first remaining
// non-archived program.
func (s *Store) ArchiveProgram(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(id)
	if p == nil || p.IsArchived {
		return false
	}
	wasActive := p.IsActive
	p.IsArchived = true
	p.IsActive = false
	if s.doc.ActiveProgramID == id {
		s.doc.ActiveProgramID = ""
	}
	if wasActive {
		s.promoteFirst()
	}
	s.persist()
	return true
}

// RestoreProgram undoes an archive. If nothing is active the restored
// program takes over, keeping the single-active invariant.
func (s *Store) RestoreProgram(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(id)
	if p == nil || !p.IsArchived {
		return false
	}
	p.IsArchived = false
	if s.doc.ActiveProgramID == "" {
		p.IsActive = true
		s.doc.ActiveProgramID = p.ID
	}
	s.persist()
	return true
}

// SetActiveProgram switches the current view to the given program. No-op
// for unknown or archived ids.
func (s *Store) SetActiveProgram(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(id)
	if p == nil || p.IsArchived {
		return false
	}
	for i := range s.doc.Programs {
		s.doc.Programs[i].IsActive = false
	}
	p.IsActive = true
	s.doc.ActiveProgramID = id
	s.persist()
	return true
}

// promoteFirst makes the first non-archived program active, if any. Callers
// hold s.mu.
func (s *Store) promoteFirst() {
	for i := range s.doc.Programs {
		if !s.doc.Programs[i].IsArchived {
			s.doc.Programs[i].IsActive = true
			s.doc.ActiveProgramID = s.doc.Programs[i].ID
			return
		}
	}
	s.doc.ActiveProgramID = ""
}

// RenameProgram sets a program's display name. Empty names are rejected.
func (s *Store) RenameProgram(id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeName(name)
	p := s.doc.FindProgram(id)
	if p == nil || name == "" {
		return false
	}
	p.Name = name
	s.persist()
	return true
}

// RenameWorkoutDay overrides the display name of one day (1-based).
func (s *Store) RenameWorkoutDay(programID string, day int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeName(name)
	p := s.doc.FindProgram(programID)
	if p == nil || name == "" || day < 1 {
		return false
	}
	_, days, _ := s.programStructure(p)
	if day > days {
		return false
	}
	if p.DayNames == nil {
		p.DayNames = make(map[int]string)
	}
	p.DayNames[day] = name
	s.persist()
	return true
}

// ReorderWorkoutDays sets a program's day display order. Invalid or
// duplicate entries are dropped; days missing from the list are appended in
// ascending order.
func (s *Store) ReorderWorkoutDays(programID string, dayOrder []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	_, days, _ := s.programStructure(p)

	seen := make(map[int]bool, days)
	order := make([]int, 0, days)
	for _, d := range dayOrder {
		if d >= 1 && d <= days && !seen[d] {
			seen[d] = true
			order = append(order, d)
		}
	}
	for d := 1; d <= days; d++ {
		if !seen[d] {
			order = append(order, d)
		}
	}
	p.DayOrder = order
	s.persist()
	return true
}

// ReorderPrograms rewrites the program list order. Ids not mentioned keep
// their relative order at the end of the list.
func (s *Store) ReorderPrograms(idsInOrder []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.doc.Programs))
	for i := range s.doc.Programs {
		byID[s.doc.Programs[i].ID] = i
	}

	taken := make(map[string]bool, len(idsInOrder))
	out := make([]models.Program, 0, len(s.doc.Programs))
	for _, id := range idsInOrder {
		if i, ok := byID[id]; ok && !taken[id] {
			taken[id] = true
			out = append(out, s.doc.Programs[i])
		}
	}
	for i := range s.doc.Programs {
		if !taken[s.doc.Programs[i].ID] {
			out = append(out, s.doc.Programs[i])
		}
	}
	s.doc.Programs = out
	s.persist()
}

// StructureUpdate carries optional new week/day counts.
type StructureUpdate struct {
	WeeksTotal  *int
	DaysPerWeek *int
}

// UpdateProgramStructure changes a program's week and day counts within
// bounds. The week count never drops below the program's current week, so
// in-progress weeks cannot be deleted. The day-label list is refitted and
// the day display order reset to ascending.
func (s *Store) UpdateProgramStructure(programID string, upd StructureUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	weeks, days, labels := s.programStructure(p)

	if upd.WeeksTotal != nil {
		minWeeks := p.CurrentWeek
		if minWeeks < MinWeeks {
			minWeeks = MinWeeks
		}
		weeks = clamp(*upd.WeeksTotal, minWeeks, MaxWeeks)
	}
	if upd.DaysPerWeek != nil {
		days = clamp(*upd.DaysPerWeek, MinDays, MaxDays)
	}

	p.CustomWeeksTotal = weeks
	p.CustomDaysPerWeek = days
	p.CustomDayLabels = fitLabels(labels, days)
	p.DayOrder = ascending(days)
	s.persist()
	return true
}

// AddDayToProgram appends one day to a program, capped at seven. There is
// deliberately no remove-day counterpart here; see CanRemoveDay.
func (s *Store) AddDayToProgram(programID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	_, days, labels := s.programStructure(p)
	if days >= MaxDays {
		return false
	}
	days++
	p.CustomDaysPerWeek = days
	p.CustomDayLabels = fitLabels(labels, days)
	p.DayOrder = ascending(days)
	s.persist()
	return true
}

// CanRemoveDay reports whether the given day (1-based) can be removed
// without losing training data: no log at or beyond that day may show
// progress. The destructive removal itself is a guarded UI flow, not an
// engine primitive.
func (s *Store) CanRemoveDay(programID string, day int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil || day < 1 {
		return false
	}
	_, days, _ := s.programStructure(p)
	if day > days || days <= MinDays {
		return false
	}
	for i := range p.WorkoutLogs {
		_, logDay, ok := ParseWorkoutID(p.WorkoutLogs[i].WorkoutID)
		if !ok || logDay < day {
			continue
		}
		if DeriveStatus(&p.WorkoutLogs[i]) != StatusNotStarted {
			return false
		}
	}
	return true
}

// SaveAsTemplate snapshots a program's day structure into a reusable custom
// template: added exercises bucketed by day, de-duplicated by name within a
// day. Returns the new template id, or false for an unknown program or an
// empty name.
func (s *Store) SaveAsTemplate(programID, templateName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templateName = normalizeName(templateName)
	p := s.doc.FindProgram(programID)
	if p == nil || templateName == "" {
		return "", false
	}
	weeks, days, labels := s.programStructure(p)

	byDay := make(map[int][]models.AddedExercise, days)
	seen := make(map[int]map[string]bool, days)
	for i := range p.WorkoutLogs {
		log := &p.WorkoutLogs[i]
		_, day, ok := ParseWorkoutID(log.WorkoutID)
		if !ok || day > days {
			continue
		}
		for _, ex := range cloneAddedExercises(log.AddedExercises) {
			key := strings.ToLower(normalizeName(ex.Name))
			if key == "" {
				continue
			}
			if seen[day] == nil {
				seen[day] = make(map[string]bool)
			}
			if seen[day][key] {
				continue
			}
			seen[day][key] = true
			byDay[day] = append(byDay[day], ex)
		}
	}

	ct := models.CustomTemplate{
		ID:          s.newID(),
		Name:        templateName,
		DaysPerWeek: days,
		WeeksTotal:  weeks,
		DayLabels:   labels,
	}
	for day := 1; day <= days; day++ {
		label := ""
		if day-1 < len(labels) {
			label = labels[day-1]
		}
		ct.Days = append(ct.Days, models.CustomTemplateDay{
			Day:       day,
			Label:     label,
			Exercises: byDay[day],
		})
	}
	s.doc.CustomTemplates = append(s.doc.CustomTemplates, ct)
	s.persist()
	return ct.ID, true
}

// DeleteCustomTemplate removes a saved template. Programs created from it
// are unaffected; their logs already carry the hydrated exercises.
func (s *Store) DeleteCustomTemplate(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.CustomTemplates {
		if s.doc.CustomTemplates[i].ID == id {
			s.doc.CustomTemplates = append(s.doc.CustomTemplates[:i], s.doc.CustomTemplates[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// CustomTemplates returns copies of all saved custom templates.
func (s *Store) CustomTemplates() []models.CustomTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CustomTemplate, len(s.doc.CustomTemplates))
	for i, ct := range s.doc.CustomTemplates {
		out[i] = cloneCustomTemplate(ct)
	}
	return out
}

// SetCurrentWeek moves a program's week pointer within its week span.
func (s *Store) SetCurrentWeek(programID string, week int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	weeks, _, _ := s.programStructure(p)
	if week < 1 || week > weeks {
		return false
	}
	p.CurrentWeek = week
	s.persist()
	return true
}

// SetChartExercises pins the exercise names tracked on the progress charts.
func (s *Store) SetChartExercises(programID string, names []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = normalizeName(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	p.ChartExercises = cleaned
	s.persist()
	return true
}

// SubstituteExercise records a replacement for a template exercise, scoped
// to the program and keyed by the original exercise id. A second
// substitution for the same id replaces the first.
func (s *Store) SubstituteExercise(programID, originalID string, sub models.Substitution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub.Name = normalizeName(sub.Name)
	p := s.doc.FindProgram(programID)
	if p == nil || originalID == "" || sub.Name == "" {
		return false
	}
	if p.Substitutions == nil {
		p.Substitutions = make(map[string]models.Substitution)
	}
	sub.SubstitutedAt = s.now()
	p.Substitutions[originalID] = sub
	s.persist()
	return true
}

// RemoveSubstitution reverts a substituted exercise to the template
// original.
func (s *Store) RemoveSubstitution(programID, originalID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.doc.FindProgram(programID)
	if p == nil {
		return false
	}
	if _, ok := p.Substitutions[originalID]; !ok {
		return false
	}
	delete(p.Substitutions, originalID)
	s.persist()
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Programs returns copies of all programs, archived included, in list
// order. The last-trained program sorts first among non-archived entries
// when sortLastTrained is set; this is a display ordering only.
func (s *Store) Programs(sortLastTrained bool) []models.Program {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Program, len(s.doc.Programs))
	for i := range s.doc.Programs {
		out[i] = *cloneProgram(&s.doc.Programs[i])
	}
	if sortLastTrained && s.doc.LastTrainedProgramID != "" {
		id := s.doc.LastTrainedProgramID
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID == id && out[j].ID != id
		})
	}
	return out
}
