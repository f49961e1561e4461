package engine

import "github.com/meltforce/liftlog/internal/models"

// Deep-copy helpers. Read accessors hand copies to callers so the document
// is only ever mutated under the store mutex; the copy-forward propagator
// reuses them to detach carried-over structures from the source week.

func cloneDocument(d *models.Document) *models.Document {
	out := *d
	out.Programs = make([]models.Program, len(d.Programs))
	for i := range d.Programs {
		out.Programs[i] = *cloneProgram(&d.Programs[i])
	}
	out.CustomTemplates = make([]models.CustomTemplate, len(d.CustomTemplates))
	for i, ct := range d.CustomTemplates {
		out.CustomTemplates[i] = cloneCustomTemplate(ct)
	}
	out.WorkoutLogs = cloneLogs(d.WorkoutLogs)
	out.Substitutions = cloneSubstitutions(d.Substitutions)
	return &out
}

func cloneProgram(p *models.Program) *models.Program {
	out := *p
	if p.StartedAt != nil {
		t := *p.StartedAt
		out.StartedAt = &t
	}
	out.WorkoutLogs = cloneLogs(p.WorkoutLogs)
	out.Substitutions = cloneSubstitutions(p.Substitutions)
	out.CustomDayLabels = append([]string(nil), p.CustomDayLabels...)
	out.DayOrder = append([]int(nil), p.DayOrder...)
	out.ChartExercises = append([]string(nil), p.ChartExercises...)
	if p.DayNames != nil {
		out.DayNames = make(map[int]string, len(p.DayNames))
		for k, v := range p.DayNames {
			out.DayNames[k] = v
		}
	}
	return &out
}

func cloneLogs(logs []models.WorkoutLog) []models.WorkoutLog {
	if logs == nil {
		return nil
	}
	out := make([]models.WorkoutLog, len(logs))
	for i := range logs {
		out[i] = *cloneLog(&logs[i])
	}
	return out
}

func cloneLog(l *models.WorkoutLog) *models.WorkoutLog {
	out := *l
	out.Exercises = cloneExerciseLogs(l.Exercises)
	out.SkippedExercises = append([]string(nil), l.SkippedExercises...)
	out.DeletedExercises = append([]string(nil), l.DeletedExercises...)
	out.AddedExercises = cloneAddedExercises(l.AddedExercises)
	out.ExerciseOrder = append([]string(nil), l.ExerciseOrder...)
	out.ExerciseOverrides = cloneOverrides(l.ExerciseOverrides)
	return &out
}

func cloneExerciseLogs(exs []models.ExerciseLog) []models.ExerciseLog {
	if exs == nil {
		return nil
	}
	out := make([]models.ExerciseLog, len(exs))
	for i, ex := range exs {
		out[i] = ex
		out[i].Sets = append([]models.SetLog(nil), ex.Sets...)
	}
	return out
}

func cloneAddedExercises(added []models.AddedExercise) []models.AddedExercise {
	if added == nil {
		return nil
	}
	out := make([]models.AddedExercise, len(added))
	for i, ex := range added {
		out[i] = ex
		out[i].MuscleGroup = append([]string(nil), ex.MuscleGroup...)
		out[i].Equipment = append([]string(nil), ex.Equipment...)
	}
	return out
}

func cloneOverrides(ov map[string]models.ExerciseOverride) map[string]models.ExerciseOverride {
	if ov == nil {
		return nil
	}
	out := make(map[string]models.ExerciseOverride, len(ov))
	for k, v := range ov {
		out[k] = cloneOverride(v)
	}
	return out
}

func cloneOverride(v models.ExerciseOverride) models.ExerciseOverride {
	out := models.ExerciseOverride{}
	if v.Sets != nil {
		n := *v.Sets
		out.Sets = &n
	}
	if v.Reps != nil {
		r := *v.Reps
		out.Reps = &r
	}
	if v.TargetEffort != nil {
		n := *v.TargetEffort
		out.TargetEffort = &n
	}
	if v.RestSeconds != nil {
		n := *v.RestSeconds
		out.RestSeconds = &n
	}
	return out
}

func cloneSubstitutions(subs map[string]models.Substitution) map[string]models.Substitution {
	if subs == nil {
		return nil
	}
	out := make(map[string]models.Substitution, len(subs))
	for k, v := range subs {
		v.MuscleGroups = append([]string(nil), v.MuscleGroups...)
		v.Equipment = append([]string(nil), v.Equipment...)
		out[k] = v
	}
	return out
}

func cloneCustomTemplate(ct models.CustomTemplate) models.CustomTemplate {
	out := ct
	out.DayLabels = append([]string(nil), ct.DayLabels...)
	out.Days = make([]models.CustomTemplateDay, len(ct.Days))
	for i, d := range ct.Days {
		out.Days[i] = d
		out.Days[i].Exercises = cloneAddedExercises(d.Exercises)
	}
	return out
}
