package mcp

import (
	"sort"

	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/models"
)

// WeekSummary aggregates one week of logged training volume.
type WeekSummary struct {
	Week              int     `json:"week"`
	WorkoutsLogged    int     `json:"workoutsLogged"`
	WorkoutsCompleted int     `json:"workoutsCompleted"`
	SetsLogged        int     `json:"setsLogged"`
	TotalReps         int     `json:"totalReps"`
	Tonnage           float64 `json:"tonnage"`
}

// summarize rolls every workout log of a program up into per-week volume
// totals. Weeks with no logged activity are omitted.
func summarize(p *models.Program) []WeekSummary {
	byWeek := map[int]*WeekSummary{}

	for i := range p.WorkoutLogs {
		log := &p.WorkoutLogs[i]
		status := engine.DeriveStatus(log)
		if status == engine.StatusNotStarted {
			continue
		}
		week, _, ok := engine.ParseWorkoutID(log.WorkoutID)
		if !ok {
			continue
		}

		ws := byWeek[week]
		if ws == nil {
			ws = &WeekSummary{Week: week}
			byWeek[week] = ws
		}
		ws.WorkoutsLogged++
		if status == engine.StatusCompleted {
			ws.WorkoutsCompleted++
		}
		for _, ex := range log.Exercises {
			for _, set := range ex.Sets {
				if set.Reps <= 0 {
					continue
				}
				ws.SetsLogged++
				ws.TotalReps += set.Reps
				ws.Tonnage += set.Weight * float64(set.Reps)
			}
		}
	}

	out := make([]WeekSummary, 0, len(byWeek))
	for _, ws := range byWeek {
		out = append(out, *ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}
