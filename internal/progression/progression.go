// Package progression computes display-only weight recommendations from a
// previous week's logged sets. It is pure: nothing here reads or writes
// store state, and the engine never persists its output.
package progression

import "github.com/meltforce/liftlog/internal/models"

// Weight increments per exercise category, in the user's configured units.
const (
	compoundIncrement  = 2.5
	isolationIncrement = 1.0
)

// Recommendation is a suggested working weight for the coming session.
type Recommendation struct {
	RecommendedWeight float64 `json:"recommendedWeight"`
	// BasedOnWeight is the previous top working weight, zero when no
	// usable history existed.
	BasedOnWeight float64 `json:"basedOnWeight,omitempty"`
}

// RecommendWeight suggests a weight for an exercise given last week's log.
// With no completed history the recommendation is zero ("pick a starting
// weight"), matching week-one behavior. Failed weeks (no completed sets at
// the top weight) repeat the previous weight instead of progressing.
func RecommendWeight(spec models.TemplateExercise, week int, lastWeek *models.ExerciseLog) Recommendation {
	if week <= 1 || lastWeek == nil {
		return Recommendation{}
	}

	top, completed := topWorkingSet(lastWeek)
	if top == 0 {
		return Recommendation{}
	}
	if !completed {
		return Recommendation{RecommendedWeight: top, BasedOnWeight: top}
	}

	inc := isolationIncrement
	if spec.Category == "compound" {
		inc = compoundIncrement
	}
	return Recommendation{RecommendedWeight: top + inc, BasedOnWeight: top}
}

// topWorkingSet returns the heaviest attempted weight and whether any set at
// that weight was completed with reps.
func topWorkingSet(log *models.ExerciseLog) (weight float64, completed bool) {
	for _, s := range log.Sets {
		if s.Weight <= 0 {
			continue
		}
		if s.Weight > weight {
			weight = s.Weight
			completed = s.Status == models.SetCompleted && s.Reps > 0
		} else if s.Weight == weight && s.Status == models.SetCompleted && s.Reps > 0 {
			completed = true
		}
	}
	return weight, completed
}
