package templates

import "github.com/meltforce/liftlog/internal/models"

type templateDef struct {
	name  string
	weeks int
	days  []dayDef
}

type dayDef struct {
	name             string
	estimatedMinutes int
	exercises        []exerciseDef
}

type exerciseDef struct {
	name         string
	category     string
	sets         int
	reps         string
	targetEffort int
	restSeconds  int
	muscles      []string
	equipment    []string
}

const (
	categoryCompound  = "compound"
	categoryIsolation = "isolation"
)

var builtinDefs = map[string]templateDef{
	"full-body": {
		name:  "Full Body",
		weeks: 4,
		days: []dayDef{
			{
				name:             "Full Body A",
				estimatedMinutes: 60,
				exercises: []exerciseDef{
					{name: "Rowing Machine", category: models.CategoryWarmup, sets: 1, reps: "5 min", restSeconds: 0, equipment: []string{"machine"}},
					{name: "Barbell Squat", category: categoryCompound, sets: 3, reps: "5", targetEffort: 8, restSeconds: 180, muscles: []string{"quads", "glutes"}, equipment: []string{"barbell"}},
					{name: "Bench Press", category: categoryCompound, sets: 3, reps: "5-8", targetEffort: 8, restSeconds: 180, muscles: []string{"chest", "triceps"}, equipment: []string{"barbell"}},
					{name: "Barbell Row", category: categoryCompound, sets: 3, reps: "6-10", targetEffort: 8, restSeconds: 120, muscles: []string{"back"}, equipment: []string{"barbell"}},
					{name: "Plank", category: categoryIsolation, sets: 3, reps: "45 sec", targetEffort: 7, restSeconds: 60, muscles: []string{"core"}},
				},
			},
			{
				name:             "Full Body B",
				estimatedMinutes: 60,
				exercises: []exerciseDef{
					{name: "Bike", category: models.CategoryWarmup, sets: 1, reps: "5 min", restSeconds: 0, equipment: []string{"machine"}},
					{name: "Deadlift", category: categoryCompound, sets: 3, reps: "5", targetEffort: 8, restSeconds: 180, muscles: []string{"back", "hamstrings"}, equipment: []string{"barbell"}},
					{name: "Overhead Press", category: categoryCompound, sets: 3, reps: "5-8", targetEffort: 8, restSeconds: 150, muscles: []string{"shoulders"}, equipment: []string{"barbell"}},
					{name: "Pull Up", category: categoryCompound, sets: 3, reps: "6-10", targetEffort: 9, restSeconds: 120, muscles: []string{"back", "biceps"}, equipment: []string{"bodyweight"}},
					{name: "Dumbbell Curl", category: categoryIsolation, sets: 3, reps: "10-12", targetEffort: 8, restSeconds: 90, muscles: []string{"biceps"}, equipment: []string{"dumbbell"}},
				},
			},
		},
	},
	"ppl": {
		name:  "Push Pull Legs",
		weeks: 6,
		days: []dayDef{
			{
				name:             "Push",
				estimatedMinutes: 70,
				exercises: []exerciseDef{
					{name: "Band Shoulder Warmup", category: models.CategoryWarmup, sets: 1, reps: "2 min"},
					{name: "Bench Press", category: categoryCompound, sets: 4, reps: "5-8", targetEffort: 8, restSeconds: 180, muscles: []string{"chest", "triceps"}, equipment: []string{"barbell"}},
					{name: "Overhead Press", category: categoryCompound, sets: 3, reps: "6-10", targetEffort: 8, restSeconds: 150, muscles: []string{"shoulders"}, equipment: []string{"barbell"}},
					{name: "Incline Dumbbell Press", category: categoryCompound, sets: 3, reps: "8-12", targetEffort: 8, restSeconds: 120, muscles: []string{"chest"}, equipment: []string{"dumbbell"}},
					{name: "Lateral Raise", category: categoryIsolation, sets: 3, reps: "12-15", targetEffort: 9, restSeconds: 90, muscles: []string{"shoulders"}, equipment: []string{"dumbbell"}},
					{name: "Triceps Pushdown", category: categoryIsolation, sets: 3, reps: "10-15", targetEffort: 9, restSeconds: 90, muscles: []string{"triceps"}, equipment: []string{"cable"}},
				},
			},
			{
				name:             "Pull",
				estimatedMinutes: 70,
				exercises: []exerciseDef{
					{name: "Band Pull Apart", category: models.CategoryWarmup, sets: 1, reps: "2 min"},
					{name: "Deadlift", category: categoryCompound, sets: 3, reps: "5", targetEffort: 8, restSeconds: 210, muscles: []string{"back", "hamstrings"}, equipment: []string{"barbell"}},
					{name: "Pull Up", category: categoryCompound, sets: 3, reps: "6-10", targetEffort: 9, restSeconds: 150, muscles: []string{"back", "biceps"}, equipment: []string{"bodyweight"}},
					{name: "Seated Cable Row", category: categoryCompound, sets: 3, reps: "8-12", targetEffort: 8, restSeconds: 120, muscles: []string{"back"}, equipment: []string{"cable"}},
					{name: "Face Pull", category: categoryIsolation, sets: 3, reps: "15-20", targetEffort: 8, restSeconds: 90, muscles: []string{"rear delts"}, equipment: []string{"cable"}},
					{name: "Hammer Curl", category: categoryIsolation, sets: 3, reps: "10-12", targetEffort: 9, restSeconds: 90, muscles: []string{"biceps"}, equipment: []string{"dumbbell"}},
				},
			},
			{
				name:             "Legs",
				estimatedMinutes: 70,
				exercises: []exerciseDef{
					{name: "Bike", category: models.CategoryWarmup, sets: 1, reps: "5 min", equipment: []string{"machine"}},
					{name: "Barbell Squat", category: categoryCompound, sets: 4, reps: "5-8", targetEffort: 8, restSeconds: 210, muscles: []string{"quads", "glutes"}, equipment: []string{"barbell"}},
					{name: "Romanian Deadlift", category: categoryCompound, sets: 3, reps: "8-10", targetEffort: 8, restSeconds: 150, muscles: []string{"hamstrings", "glutes"}, equipment: []string{"barbell"}},
					{name: "Leg Press", category: categoryCompound, sets: 3, reps: "10-12", targetEffort: 8, restSeconds: 120, muscles: []string{"quads"}, equipment: []string{"machine"}},
					{name: "Leg Curl", category: categoryIsolation, sets: 3, reps: "10-15", targetEffort: 9, restSeconds: 90, muscles: []string{"hamstrings"}, equipment: []string{"machine"}},
					{name: "Standing Calf Raise", category: categoryIsolation, sets: 4, reps: "10-15", targetEffort: 9, restSeconds: 60, muscles: []string{"calves"}, equipment: []string{"machine"}},
				},
			},
		},
	},
	"upper-lower": {
		name:  "Upper Lower",
		weeks: 8,
		days: []dayDef{
			{
				name:             "Upper A",
				estimatedMinutes: 65,
				exercises: []exerciseDef{
					{name: "Band Shoulder Warmup", category: models.CategoryWarmup, sets: 1, reps: "2 min"},
					{name: "Bench Press", category: categoryCompound, sets: 4, reps: "4-6", targetEffort: 8, restSeconds: 180, muscles: []string{"chest", "triceps"}, equipment: []string{"barbell"}},
					{name: "Barbell Row", category: categoryCompound, sets: 4, reps: "6-8", targetEffort: 8, restSeconds: 150, muscles: []string{"back"}, equipment: []string{"barbell"}},
					{name: "Overhead Press", category: categoryCompound, sets: 3, reps: "6-10", targetEffort: 8, restSeconds: 150, muscles: []string{"shoulders"}, equipment: []string{"barbell"}},
					{name: "Lat Pulldown", category: categoryCompound, sets: 3, reps: "8-12", targetEffort: 8, restSeconds: 120, muscles: []string{"back"}, equipment: []string{"cable"}},
				},
			},
			{
				name:             "Lower A",
				estimatedMinutes: 65,
				exercises: []exerciseDef{
					{name: "Bike", category: models.CategoryWarmup, sets: 1, reps: "5 min", equipment: []string{"machine"}},
					{name: "Barbell Squat", category: categoryCompound, sets: 4, reps: "4-6", targetEffort: 8, restSeconds: 210, muscles: []string{"quads", "glutes"}, equipment: []string{"barbell"}},
					{name: "Romanian Deadlift", category: categoryCompound, sets: 3, reps: "8-10", targetEffort: 8, restSeconds: 150, muscles: []string{"hamstrings"}, equipment: []string{"barbell"}},
					{name: "Walking Lunge", category: categoryCompound, sets: 3, reps: "10-12", targetEffort: 8, restSeconds: 120, muscles: []string{"quads", "glutes"}, equipment: []string{"dumbbell"}},
					{name: "Seated Calf Raise", category: categoryIsolation, sets: 4, reps: "12-15", targetEffort: 9, restSeconds: 60, muscles: []string{"calves"}, equipment: []string{"machine"}},
				},
			},
			{
				name:             "Upper B",
				estimatedMinutes: 65,
				exercises: []exerciseDef{
					{name: "Band Pull Apart", category: models.CategoryWarmup, sets: 1, reps: "2 min"},
					{name: "Incline Dumbbell Press", category: categoryCompound, sets: 4, reps: "8-10", targetEffort: 8, restSeconds: 150, muscles: []string{"chest"}, equipment: []string{"dumbbell"}},
					{name: "Pull Up", category: categoryCompound, sets: 4, reps: "6-10", targetEffort: 9, restSeconds: 150, muscles: []string{"back", "biceps"}, equipment: []string{"bodyweight"}},
					{name: "Lateral Raise", category: categoryIsolation, sets: 3, reps: "12-15", targetEffort: 9, restSeconds: 90, muscles: []string{"shoulders"}, equipment: []string{"dumbbell"}},
					{name: "Triceps Pushdown", category: categoryIsolation, sets: 3, reps: "10-15", targetEffort: 9, restSeconds: 90, muscles: []string{"triceps"}, equipment: []string{"cable"}},
					{name: "Dumbbell Curl", category: categoryIsolation, sets: 3, reps: "10-12", targetEffort: 9, restSeconds: 90, muscles: []string{"biceps"}, equipment: []string{"dumbbell"}},
				},
			},
			{
				name:             "Lower B",
				estimatedMinutes: 65,
				exercises: []exerciseDef{
					{name: "Rowing Machine", category: models.CategoryWarmup, sets: 1, reps: "5 min", equipment: []string{"machine"}},
					{name: "Deadlift", category: categoryCompound, sets: 3, reps: "5", targetEffort: 8, restSeconds: 210, muscles: []string{"back", "hamstrings"}, equipment: []string{"barbell"}},
					{name: "Front Squat", category: categoryCompound, sets: 3, reps: "6-8", targetEffort: 8, restSeconds: 180, muscles: []string{"quads"}, equipment: []string{"barbell"}},
					{name: "Leg Curl", category: categoryIsolation, sets: 3, reps: "10-15", targetEffort: 9, restSeconds: 90, muscles: []string{"hamstrings"}, equipment: []string{"machine"}},
					{name: "Hanging Leg Raise", category: categoryIsolation, sets: 3, reps: "10-15", targetEffort: 8, restSeconds: 90, muscles: []string{"core"}, equipment: []string{"bodyweight"}},
				},
			},
		},
	},
}
