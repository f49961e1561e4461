package engine

import (
	"fmt"
	"regexp"
	"strconv"
)

// Workout slot keys are "week{W}-day{D}" strings. The key format is shared
// with the persisted document and the analytics consumers, so the extraction
// rules here must not change.
var workoutIDPattern = regexp.MustCompile(`week(\d+)-day(\d+)`)

// WorkoutID builds the slot key for a week and day.
func WorkoutID(week, day int) string {
	return fmt.Sprintf("week%d-day%d", week, day)
}

// ParseWorkoutID extracts the week and day from a slot key. ok is false when
// the key does not carry the encoding.
func ParseWorkoutID(id string) (week, day int, ok bool) {
	m := workoutIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, false
	}
	week, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	if week < 1 || day < 1 {
		return 0, 0, false
	}
	return week, day, true
}
