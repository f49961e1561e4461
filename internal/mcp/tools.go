package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List all training programs with their structure, active/archived flags, and progress. Returns full program records including workout logs."),
	mcp.WithString("sort", mcp.Description("Sort order. 'last_trained' puts the most recently trained program first."), mcp.Enum("default", "last_trained")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get one training program by id, including all workout logs, substitutions, and structural overrides."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program id")),
)

var toolGetWorkoutLog = mcp.NewTool("get_workout_log",
	mcp.WithDescription("Get the log of one workout slot in the active program: logged sets, skipped and added exercises, overrides, and completion."),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout slot id in weekN-dayM form (e.g. 'week2-day1')")),
)

var toolGetWeekStatus = mcp.NewTool("get_week_status",
	mcp.WithDescription("Derive the status of every workout day in one week of the active program. Statuses are not_started, in_progress, or completed."),
	mcp.WithString("week", mcp.Required(), mcp.Description("Week number, 1-based")),
)

var toolGetTrainingSummary = mcp.NewTool("get_training_summary",
	mcp.WithDescription("Per-week training volume for the active program: workout counts by status, sets logged, total reps, and tonnage (sum of weight times reps)."),
)

// --- Tool handlers ---

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sortLastTrained := req.GetString("sort", "") == "last_trained"

	result, err := mcp.NewToolResultJSON(h.store.Programs(sortLastTrained))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	program, ok := h.store.Program(id)
	if !ok {
		return mcp.NewToolResultError("program not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(program)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutID, err := req.RequireString("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}

	log, ok := h.store.WorkoutLog(workoutID)
	if !ok {
		return mcp.NewToolResultError("no log for workout: " + workoutID), nil
	}

	result, err := mcp.NewToolResultJSON(log)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeekStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weekStr, err := req.RequireString("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	week, err := strconv.Atoi(weekStr)
	if err != nil || week < 1 {
		return mcp.NewToolResultError("week must be a positive integer"), nil
	}

	statuses := h.store.WeekStatus(week)
	if statuses == nil {
		return mcp.NewToolResultError("no active program"), nil
	}

	result, err := mcp.NewToolResultJSON(statuses)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	program, ok := h.store.Active()
	if !ok {
		return mcp.NewToolResultError("no active program"), nil
	}

	result, err := mcp.NewToolResultJSON(summarize(&program))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
