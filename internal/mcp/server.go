package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/liftlog/internal/engine"
)

// New creates an MCP server with all tools and resources registered. The
// surface is read-only: training data is mutated through the HTTP API, never
// through MCP.
func New(store *engine.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog training data server. Query programs, workout logs, per-week status, and training volume summaries. All tools are read-only."),
	)

	h := &handlers{store: store, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetWorkoutLog, Handler: h.getWorkoutLog},
		server.ServerTool{Tool: toolGetWeekStatus, Handler: h.getWeekStatus},
		server.ServerTool{Tool: toolGetTrainingSummary, Handler: h.getTrainingSummary},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resActiveProgram, Handler: h.activeProgram},
		server.ServerResource{Resource: resTemplates, Handler: h.templates},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store *engine.Store
	log   *slog.Logger
}

// --- Resource definitions ---

var resActiveProgram = mcp.NewResource(
	"liftlog://active_program",
	"Active Program",
	mcp.WithResourceDescription("The currently active training program with all workout logs, substitutions, and structure"),
	mcp.WithMIMEType("application/json"),
)

var resTemplates = mcp.NewResource(
	"liftlog://templates",
	"Saved Templates",
	mcp.WithResourceDescription("User-saved custom program templates"),
	mcp.WithMIMEType("application/json"),
)
