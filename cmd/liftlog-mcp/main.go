package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/liftlog/internal/config"
	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/mcp"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/templates"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	doc, err := db.Load()
	if err != nil {
		log.Error("failed to load document", "error", err)
		os.Exit(1)
	}

	// Read-only store: no snapshotter, and the MCP surface never mutates.
	store := engine.New(doc, nil, templates.NewBuiltin(), log)

	s := mcp.New(store, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
