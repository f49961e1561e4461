package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/liftlog/internal/config"
	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/importer"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/templates"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to legacy JSON export (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-import -config config.yaml -path /path/to/export.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := storage.RunMigrations(cfg.Database.Path, cfg.Database.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Open database and load the current document
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

	if len(doc.Programs) > 0 || len(doc.WorkoutLogs) > 0 {
		log.Error("database already holds training data; import targets a fresh database")
		os.Exit(1)
	}

	// Read the export into the document's legacy fields
	imp := importer.New(log, *dryRun)
	stats, err := imp.Import(*exportPath, doc)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}
	printStats(log, stats)

	if *dryRun {
		log.Info("dry run complete")
		return
	}

	// Convert the legacy fields into a program record and persist
	store := engine.New(doc, db, templates.NewBuiltin(), log)
	store.Migrate()
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"logs_imported", stats.LogsImported,
		"logs_skipped", stats.LogsSkipped,
		"substitutions_imported", stats.SubstitutionsImported,
		"settings_applied", stats.SettingsApplied,
	)
}
