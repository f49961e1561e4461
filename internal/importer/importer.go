// Package importer reads a legacy single-program JSON export (the flat
// browser-storage format that predates multi-program documents) and loads it
// into a document as legacy fields. The engine's migration then converts it
// into a proper program record.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/liftlog/internal/engine"
	"github.com/meltforce/liftlog/internal/models"
)

// Stats tracks import progress.
type Stats struct {
	LogsImported          int
	LogsSkipped           int
	SubstitutionsImported int
	SettingsApplied       bool
}

// legacyExport mirrors the flat export format: workout logs keyed by slot id,
// substitutions keyed by original exercise id.
type legacyExport struct {
	CurrentWeek   int                            `json:"currentWeek"`
	WorkoutLogs   map[string]models.WorkoutLog   `json:"workoutLogs"`
	Substitutions map[string]models.Substitution `json:"exerciseSubstitutions"`
	Settings      *models.Settings               `json:"userSettings"`
}

// Importer loads legacy exports into a document.
type Importer struct {
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(log *slog.Logger, dryRun bool) *Importer {
	return &Importer{log: log, dryRun: dryRun}
}

// Import reads the export file and fills the document's legacy fields.
// Malformed slot ids are skipped with a warning rather than failing the
// whole import. In dry-run mode the document is left untouched.
func (imp *Importer) Import(path string, doc *models.Document) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading export file: %w", err)
	}

	var export legacyExport
	if err := json.Unmarshal(data, &export); err != nil {
		return &imp.stats, fmt.Errorf("parsing export file: %w", err)
	}

	logs := make([]models.WorkoutLog, 0, len(export.WorkoutLogs))
	for workoutID, log := range export.WorkoutLogs {
		if _, _, ok := engine.ParseWorkoutID(workoutID); !ok {
			imp.log.Warn("skipping log with malformed slot id", "workoutId", workoutID)
			imp.stats.LogsSkipped++
			continue
		}
		log.WorkoutID = workoutID
		logs = append(logs, log)
		imp.stats.LogsImported++
	}

	imp.stats.SubstitutionsImported = len(export.Substitutions)
	imp.stats.SettingsApplied = export.Settings != nil

	if imp.dryRun {
		return &imp.stats, nil
	}

	doc.CurrentWeek = export.CurrentWeek
	doc.WorkoutLogs = logs
	doc.Substitutions = export.Substitutions
	if export.Settings != nil {
		doc.Settings = *export.Settings
	}
	return &imp.stats, nil
}
