package models

// DocumentVersion is the current persisted document schema version.
const DocumentVersion = 2

// Units for logged weights.
const (
	UnitsKg = "kg"
	UnitsLb = "lb"
)

// Settings are global user preferences, not scoped to a program.
type Settings struct {
	Units           string `json:"units"`
	CascadeWeight   bool   `json:"cascadeWeight"`
	ShowRestTimer   bool   `json:"showRestTimer"`
	KeepScreenAwake bool   `json:"keepScreenAwake"`
}

// DefaultSettings returns the settings a fresh document starts with.
func DefaultSettings() Settings {
	return Settings{
		Units:         UnitsKg,
		CascadeWeight: true,
		ShowRestTimer: true,
	}
}

// Document is the whole persisted state: every program, the active-program
// pointer, saved custom templates, and user settings. Per-program data is
// the single source of truth; the "active" view is a projection by id.
//
// The legacy flat fields (CurrentWeek, WorkoutLogs, Substitutions) predate
// multi-program support. They are read once by the legacy migration and
// otherwise left alone.
type Document struct {
	Programs             []Program        `json:"programs"`
	ActiveProgramID      string           `json:"activeProgramId,omitempty"`
	LastTrainedProgramID string           `json:"lastTrainedProgramId,omitempty"`
	CustomTemplates      []CustomTemplate `json:"customTemplates,omitempty"`
	Settings             Settings         `json:"userSettings"`

	CurrentWeek   int                     `json:"currentWeek,omitempty"`
	WorkoutLogs   []WorkoutLog            `json:"workoutLogs,omitempty"`
	Substitutions map[string]Substitution `json:"exerciseSubstitutions,omitempty"`
}

// NewDocument returns an empty document with default settings.
func NewDocument() *Document {
	return &Document{Settings: DefaultSettings()}
}

// FindProgram returns the program with the given id, or nil.
func (d *Document) FindProgram(id string) *Program {
	for i := range d.Programs {
		if d.Programs[i].ID == id {
			return &d.Programs[i]
		}
	}
	return nil
}

// ActiveProgram returns the currently active program, or nil if none.
func (d *Document) ActiveProgram() *Program {
	if d.ActiveProgramID == "" {
		return nil
	}
	return d.FindProgram(d.ActiveProgramID)
}
