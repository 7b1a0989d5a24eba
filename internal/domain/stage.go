package domain

import "time"

// Stage identifies a gate in the environment bootstrap sequence.
// The progression is linear; failure at any stage is fatal and the only
// recovery path is re-running from the start (every check is idempotent).
type Stage string

const (
	StageUnchecked          Stage = "unchecked"
	StageSubmoduleVerified  Stage = "submodule-verified"
	StageSubmodulesUpdated  Stage = "submodules-updated"
	StageRuntimeVerified    Stage = "runtime-verified"
	StageDirectoriesCreated Stage = "directories-created"
	StageImageBuilt         Stage = "image-built"
)

// SetupStages returns the bootstrap gates in execution order.
func SetupStages() []Stage {
	return []Stage{
		StageSubmoduleVerified,
		StageSubmodulesUpdated,
		StageRuntimeVerified,
		StageDirectoriesCreated,
		StageImageBuilt,
	}
}

// StageResult records the outcome of a single bootstrap gate.
type StageResult struct {
	Stage      Stage         `json:"stage"`
	Passed     bool          `json:"passed"`
	Duration   time.Duration `json:"duration_ns"`
	Error      string        `json:"error,omitempty"`
	Hint       string        `json:"hint,omitempty"`
}

// SetupReport is the artifact persisted after every `setup` run.
type SetupReport struct {
	RunID     string        `json:"run_id,omitempty"`
	Root      string        `json:"root"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Reached   Stage         `json:"reached"`
	Failed    bool          `json:"failed"`
	Stages    []StageResult `json:"stages"`
}
