package domain

// Config represents the schedenv configuration loaded from schedenv.yaml.
// Every path the tool touches is carried here explicitly so that each
// stage can be exercised against an injected root instead of ambient
// process state.
type Config struct {
	Submodule SubmoduleConfig
	Paths     PathsConfig
	Compose   ComposeConfig
	Runtime   RuntimeConfig
	Jupyter   JupyterConfig
}

// SubmoduleConfig describes the external research-code repository.
type SubmoduleConfig struct {
	URL    string // optional default for `submodule add`
	Path   string // checkout path relative to the workspace root
	Branch string
}

type PathsConfig struct {
	RequirementsDir string
	DataDir         string
	ResultsDir      string
	LogsDir         string
}

type ComposeConfig struct {
	File    string
	Project string
	Service string
}

type RuntimeConfig struct {
	MinServerVersion string
}

type JupyterConfig struct {
	Port int
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if schedenv.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Submodule: SubmoduleConfig{
			Path:   "spacecraft_scheduler",
			Branch: "main",
		},
		Paths: PathsConfig{
			RequirementsDir: "requirements",
			DataDir:         "data",
			ResultsDir:      "results",
			LogsDir:         "logs",
		},
		Compose: ComposeConfig{
			File:    "docker-compose.yaml",
			Project: "scheduling",
			Service: "scheduler",
		},
		Runtime: RuntimeConfig{
			MinServerVersion: "20.10.0",
		},
		Jupyter: JupyterConfig{
			Port: 8888,
		},
	}
}

// PersistentDirs lists the host directories bind-mounted into the
// container. They must exist before the orchestrator mounts them.
func (c Config) PersistentDirs() []string {
	return []string{c.Paths.DataDir, c.Paths.ResultsDir, c.Paths.LogsDir}
}
