package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Kappibw/scheduling/internal/domain"
)

// LoadConfig loads schedenv.yaml from the workspace root, applies it on
// top of defaults, then applies SCHEDENV_* environment overrides. A
// missing file yields the defaults (plus env overrides); a malformed
// file is an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "schedenv.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg)
		}
		// The file exists but cannot be read (permissions, a directory
		// named schedenv.yaml); that is not a missing workspace.
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindPrecondition,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Schedenv.Submodule.URL != "" {
		cfg.Submodule.URL = y.Schedenv.Submodule.URL
	}
	if y.Schedenv.Submodule.Path != "" {
		cfg.Submodule.Path = y.Schedenv.Submodule.Path
	}
	if y.Schedenv.Submodule.Branch != "" {
		cfg.Submodule.Branch = y.Schedenv.Submodule.Branch
	}
	if y.Schedenv.Paths.RequirementsDir != "" {
		cfg.Paths.RequirementsDir = y.Schedenv.Paths.RequirementsDir
	}
	if y.Schedenv.Paths.DataDir != "" {
		cfg.Paths.DataDir = y.Schedenv.Paths.DataDir
	}
	if y.Schedenv.Paths.ResultsDir != "" {
		cfg.Paths.ResultsDir = y.Schedenv.Paths.ResultsDir
	}
	if y.Schedenv.Paths.LogsDir != "" {
		cfg.Paths.LogsDir = y.Schedenv.Paths.LogsDir
	}
	if y.Schedenv.Compose.File != "" {
		cfg.Compose.File = y.Schedenv.Compose.File
	}
	if y.Schedenv.Compose.Project != "" {
		cfg.Compose.Project = y.Schedenv.Compose.Project
	}
	if y.Schedenv.Compose.Service != "" {
		cfg.Compose.Service = y.Schedenv.Compose.Service
	}
	if y.Schedenv.Runtime.MinServerVersion != "" {
		cfg.Runtime.MinServerVersion = y.Schedenv.Runtime.MinServerVersion
	}
	if y.Schedenv.Jupyter.Port != 0 {
		cfg.Jupyter.Port = y.Schedenv.Jupyter.Port
	}

	return applyEnv(cfg)
}

// envOverrides maps SCHEDENV_* variables onto config fields, e.g.
// SCHEDENV_COMPOSE_FILE, SCHEDENV_SERVICE, SCHEDENV_JUPYTER_PORT.
type envOverrides struct {
	SubmoduleURL   string `split_words:"true"`
	SubmodulePath  string `split_words:"true"`
	ComposeFile    string `split_words:"true"`
	ComposeProject string `split_words:"true"`
	Service        string
	JupyterPort    int `split_words:"true"`
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	var e envOverrides
	if err := envconfig.Process("schedenv", &e); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if e.SubmoduleURL != "" {
		cfg.Submodule.URL = e.SubmoduleURL
	}
	if e.SubmodulePath != "" {
		cfg.Submodule.Path = e.SubmodulePath
	}
	if e.ComposeFile != "" {
		cfg.Compose.File = e.ComposeFile
	}
	if e.ComposeProject != "" {
		cfg.Compose.Project = e.ComposeProject
	}
	if e.Service != "" {
		cfg.Compose.Service = e.Service
	}
	if e.JupyterPort != 0 {
		cfg.Jupyter.Port = e.JupyterPort
	}
	return cfg, nil
}

type yamlConfig struct {
	Schedenv struct {
		Submodule struct {
			URL    string `yaml:"url"`
			Path   string `yaml:"path"`
			Branch string `yaml:"branch"`
		} `yaml:"submodule"`

		Paths struct {
			RequirementsDir string `yaml:"requirements_dir"`
			DataDir         string `yaml:"data_dir"`
			ResultsDir      string `yaml:"results_dir"`
			LogsDir         string `yaml:"logs_dir"`
		} `yaml:"paths"`

		Compose struct {
			File    string `yaml:"file"`
			Project string `yaml:"project"`
			Service string `yaml:"service"`
		} `yaml:"compose"`

		Runtime struct {
			MinServerVersion string `yaml:"min_server_version"`
		} `yaml:"runtime"`

		Jupyter struct {
			Port int `yaml:"port"`
		} `yaml:"jupyter"`
	} `yaml:"schedenv"`
}
