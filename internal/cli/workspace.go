package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/composecli"
	"github.com/Kappibw/scheduling/internal/infra/dockercli"
	"github.com/Kappibw/scheduling/internal/infra/execrunner"
	"github.com/Kappibw/scheduling/internal/infra/gitcli"
	"github.com/Kappibw/scheduling/internal/infra/pipinstall"
	"github.com/Kappibw/scheduling/internal/infra/runreport"
	"github.com/Kappibw/scheduling/internal/infra/workspacefinder"
	"github.com/Kappibw/scheduling/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	git       ports.GitClient
	compose   ports.ComposeClient
	runtime   ports.RuntimeProber
	installer ports.ManifestInstaller
	reports   ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	return buildWorkspace(root)
}

// loadWorkspaceOrCwd is loadWorkspace for commands that may legally run
// before `schedenv init` has created schedenv.yaml (submodule add).
func loadWorkspaceOrCwd(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		wd, werr := os.Getwd()
		if werr != nil {
			return nil, fmt.Errorf("get working directory: %w", werr)
		}
		root = wd
	}
	return buildWorkspace(root)
}

func buildWorkspace(root string) (*workspaceCtx, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	run := execrunner.New()

	prober, err := dockercli.New(run, cfg.Runtime.MinServerVersion)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		git:       gitcli.New(run),
		compose:   composecli.New(run, cfg.Compose),
		runtime:   prober,
		installer: pipinstall.New(run),
		reports:   runreport.NewStore(root, runreport.WithIndex(true)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	if workspaceFlag != "" {
		abs, err := filepath.Abs(workspaceFlag)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return workspacefinder.NewFinder().FindRoot(wd)
}
