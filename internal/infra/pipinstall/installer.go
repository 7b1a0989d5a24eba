package pipinstall

import (
	"context"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Installer installs requirement manifests with pip.
type Installer struct {
	run    ports.CommandRunner
	python string
}

type Option func(*Installer)

// WithPython overrides the interpreter used to invoke pip
// (default "python3", i.e. `python3 -m pip`).
func WithPython(python string) Option {
	return func(i *Installer) { i.python = python }
}

func New(run ports.CommandRunner, opts ...Option) *Installer {
	i := &Installer{run: run, python: "python3"}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.ManifestInstaller = (*Installer)(nil)

func (i *Installer) Install(ctx context.Context, manifest string) error {
	err := i.run.Run(ctx, domain.Command{
		Name: i.python,
		Args: []string{"-m", "pip", "install", "-r", manifest},
	})
	if err != nil {
		return &domain.OpError{
			Op:       "pipinstall.install",
			Kind:     domain.KindExternalTool,
			Path:     manifest,
			Hint:     "inspect the manifest for unavailable packages, then re-run",
			ExitCode: domain.ExitCodeOf(err),
			Err:      err,
		}
	}
	return nil
}
