package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// InstallRequirements installs every *.txt manifest in the requirements
// directory, in lexical order. A missing or empty directory is a valid
// terminal state (warn-and-continue); a failed installation is fatal and
// stops the sequence.
type InstallRequirements struct {
	installer ports.ManifestInstaller
}

func NewInstallRequirements(installer ports.ManifestInstaller) *InstallRequirements {
	return &InstallRequirements{installer: installer}
}

func (uc *InstallRequirements) Execute(ctx context.Context, dir string) (domain.InstallSummary, error) {
	summary := domain.InstallSummary{Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			summary.MissingDir = true
			return summary, nil
		}
		return summary, &domain.OpError{
			Op:   "requirements.install",
			Kind: domain.KindPrecondition,
			Path: dir,
			Err:  err,
		}
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		summary.Manifests = append(summary.Manifests, filepath.Join(dir, e.Name()))
	}
	sort.Strings(summary.Manifests)

	for _, m := range summary.Manifests {
		if err := uc.installer.Install(ctx, m); err != nil {
			return summary, err
		}
		summary.Installed++
	}
	return summary, nil
}
