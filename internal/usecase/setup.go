package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Setup drives the environment bootstrap: a linear sequence of fatal
// gates. There is no partial-success state; each gate's check is
// idempotent, so re-running from the start is the recovery path.
type Setup struct {
	git     ports.GitClient
	runtime ports.RuntimeProber
	compose ports.ComposeClient
	now     func() time.Time
}

type SetupOption func(*Setup)

// WithNow is useful for tests.
func WithNow(now func() time.Time) SetupOption {
	return func(s *Setup) { s.now = now }
}

func NewSetup(git ports.GitClient, runtime ports.RuntimeProber, compose ports.ComposeClient, opts ...SetupOption) *Setup {
	s := &Setup{
		git:     git,
		runtime: runtime,
		compose: compose,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (uc *Setup) Execute(ctx context.Context, root string, cfg domain.Config) (domain.SetupReport, error) {
	report := domain.SetupReport{
		Root:      root,
		StartedAt: uc.now(),
		Reached:   domain.StageUnchecked,
	}

	gates := map[domain.Stage]func(context.Context) error{
		domain.StageSubmoduleVerified: func(ctx context.Context) error {
			return uc.verifySubmodule(root, cfg.Submodule.Path)
		},
		domain.StageSubmodulesUpdated: func(ctx context.Context) error {
			return uc.git.SubmoduleUpdate(ctx, root)
		},
		domain.StageRuntimeVerified: func(ctx context.Context) error {
			return uc.runtime.Verify(ctx)
		},
		domain.StageDirectoriesCreated: func(ctx context.Context) error {
			return uc.createDirs(root, cfg.PersistentDirs())
		},
		domain.StageImageBuilt: func(ctx context.Context) error {
			return uc.compose.Forward(ctx, root, "build")
		},
	}

	for _, stage := range domain.SetupStages() {
		start := uc.now()
		err := gates[stage](ctx)
		result := domain.StageResult{
			Stage:    stage,
			Passed:   err == nil,
			Duration: uc.now().Sub(start),
		}
		if err != nil {
			result.Error = err.Error()
			result.Hint = domain.HintOf(err)
			report.Stages = append(report.Stages, result)
			report.Failed = true
			report.EndedAt = uc.now()
			return report, err
		}
		report.Stages = append(report.Stages, result)
		report.Reached = stage
	}

	report.EndedAt = uc.now()
	return report, nil
}

// verifySubmodule requires a non-empty submodule checkout; an empty
// directory is what `git clone` leaves for an uninitialized submodule.
func (uc *Setup) verifySubmodule(root, path string) error {
	target := filepath.Join(root, path)

	entries, err := os.ReadDir(target)
	if err != nil || len(entries) == 0 {
		return &domain.OpError{
			Op:   "setup.submodule",
			Kind: domain.KindPrecondition,
			Path: target,
			Hint: fmt.Sprintf("run `schedenv submodule add <url>` to attach %s first", path),
			Err:  domain.ErrPrecondition,
		}
	}
	return nil
}

func (uc *Setup) createDirs(root string, dirs []string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return &domain.OpError{
				Op:   "setup.dirs",
				Kind: domain.KindPrecondition,
				Path: d,
				Err:  err,
			}
		}
	}
	return nil
}
