package dockercli

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Prober verifies that the docker daemon is reachable and recent enough.
type Prober struct {
	run ports.CommandRunner
	min *semver.Version
}

func New(run ports.CommandRunner, minServerVersion string) (*Prober, error) {
	min, err := semver.NewVersion(minServerVersion)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "dockercli.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("min server version %q: %w", minServerVersion, err),
		}
	}
	return &Prober{run: run, min: min}, nil
}

var _ ports.RuntimeProber = (*Prober)(nil)

func (p *Prober) Verify(ctx context.Context) error {
	out, err := p.run.Capture(ctx, domain.Command{
		Name: "docker",
		Args: []string{"version", "--format", "{{.Server.Version}}"},
	})
	if err != nil {
		return &domain.OpError{
			Op:   "dockercli.verify",
			Kind: domain.KindPrecondition,
			Hint: "start the docker daemon (Docker Desktop or dockerd) and re-run",
			Err:  err,
		}
	}

	ver, err := semver.NewVersion(out)
	if err != nil {
		// Tolerate unparseable versions (nightly builds report odd
		// strings); reachability is the gate that matters.
		return nil
	}
	if ver.LessThan(p.min) {
		return &domain.OpError{
			Op:   "dockercli.verify",
			Kind: domain.KindPrecondition,
			Hint: fmt.Sprintf("upgrade docker to %s or newer (found %s)", p.min, ver),
			Err:  domain.ErrPrecondition,
		}
	}
	return nil
}
