package usecase

import (
	"context"

	"github.com/Kappibw/scheduling/internal/domain"
)

type fakeGit struct {
	workTree bool

	addCalls    []string // "url path"
	addBranches []string
	addErr      error
	updateCalls int
	updateErr   error
}

func (f *fakeGit) IsWorkTree(_ context.Context, _ string) bool { return f.workTree }

func (f *fakeGit) SubmoduleAdd(_ context.Context, _, url, path, branch string) error {
	f.addCalls = append(f.addCalls, url+" "+path)
	f.addBranches = append(f.addBranches, branch)
	return f.addErr
}

func (f *fakeGit) SubmoduleUpdate(_ context.Context, _ string) error {
	f.updateCalls++
	return f.updateErr
}

type fakeInstaller struct {
	installed []string
	failOn    string
}

func (f *fakeInstaller) Install(_ context.Context, manifest string) error {
	if f.failOn != "" && manifest == f.failOn {
		return &domain.OpError{
			Op:       "pipinstall.install",
			Kind:     domain.KindExternalTool,
			Path:     manifest,
			ExitCode: 1,
			Err:      domain.ErrExternalTool,
		}
	}
	f.installed = append(f.installed, manifest)
	return nil
}

type fakeProber struct {
	err   error
	calls int
}

func (f *fakeProber) Verify(_ context.Context) error {
	f.calls++
	return f.err
}

type fakeCompose struct {
	forwards [][]string
	err      error
	services []domain.ServiceState
}

func (f *fakeCompose) Forward(_ context.Context, _ string, args ...string) error {
	f.forwards = append(f.forwards, args)
	return f.err
}

func (f *fakeCompose) ForwardInteractive(_ context.Context, _ string, args ...string) error {
	f.forwards = append(f.forwards, append([]string{"interactive"}, args...))
	return f.err
}

func (f *fakeCompose) Services(_ context.Context, _ string) ([]domain.ServiceState, error) {
	return f.services, f.err
}
