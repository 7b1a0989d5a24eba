package pipinstall

import (
	"context"
	"strings"
	"testing"

	"github.com/Kappibw/scheduling/internal/domain"
)

type fakeRunner struct {
	runs   []domain.Command
	runErr error
}

func (f *fakeRunner) Run(_ context.Context, cmd domain.Command) error {
	f.runs = append(f.runs, cmd)
	return f.runErr
}

func (f *fakeRunner) Capture(_ context.Context, _ domain.Command) (string, error) {
	return "", nil
}

func TestInstall_InvokesPipModule(t *testing.T) {
	fr := &fakeRunner{}
	i := New(fr)

	if err := i.Install(context.Background(), "requirements/base.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fr.runs[0].Name != "python3" {
		t.Errorf("expected python3, got %q", fr.runs[0].Name)
	}
	got := strings.Join(fr.runs[0].Args, " ")
	if got != "-m pip install -r requirements/base.txt" {
		t.Errorf("unexpected args: %s", got)
	}
}

func TestInstall_WithPythonOverride(t *testing.T) {
	fr := &fakeRunner{}
	i := New(fr, WithPython("python3.11"))

	_ = i.Install(context.Background(), "requirements/base.txt")
	if fr.runs[0].Name != "python3.11" {
		t.Errorf("expected python3.11, got %q", fr.runs[0].Name)
	}
}

func TestInstall_FailureIsFatalWithManifestPath(t *testing.T) {
	fr := &fakeRunner{runErr: &domain.OpError{Kind: domain.KindExternalTool, ExitCode: 1}}
	i := New(fr)

	err := i.Install(context.Background(), "requirements/broken.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindExternalTool) {
		t.Errorf("expected KindExternalTool, got: %v", err)
	}
	if !strings.Contains(err.Error(), "requirements/broken.txt") {
		t.Errorf("expected manifest path in error, got: %v", err)
	}
}
