package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kappibw/scheduling/internal/domain"
)

func writeManifest(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("numpy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestInstallRequirements_MissingDirIsSoftFail(t *testing.T) {
	inst := &fakeInstaller{}
	uc := NewInstallRequirements(inst)

	summary, err := uc.Execute(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not be an error: %v", err)
	}
	if !summary.MissingDir {
		t.Error("expected MissingDir=true")
	}
	if len(inst.installed) != 0 {
		t.Error("nothing must be installed")
	}
}

func TestInstallRequirements_EmptyDirInstallsNothing(t *testing.T) {
	inst := &fakeInstaller{}
	uc := NewInstallRequirements(inst)

	summary, err := uc.Execute(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("empty dir must not be an error: %v", err)
	}
	if summary.MissingDir {
		t.Error("dir exists; MissingDir must be false")
	}
	if summary.Installed != 0 || len(summary.Manifests) != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestInstallRequirements_InstallsInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	b := writeManifest(t, dir, "extras.txt")
	a := writeManifest(t, dir, "base.txt")
	writeManifest(t, dir, "notes.md") // ignored: wrong extension

	inst := &fakeInstaller{}
	uc := NewInstallRequirements(inst)

	summary, err := uc.Execute(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Installed != 2 {
		t.Errorf("expected 2 installed, got %d", summary.Installed)
	}
	if len(inst.installed) != 2 || inst.installed[0] != a || inst.installed[1] != b {
		t.Errorf("expected lexical order [%s %s], got %v", a, b, inst.installed)
	}
}

func TestInstallRequirements_FirstFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.txt")
	broken := writeManifest(t, dir, "b.txt")
	writeManifest(t, dir, "c.txt")

	inst := &fakeInstaller{failOn: broken}
	uc := NewInstallRequirements(inst)

	summary, err := uc.Execute(context.Background(), dir)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindExternalTool) {
		t.Errorf("expected KindExternalTool, got: %v", err)
	}
	// a.txt installed, b.txt failed, c.txt never attempted.
	if summary.Installed != 1 {
		t.Errorf("expected 1 installed before failure, got %d", summary.Installed)
	}
	if len(inst.installed) != 1 {
		t.Errorf("expected c.txt to be skipped, got %v", inst.installed)
	}
}

func TestInstallRequirements_SubdirectoriesIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeManifest(t, dir, "base.txt")

	inst := &fakeInstaller{}
	uc := NewInstallRequirements(inst)

	summary, err := uc.Execute(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Installed != 1 {
		t.Errorf("expected only the file manifest, got %+v", summary)
	}
}
