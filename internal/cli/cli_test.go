package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kappibw/scheduling/internal/domain"
)

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	expected := []string{
		"init", "submodule", "requirements", "setup", "status", "version",
		"build", "up", "down", "clean", "ps", "restart", "shell", "exec", "logs", "rebuild", "jupyter",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestSubmoduleCmd_HasAddAndUpdate(t *testing.T) {
	cmd := submoduleCmd()
	found := map[string]bool{}
	for _, sub := range cmd.Commands() {
		found[sub.Name()] = true
	}
	if !found["add"] || !found["update"] {
		t.Errorf("expected add and update subcommands, got %v", found)
	}
}

func TestSubmoduleAddCmd_Flags(t *testing.T) {
	cmd := submoduleAddCmd()
	for _, flag := range []string{"workspace", "path", "branch"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on submodule add", flag)
		}
	}
}

func TestRequirementsCmd_HasInstall(t *testing.T) {
	cmd := requirementsCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "install" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'install' subcommand under requirements")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

func TestLogsCmd_FollowFlag(t *testing.T) {
	cmd := logsCmd()
	if cmd.Flags().Lookup("follow") == nil {
		t.Error("expected --follow flag on logs command")
	}
}

func TestStatusCmd_WatchFlag(t *testing.T) {
	cmd := statusCmd()
	if cmd.Flags().Lookup("watch") == nil {
		t.Error("expected --watch flag on status command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_AutodetectFindsConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "schedenv.yaml"), []byte("schedenv: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}

	got, err := resolveWorkspaceRoot("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolved, _ := filepath.EvalSymlinks(tmp)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != resolved {
		t.Errorf("expected %q, got %q", resolved, gotResolved)
	}
}

// --- output helpers ---

func TestPrintReport_MarksFailures(t *testing.T) {
	report := domain.SetupReport{
		Stages: []domain.StageResult{
			{Stage: domain.StageSubmoduleVerified, Passed: true, Duration: 12 * time.Millisecond},
			{Stage: domain.StageRuntimeVerified, Passed: false, Duration: time.Second},
		},
	}
	out := captureStdout(t, func() { printReport(report) })

	for _, want := range []string{"submodule-verified", "ok", "runtime-verified", "FAILED"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report output, got:\n%s", want, out)
		}
	}
}

func TestPrintServices_Empty(t *testing.T) {
	out := captureStdout(t, func() { printServices(nil) })
	if !strings.Contains(out, "schedenv up") {
		t.Errorf("expected up suggestion, got:\n%s", out)
	}
}

func TestPrintServices_Table(t *testing.T) {
	states := []domain.ServiceState{
		{Name: "scheduler", State: "running", Status: "Up 2 minutes", Ports: "0.0.0.0:8888->8888/tcp"},
	}
	out := captureStdout(t, func() { printServices(states) })
	for _, want := range []string{"SERVICE", "scheduler", "running", "8888"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table, got:\n%s", want, out)
		}
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	_ = w.Close()

	buf := make([]byte, 64*1024)
	n, _ := r.Read(buf)
	return string(buf[:n])
}
