package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_CreatesLogFile(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	want := filepath.Join(tmp, ".schedenv", "logs", "schedenv.log")
	if Path() != want {
		t.Errorf("expected path %s, got %s", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Errorf("expected ready logger: %v", err)
	}

	L().Info("test.entry", "key", "value")
	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "test.entry") {
		t.Errorf("expected log entry, got: %s", b)
	}
}

func TestCleanup_ResetsToDiscard(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Error("expected not-ready after cleanup")
	}
	// Logging after cleanup must not panic.
	L().Info("after.cleanup")
}
