package runreport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kappibw/scheduling/internal/domain"
)

func sampleReport() domain.SetupReport {
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.SetupReport{
		Root:      "/ws",
		StartedAt: started,
		EndedAt:   started.Add(90 * time.Second),
		Reached:   domain.StageImageBuilt,
		Stages: []domain.StageResult{
			{Stage: domain.StageSubmoduleVerified, Passed: true},
			{Stage: domain.StageImageBuilt, Passed: true},
		},
	}
}

func TestSaveReport_WritesJSONWithRunID(t *testing.T) {
	tmp := t.TempDir()
	s := NewStore(tmp)

	id, err := s.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run id")
	}

	dir := filepath.Join(tmp, ".schedenv", "runs")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read runs dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 report file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "20240301-100000-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected report filename: %s", name)
	}

	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	var got domain.SetupReport
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if got.RunID != id {
		t.Errorf("expected run id %s in report, got %s", id, got.RunID)
	}
	if got.Reached != domain.StageImageBuilt {
		t.Errorf("expected reached=%s, got %s", domain.StageImageBuilt, got.Reached)
	}
}

func TestSaveReport_DistinctIDs(t *testing.T) {
	s := NewStore(t.TempDir())

	a, err := s.SaveReport(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.SaveReport(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("expected distinct run ids, got %s twice", a)
	}
}

func TestSaveReport_IndexAppends(t *testing.T) {
	tmp := t.TempDir()
	s := NewStore(tmp, WithIndex(true))

	if _, err := s.SaveReport(sampleReport()); err != nil {
		t.Fatal(err)
	}
	failed := sampleReport()
	failed.Failed = true
	failed.Reached = domain.StageRuntimeVerified
	if _, err := s.SaveReport(failed); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".schedenv", "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	var second indexEntry
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("index line is not valid JSON: %v", err)
	}
	if !second.Failed || second.Reached != domain.StageRuntimeVerified {
		t.Errorf("unexpected index entry: %+v", second)
	}
}

func TestSaveReport_ZeroStartUsesNow(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	s := NewStore(t.TempDir(), WithNow(func() time.Time { return fixed }))

	r := sampleReport()
	r.StartedAt = time.Time{}
	if _, err := s.SaveReport(r); err != nil {
		t.Fatal(err)
	}
}
