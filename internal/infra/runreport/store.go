package runreport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Store persists setup reports as JSON under <root>/.schedenv/runs.
type Store struct {
	rootDir    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*Store)

// WithIndex enables a JSONL index: .schedenv/runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(root string, opts ...Option) *Store {
	s := &Store{
		rootDir: root,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*Store)(nil)

func (s *Store) SaveReport(report domain.SetupReport) (string, error) {
	dir := filepath.Join(s.rootDir, ".schedenv", "runs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runreport.mkdir",
			Kind: domain.KindExternalTool,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	id := ulid.MustNew(ulid.Timestamp(ts), ulid.DefaultEntropy()).String()
	report.RunID = id

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runreport.marshal",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	name := fmt.Sprintf("%s-%s.json", ts.Format("20060102-150405"), id)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runreport.write",
			Kind: domain.KindExternalTool,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, report); err != nil {
			return "", err
		}
	}
	return id, nil
}

type indexEntry struct {
	RunID     string       `json:"run_id"`
	StartedAt time.Time    `json:"started_at"`
	Reached   domain.Stage `json:"reached"`
	Failed    bool         `json:"failed"`
}

func (s *Store) appendIndex(dir string, report domain.SetupReport) error {
	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{
			Op:   "runreport.index",
			Kind: domain.KindExternalTool,
			Err:  err,
		}
	}
	defer f.Close()

	entry := indexEntry{
		RunID:     report.RunID,
		StartedAt: report.StartedAt.UTC(),
		Reached:   report.Reached,
		Failed:    report.Failed,
	}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		return &domain.OpError{
			Op:   "runreport.index",
			Kind: domain.KindExternalTool,
			Err:  err,
		}
	}
	return nil
}
