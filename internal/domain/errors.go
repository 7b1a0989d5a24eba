package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrPrecondition  = errors.New("precondition not met")
	ErrExternalTool  = errors.New("external tool failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage         ErrorKind = "usage"
	KindPrecondition  ErrorKind = "precondition"
	KindExternalTool  ErrorKind = "external_tool"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with operation context and a kind.
// ExitCode carries the exit status of a failed external tool so the CLI
// can pass it through; Hint is a one-line remediation shown to the user.
type OpError struct {
	Op       string
	Kind     ErrorKind
	Path     string // Optional: relevant file path
	Hint     string // Optional: remediation hint
	ExitCode int    // Optional: external tool exit status
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// HintOf returns the remediation hint attached to err, if any.
func HintOf(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Hint
	}
	return ""
}

// ExitCodeOf returns the exit status an external tool failed with,
// or 0 when err carries none.
func ExitCodeOf(err error) int {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.ExitCode
	}
	return 0
}
