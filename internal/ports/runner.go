package ports

import (
	"context"

	"github.com/Kappibw/scheduling/internal/domain"
)

// CommandRunner executes external tools (git, docker, pip).
type CommandRunner interface {
	// Run streams the tool's output to the user and blocks until it
	// exits. A non-zero exit is returned as a KindExternalTool OpError
	// carrying the tool's exit status.
	Run(ctx context.Context, cmd domain.Command) error

	// Capture runs the tool silently and returns its trimmed stdout.
	Capture(ctx context.Context, cmd domain.Command) (string, error)
}
