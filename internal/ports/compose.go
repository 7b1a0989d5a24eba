package ports

import (
	"context"

	"github.com/Kappibw/scheduling/internal/domain"
)

// ComposeClient forwards commands to the compose orchestrator.
type ComposeClient interface {
	// Forward runs `docker compose <args...>` in root, streaming output
	// and passing the exit code through on failure.
	Forward(ctx context.Context, root string, args ...string) error

	// ForwardInteractive is Forward with the terminal attached (shell,
	// exec and other TTY-bound commands).
	ForwardInteractive(ctx context.Context, root string, args ...string) error

	// Services returns the current state of the project's services.
	Services(ctx context.Context, root string) ([]domain.ServiceState, error)
}
