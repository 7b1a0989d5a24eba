package ports

import "context"

// RuntimeProber checks that the container runtime is usable.
type RuntimeProber interface {
	// Verify confirms the daemon is reachable and its server version
	// meets the configured minimum.
	Verify(ctx context.Context) error
}
