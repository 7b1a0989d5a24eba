package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/Kappibw/scheduling/internal/domain"
)

type Deps struct {
	// Service is the compose service the dashboard highlights.
	Service string
	Root    string

	// Poll fetches the current service states.
	Poll func(ctx context.Context) ([]domain.ServiceState, error)

	// Interval between polls; defaults to 2s.
	Interval time.Duration

	Logger *slog.Logger
}
