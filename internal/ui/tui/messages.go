package tui

import (
	"time"

	"github.com/Kappibw/scheduling/internal/domain"
)

type servicesMsg struct {
	states []domain.ServiceState
	err    error
	at     time.Time
}

type tickMsg struct{}
