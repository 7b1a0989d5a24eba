package composecli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Client forwards commands to `docker compose`, pinning the compose file
// and project name so every forward is deterministic regardless of the
// caller's environment.
type Client struct {
	run     ports.CommandRunner
	file    string
	project string
}

func New(run ports.CommandRunner, cfg domain.ComposeConfig) *Client {
	return &Client{
		run:     run,
		file:    cfg.File,
		project: cfg.Project,
	}
}

var _ ports.ComposeClient = (*Client)(nil)

func (c *Client) baseArgs(extra ...string) []string {
	args := []string{"compose", "-f", c.file, "-p", c.project}
	return append(args, extra...)
}

func (c *Client) Forward(ctx context.Context, root string, args ...string) error {
	return c.run.Run(ctx, domain.Command{
		Dir:  root,
		Name: "docker",
		Args: c.baseArgs(args...),
	})
}

func (c *Client) ForwardInteractive(ctx context.Context, root string, args ...string) error {
	return c.run.Run(ctx, domain.Command{
		Dir:         root,
		Name:        "docker",
		Args:        c.baseArgs(args...),
		Interactive: true,
	})
}

func (c *Client) Services(ctx context.Context, root string) ([]domain.ServiceState, error) {
	out, err := c.run.Capture(ctx, domain.Command{
		Dir:  root,
		Name: "docker",
		Args: c.baseArgs("ps", "--all", "--format", "json"),
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "composecli.services",
			Kind: domain.KindExternalTool,
			Hint: "is the docker daemon running?",
			Err:  err,
		}
	}
	return parseServices(out)
}

type psEntry struct {
	Name    string `json:"Name"`
	Service string `json:"Service"`
	State   string `json:"State"`
	Status  string `json:"Status"`
	Ports   string `json:"Ports"`
}

// parseServices accepts both output shapes of `compose ps --format json`:
// a single JSON array (compose < 2.21) and one JSON object per line.
func parseServices(out string) ([]domain.ServiceState, error) {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil, nil
	}

	var entries []psEntry
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, &domain.OpError{
				Op:   "composecli.parse",
				Kind: domain.KindExternalTool,
				Err:  err,
			}
		}
	} else {
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			var e psEntry
			if err := json.Unmarshal([]byte(line), &e); err != nil {
				return nil, &domain.OpError{
					Op:   "composecli.parse",
					Kind: domain.KindExternalTool,
					Err:  err,
				}
			}
			entries = append(entries, e)
		}
	}

	states := make([]domain.ServiceState, 0, len(entries))
	for _, e := range entries {
		name := e.Service
		if name == "" {
			name = e.Name
		}
		states = append(states, domain.ServiceState{
			Name:   name,
			State:  e.State,
			Status: e.Status,
			Ports:  e.Ports,
		})
	}
	return states, nil
}
