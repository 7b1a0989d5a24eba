package gitcli

import (
	"context"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/ports"
)

// Client wraps the git CLI. All operations run with `git -C <dir>` so
// the working directory is explicit rather than ambient.
type Client struct {
	run ports.CommandRunner
}

func New(run ports.CommandRunner) *Client {
	return &Client{run: run}
}

var _ ports.GitClient = (*Client)(nil)

func (c *Client) IsWorkTree(ctx context.Context, dir string) bool {
	out, err := c.run.Capture(ctx, domain.Command{
		Dir:  dir,
		Name: "git",
		Args: []string{"rev-parse", "--is-inside-work-tree"},
	})
	return err == nil && out == "true"
}

func (c *Client) SubmoduleAdd(ctx context.Context, dir, url, path, branch string) error {
	args := []string{"submodule", "add"}
	if branch != "" {
		args = append(args, "-b", branch)
	}
	args = append(args, url, path)

	err := c.run.Run(ctx, domain.Command{
		Dir:  dir,
		Name: "git",
		Args: args,
	})
	if err != nil {
		return &domain.OpError{
			Op:       "gitcli.submoduleadd",
			Kind:     domain.KindExternalTool,
			Path:     path,
			Hint:     "check the repository URL and your network access, then re-run",
			ExitCode: domain.ExitCodeOf(err),
			Err:      err,
		}
	}
	return nil
}

func (c *Client) SubmoduleUpdate(ctx context.Context, dir string) error {
	err := c.run.Run(ctx, domain.Command{
		Dir:  dir,
		Name: "git",
		Args: []string{"submodule", "update", "--init", "--recursive"},
	})
	if err != nil {
		return &domain.OpError{
			Op:       "gitcli.submoduleupdate",
			Kind:     domain.KindExternalTool,
			Hint:     "check `.gitmodules` and your network access, then re-run",
			ExitCode: domain.ExitCodeOf(err),
			Err:      err,
		}
	}
	return nil
}
