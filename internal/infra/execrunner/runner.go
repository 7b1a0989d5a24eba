package execrunner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Kappibw/scheduling/internal/domain"
)

// Runner executes external tools with os/exec. Output destinations are
// fields so tests can capture what would reach the terminal.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

func New() *Runner {
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	if cmd.Interactive {
		c.Stdin = r.Stdin
		c.Stdout = r.Stdout
		c.Stderr = r.Stderr
		return r.wrap(cmd, c.Run())
	}

	stdout, err := c.StdoutPipe()
	if err != nil {
		return r.wrap(cmd, err)
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return r.wrap(cmd, err)
	}

	if err := c.Start(); err != nil {
		return r.wrap(cmd, err)
	}

	// Drain both pipes before Wait; Wait closes them.
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(r.Stdout, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(r.Stderr, stderr)
		return err
	})
	copyErr := g.Wait()

	if err := c.Wait(); err != nil {
		return r.wrap(cmd, err)
	}
	return r.wrap(cmd, copyErr)
}

func (r *Runner) Capture(ctx context.Context, cmd domain.Command) (string, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	out, err := c.Output()
	if err != nil {
		return "", r.wrap(cmd, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Runner) wrap(cmd domain.Command, err error) error {
	if err == nil {
		return nil
	}

	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}

	return &domain.OpError{
		Op:       "execrunner." + cmd.Name,
		Kind:     domain.KindExternalTool,
		ExitCode: code,
		Err:      err,
	}
}
