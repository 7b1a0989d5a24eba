package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// composeCmds is the command surface: stateless forwards to
// `docker compose` with exit-code passthrough. `shell` is the only
// command with conditional logic (attach vs. ephemeral run).
func composeCmds() []*cobra.Command {
	return []*cobra.Command{
		forwardCmd("build", "Build the environment image", "build"),
		forwardCmd("up", "Start the environment in the background", "up", "-d"),
		forwardCmd("down", "Stop the environment", "down"),
		forwardCmd("clean", "Stop the environment and remove volumes and the local image",
			"down", "--volumes", "--remove-orphans", "--rmi", "local"),
		forwardCmd("ps", "List environment services", "ps"),
		forwardCmd("restart", "Restart the environment", "restart"),
		shellCmd(),
		execCmd(),
		logsCmd(),
		rebuildCmd(),
		jupyterCmd(),
	}
}

func forwardCmd(use, short string, forwarded ...string) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			return ws.compose.Forward(cmd.Context(), ws.root, forwarded...)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func shellCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open a shell in the environment (attach if running, else ephemeral)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			svc := ws.cfg.Compose.Service
			if serviceRunning(cmd, ws, svc) {
				return ws.compose.ForwardInteractive(cmd.Context(), ws.root, "exec", svc, "bash")
			}
			return ws.compose.ForwardInteractive(cmd.Context(), ws.root, "run", "--rm", svc, "bash")
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func serviceRunning(cmd *cobra.Command, ws *workspaceCtx, svc string) bool {
	states, err := ws.compose.Services(cmd.Context(), ws.root)
	if err != nil {
		// Liveness is an optimization; fall back to an ephemeral run.
		return false
	}
	for _, s := range states {
		if s.Name == svc && s.Running() {
			return true
		}
	}
	return false
}

func execCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a command inside the running environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			forwarded := append([]string{"exec", ws.cfg.Compose.Service}, args...)
			return ws.compose.ForwardInteractive(cmd.Context(), ws.root, forwarded...)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func logsCmd() *cobra.Command {
	var workspace string
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show environment logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			args := []string{"logs"}
			if follow {
				args = append(args, "--follow")
			}
			return ws.compose.Forward(cmd.Context(), ws.root, args...)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	return cmd
}

func rebuildCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the image from scratch and restart the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if err := ws.compose.Forward(cmd.Context(), ws.root, "build", "--no-cache"); err != nil {
				return err
			}
			return ws.compose.Forward(cmd.Context(), ws.root, "up", "-d")
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func jupyterCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "jupyter",
		Short: "Ensure the environment is up and print the Jupyter Lab URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if err := ws.compose.Forward(cmd.Context(), ws.root, "up", "-d"); err != nil {
				return err
			}
			fmt.Printf("Jupyter Lab: http://localhost:%d\n", ws.cfg.Jupyter.Port)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
