package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/infra/logger"
	"github.com/Kappibw/scheduling/internal/usecase"
)

func requirementsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "requirements",
		Short: "Manage Python requirement manifests",
	}

	c.AddCommand(requirementsInstallCmd())
	return c
}

func requirementsInstallCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "install [dir]",
		Short: "Install every *.txt manifest in the requirements directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			dir := filepath.Join(ws.root, ws.cfg.Paths.RequirementsDir)
			if len(args) == 1 {
				dir = args[0]
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(ws.root, dir)
				}
			}

			uc := usecase.NewInstallRequirements(ws.installer)
			summary, err := uc.Execute(cmd.Context(), dir)
			if err != nil {
				return err
			}

			switch {
			case summary.MissingDir:
				// Deliberate soft-fail: absence of optional manifests
				// is a warning, not an error.
				fmt.Fprintf(os.Stderr, "warning: requirements directory %s not found, nothing to install\n", dir)
			case len(summary.Manifests) == 0:
				fmt.Fprintf(os.Stderr, "warning: no *.txt manifests in %s, nothing to install\n", dir)
			default:
				fmt.Printf("Installed %d manifest(s) from %s\n", summary.Installed, dir)
			}

			logger.L().Info("requirements.installed",
				"dir", dir,
				"missing_dir", summary.MissingDir,
				"installed", summary.Installed,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
