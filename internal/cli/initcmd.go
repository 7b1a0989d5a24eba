package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/fsworkspace"
	"github.com/Kappibw/scheduling/internal/infra/logger"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a schedenv workspace (compose file, Dockerfile, dev-container, requirements)",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
				return err
			}
			logger.L().Info("workspace.initialized", "root", abs, "force", force)

			fmt.Printf("Workspace ready at %s\n", abs)
			fmt.Println("Next steps:")
			fmt.Println("  1. schedenv submodule add <repository-url>")
			fmt.Println("  2. schedenv setup")
			fmt.Println("  3. schedenv up")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Workspace root (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}
