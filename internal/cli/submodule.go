package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/logger"
	"github.com/Kappibw/scheduling/internal/usecase"
)

func submoduleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "submodule",
		Short: "Manage the external research-code submodule",
	}

	c.AddCommand(submoduleAddCmd())
	c.AddCommand(submoduleUpdateCmd())
	return c
}

func submoduleAddCmd() *cobra.Command {
	var workspace string
	var path string
	var branch string

	cmd := &cobra.Command{
		Use:   "add [repository-url]",
		Short: "Attach the scheduler repository as a git submodule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspaceOrCwd(workspace)
			if err != nil {
				return err
			}

			url := ws.cfg.Submodule.URL
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				_ = cmd.Usage()
				return &domain.OpError{
					Op:   "submodule.add",
					Kind: domain.KindUsage,
					Err:  errors.New("repository URL required (argument or schedenv.yaml submodule.url)"),
				}
			}

			target := ws.cfg.Submodule.Path
			if path != "" {
				target = path
			}
			track := ws.cfg.Submodule.Branch
			if branch != "" {
				track = branch
			}

			uc := usecase.NewAddSubmodule(ws.git)
			if err := uc.Execute(cmd.Context(), ws.root, url, target, track); err != nil {
				return err
			}
			logger.L().Info("submodule.added", "url", url, "path", target, "branch", track)

			fmt.Printf("Submodule %s attached at %s\n", url, target)
			fmt.Println("Run `schedenv setup` to build the environment.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&path, "path", "", "Checkout path (default from schedenv.yaml)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to track (default from schedenv.yaml)")
	return cmd
}

func submoduleUpdateCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Initialize and update all submodules recursively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if err := ws.git.SubmoduleUpdate(cmd.Context(), ws.root); err != nil {
				return err
			}
			logger.L().Info("submodule.updated", "root", ws.root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
