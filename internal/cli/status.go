package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/logger"
	"github.com/Kappibw/scheduling/internal/ui/tui"
)

func statusCmd() *cobra.Command {
	var workspace string
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show environment service state (use --watch for a live view)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			if watch {
				return tui.Run(tui.Deps{
					Service: ws.cfg.Compose.Service,
					Root:    ws.root,
					Poll: func(ctx context.Context) ([]domain.ServiceState, error) {
						return ws.compose.Services(ctx, ws.root)
					},
					Logger: logger.L(),
				})
			}

			states, err := ws.compose.Services(cmd.Context(), ws.root)
			if err != nil {
				return err
			}
			printServices(states)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Live-updating service dashboard")
	return cmd
}

func printServices(states []domain.ServiceState) {
	if len(states) == 0 {
		fmt.Println("(no services; run `schedenv up`)")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSTATE\tSTATUS\tPORTS")
	for _, s := range states {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.State, s.Status, s.Ports)
	}
	_ = w.Flush()
}
