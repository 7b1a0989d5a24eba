package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/logger"
	"github.com/Kappibw/scheduling/internal/usecase"
)

func setupCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the environment: verify submodule, check docker, create dirs, build image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewSetup(ws.git, ws.runtime, ws.compose)
			report, runErr := uc.Execute(cmd.Context(), ws.root, ws.cfg)

			printReport(report)

			if id, serr := ws.reports.SaveReport(report); serr != nil {
				// The report is diagnostics; losing it must not mask
				// the setup outcome.
				fmt.Fprintf(os.Stderr, "warning: could not save setup report: %v\n", serr)
			} else {
				fmt.Printf("Report: .schedenv/runs (%s)\n", id)
			}

			logger.L().Info("setup.finished",
				"reached", string(report.Reached),
				"failed", report.Failed,
			)

			if runErr != nil {
				return runErr
			}
			fmt.Println("Environment ready. Run `schedenv up` to start it.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func printReport(report domain.SetupReport) {
	for _, s := range report.Stages {
		mark := "ok"
		if !s.Passed {
			mark = "FAILED"
		}
		fmt.Printf("==> %-20s %s (%s)\n", s.Stage, mark, s.Duration.Round(time.Millisecond))
	}
}
