package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kappibw/scheduling/internal/domain"
	"github.com/Kappibw/scheduling/internal/infra/logger"
	"github.com/Kappibw/scheduling/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if hint := domain.HintOf(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		code := domain.ExitCodeOf(err)
		if code == 0 {
			code = 1
		}
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "schedenv",
		Short:        "Containerized development environment for the spacecraft scheduler",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			// Best effort; commands log through logger.L() which
			// falls back to discard.
			_, _ = logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .schedenv/logs/schedenv.log")

	cmd.AddCommand(initCmd())
	cmd.AddCommand(submoduleCmd())
	cmd.AddCommand(requirementsCmd())
	cmd.AddCommand(setupCmd())
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(versionCmd())
	cmd.AddCommand(composeCmds()...)

	return cmd
}
