// internal/cli/doctor.go
package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arc-language/prebuild/pkg/platform"
)

func newDoctorCmd(opts *options, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show what prebuild finds on this host",
		Long: `Run the requirement checks and platform configuration and print a readable
summary instead of build directives. Nothing is written to OUT_DIR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config

			tools := []string{cfg.Compiler, cfg.PkgConfig, cfg.Git}
			if runtime.GOOS == platform.Supported {
				tools = append(tools, cfg.DevToolsLocator)
			}
			if missing := platform.MissingCommands(tools...); len(missing) > 0 {
				fmt.Fprintf(stdout, "Not in PATH: %v\n\n", missing)
			}

			p, err := opts.pipeline()
			if err != nil {
				return err
			}

			res, runErr := p.Run(cmd.Context())
			if res != nil {
				if err := p.Report(res).WriteText(stdout); err != nil {
					return err
				}
			}
			if runErr != nil {
				return fmt.Errorf("checks stopped early: %w", runErr)
			}
			return nil
		},
	}
}
