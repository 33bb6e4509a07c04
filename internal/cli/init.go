// internal/cli/init.go
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/prebuild/pkg/core"
)

func newInitCmd(opts *options, stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default checklist",
		Long: `Write the default configuration as YAML so it can be edited.

Examples:
  prebuild init
  prebuild init --config build/prebuild.yaml
  prebuild init --force`,
		Args: cobra.NoArgs,
		// The file may not exist yet, so skip loading it
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				path = core.DefaultConfigPath
			}
			if strings.EqualFold(filepath.Ext(path), ".hcl") {
				return fmt.Errorf("init writes YAML only, got %s", path)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := core.SaveConfig(core.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
