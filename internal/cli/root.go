// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/prebuild"
	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/platform"
	"github.com/arc-language/prebuild/pkg/runner"
)

// Version is overridden at link time
var Version = "0.1.0"

// options holds global flags and what was loaded from them
type options struct {
	cfgFile   string
	envFiles  []string
	debug     bool
	logFormat string

	config *core.Config
	env    *core.Env
	logger *slog.Logger

	// Set by tests; nil means exec subprocesses on the real host
	runner core.Runner
	host   *platform.Identity
}

// runOptions holds flags of the root command itself
type runOptions struct {
	security       bool
	targetFeatures bool
	versionInfo    bool
	reportPath     string
}

// NewRootCommand builds the command tree writing directives to stdout and
// diagnostics to stderr
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(&options{}, stdout, stderr)
}

func newRootCommand(opts *options, stdout, stderr io.Writer) *cobra.Command {
	run := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "prebuild",
		Short: "Build environment validator and platform configurator",
		Long: `prebuild - Build environment validator and platform configurator

Checks the compiler, system libraries and developer tools before a build and
prints build directives for the host build tool on stdout. Missing optional
requirements become warnings; only tools that cannot run stop the build.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd.Context(), opts, run, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, YAML or .hcl (default is ./"+core.DefaultConfigPath+")")
	rootCmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "dotenv files supplying build variables")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format on stderr (text, json)")

	// Optional phases
	rootCmd.Flags().BoolVar(&run.security, "security", false, "emit hardening flags and security frameworks")
	rootCmd.Flags().BoolVar(&run.targetFeatures, "target-features", false, "emit target OS feature flags (requires a target OS variable)")
	rootCmd.Flags().BoolVar(&run.versionInfo, "version-info", false, "generate the version constants artifact in OUT_DIR")
	rootCmd.Flags().StringVar(&run.reportPath, "report", "", "write a YAML report of the run to this path")

	// Add commands
	rootCmd.AddCommand(newDoctorCmd(opts, stdout))
	rootCmd.AddCommand(newInitCmd(opts, stdout))
	rootCmd.AddCommand(newVersionCmd(stdout))

	return rootCmd
}

// Execute executes the root command
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func (o *options) load(stderr io.Writer) error {
	cfg, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if o.debug {
		cfg.Debug = true
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}

	cfg.TrackConfigFile(o.cfgFile)

	env, err := core.LoadEnv(o.envFiles...)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}

	o.config = cfg
	o.env = env
	o.logger = newLogger(level, cfg.LogFormat, stderr)
	return nil
}

func (o *options) pipeline() (*prebuild.Pipeline, error) {
	r := o.runner
	if r == nil {
		r = runner.New("", o.logger)
	}
	popts := []prebuild.Option{
		prebuild.WithLogger(o.logger),
		prebuild.WithRunner(r),
	}
	if o.host != nil {
		popts = append(popts, prebuild.WithHost(*o.host))
	}
	return prebuild.NewPipeline(o.config, o.env, popts...)
}

func runPipeline(ctx context.Context, opts *options, run *runOptions, stdout io.Writer) error {
	p, err := opts.pipeline()
	if err != nil {
		return err
	}

	var phases []string
	if run.security {
		phases = append(phases, prebuild.PhaseSecurity)
	}
	if run.targetFeatures {
		phases = append(phases, prebuild.PhaseTargetFeatures)
	}
	if run.versionInfo {
		phases = append(phases, prebuild.PhaseVersionInfo)
	}

	res, runErr := p.Run(ctx, phases...)

	// Directives gathered before a fatal error are still useful to the developer
	if err := p.Emit(stdout, res); err != nil {
		return err
	}

	if run.reportPath != "" && res != nil {
		if err := p.Report(res).WriteFile(run.reportPath); err != nil {
			return err
		}
		opts.logger.Debug("report written", "path", run.reportPath)
	}

	return runErr
}
