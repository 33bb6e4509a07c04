// prebuild.go
package prebuild

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/arc-language/prebuild/pkg/configure"
	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
	"github.com/arc-language/prebuild/pkg/probe"
	"github.com/arc-language/prebuild/pkg/report"
	"github.com/arc-language/prebuild/pkg/requirements"
	"github.com/arc-language/prebuild/pkg/runner"
	"github.com/arc-language/prebuild/pkg/versioninfo"
)

// Re-export core types for convenience
type (
	Config      = core.Config
	Env         = core.Env
	Runner      = core.Runner
	ProbeResult = core.ProbeResult
	Directive   = directive.Directive
	Identity    = platform.Identity
	VersionInfo = versioninfo.Info
)

// Re-export phase names
const (
	PhaseSecurity       = core.PhaseSecurity
	PhaseTargetFeatures = core.PhaseTargetFeatures
	PhaseVersionInfo    = core.PhaseVersionInfo
)

// DefaultConfig returns a configuration reproducing the fixed checklist
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Pipeline runs the checks and configurators in their fixed order
type Pipeline struct {
	config  *core.Config
	env     *core.Env
	runner  core.Runner
	host    platform.Identity
	logger  *slog.Logger
	now     func() time.Time
	commits versioninfo.CommitSource
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithRunner replaces the subprocess runner
func WithRunner(r core.Runner) Option {
	return func(p *Pipeline) { p.runner = r }
}

// WithHost overrides the compile-time platform
func WithHost(id platform.Identity) Option {
	return func(p *Pipeline) { p.host = id }
}

// WithLogger sets the diagnostic logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithClock sets the clock used for build timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithCommitSource overrides how the commit hash is read
func WithCommitSource(c versioninfo.CommitSource) Option {
	return func(p *Pipeline) { p.commits = c }
}

// NewPipeline creates a pipeline. A nil config means DefaultConfig and a nil
// env means an empty environment.
func NewPipeline(config *core.Config, env *core.Env, opts ...Option) (*Pipeline, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if env == nil {
		env = &core.Env{}
	}

	p := &Pipeline{
		config: config,
		env:    env,
		host:   platform.Host(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.runner == nil {
		p.runner = runner.New("", p.logger)
	}
	if p.commits == nil {
		if config.VCS == core.VCSGoGit {
			p.commits = versioninfo.NewGoGit(".")
		} else {
			p.commits = versioninfo.NewGitCLI(p.runner, config.Git)
		}
	}

	return p, nil
}

// Result is everything a run produced. Directives gathered before a fatal
// error are kept so they can still be emitted.
type Result struct {
	Identity    platform.Identity
	Directives  []directive.Directive
	Probes      []core.ProbeResult
	VersionInfo *versioninfo.Info
	Artifact    string
}

// Run declares the rerun triggers, checks requirements, configures the
// supported platform and then runs the optional phases in order. Phases
// listed in the config run before those passed here; duplicates run once.
func (p *Pipeline) Run(ctx context.Context, phases ...string) (*Result, error) {
	res := &Result{Identity: p.host}
	var log directive.Log
	defer func() { res.Directives = log.Directives() }()

	for _, path := range p.config.RerunIfChanged {
		log.RerunIfChanged(path)
	}

	toolchain := probe.NewToolchainProbe(p.runner, p.config.Compiler, p.config.DevToolsLocator, p.logger)
	libraries := probe.NewLibraryProbe(p.runner, p.config.PkgConfig, p.logger)

	checker := requirements.NewChecker(toolchain, libraries, requirements.ChecklistFromConfig(p.config), p.logger)
	outcome, err := checker.Check(ctx)
	if err != nil {
		return res, err
	}
	log.Append(outcome.Directives...)
	res.Probes = outcome.Probes

	if p.host.IsSupported() {
		ds, err := configure.NewPlatformConfigurator(toolchain, p.config.Frameworks, p.logger).Configure(ctx, p.host)
		if err != nil {
			return res, fmt.Errorf("configuring platform: %w", err)
		}
		log.Append(ds...)
	}

	for _, phase := range p.phases(phases) {
		p.logger.Debug("running phase", "phase", phase)
		if err := p.runPhase(ctx, phase, toolchain, &log, res); err != nil {
			return res, fmt.Errorf("phase %s: %w", phase, err)
		}
	}

	p.logger.Info("prebuild finished",
		"platform", p.host.String(),
		"directives", log.Len(),
		"warnings", len(directive.Filter(log.Directives(), directive.Warning)))
	return res, nil
}

func (p *Pipeline) phases(extra []string) []string {
	var out []string
	for _, ph := range append(slices.Clone(p.config.Phases), extra...) {
		if !slices.Contains(out, ph) {
			out = append(out, ph)
		}
	}
	return out
}

func (p *Pipeline) runPhase(ctx context.Context, phase string, toolchain *probe.ToolchainProbe, log *directive.Log, res *Result) error {
	switch phase {
	case core.PhaseSecurity:
		sec := configure.NewSecurityConfigurator(toolchain, configure.SecurityOptions{
			Features:   p.config.SecurityFeatures,
			LinkFlags:  p.config.HardeningFlags,
			Frameworks: p.config.SecurityFrameworks,
		}, p.logger)
		ds, err := sec.Configure(ctx, p.host)
		if err != nil {
			return err
		}
		log.Append(ds...)

	case core.PhaseTargetFeatures:
		ds, err := configure.TargetFeatures(p.env)
		if err != nil {
			return err
		}
		log.Append(ds...)

	case core.PhaseVersionInfo:
		gen := versioninfo.NewGenerator(p.commits, versioninfo.Options{
			OutDir:       p.env.OutDir,
			Version:      p.env.PkgVersion,
			ManifestPath: p.config.Manifest,
			ArtifactName: p.config.ArtifactName,
			Format:       p.config.ArtifactFormat,
			Package:      p.config.ArtifactPackage,
			Now:          p.now,
		}, p.logger)
		info, path, err := gen.Generate(ctx)
		if err != nil {
			return err
		}
		res.VersionInfo = info
		res.Artifact = path

	default:
		return fmt.Errorf("%w: unknown phase %q", core.ErrInvalidConfig, phase)
	}
	return nil
}

// Emit writes the result's directives to w in the configured namespace
func (p *Pipeline) Emit(w io.Writer, res *Result) error {
	if res == nil {
		return nil
	}
	return directive.NewEncoder(w, p.config.Namespace).Encode(res.Directives...)
}

// Report summarizes a result
func (p *Pipeline) Report(res *Result) *report.Report {
	r := report.New(p.now(), res.Identity, res.Probes, res.Directives)
	r.VersionInfo = res.VersionInfo
	r.Artifact = res.Artifact
	return r
}
