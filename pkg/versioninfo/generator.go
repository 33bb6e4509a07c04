// Package versioninfo stamps the build with its version, commit and time.
package versioninfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arc-language/prebuild/pkg/core"
)

// Info is the build metadata written to the artifact
type Info struct {
	Version        string `yaml:"version"`
	CommitHash     string `yaml:"commit_hash"`
	BuildTimestamp string `yaml:"build_timestamp"`
}

// Options configures a Generator
type Options struct {
	OutDir       string           // Directory receiving the artifact, required
	Version      string           // Package version from the environment
	ManifestPath string           // Fallback source for the version
	ArtifactName string           // File name, derived from Format if empty
	Format       string           // core.FormatGo or core.FormatRust
	Package      string           // Go package name for FormatGo
	Now          func() time.Time // Clock, time.Now if nil
}

// Generator writes the version artifact
type Generator struct {
	commits CommitSource
	opts    Options
	logger  *slog.Logger
}

// NewGenerator creates a generator
func NewGenerator(commits CommitSource, opts Options, logger *slog.Logger) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ArtifactName == "" {
		opts.ArtifactName = DefaultArtifactName(opts.Format)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{commits: commits, opts: opts, logger: logger}
}

// Generate gathers the version info and overwrites the artifact. It returns
// the info and the artifact path.
func (g *Generator) Generate(ctx context.Context) (*Info, string, error) {
	if g.opts.OutDir == "" {
		return nil, "", core.NewError("locating output directory", core.OutDirKeys[0], core.ErrMissingEnv)
	}

	version, err := g.version()
	if err != nil {
		return nil, "", err
	}

	hash, err := g.commits.Head(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reading commit hash: %w", err)
	}

	info := &Info{
		Version:        version,
		CommitHash:     hash,
		BuildTimestamp: g.opts.Now().UTC().Format(time.RFC3339),
	}

	path := filepath.Join(g.opts.OutDir, g.opts.ArtifactName)
	if err := os.MkdirAll(g.opts.OutDir, 0755); err != nil {
		return nil, "", core.NewError("creating", g.opts.OutDir, fmt.Errorf("%w: %v", core.ErrArtifactWrite, err))
	}
	if err := os.WriteFile(path, []byte(Render(info, g.opts.Format, g.opts.Package)), 0644); err != nil {
		return nil, "", core.NewError("writing", path, fmt.Errorf("%w: %v", core.ErrArtifactWrite, err))
	}

	g.logger.Info("version info written", "path", path, "version", info.Version, "commit", info.CommitHash)
	return info, path, nil
}

func (g *Generator) version() (string, error) {
	if g.opts.Version != "" {
		return g.opts.Version, nil
	}
	if g.opts.ManifestPath != "" {
		v, err := ManifestVersion(g.opts.ManifestPath)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
	}
	return "", core.NewError("reading package version", core.PkgVersionKeys[0], core.ErrMissingEnv)
}
