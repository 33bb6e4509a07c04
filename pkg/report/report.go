// Package report summarizes a prebuild run for humans and CI logs.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
	"github.com/arc-language/prebuild/pkg/versioninfo"
)

// Report is the serialized form of a run
type Report struct {
	GeneratedAt time.Time          `yaml:"generated_at"`
	Platform    platform.Identity  `yaml:"platform"`
	Supported   bool               `yaml:"supported"`
	Probes      []core.ProbeResult `yaml:"probes"`
	Directives  []string           `yaml:"directives"`
	Warnings    int                `yaml:"warnings"`
	VersionInfo *versioninfo.Info  `yaml:"version_info,omitempty"`
	Artifact    string             `yaml:"artifact,omitempty"`
}

// New builds a report
func New(now time.Time, id platform.Identity, probes []core.ProbeResult, ds []directive.Directive) *Report {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return &Report{
		GeneratedAt: now.UTC(),
		Platform:    id,
		Supported:   id.IsSupported(),
		Probes:      probes,
		Directives:  lines,
		Warnings:    len(directive.Filter(ds, directive.Warning)),
	}
}

// WriteFile saves the report as YAML, replacing any previous file
func (r *Report) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return core.NewError("creating", dir, fmt.Errorf("%w: %v", core.ErrArtifactWrite, err))
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.NewError("writing report", path, fmt.Errorf("%w: %v", core.ErrArtifactWrite, err))
	}
	return nil
}

// Load reads a report written by WriteFile
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}

// WriteText prints a human readable table of probes
func (r *Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Platform: %s", r.Platform)
	if r.Supported {
		fmt.Fprint(w, " [supported]")
	}
	fmt.Fprint(w, "\n\n")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSUBJECT\tSTATUS\tDETAIL")
	for _, p := range r.Probes {
		status := "ok"
		if !p.Found {
			status = "missing"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Kind, p.Subject, status, p.Detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d warning(s)\n", r.Warnings)
	return err
}
