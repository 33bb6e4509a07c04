// pkg/versioninfo/vcs.go
package versioninfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/arc-language/prebuild/pkg/core"
)

// CommitSource returns the commit hash of the working tree's HEAD
type CommitSource interface {
	Head(ctx context.Context) (string, error)
}

// gitCLI reads HEAD with "git rev-parse HEAD"
type gitCLI struct {
	runner core.Runner
	git    string
}

// NewGitCLI creates a CommitSource backed by the git executable
func NewGitCLI(runner core.Runner, git string) CommitSource {
	if git == "" {
		git = "git"
	}
	return &gitCLI{runner: runner, git: git}
}

func (g *gitCLI) Head(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, g.git, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	if !out.Success() {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", out.ExitCode)
		}
		return "", core.NewError("resolving HEAD with", g.git, fmt.Errorf("%w: %s", core.ErrCommandFailed, msg))
	}
	hash := strings.TrimSpace(out.Stdout)
	if hash == "" {
		return "", core.NewError("resolving HEAD with", g.git, fmt.Errorf("%w: empty output", core.ErrCommandFailed))
	}
	return hash, nil
}

// goGit reads HEAD from the repository on disk without spawning git
type goGit struct {
	dir string
}

// NewGoGit creates a CommitSource that opens the repository containing dir
func NewGoGit(dir string) CommitSource {
	if dir == "" {
		dir = "."
	}
	return &goGit{dir: dir}
}

func (g *goGit) Head(ctx context.Context) (string, error) {
	repo, err := git.PlainOpenWithOptions(g.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", core.NewError("opening repository", g.dir, fmt.Errorf("%w: %v", core.ErrCommandFailed, err))
	}
	ref, err := repo.Head()
	if err != nil {
		return "", core.NewError("resolving HEAD in", g.dir, fmt.Errorf("%w: %v", core.ErrCommandFailed, err))
	}
	return ref.Hash().String(), nil
}
