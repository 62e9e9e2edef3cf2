package provenance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Workspace reports version-control state for the code producing a result.
type Workspace interface {
	// IsClean reports whether tracked files have no uncommitted changes.
	IsClean(ctx context.Context) (bool, error)

	// CurrentRevision returns the identifier of the checked-out revision.
	CurrentRevision(ctx context.Context) (string, error)
}

// Git inspects a git working tree with the git command line tool.
type Git struct {
	// Dir is the working tree. Empty means the process working directory.
	Dir string

	// Binary is the git executable. Empty means "git" from PATH.
	Binary string
}

// NewGit creates a Git workspace rooted at dir.
func NewGit(dir, binary string) *Git {
	return &Git{Dir: dir, Binary: binary}
}

func (g *Git) command(ctx context.Context, args ...string) *exec.Cmd {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = g.Dir
	return cmd
}

// IsClean runs `git diff-index --quiet HEAD`.
// Exit status 1 means tracked files differ from HEAD. Any other failure
// (no repository, no commits, missing binary) is returned as an error.
func (g *Git) IsClean(ctx context.Context) (bool, error) {
	cmd := g.command(ctx, "diff-index", "--quiet", "HEAD")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("git diff-index: %w%s", err, stderrSuffix(&stderr))
}

// CurrentRevision runs `git rev-parse HEAD`.
func (g *Git) CurrentRevision(ctx context.Context) (string, error) {
	cmd := g.command(ctx, "rev-parse", "HEAD")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w%s", err, stderrSuffix(&stderr))
	}
	return strings.TrimSpace(string(out)), nil
}

func stderrSuffix(buf *bytes.Buffer) string {
	msg := strings.TrimSpace(buf.String())
	if msg == "" {
		return ""
	}
	return ": " + msg
}

// StaticWorkspace reports fixed answers. rwalk record --revision uses it
// to run outside a repository with a caller-supplied revision.
type StaticWorkspace struct {
	Clean    bool
	Revision string

	// Err, when set, is returned from both methods.
	Err error
}

// IsClean returns w.Clean.
func (w StaticWorkspace) IsClean(ctx context.Context) (bool, error) {
	if w.Err != nil {
		return false, w.Err
	}
	return w.Clean, nil
}

// CurrentRevision returns w.Revision.
func (w StaticWorkspace) CurrentRevision(ctx context.Context) (string, error) {
	if w.Err != nil {
		return "", w.Err
	}
	return w.Revision, nil
}
