package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/roach88/rwalk/internal/provenance"
	"github.com/roach88/rwalk/internal/walk"
)

// ErrDirtyWorkspace is returned when the workspace has uncommitted changes.
var ErrDirtyWorkspace = errors.New("repository is dirty, please commit")

// ErrWorkspace is returned when workspace state cannot be determined.
var ErrWorkspace = errors.New("workspace status unavailable")

// IDGenerator produces run identifiers used to correlate log lines.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
// Panics if the system random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Recorder produces RunRecords. All collaborators are required except
// IDs and Logger, which default to UUIDv7Generator and slog.Default.
type Recorder struct {
	Workspace provenance.Workspace
	Clock     provenance.Clock
	Platform  provenance.Platform
	IDs       IDGenerator
	Logger    *slog.Logger
}

// New creates a Recorder with production collaborators for the git
// working tree at dir.
func New(dir, gitBinary string) *Recorder {
	return &Recorder{
		Workspace: provenance.NewGit(dir, gitBinary),
		Clock:     provenance.SystemClock{},
		Platform:  provenance.RuntimePlatform{},
		IDs:       UUIDv7Generator{},
	}
}

func (r *Recorder) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Recorder) runID() string {
	if r.IDs == nil {
		return UUIDv7Generator{}.Generate()
	}
	return r.IDs.Generate()
}

// Record checks the workspace, generates the walk and captures provenance.
//
// Returns ErrDirtyWorkspace without generating anything when the
// workspace is not clean, and a walk.ErrInvalidArgument error for bad
// parameters.
func (r *Recorder) Record(ctx context.Context, p walk.Params) (*RunRecord, error) {
	log := r.logger().With("run_id", r.runID())

	if err := p.Validate(); err != nil {
		return nil, err
	}

	clean, err := r.Workspace.IsClean(ctx)
	if err != nil {
		return nil, fmt.Errorf("check workspace: %w: %w", ErrWorkspace, err)
	}
	if !clean {
		log.Warn("workspace has uncommitted changes")
		return nil, ErrDirtyWorkspace
	}

	revision, err := r.Workspace.CurrentRevision(ctx)
	if err != nil {
		return nil, fmt.Errorf("read revision: %w: %w", ErrWorkspace, err)
	}
	log.Debug("workspace clean", "revision", revision)

	data, err := walk.Generate(p)
	if err != nil {
		return nil, err
	}

	rec := &RunRecord{
		Data:       data,
		Parameters: p,
		Timestamp:  r.Clock.Now().UTC(),
		Revision:   revision,
		System:     r.Platform.Describe(),
	}

	digest, err := rec.Digest()
	if err != nil {
		return nil, fmt.Errorf("digest record: %w", err)
	}
	walkDigest, err := WalkDigest(data)
	if err != nil {
		return nil, fmt.Errorf("digest walk: %w", err)
	}
	log.Info("walk recorded",
		"count", p.Count, "x0", p.X0, "step", p.Step, "seed", p.Seed,
		"revision", revision, "digest", digest, "walk_digest", walkDigest)

	return rec, nil
}

// Run records a walk, writes its dump to path and prints the positions
// to stdout. Nothing is written when Record fails.
func (r *Recorder) Run(ctx context.Context, p walk.Params, path string, stdout io.Writer) (*RunRecord, error) {
	rec, err := r.Record(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(path, rec); err != nil {
		return nil, err
	}
	r.logger().Debug("record written", "path", path)

	if _, err := fmt.Fprintln(stdout, rec.Data.String()); err != nil {
		return nil, fmt.Errorf("print walk: %w", err)
	}
	return rec, nil
}

// WriteFile writes rec's dump to path, replacing any existing file.
func WriteFile(path string, rec *RunRecord) error {
	if err := os.WriteFile(path, []byte(rec.Dump()), 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
