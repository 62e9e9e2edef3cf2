package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/rwalk/internal/provenance"
	"github.com/roach88/rwalk/internal/record"
	"github.com/roach88/rwalk/internal/walk"
)

const defaultOutput = "results.txt"

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	walkFlags
	Output   string
	Dir      string
	Revision string

	// Workspace overrides the git workspace (for testing).
	// If nil, a provenance.Git rooted at Dir is used, or a clean
	// provenance.StaticWorkspace when Revision is set.
	Workspace provenance.Workspace

	// Clock overrides the system clock (for testing).
	Clock provenance.Clock
}

// RecordResult is the JSON payload of record.
type RecordResult struct {
	Record *record.RunRecord `json:"record"`
	Digest string            `json:"digest"`
	Path   string            `json:"path"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	return newRecordCommand(&RecordOptions{RootOptions: rootOpts})
}

func newRecordCommand(opts *RecordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Generate a walk and record it with provenance",
		Long: `Generate a walk and write it, with its parameters, a UTC timestamp, the
current git revision and the runtime descriptor, to a results file.

The working tree must have no uncommitted changes; otherwise nothing is
generated or written and the command exits with status 1.

The output path is --output, else the experiment's output field, else
RWALK_OUTPUT (default results.txt).

--revision records the given revision without consulting git, for runs
outside a working tree (an exported source archive, a CI artifact).

Exit codes:
  0 - Walk recorded
  1 - Dirty workspace or write failure
  2 - Invalid parameters or configuration

Examples:
  rwalk record --seed 1
  rwalk record --config experiment.cue --output results-R4.txt
  rwalk record --dir ../experiment --format json
  rwalk record --revision 0123abcd --seed 7`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, cmd)
		},
	}

	addWalkFlags(cmd, &opts.walkFlags)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "results file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "git working tree (default: current directory)")
	cmd.Flags().StringVar(&opts.Revision, "revision", "", "record this revision instead of asking git")

	return cmd
}

func runRecord(opts *RecordOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	exp, err := resolveExperiment(cmd, &opts.walkFlags)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error())
		return markReported(err)
	}

	path := opts.Output
	if path == "" {
		path = exp.Output
	}
	if path == "" {
		path = opts.Settings.Output
	}
	if path == "" {
		path = defaultOutput
	}

	rec := record.New(opts.Dir, opts.Settings.GitBinary)
	switch {
	case opts.Workspace != nil:
		rec.Workspace = opts.Workspace
	case opts.Revision != "":
		rec.Workspace = provenance.StaticWorkspace{Clean: true, Revision: opts.Revision}
	}
	if opts.Clock != nil {
		rec.Clock = opts.Clock
	}
	rec.Logger = slog.Default()

	// JSON mode reports the walk inside the envelope instead.
	var stdout io.Writer = cmd.OutOrStdout()
	if opts.Format == "json" {
		stdout = io.Discard
	}

	result, err := rec.Run(cmd.Context(), exp.Params(), path, stdout)
	switch {
	case errors.Is(err, record.ErrDirtyWorkspace):
		_ = formatter.Error(ErrCodeDirtyWorkspace, "Repository is dirty, please commit")
		return markReported(WrapExitError(ExitFailure, "refusing to record", err))
	case errors.Is(err, walk.ErrInvalidArgument):
		_ = formatter.Error(ErrCodeInvalidArgument, err.Error())
		return markReported(WrapExitError(ExitCommandError, "invalid walk parameters", err))
	case errors.Is(err, record.ErrWorkspace):
		_ = formatter.Error(ErrCodeProvenance, err.Error())
		return markReported(WrapExitError(ExitCommandError, "failed to read workspace state", err))
	case err != nil:
		_ = formatter.Error(ErrCodeWriteFailed, err.Error())
		return markReported(WrapExitError(ExitFailure, "failed to record walk", err))
	}

	if opts.Format == "json" {
		digest, err := result.Digest()
		if err != nil {
			return WrapExitError(ExitFailure, "failed to digest record", err)
		}
		return formatter.Success(RecordResult{Record: result, Digest: digest, Path: path})
	}
	return nil
}
