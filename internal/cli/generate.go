package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rwalk/internal/record"
	"github.com/roach88/rwalk/internal/walk"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	walkFlags
	Summary bool
}

// GenerateResult is the JSON payload of generate.
type GenerateResult struct {
	Parameters walk.Params    `json:"parameters"`
	Data       walk.Positions `json:"data"`
	Digest     string         `json:"digest"`
	Summary    *walk.Summary  `json:"summary,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a seeded random walk",
		Long: `Generate a random walk and print it without recording provenance.

Parameters come from --config when given, then individual flags override
them. Defaults: 10 steps from 0, step 1, seed 0.

Examples:
  rwalk generate --seed 1
  rwalk generate -n 1000 --seed 42 --summary
  rwalk generate --config experiment.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	addWalkFlags(cmd, &opts.walkFlags)
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print walk statistics")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	exp, err := resolveExperiment(cmd, &opts.walkFlags)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error())
		return markReported(err)
	}
	p := exp.Params()

	positions, err := walk.Generate(p)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error())
		return markReported(WrapExitError(ExitCommandError, "failed to generate walk", err))
	}

	digest, err := record.WalkDigest(positions)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to digest walk", err)
	}
	result := GenerateResult{Parameters: p, Data: positions, Digest: digest}
	if opts.Summary {
		summary, err := walk.Summarize(positions, p.X0)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to summarize walk", err)
		}
		result.Summary = &summary
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, positions.String())
	if result.Summary != nil {
		s := result.Summary
		fmt.Fprintf(w, "steps=%d final=%d min=%g max=%g mean=%.4f stddev=%.4f returns=%d\n",
			s.Steps, s.Final, s.Min, s.Max, s.Mean, s.StdDev, s.Returns)
	}
	return nil
}
