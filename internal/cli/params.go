package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/rwalk/internal/config"
	"github.com/roach88/rwalk/internal/walk"
)

// walkFlags are the walk inputs shared by generate and record.
type walkFlags struct {
	Config string
	Count  int
	X0     int64
	Step   int64
	Seed   int64
}

func addWalkFlags(cmd *cobra.Command, f *walkFlags) {
	cmd.Flags().StringVarP(&f.Config, "config", "c", "", "experiment file (.yaml, .yml or .cue)")
	cmd.Flags().IntVarP(&f.Count, "count", "n", 10, "number of steps")
	cmd.Flags().Int64Var(&f.X0, "x0", 0, "initial position")
	cmd.Flags().Int64Var(&f.Step, "step", 1, "step size")
	cmd.Flags().Int64Var(&f.Seed, "seed", 0, "generator seed")
}

// resolveExperiment builds the experiment from --config (or schema
// defaults) and then applies any walk flag set explicitly.
func resolveExperiment(cmd *cobra.Command, f *walkFlags) (*config.Experiment, error) {
	var (
		exp *config.Experiment
		err error
	)
	if f.Config != "" {
		slog.Debug("loading experiment", "path", f.Config)
		exp, err = config.LoadExperiment(f.Config)
	} else {
		exp, err = config.DefaultExperiment()
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load experiment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		exp.Count = f.Count
	}
	if flags.Changed("x0") {
		exp.X0 = f.X0
	}
	if flags.Changed("step") {
		exp.Step = f.Step
	}
	if flags.Changed("seed") {
		exp.Seed = f.Seed
	}

	if err := exp.Params().Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid walk parameters", err)
	}
	return exp, nil
}

// errorCode maps a failure to a JSON error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, walk.ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, config.ErrInvalidExperiment):
		return ErrCodeConfig
	default:
		return ErrCodeGeneric
	}
}
