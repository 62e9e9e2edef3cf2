package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/rwalk/internal/config"
)

// RootOptions holds global flags and settings for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Settings are loaded from the environment before any command runs.
	Settings config.Settings
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rwalk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rwalk",
		Short: "rwalk - reproducible random walks",
		Long:  "Generate seeded random walks and record them with their provenance.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			settings, err := config.LoadSettings()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid settings", err)
			}
			opts.Settings = settings
			configureLogging(cmd, opts)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewRecordCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// configureLogging installs a text slog handler on the command's stderr.
// --verbose forces debug; otherwise RWALK_LOG_LEVEL applies.
func configureLogging(cmd *cobra.Command, opts *RootOptions) {
	level, _ := config.ParseLogLevel(opts.Settings.LogLevel)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
