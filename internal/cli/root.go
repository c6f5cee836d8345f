// Package cli implements the sortdist command line.
package cli

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sortdist"
	"github.com/hupe1980/sortdist/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
	LogFormat  string // "json" | "text", overrides log.format

	// Clock overrides time.Now (for testing).
	Clock func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sortdist CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sortdist",
		Short: "Sorted L1 distance between two integer columns",
		Long: `sortdist computes the sum of absolute differences between two integer
columns after sorting each of them, using counting buckets over a bounded
value domain instead of a comparison sort.

Inputs hold one "left right" record per line and are read from a local
directory, Amazon S3 or MinIO.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.LogFormat != "" && !slices.Contains(ValidFormats, opts.LogFormat) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid log format %q: must be one of %v", opts.LogFormat, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format on stderr (json|text)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func (o *RootOptions) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

// loadConfig reads the config file named by --config.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. --verbose forces debug level and
// --log-format overrides the configured format.
func (o *RootOptions) newLogger(cmd *cobra.Command, cfg *config.Config) *sortdist.Logger {
	level := parseLevel(cfg.Log.Level)
	if o.Verbose {
		level = slog.LevelDebug
	}

	format := cfg.Log.Format
	if o.LogFormat != "" {
		format = o.LogFormat
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return sortdist.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts))
	}
	return sortdist.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
