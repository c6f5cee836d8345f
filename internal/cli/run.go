package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sortdist"
	"github.com/hupe1980/sortdist/distance"
	"github.com/hupe1980/sortdist/internal/config"
	"github.com/hupe1980/sortdist/internal/history"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	DataDir     string
	Kernel      string
	Shards      int
	Parallelism int
	History     string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [input...]",
		Short: "Compute the distance of each input",
		Long: `Compute the sorted L1 distance of each input file.

Without arguments the reference set is processed:
  input_1k.txt input_10k.txt input_100k.txt input_1m.txt
  input_10m.txt input_50m.txt input_100m.txt

A failing input is reported and the run continues with the next one. The
exit code is 1 if any input failed.

Example:
  sortdist run --data-dir ./data
  sortdist run --kernel sparse input_1k.txt input_10k.txt.zst
  sortdist run --config sortdist.yaml --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistances(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "input directory for the local source (overrides data_dir)")
	cmd.Flags().StringVarP(&opts.Kernel, "kernel", "k", "", "distance kernel: counting|sparse|sort (overrides kernel)")
	cmd.Flags().IntVar(&opts.Shards, "shards", 0, "goroutines tallying one input (overrides shards)")
	cmd.Flags().IntVarP(&opts.Parallelism, "parallelism", "p", 0, "inputs processed at once (overrides parallelism)")
	cmd.Flags().StringVar(&opts.History, "db", "", "path to SQLite run history (overrides history.path)")

	return cmd
}

// applyFlags overrides cfg with explicitly set flags.
func (o *RunOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = o.DataDir
	}
	if flags.Changed("kernel") {
		cfg.Kernel = o.Kernel
	}
	if flags.Changed("shards") {
		cfg.Shards = o.Shards
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = o.Parallelism
	}
	if flags.Changed("db") {
		cfg.History.Path = o.History
	}
}

func runDistances(cmd *cobra.Command, opts *RunOptions, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	opts.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	kernel, err := distance.ParseKernel(cfg.Kernel)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid kernel", err)
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	runOpts := []sortdist.Option{
		sortdist.WithDomain(cfg.DistanceDomain()),
		sortdist.WithKernel(kernel),
		sortdist.WithShards(cfg.Shards),
		sortdist.WithParallelism(cfg.Parallelism),
		sortdist.WithResourceController(newController(cfg)),
		sortdist.WithLogger(opts.newLogger(cmd, cfg)),
		sortdist.WithClock(opts.now),
	}

	var hist *history.Store
	if cfg.History.Path != "" {
		hist, err = history.Open(cfg.History.Path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history", err)
		}
		runOpts = append(runOpts, sortdist.WithHistory(hist))
	}

	runner, err := sortdist.New(store, runOpts...)
	if err != nil {
		if hist != nil {
			_ = hist.Close()
		}
		return WrapExitError(ExitCommandError, "failed to create runner", err)
	}
	defer func() { _ = runner.Close() }()

	names := args
	if len(names) == 0 {
		names = sortdist.DefaultInputs
	}

	out := NewOutputFormatter(opts.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())

	failed := 0
	runErr := runner.Run(ctx, names, func(r sortdist.Result) {
		out.Start(r.Name)
		_ = out.Result(r)
		if r.Err != nil {
			failed++
		}
	})
	if runErr != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("%d of %d inputs failed", failed, len(names)), runErr)
	}
	return nil
}
