package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/column"
	"github.com/hupe1980/sortdist/distance"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	*RootOptions
	DataDir string
	Records int
	Seed    uint64
}

// GenResult is the JSON form of one generated input.
type GenResult struct {
	Name        string `json:"name"`
	Records     int    `json:"records"`
	Compression string `json:"compression"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen <input...>",
		Short: "Generate random input files",
		Long: `Generate input files of random records within the configured domain.

The record count is taken from --records or, if unset, from the size
suffix of the name (input_1k.txt holds 1,000 records, input_10m.txt holds
10,000,000). A ".zst", ".lz4" or ".gz" extension compresses the file.

The same seed always produces the same files.

Example:
  sortdist gen input_1k.txt input_10k.txt input_100k.txt
  sortdist gen --records 500 --seed 7 small.txt.zst`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "output directory for the local source (overrides data_dir)")
	cmd.Flags().IntVarP(&opts.Records, "records", "n", 0, "records per file (default: inferred from the name)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 42, "random seed")

	return cmd
}

func runGen(cmd *cobra.Command, opts *GenOptions, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = opts.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	domain := cfg.DistanceDomain()
	if err := domain.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid domain", err)
	}

	counts := make([]int, len(args))
	for i, name := range args {
		n := opts.Records
		if n <= 0 {
			n, err = inferRecords(name)
			if err != nil {
				return WrapExitError(ExitCommandError, "missing record count", err)
			}
		}
		counts[i] = n
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	out := NewOutputFormatter(opts.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	for i, name := range args {
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
		c := column.DetectCompression(name)

		if err := generate(ctx, store, name, counts[i], domain, c, rng); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("failed to generate %s", name), err)
		}

		_ = out.Success(GenResult{Name: name, Records: counts[i], Compression: c.String()},
			"Wrote %d records to %s", counts[i], name)
	}
	return nil
}

func generate(ctx context.Context, store blobstore.BlobStore, name string, n int, d distance.Domain, c column.Compression, rng *rand.Rand) error {
	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	enc, err := column.Compress(w, c)
	if err != nil {
		return errors.Join(err, w.Abort())
	}
	if err := column.Generate(enc, n, d, rng); err != nil {
		return errors.Join(err, w.Abort())
	}
	if err := enc.Close(); err != nil {
		return errors.Join(err, w.Abort())
	}
	return w.Close()
}

var sizeSuffix = regexp.MustCompile(`_(\d+)([kKmM]?)$`)

// inferRecords reads the record count from names like input_10k.txt.
func inferRecords(name string) (int, error) {
	base := path.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	m := sizeSuffix.FindStringSubmatch(base)
	if m == nil {
		return 0, fmt.Errorf("cannot infer record count from %q; use --records", name)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(m[2]) {
	case "k":
		n *= 1_000
	case "m":
		n *= 1_000_000
	}
	return n, nil
}
