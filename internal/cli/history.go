package cli

import (
	"context"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sortdist/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunID    string
	Input    string
	Limit    int
}

// HistoryEntryJSON is the JSON form of one history entry.
type HistoryEntryJSON struct {
	RunID      string `json:"run_id"`
	Input      string `json:"input"`
	Kernel     string `json:"kernel"`
	Records    int    `json:"records"`
	Distance   int64  `json:"distance"`
	ElapsedMS  int64  `json:"elapsed_ms"`
	Error      string `json:"error,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past runs",
		Long: `List processed inputs recorded in the run history, newest first.

Example:
  sortdist history --db ./history.db
  sortdist history --db ./history.db --input input_1m.txt --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run history (overrides history.path)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only entries of this run ID")
	cmd.Flags().StringVar(&opts.Input, "input", "", "only entries of this input")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum number of entries (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	path := cfg.History.Path
	if cmd.Flags().Changed("db") {
		path = opts.Database
	}
	if path == "" {
		return NewExitError(ExitCommandError, "history is disabled: set history.path or --db")
	}

	st, err := history.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history", err)
	}
	defer func() { _ = st.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entries, err := st.List(ctx, history.Filter{RunID: opts.RunID, Input: opts.Input, Limit: opts.Limit})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	out := NewOutputFormatter(opts.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if opts.Format == "json" {
		rows := make([]HistoryEntryJSON, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, HistoryEntryJSON{
				RunID:      e.RunID,
				Input:      e.Input,
				Kernel:     e.Kernel,
				Records:    e.Records,
				Distance:   e.Distance,
				ElapsedMS:  e.Elapsed.Milliseconds(),
				Error:      e.Error,
				RecordedAt: e.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		return out.Success(rows, "")
	}

	if len(entries) == 0 {
		out.Printf("No runs recorded.\n")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	out.Writer = tw
	out.Printf("RECORDED\tRUN\tINPUT\tKERNEL\tRECORDS\tDISTANCE\tELAPSED\tSTATUS\n")
	for _, e := range entries {
		status := "ok"
		if !e.OK() {
			status = "error: " + e.Error
		}
		out.Printf("%s\t%s\t%s\t%s\t%d\t%d\t%dms\t%s\n",
			e.RecordedAt.Format("2006-01-02 15:04:05"), e.RunID, e.Input, e.Kernel,
			e.Records, e.Distance, e.Elapsed.Milliseconds(), status)
	}
	return tw.Flush()
}
