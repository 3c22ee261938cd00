package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/logo-fetcher/internal/fetch"
	"github.com/pdiddy/logo-fetcher/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download every logo in the registry",
	Long: `Fetch downloads each registry entry in order and writes it to the output
directory, overwriting existing files. A failed entry is logged and skipped;
the run always continues to the next entry.

By default the command exits 0 even when some entries fail. Use --strict to
exit non-zero on any failure.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.String("output-dir", fetch.DefaultOutputDir, "directory logos are written to")
	f.String("user-agent", fetch.DefaultUserAgent, "User-Agent header sent with each request")
	f.Duration("timeout", fetch.DefaultTimeout, "HTTP request timeout")
	f.Bool("strict", false, "exit non-zero if any logo fails to download")

	viper.BindPFlag("output_dir", f.Lookup("output-dir"))
	viper.BindPFlag("user_agent", f.Lookup("user-agent"))
	viper.BindPFlag("timeout", f.Lookup("timeout"))
	viper.BindPFlag("strict", f.Lookup("strict"))

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadFetchConfig()
	entries, err := loadEntries(cfg.Registry)
	if err != nil {
		return err
	}
	return runBatch(cmd.Context(), cfg, entries, slog.Default())
}

// runBatch fetches entries and, in strict mode, turns any failure into an
// error.
func runBatch(ctx context.Context, cfg types.FetchConfig, entries []types.Institution, logger *slog.Logger) error {
	f := fetch.New(nil, nil, cfg, logger)
	result := f.Run(ctx, entries)
	if cfg.Strict && result.HasFailures() {
		return fmt.Errorf("%d of %d logo(s) failed to download", result.Failed, result.Total())
	}
	return nil
}
