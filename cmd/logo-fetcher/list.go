package main

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/pdiddy/logo-fetcher/internal/fetch"
	"github.com/pdiddy/logo-fetcher/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the registry and the URL each entry resolves to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadFetchConfig()
		entries, err := loadEntries(cfg.Registry)
		if err != nil {
			return err
		}
		logoService := cfg.LogoService
		if logoService == "" {
			logoService = fetch.DefaultLogoService
		}
		return printEntries(cmd.OutOrStdout(), entries, logoService)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printEntries(w io.Writer, entries []types.Institution, logoService string) error {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("NAME", "FILE", "SOURCE", "URL")
	for _, inst := range entries {
		src, err := fetch.SourceURL(inst, logoService)
		if err != nil {
			return err
		}
		table.AddRow(inst.Name, fetch.Slug(inst.Name)+".*", string(inst.Kind()), src)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}
