// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logo-fetcher CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/logo-fetcher/internal/fetch"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the logo-fetcher CLI.
var rootCmd = &cobra.Command{
	Use:   "logo-fetcher",
	Short: "Download financial-institution logos into an asset directory",
	Long: `logo-fetcher downloads the logo of each institution in a registry and saves
it as <output-dir>/<name>.<ext>. Institutions are identified by domain (looked
up through a logo service), by a direct image URL, or by a homepage that is
scraped for its icon.

Without a registry file the built-in list of banks and brokers is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(os.Stderr, viper.GetString("log_level"), viper.GetBool("log_json"))
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		if used := viper.ConfigFileUsed(); used != "" {
			slog.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./logo-fetcher.yaml or ~/.config/logo-fetcher/logo-fetcher.yaml)")
	pf.String("registry", "", "YAML registry file (default: built-in list)")
	pf.String("logo-service", fetch.DefaultLogoService, "base URL of the logo lookup service for domain entries")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "write logs as JSON")

	viper.BindPFlag("registry", pf.Lookup("registry"))
	viper.BindPFlag("logo_service", pf.Lookup("logo-service"))
	viper.BindPFlag("log_level", pf.Lookup("log-level"))
	viper.BindPFlag("log_json", pf.Lookup("log-json"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logo-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logo-fetcher"))
		}
	}

	viper.SetEnvPrefix("LOGO_FETCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "error reading config:", err)
			os.Exit(1)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
