package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/logo-fetcher/internal/registry"
	"github.com/pdiddy/logo-fetcher/pkg/types"
)

// loadFetchConfig assembles the fetch configuration from viper, which has
// already merged flags, LOGO_FETCHER_* environment variables and the
// config file.
func loadFetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		OutputDir:   viper.GetString("output_dir"),
		LogoService: viper.GetString("logo_service"),
		Registry:    viper.GetString("registry"),
		Strict:      viper.GetBool("strict"),
	}
}

// loadEntries returns the registry at path, or the built-in registry when
// path is empty.
func loadEntries(path string) ([]types.Institution, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.Load(path)
}
