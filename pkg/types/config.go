package types

import "time"

// HTTPConfig holds HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request. Some logo
	// services reject default client identifiers, so this should look like
	// a browser.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for a batch fetch run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory logos are written to (default "assets/logos").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// LogoService is the base URL of the logo-lookup service used for
	// domain entries (default "https://logo.clearbit.com").
	LogoService string `json:"logo_service" yaml:"logo_service"`

	// Registry is an optional path to a YAML registry file. Empty means the
	// built-in registry.
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`

	// Strict makes the CLI exit non-zero when any entry failed.
	Strict bool `json:"strict" yaml:"strict"`
}
