// Package config loads gitview settings from a .gitview.yml file found by
// upward search from the working directory. All fields have defaults; a
// missing file is not an error.
package config

import (
	"time"

	"github.com/traceyt-cree8/gitterm-sub000/errors"
)

// Limits holds the size-tier policy knobs for file loading and diffing.
type Limits struct {
	// InlineWebviewBytes is the ceiling above which rich previews (markdown,
	// HTML, diagrams) are skipped in favor of a notice.
	InlineWebviewBytes int64 `yaml:"inline_webview_bytes"`

	// FullTextLoadBytes is the ceiling above which plain text files are
	// loaded as a bounded preview instead of in full.
	FullTextLoadBytes int64 `yaml:"full_text_load_bytes"`

	// LargeTextPreviewBytes and LargeTextPreviewLines bound the preview read
	// for oversized plain text files.
	LargeTextPreviewBytes int64 `yaml:"large_text_preview_bytes"`
	LargeTextPreviewLines int   `yaml:"large_text_preview_lines"`

	// SyntaxHighlightLines is the maximum number of lines handed to the
	// tokenizer.
	SyntaxHighlightLines int `yaml:"syntax_highlight_lines"`
}

// LoggingConfig configures the logging package. It lives here so that
// logging can be configured from the same file as everything else without
// an import cycle.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Overridden by the GITVIEW_LOG_LEVEL environment variable.
	Level string `yaml:"level"`

	// ReportCaller includes file/line/function in log output. Can also be
	// enabled with GITVIEW_LOG_CALLER=true.
	ReportCaller bool `yaml:"report_caller"`

	// FilePath, when set, overrides the default
	// .gitview/logs/<component>-<date>.log sink location.
	FilePath string `yaml:"file_path"`

	// Format can be "text" (default) or "json".
	Format string `yaml:"format"`
}

// Config is the root gitview configuration.
type Config struct {
	// Theme is "dark" or "light".
	Theme string `yaml:"theme"`

	// ShowHidden controls whether dot-entries appear in file tree listings.
	ShowHidden bool `yaml:"show_hidden"`

	// PollIntervalSeconds is how often the active tab's git status is
	// re-collected.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	Limits  Limits        `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no .gitview.yml exists.
func Default() *Config {
	return &Config{
		Theme:               "dark",
		ShowHidden:          false,
		PollIntervalSeconds: 3,
		Limits: Limits{
			InlineWebviewBytes:    2 * 1024 * 1024,
			FullTextLoadBytes:     1024 * 1024,
			LargeTextPreviewBytes: 256 * 1024,
			LargeTextPreviewLines: 5000,
			SyntaxHighlightLines:  2000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DarkTheme reports whether the configured theme is dark.
func (c *Config) DarkTheme() bool {
	return c.Theme != "light"
}

// PollInterval returns the status poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Theme != "dark" && c.Theme != "light" {
		return errors.ConfigInvalid("theme must be \"dark\" or \"light\"")
	}
	if c.PollIntervalSeconds <= 0 {
		return errors.ConfigInvalid("poll_interval_seconds must be positive")
	}
	l := c.Limits
	if l.InlineWebviewBytes <= 0 || l.FullTextLoadBytes <= 0 || l.LargeTextPreviewBytes <= 0 {
		return errors.ConfigInvalid("size limits must be positive")
	}
	if l.LargeTextPreviewLines <= 0 {
		return errors.ConfigInvalid("large_text_preview_lines must be positive")
	}
	if l.SyntaxHighlightLines < 0 {
		return errors.ConfigInvalid("syntax_highlight_lines must not be negative")
	}
	return nil
}

// applyDefaults fills zero-valued fields from Default so partial config files
// only override what they mention.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.PollIntervalSeconds == 0 {
		c.PollIntervalSeconds = def.PollIntervalSeconds
	}
	if c.Limits.InlineWebviewBytes == 0 {
		c.Limits.InlineWebviewBytes = def.Limits.InlineWebviewBytes
	}
	if c.Limits.FullTextLoadBytes == 0 {
		c.Limits.FullTextLoadBytes = def.Limits.FullTextLoadBytes
	}
	if c.Limits.LargeTextPreviewBytes == 0 {
		c.Limits.LargeTextPreviewBytes = def.Limits.LargeTextPreviewBytes
	}
	if c.Limits.LargeTextPreviewLines == 0 {
		c.Limits.LargeTextPreviewLines = def.Limits.LargeTextPreviewLines
	}
	if c.Limits.SyntaxHighlightLines == 0 {
		c.Limits.SyntaxHighlightLines = def.Limits.SyntaxHighlightLines
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}
