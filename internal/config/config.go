// Package config provides centralized configuration management for draftclean.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strings"
	"unicode/utf8"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths   PathsConfig
	Input   InputConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// PathsConfig holds the source and destination locations.
// Positional CLI arguments override both.
type PathsConfig struct {
	// Source is the draft file to clean
	Source string `env:"SOURCE_PATH" default:"data/processed_DRAFT_2024v3.csv"`

	// Destination is where the cleaned file is written
	Destination string `env:"DESTINATION_PATH" default:"data/processed_DRAFT_2024v5.csv"`
}

// InputConfig holds source parsing settings.
type InputConfig struct {
	// Delimiter is the single-character field separator (default: ,)
	Delimiter string `env:"INPUT_DELIMITER" default:","`

	// MaxFileSize is the largest accepted source in bytes (default: 100MB)
	MaxFileSize int64 `env:"INPUT_MAX_FILE_SIZE" default:"104857600"`

	// MissingMarkers are comma-separated Team/Position texts read as "no value".
	// Empty cells are always missing. Defaults to the common data-frame NA list.
	MissingMarkers []string `env:"INPUT_MISSING_MARKERS" default:"#N/A,#N/A N/A,#NA,-1.#IND,-1.#QNAN,-NaN,-nan,1.#IND,1.#QNAN,<NA>,N/A,NA,NULL,NaN,None,n/a,nan,null"`
}

// OutputConfig holds destination formatting settings.
type OutputConfig struct {
	// Delimiter is the single-character field separator (default: ,)
	Delimiter string `env:"OUTPUT_DELIMITER" default:","`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// InputDelimiter returns the input delimiter as a rune.
// Only meaningful after Validate has succeeded.
func (c *Config) InputDelimiter() rune {
	return parseDelimiter(c.Input.Delimiter)
}

// OutputDelimiter returns the output delimiter as a rune.
// Only meaningful after Validate has succeeded.
func (c *Config) OutputDelimiter() rune {
	return parseDelimiter(c.Output.Delimiter)
}

// parseDelimiter accepts a single character, or `\t` / "tab" for a tab.
// Returns 0 when s is not usable.
func parseDelimiter(s string) rune {
	if s == `\t` || strings.EqualFold(s, "tab") {
		return '\t'
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0
	}
	return r
}
