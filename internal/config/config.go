// Package config loads connector settings from a JSON file, merging user
// values over built-in defaults.
package config

import (
	"encoding/json"
	"os"

	"github.com/FocuswithJustin/TanachReader/core/errors"
)

// Connector configures the corpus index and text normalization.
type Connector struct {
	// TanachDir is the directory holding the chaptered corpus files.
	TanachDir string `json:"tanach_dir"`
	// PreferredFormat selects the file variant loaded when a book is
	// served by multiple files: "cantillation", "text_only", "masorah"
	// or "any".
	PreferredFormat string `json:"preferred_format"`
	// StripCantillation removes trope marks from returned text.
	StripCantillation bool `json:"strip_cantillation"`
	// StripVowels additionally removes vowel points. Only meaningful
	// together with StripCantillation.
	StripVowels bool `json:"strip_vowels"`
	// StripParagraphMarkers removes the (פ) and (ס) paragraph markers.
	StripParagraphMarkers bool `json:"strip_paragraph_markers"`
	// SedrotPath points at the lectionary XML file. Empty disables the
	// parasha operations.
	SedrotPath string `json:"sedrot_path"`
	// Cycle selects the reading cycle for lectionary resolution.
	Cycle int `json:"cycle"`
}

// Logging configures the global logger.
type Logging struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Config is the root of the settings file.
type Config struct {
	Connector Connector `json:"connector"`
	Logging   Logging   `json:"logging"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Connector: Connector{
			TanachDir:             "tanach_data",
			PreferredFormat:       "cantillation",
			StripCantillation:     false,
			StripVowels:           false,
			StripParagraphMarkers: true,
			SedrotPath:            "",
			Cycle:                 0,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a JSON settings file and merges it over the defaults: keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.NewIO("read config", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.NewFormat(path, "invalid JSON: "+err.Error())
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file is not an error: it returns
// the defaults untouched.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
