// Package config handles the global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Global represents configuration stored in
// ~/.config/renamepdf/config.yml.
type Global struct {
	// LibraryPath points at the sqlite file recording processed
	// documents. Empty means library.db next to the config file.
	LibraryPath string `yaml:"library_path,omitempty"`
	// Lookup enables the Crossref DOI lookup by default, as if
	// --lookup were always passed.
	Lookup bool `yaml:"lookup,omitempty"`
	// GlyphFixes adds site-specific combining-glyph repairs on top of
	// the built-in table, mapping broken sequence to replacement.
	GlyphFixes map[string]string `yaml:"glyph_fixes,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "renamepdf"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

var globalCache *Global

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/renamepdf/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Load loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Global, error) {
	if globalCache != nil {
		return globalCache, nil
	}

	path := Path()
	if path == "" {
		return &Global{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Global{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Global
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	globalCache = &cfg
	return &cfg, nil
}

// LibraryFile returns the sqlite library path: the configured
// library_path, or library.db next to the config file.
func (g *Global) LibraryFile() string {
	if g.LibraryPath != "" {
		return g.LibraryPath
	}
	path := Path()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), "library.db")
}

// ResetCache clears the cached global config. Useful for testing.
func ResetCache() {
	globalCache = nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
