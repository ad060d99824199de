// Package config provides the albums settings file.
//
// Settings live in a small JSON file. Load falls back to defaults when the
// file does not exist, so a config file is never required:
//
//	settings, err := config.Load("/home/user/.albums.json")
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vanceb/albums/internal/scan"
)

// Settings holds all configuration options.
type Settings struct {
	// Extensions lists the audio file extensions considered while
	// scanning a directory tree.
	Extensions []string `json:"extensions"`

	// CatalogExtension is appended to the source basename when index
	// writes a catalog file.
	CatalogExtension string `json:"catalog_extension"`

	// PlaylistMarkers enables #EXTM3U/#EXTINF lines in written playlists.
	PlaylistMarkers bool `json:"playlist_markers"`

	// PlaylistRelative writes playlist entries relative to the playlist
	// file instead of absolute.
	PlaylistRelative bool `json:"playlist_relative"`

	// LogLevel is the default log level (none, debug, info, warn, error).
	// The --loglevel flag overrides it.
	LogLevel string `json:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Extensions:       scan.DefaultExtensions,
		CatalogExtension: ".yml",
		PlaylistMarkers:  true,
		PlaylistRelative: true,
		LogLevel:         "info",
	}
}

// Load reads settings from a JSON file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
