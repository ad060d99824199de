package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.CatalogExtension != ".yml" {
		t.Errorf("CatalogExtension = %q, want %q", settings.CatalogExtension, ".yml")
	}
	if len(settings.Extensions) == 0 {
		t.Error("default Extensions should not be empty")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.json")

	settings := DefaultSettings()
	settings.LogLevel = "debug"
	settings.PlaylistMarkers = false
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, "debug")
	}
	if loaded.PlaylistMarkers {
		t.Error("PlaylistMarkers should stay false after round-trip")
	}
}
