package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lothartj/desksort/internal/model"
)

// Settings document constants
const (
	// SettingsFileName is the on-disk name of the settings document.
	SettingsFileName = "settings.json"

	// AppConfigDirName names the per-user configuration directory.
	AppConfigDirName = "desksort"

	// SortedDirName is the root folder used for default destinations.
	SortedDirName = "Sorted"
)

// File permissions
const (
	settingsFileMode = 0o644
	configDirMode    = 0o755
)

// ErrNotFound reports that no settings document has been written yet. The
// caller is expected to build defaults and save them.
var ErrNotFound = errors.New("settings document not found")

// CorruptError reports a settings document that exists but cannot be parsed.
// It is distinct from ErrNotFound so the caller can warn before overwriting
// instead of silently regenerating defaults.
type CorruptError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e *CorruptError) Error() string {
	return fmt.Sprintf("settings document %s is corrupt: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *CorruptError) Unwrap() error { return e.Err }

// Store persists the category→destination mapping as a flat JSON document.
// The whole document is replaced on every save; there is no partial merge.
type Store struct {
	path string
}

// NewStore creates a store bound to an explicit document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// DefaultStorePath returns the fixed per-platform settings document location
// under the user configuration directory.
func DefaultStorePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, AppConfigDirName, SettingsFileName), nil
}

// Load reads the persisted mapping. A missing document yields ErrNotFound, an
// unparsable one yields *CorruptError; any other read failure is returned
// wrapped. Keys that do not name a known category are dropped so stale
// entries from older versions cannot poison a sort pass.
func (s *Store) Load() (model.Mapping, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings document: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	mapping := make(model.Mapping, len(raw))
	for key, dir := range raw {
		id := model.CategoryID(key)
		if !model.Known(id) {
			continue
		}
		mapping[id] = dir
	}
	return mapping, nil
}

// Save atomically replaces the settings document with the given mapping. The
// document is written to a temporary file in the same directory and renamed
// into place, so a crash mid-write cannot corrupt the previous document.
// Mappings with unknown category keys are rejected.
func (s *Store) Save(mapping model.Mapping) error {
	for id := range mapping {
		if !model.Known(id) {
			return fmt.Errorf("unknown category %q in mapping", id)
		}
	}

	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, SettingsFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings document: %w", err)
	}
	if err := tmp.Chmod(settingsFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set settings file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings document: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace settings document: %w", err)
	}
	return nil
}

// DefaultMapping builds one destination per known category under a "Sorted"
// root inside the given desktop directory. The caller persists it on first
// run after Load returns ErrNotFound; the store never invents defaults.
func DefaultMapping(desktopDir string) model.Mapping {
	sorted := filepath.Join(desktopDir, SortedDirName)
	mapping := make(model.Mapping, len(model.Table))
	for _, category := range model.Table {
		mapping[category.ID] = filepath.Join(sorted, category.Label)
	}
	return mapping
}
