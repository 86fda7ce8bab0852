package sorter

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/lothartj/desksort/internal/model"
	"github.com/lothartj/desksort/internal/platform"
)

// Collision handling constants
const (
	// MaxRenameAttempts bounds the numeric suffix search when a destination
	// name is taken. Exhausting it is reported as an entry error.
	MaxRenameAttempts = 1000

	// PassIDPrefix prefixes generated sort pass identifiers
	PassIDPrefix = "pass-"
)

// ErrSourceUnreadable reports that the source directory itself could not be
// listed. It is the only fatal failure of a pass; no partial result is
// produced.
var ErrSourceUnreadable = errors.New("source directory cannot be listed")

// ErrPassInProgress reports that another process already holds the sort lock.
var ErrPassInProgress = errors.New("another sort pass is already running")

// Service runs sort passes: scan the source directory, classify each entry,
// and move it into its category destination. Passes are stateless one-shot
// operations; nothing is carried between calls.
type Service struct {
	lockPath string
}

// NewService creates a new sort engine
func NewService() *Service {
	return &Service{}
}

// SetLockPath enables a cross-process advisory lock on the given file. With
// a lock path set, a pass fails fast with ErrPassInProgress while another
// process is mid-pass. The lock file must live outside any scanned source.
func (s *Service) SetLockPath(path string) {
	s.lockPath = path
}

// ScanAndSort runs one sorting pass over sourceDir using the given mapping.
// Entries are processed sequentially in directory order; per-entry failures
// are collected in the result and never abort the pass. The pass is
// idempotent and incremental: rerunning with no source changes moves nothing.
func (s *Service) ScanAndSort(sourceDir string, mapping model.Mapping) (*model.SortResult, error) {
	if s.lockPath != "" {
		lock := flock.New(s.lockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire sort lock: %w", err)
		}
		if !locked {
			return nil, ErrPassInProgress
		}
		defer lock.Unlock()
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	result := &model.SortResult{
		PassID:    newPassID(),
		StartedAt: time.Now(),
	}

	log.Printf("Sort pass %s started: %d entries in %s", result.PassID, len(entries), sourceDir)

	for _, entry := range entries {
		name := entry.Name()

		// Hidden entries and application artifacts are never sorted.
		if strings.HasPrefix(name, ".") {
			continue
		}

		entryPath := filepath.Join(sourceDir, name)

		// Never sort a configured destination back into itself.
		if coversDestination(entryPath, mapping) {
			continue
		}

		category, ok := model.Classify(name, entry.IsDir())
		if !ok {
			// Unknown extensions are left in place, not guessed at.
			result.Skipped++
			continue
		}

		targetDir, ok := mapping[category]
		if !ok || targetDir == "" {
			// Partial configuration is valid; unconfigured categories stay put.
			result.Skipped++
			continue
		}

		if err := platform.CreateDirectoryIfNotExists(targetDir); err != nil {
			result.Errors = append(result.Errors, model.EntryError{
				Name:   name,
				Reason: fmt.Sprintf("failed to create destination directory %s: %v", targetDir, err),
			})
			continue
		}

		finalPath, err := moveEntry(entryPath, targetDir, name)
		if err != nil {
			result.Errors = append(result.Errors, model.EntryError{Name: name, Reason: err.Error()})
			continue
		}

		result.Moved = append(result.Moved, model.MovedEntry{
			Name:        name,
			Category:    category,
			Destination: finalPath,
		})
		log.Printf("Moved %s to %s", name, finalPath)
	}

	result.FinishedAt = time.Now()
	log.Printf("Sort pass %s finished: %s", result.PassID, result.Summary())
	return result, nil
}

// coversDestination reports whether entryPath is a configured destination or
// an ancestor of one. Moving such an entry would re-sort already sorted
// content or pull a destination out from under the engine.
func coversDestination(entryPath string, mapping model.Mapping) bool {
	prefix := entryPath + string(filepath.Separator)
	for _, dest := range mapping {
		if dest == "" {
			continue
		}
		if dest == entryPath || strings.HasPrefix(dest, prefix) {
			return true
		}
	}
	return false
}

// moveEntry moves sourcePath into targetDir preserving its base name,
// appending a numeric disambiguator on collision. Directories move with
// their whole subtree. Existing items at the destination are never
// overwritten.
func moveEntry(sourcePath, targetDir, name string) (string, error) {
	finalPath, err := freeTargetPath(targetDir, name)
	if err != nil {
		return "", err
	}

	// Re-check right before the move; the free slot may have been taken by
	// an external writer in the meantime. One retry, then best effort.
	if pathExists(finalPath) {
		finalPath, err = freeTargetPath(targetDir, name)
		if err != nil {
			return "", err
		}
	}

	if err := os.Rename(sourcePath, finalPath); err != nil {
		return "", fmt.Errorf("failed to move to %s: %v", finalPath, err)
	}
	return finalPath, nil
}

// freeTargetPath returns the first unoccupied path for name inside
// targetDir: the name itself, then "stem (N).ext" with N counting up. The
// extension is split on the longest known category suffix so compound
// extensions survive renaming.
func freeTargetPath(targetDir, name string) (string, error) {
	target := filepath.Join(targetDir, name)
	if !pathExists(target) {
		return target, nil
	}

	stem, ext := model.SplitSuffix(name)
	for i := 1; i <= MaxRenameAttempts; i++ {
		candidate := filepath.Join(targetDir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !pathExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name for %s after %d attempts", name, MaxRenameAttempts)
}

// pathExists reports whether anything exists at path, without following
// symlinks.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// newPassID generates a unique sort pass ID
func newPassID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", PassIDPrefix, time.Now().UnixNano())
	}
	return PassIDPrefix + id.String()
}
