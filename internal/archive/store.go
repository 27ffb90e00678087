// Package archive maps profile names to durable zip archives of the
// Gemini configuration directory.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/gemini-switch/internal/util"
)

var (
	// ErrSourceMissing means the configuration directory to archive does
	// not exist.
	ErrSourceMissing = errors.New("configuration directory not found")

	// ErrArchiveNotFound means no archive has been saved under the
	// requested profile name.
	ErrArchiveNotFound = errors.New("no saved archive for profile")

	// ErrCorruptArchive means an archive did not contain the expected
	// single top-level configuration folder.
	ErrCorruptArchive = errors.New("archive does not contain a configuration folder")
)

// Store maps profile names to archives under a fixed root directory.
type Store struct {
	root    string
	codec   Codec
	exclude []string
}

// NewStore creates an archive store. exclude lists top-level
// subdirectories of the source that are never persisted.
func NewStore(root string, codec Codec, exclude []string) *Store {
	return &Store{
		root:    root,
		codec:   codec,
		exclude: exclude,
	}
}

// PathFor returns the archive path for a profile name. Pure; performs
// no I/O.
func (s *Store) PathFor(name string) string {
	return filepath.Join(s.root, name+".zip")
}

// Has reports whether an archive exists for the profile name.
func (s *Store) Has(name string) bool {
	return util.FileExists(s.PathFor(name))
}

// Save archives srcDir under the profile name, replacing any previous
// archive with that name. The archive is written to a temp file first
// and renamed into place, so a failed save never clobbers an existing
// archive.
func (s *Store) Save(name, srcDir string) error {
	if !util.DirExists(srcDir) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, srcDir)
	}
	if err := util.MkdirAll(s.root); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".save-*.zip")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := s.codec.Compress(srcDir, tmpPath, s.exclude); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to archive %s: %w", srcDir, err)
	}
	if err := os.Rename(tmpPath, s.PathFor(name)); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Restore replaces dstDir with the contents of the named profile's
// archive. Extraction happens in a scratch directory next to dstDir
// (same filesystem, so the final rename is cheap); dstDir is only
// removed once the archive has unpacked cleanly.
func (s *Store) Restore(name, dstDir string) error {
	archivePath := s.PathFor(name)
	if !util.FileExists(archivePath) {
		return fmt.Errorf("%w: %q", ErrArchiveNotFound, name)
	}

	parent := filepath.Dir(dstDir)
	if err := util.MkdirAll(parent); err != nil {
		return err
	}
	scratch, err := os.MkdirTemp(parent, ".gemini-switch-restore-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	if err := s.codec.Extract(archivePath, scratch); err != nil {
		return fmt.Errorf("failed to extract %q: %w", name, err)
	}

	entries, err := os.ReadDir(scratch)
	if err != nil {
		return err
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) != 1 {
		return fmt.Errorf("%w: %q", ErrCorruptArchive, name)
	}

	if err := os.RemoveAll(dstDir); err != nil {
		return err
	}
	return os.Rename(filepath.Join(scratch, dirs[0]), dstDir)
}

// List returns the sorted names of all saved profiles. A missing
// archive root yields an empty list, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".zip") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".zip"))
	}
	sort.Strings(names)
	return names, nil
}
