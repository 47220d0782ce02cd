// Package scan inspects phase folders for evidence of prior work.
//
// Every function here is read-only and never fails: missing paths, permission
// problems and other I/O errors all read as "no evidence found".
package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// errFound stops a walk at the first hit.
var errFound = errors.New("found")

// IsHidden reports whether a file name is hidden (starts with a dot).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// HasFiles reports whether the subtree rooted at path contains any non-hidden file.
// It returns false when path does not exist or is not a directory. Hidden directories
// are still descended into; only the file name decides whether a file counts.
// Unreadable subtrees are skipped.
func HasFiles(path string) bool {
	if !isDir(path) {
		return false
	}
	// WalkDir does not follow a symlinked root.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsHidden(d.Name()) {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}

// HasDirectFiles reports whether path directly contains a non-hidden regular file.
// Subdirectories are not inspected.
func HasDirectFiles(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if IsHidden(entry.Name()) {
			continue
		}
		if FileExists(filepath.Join(path, entry.Name())) {
			return true
		}
	}
	return false
}

// FileExists reports whether path names a regular file (symlinks are followed).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
