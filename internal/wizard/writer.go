package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrOutsideScope is returned for paths that would leave the scoped directory.
var ErrOutsideScope = errors.New("path escapes deliverable scope")

// Writer is the only component allowed to create deliverables. Every write goes
// through a Scope bound to one directory below the project root.
type Writer struct {
	root string

	mu      sync.Mutex
	created []string
}

// NewWriter creates a writer for the project at root.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Scope writes files below a single directory.
type Scope struct {
	dir string
	w   *Writer
}

// Within creates dir (relative to the project root) and runs fn with a scope bound to it.
func (w *Writer) Within(dir string, fn func(*Scope) error) error {
	if !filepath.IsLocal(dir) {
		return fmt.Errorf("%w: %s", ErrOutsideScope, dir)
	}
	abs := filepath.Join(w.root, dir)
	if err := os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return fn(&Scope{dir: abs, w: w})
}

// Created returns the files written so far, relative to the project root, in write order.
func (w *Writer) Created() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.created))
	copy(out, w.created)
	return out
}

// Dir returns the absolute directory of the scope.
func (s *Scope) Dir() string {
	return s.dir
}

// Mkdir creates a subdirectory of the scope.
func (s *Scope) Mkdir(rel string) error {
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0755)
}

// WriteFile creates or replaces rel with content, creating parent directories.
func (s *Scope) WriteFile(rel, content string) error {
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	if relRoot, err := filepath.Rel(s.w.root, path); err == nil {
		path = relRoot
	}
	s.w.created = append(s.w.created, path)
	return nil
}

func (s *Scope) resolve(rel string) (string, error) {
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideScope, rel)
	}
	return filepath.Join(s.dir, rel), nil
}
