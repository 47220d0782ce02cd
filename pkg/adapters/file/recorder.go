// Package file records phase completions in a markdown progress log on disk.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
)

// DefaultFileName is the progress log kept in the project root.
const DefaultFileName = "MASTER_GOAL_PROGRESS.md"

const completedOn = " completed on "

// Recorder implements ports.ProgressLog by appending lines of the form
// "<title> completed on YYYY-MM-DD HH:MM:SS" to a markdown file.
type Recorder struct {
	Path string

	loc *time.Location
	mu  sync.Mutex
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLocation sets the zone timestamps are written and parsed in (default: time.Local).
func WithLocation(loc *time.Location) Option {
	return func(r *Recorder) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// New creates a recorder for the given file.
// If path is empty, it defaults to MASTER_GOAL_PROGRESS.md in the working directory.
func New(path string, opts ...Option) *Recorder {
	if path == "" {
		path = DefaultFileName
	}
	r := &Recorder{Path: path, loc: time.Local}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends one entry, creating the file (and its directory) when missing.
func (r *Recorder) Record(ctx context.Context, rec domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to ensure progress directory: %w", err)
	}
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open progress log: %w", err)
	}
	defer f.Close()

	line := rec.Title + completedOn + rec.CompletedAt.In(r.loc).Format(domain.CompletionTimeLayout)
	if _, err := fmt.Fprintf(f, "\n%s\n", line); err != nil {
		return fmt.Errorf("failed to write progress log: %w", err)
	}
	return nil
}

// List parses the entries back. Lines that are not completion entries are ignored.
func (r *Recorder) List(ctx context.Context) ([]domain.CompletionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.CompletionRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read progress log: %w", err)
	}
	defer f.Close()

	records := []domain.CompletionRecord{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if rec, ok := r.parse(strings.TrimSpace(sc.Text())); ok {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress log: %w", err)
	}
	return records, nil
}

func (r *Recorder) parse(line string) (domain.CompletionRecord, bool) {
	i := strings.LastIndex(line, completedOn)
	if i <= 0 {
		return domain.CompletionRecord{}, false
	}
	at, err := time.ParseInLocation(domain.CompletionTimeLayout, line[i+len(completedOn):], r.loc)
	if err != nil {
		return domain.CompletionRecord{}, false
	}
	rec := domain.CompletionRecord{Title: line[:i], CompletedAt: at}
	// Titles of the default layout start with "Phase N". Other titles keep index 0.
	var index int
	if n, err := fmt.Sscanf(rec.Title, "Phase %d", &index); err == nil && n == 1 {
		rec.PhaseIndex = index
	}
	return rec, true
}
