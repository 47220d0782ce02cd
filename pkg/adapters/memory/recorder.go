package memory

import (
	"context"
	"sync"

	"github.com/aretw0/appguide/pkg/domain"
)

// Recorder implements ports.ProgressLog in memory.
// Safe for concurrent use.
type Recorder struct {
	records []domain.CompletionRecord
	mu      sync.RWMutex
}

// New creates an empty in-memory recorder.
func New() *Recorder {
	return &Recorder{}
}

// Record appends the entry.
func (r *Recorder) Record(ctx context.Context, rec domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// List returns a copy of the recorded entries, oldest first.
func (r *Recorder) List(ctx context.Context) ([]domain.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CompletionRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
