package ports

import (
	"context"

	"github.com/aretw0/appguide/pkg/domain"
)

// ProgressRecorder is notified after phases complete.
// The core only invokes it; storage format belongs to the implementation.
type ProgressRecorder interface {
	// Record appends a human-readable completion entry.
	Record(ctx context.Context, rec domain.CompletionRecord) error
}

// ProgressLog is a ProgressRecorder that can read back its entries in insertion order.
type ProgressLog interface {
	ProgressRecorder

	// List returns all recorded entries, oldest first.
	List(ctx context.Context) ([]domain.CompletionRecord, error)
}
