// Package redis records phase completions in a Redis list.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/appguide/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the recorder.
const DefaultPrefix = "appguide:"

// Recorder implements ports.ProgressLog using a Redis list of JSON entries.
type Recorder struct {
	client *backend.Client
	prefix string
}

type Option func(*Recorder)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Recorder) {
		r.prefix = prefix
	}
}

// New creates a recorder connected to the given server.
func New(address, password string, db int, opts ...Option) *Recorder {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a recorder from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Recorder {
	r := &Recorder{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) key() string {
	return r.prefix + "progress"
}

// Record appends the entry to the list.
func (r *Recorder) Record(ctx context.Context, rec domain.CompletionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := r.client.RPush(ctx, r.key(), data).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// List returns all entries, oldest first.
func (r *Recorder) List(ctx context.Context) ([]domain.CompletionRecord, error) {
	vals, err := r.client.LRange(ctx, r.key(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load from redis: %w", err)
	}

	records := make([]domain.CompletionRecord, 0, len(vals))
	for _, v := range vals {
		var rec domain.CompletionRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Reset removes every recorded entry.
func (r *Recorder) Reset(ctx context.Context) error {
	return r.client.Del(ctx, r.key()).Err()
}

// Close releases the underlying connection pool.
func (r *Recorder) Close() error {
	return r.client.Close()
}
