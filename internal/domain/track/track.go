// Package track records per-season processing progress so an interrupted
// season pass resumes from unprocessed players instead of starting over.
package track

import (
	"context"
	"sync"
	"sync/atomic"
)

// Tracker records which player IDs the current season pass has processed.
type Tracker interface {
	// SeenAndRecord atomically checks whether id was already processed
	// this season and records it if not. Returns true if it was already
	// processed, false if newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an id, allowing its chunk to be reprocessed after
	// a failed commit.
	Unrecord(ctx context.Context, id string)

	// Reset clears all progress, starting a fresh season pass.
	Reset(ctx context.Context)

	Size() int64
}

// inMemoryTracker implements Tracker with a mutex-guarded set. Season
// passes touch each player once, so there is no eviction: Reset is the
// lifecycle boundary.
type inMemoryTracker struct {
	mu   sync.RWMutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryTracker creates an empty season progress tracker.
func NewInMemoryTracker() Tracker {
	return &inMemoryTracker{seen: make(map[string]struct{})}
}

func (t *inMemoryTracker) SeenAndRecord(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.seen[id]; exists {
		return true
	}
	t.seen[id] = struct{}{}
	t.size.Add(1)
	return false
}

func (t *inMemoryTracker) Unrecord(_ context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.seen[id]; exists {
		delete(t.seen, id)
		t.size.Add(-1)
	}
}

func (t *inMemoryTracker) Reset(_ context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seen = make(map[string]struct{})
	t.size.Store(0)
}

func (t *inMemoryTracker) Size() int64 {
	return t.size.Load()
}
