// Package queue defines the contract for feeding season chunks to the
// worker pool. Season processing is chunked so a mid-run failure loses at
// most one chunk's progress.
package queue

import (
	"context"
	"sync"

	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 1024
)

// Chunk is one unit of season work: a batch of players processed and
// committed together.
type Chunk struct {
	Seq     int
	Players []*model.PlayerRecord
}

// Queue provides non-blocking enqueue and channel-based dequeue semantics
// for season chunks.
type Queue interface {
	// Enqueue adds a chunk. Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, c Chunk) bool

	// Dequeue returns a channel receiving chunks as they become
	// available. The channel closes when the queue closes.
	Dequeue(ctx context.Context) <-chan Chunk

	// TryDequeue removes and returns one buffered chunk without
	// blocking. Returns false when the queue is empty.
	TryDequeue(ctx context.Context) (Chunk, bool)

	// Len returns the number of queued chunks.
	Len(ctx context.Context) int

	// Close stops the queue; no further enqueues succeed and the dequeue
	// channel drains then closes.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue over a buffered channel.
type InMemoryQueue struct {
	chunks   chan Chunk
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates an in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.chunks = make(chan Chunk, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0)
	return q
}

// Enqueue adds a chunk to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, c Chunk) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueFullDrop()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	select {
	case q.chunks <- c:
		metrics.RecordQueueEnqueue()
		q.publishGauges()
		return true
	case <-ctx.Done():
		metrics.RecordQueueFullDrop()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueFullDrop()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns a channel receiving chunks as they become available.
// The channel is shared by every consumer, so each chunk is delivered to
// exactly one of them; a consumer that stops receiving never strands a
// chunk in flight, it stays buffered for the others or for TryDequeue.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Chunk {
	return q.chunks
}

// TryDequeue removes one buffered chunk without blocking.
func (q *InMemoryQueue) TryDequeue(_ context.Context) (Chunk, bool) {
	select {
	case c, ok := <-q.chunks:
		if !ok {
			return Chunk{}, false
		}
		metrics.RecordQueueDequeue()
		q.publishGauges()
		return c, true
	default:
		return Chunk{}, false
	}
}

// Len returns the current number of queued chunks.
func (q *InMemoryQueue) Len(_ context.Context) int {
	q.publishGauges()
	return len(q.chunks)
}

// Close stops the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.chunks)
	q.closed = true
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

func (q *InMemoryQueue) publishGauges() {
	size := len(q.chunks)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
}
