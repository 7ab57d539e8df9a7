// Package worker runs season chunks through the processing pipeline.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/pitchside/careersim/internal/adapters/mq/queue"
	"github.com/pitchside/careersim/pkg/logger"
	"github.com/pitchside/careersim/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 4
	workerShutdownTimeout = 5 * time.Second
	poolShutdownTimeout   = 30 * time.Second
)

// Processor handles one season chunk end to end: retirement checks,
// replacements, repricing and the atomic commit.
type Processor interface {
	ProcessChunk(ctx context.Context, c queue.Chunk) error
}

// Source defines how workers receive chunks.
type Source interface {
	Dequeue(ctx context.Context) <-chan queue.Chunk
}

// SeasonWorker consumes chunks from a source and hands them to the
// processor until its source closes or it is shut down.
type SeasonWorker struct {
	source    Source
	processor Processor
	name      string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewSeasonWorker creates a worker with configuration options.
func NewSeasonWorker(source Source, processor Processor, opts ...Option) *SeasonWorker {
	w := &SeasonWorker{
		source:    source,
		processor: processor,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop until the source closes, Shutdown is called
// or ctx is canceled.
func (w *SeasonWorker) Run(ctx context.Context) {
	defer close(w.done)

	chunks := w.source.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case c, ok := <-chunks:
			if !ok {
				return
			}
			metrics.RecordQueueDequeue()
			w.process(ctx, c)
		}
	}
}

func (w *SeasonWorker) process(ctx context.Context, c queue.Chunk) {
	start := time.Now()
	if err := w.processor.ProcessChunk(ctx, c); err != nil {
		metrics.RecordErrorByComponent("worker", "chunk_failed")
		w.logger.Error(ctx, "season chunk failed",
			logger.Int("chunk", c.Seq),
			logger.Int("players", len(c.Players)),
			logger.Error(err),
		)
		return
	}
	metrics.RecordChunkProcessed(float64(time.Since(start).Milliseconds()))
}

// Shutdown gracefully stops the worker.
func (w *SeasonWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Pool manages a fixed set of season workers over one chunk source.
type Pool struct {
	workers []*SeasonWorker
	source  Source

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A non-positive count
// defaults to the number of CPUs.
func NewPool(workerCount int, source Source, processor Processor) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
		if workerCount < 1 {
			workerCount = defaultWorkerCount
		}
	}

	p := &Pool{
		workers: make([]*SeasonWorker, workerCount),
		source:  source,
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewSeasonWorker(source, processor, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches every worker.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Shutdown closes the source (when closable) and stops every worker.
// Each worker gets the per-worker timeout; the whole pool is bounded by
// the pool timeout. Returns the first worker shutdown error.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.source.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing chunk source", logger.Error(err))
		}
	}

	poolCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	var firstErr error
	for i, w := range p.workers {
		workerCtx, workerCancel := context.WithTimeout(poolCtx, workerShutdownTimeout)
		if err := w.Shutdown(workerCtx); err != nil {
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
			if firstErr == nil {
				firstErr = err
			}
		}
		workerCancel()
	}
	metrics.UpdateWorkerCount(0)
	return firstErr
}
