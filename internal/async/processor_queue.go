package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// ProcessorQueue is a bounded in-process queue with a fixed worker pool
// draining it through a BillProcessor.
type ProcessorQueue struct {
	proc    BillProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu is held shared by enqueuers and exclusively by Shutdown, so the
	// channel can never be closed while a send is in flight.
	mu     sync.RWMutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc BillProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 128),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("queue worker online", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					_, err := q.proc.ProcessBill(ctx, job.BillID)
					cancel()

					if err != nil {
						q.logger.Error("bill processing failed", "worker_id", workerID, "bill_id", job.BillID, "error", err)
					} else {
						q.logger.Info("bill processed by worker", "worker_id", workerID, "bill_id", job.BillID)
					}
				}

				q.logger.Info("queue worker offline", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue submits a job, waiting for capacity when the queue is saturated.
// The wait respects ctx; a cancelled caller gets ctx.Err back. Submissions
// after Shutdown are dropped.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("enqueue rejected: queue closed", "bill_id", job.BillID)
		return nil
	}

	select {
	case q.ch <- job:
		q.logger.Info("bill queued", "bill_id", job.BillID, "force", job.Force)
		return nil
	default:
	}

	q.logger.Warn("queue saturated, waiting for capacity", "bill_id", job.BillID)
	select {
	case q.ch <- job:
		q.logger.Info("bill queued", "bill_id", job.BillID, "force", job.Force)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue shutdown cut short", "error", ctx.Err())
	case <-done:
		q.logger.Info("queue drained")
	}
}
