package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
)

// stubBillProcessor records processed bill IDs. When gate is set, every call
// blocks until it is closed; started signals that a worker picked up a job.
type stubBillProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	started   chan uuid.UUID
	gate      chan struct{}
}

func (s *stubBillProcessor) ProcessBill(_ context.Context, billID uuid.UUID) (*entity.Bill, error) {
	if s.started != nil {
		s.started <- billID
	}
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	s.processed = append(s.processed, billID)
	s.mu.Unlock()
	return &entity.Bill{ID: billID}, nil
}

func (s *stubBillProcessor) done() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.processed...)
}

func TestProcessorQueueDrainsOnShutdown(t *testing.T) {
	proc := &stubBillProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(2))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{BillID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Len(t, proc.done(), 5)
}

func TestProcessorQueueSaturationRespectsCallerContext(t *testing.T) {
	proc := &stubBillProcessor{started: make(chan uuid.UUID, 4), gate: make(chan struct{})}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{BillID: uuid.New()}))
	<-proc.started // the only worker is now parked inside ProcessBill

	// Fills the single buffer slot; the queue is saturated from here on.
	require.NoError(t, q.Enqueue(context.Background(), Job{BillID: uuid.New()}))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.Enqueue(cancelled, Job{BillID: uuid.New()})
	require.ErrorIs(t, err, context.Canceled, "a cancelled caller must not wait for capacity")

	close(proc.gate)
	ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	q.Shutdown(ctx)

	assert.Len(t, proc.done(), 2, "the rejected job must not have been queued")
}

func TestProcessorQueueRejectsAfterShutdown(t *testing.T) {
	proc := &stubBillProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{BillID: uuid.New()}))
	assert.Empty(t, proc.done())
}
