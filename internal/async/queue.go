package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
)

// Job is the smallest useful unit. Extend as needed later (retry, trace, priority).
type Job struct {
	BillID      uuid.UUID
	Force       bool // re-run even if the bill was already processed
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// BillProcessor is the unit of work the queue drives.
type BillProcessor interface {
	ProcessBill(ctx context.Context, billID uuid.UUID) (*entity.Bill, error)
}
