// Package ingest watches inbox directories and registers arriving bill
// documents for extraction.
package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/async"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
)

// Inbox couples the directory watcher to bill registration: every allowed
// file that lands in a watched root becomes an UPLOADED bill on the queue.
type Inbox struct {
	bills  repository.BillRepository
	queue  async.Queue
	logger *slog.Logger

	seen map[string]struct{}
}

func NewInbox(bills repository.BillRepository, queue async.Queue, logger *slog.Logger) *Inbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{bills: bills, queue: queue, logger: logger, seen: map[string]struct{}{}}
}

// Run blocks until ctx is cancelled or the watcher dies.
func (in *Inbox) Run(ctx context.Context, cfg WatchConfig) error {
	paths, errs, err := StartWatcher(ctx, cfg)
	if err != nil {
		return err
	}
	in.logger.Info("inbox watcher running", "roots", cfg.Roots)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			in.logger.Error("inbox watcher error", "error", err)
		case path, ok := <-paths:
			if !ok {
				return nil
			}
			in.register(ctx, path)
		}
	}
}

func (in *Inbox) register(ctx context.Context, path string) {
	// The watcher re-emits writes to files already registered this run.
	if _, dup := in.seen[path]; dup {
		return
	}

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		in.logger.Warn("ignoring unsupported file", "path", path)
		return
	}

	b, err := in.bills.Create(ctx, &repository.CreateBillRequest{
		SourcePath: path,
		Format:     format,
	})
	if err != nil {
		in.logger.Error("failed to register inbox file", "path", path, "error", err)
		return
	}
	in.seen[path] = struct{}{}

	_ = in.queue.Enqueue(ctx, async.Job{BillID: b.ID, SubmittedAt: time.Now()})
	in.logger.Info("inbox file registered", "path", path, "bill_id", b.ID)
}
