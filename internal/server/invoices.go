package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	waresyspb "github.com/Alan-K-Biju-7/waresys-mvp/gen/proto/waresys/v1"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/async"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/common"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
)

type InvoicesService struct {
	waresyspb.UnimplementedInvoicesServiceServer
	bills     repository.BillRepository
	queue     async.Queue
	processor *async.Processor
	exporter  Exporter
	uploadDir string
	logger    *slog.Logger
}

// Exporter is the XLSX export capability, kept narrow so tests can stub it.
type Exporter interface {
	ExportBillsXLSX(ctx context.Context, status *constants.BillStatus) ([]byte, error)
}

func NewInvoicesService(
	bills repository.BillRepository,
	queue async.Queue,
	processor *async.Processor,
	exporter Exporter,
	uploadDir string,
	logger *slog.Logger,
) *InvoicesService {
	return &InvoicesService{
		bills:     bills,
		queue:     queue,
		processor: processor,
		exporter:  exporter,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

func (s *InvoicesService) UploadBill(ctx context.Context, req *waresyspb.UploadBillRequest) (*waresyspb.UploadBillResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	format := constants.MapExtToFormat(filepath.Ext(filename))
	if format == "" {
		return nil, common.InvalidArgumentErrorf("unsupported file extension: %s", filepath.Ext(filename))
	}

	path, err := s.storeUpload(filename, req.GetContent())
	if err != nil {
		s.logger.Error("failed to store upload", "filename", filename, "error", err)
		return nil, common.InternalError("failed to store upload")
	}

	b, err := s.bills.Create(ctx, &repository.CreateBillRequest{SourcePath: path, Format: format})
	if err != nil {
		return nil, common.InternalErrorf("register bill: %v", err)
	}
	s.logger.Info("bill uploaded", "bill_id", b.ID, "filename", filename, "synchronous", req.GetSynchronous())

	if req.GetSynchronous() {
		processed, err := s.processor.ProcessBill(ctx, b.ID)
		if err != nil {
			// The bill row is already marked FAILED; report the cause.
			return nil, status.Errorf(codes.FailedPrecondition, "extraction failed: %v", err)
		}
		return &waresyspb.UploadBillResponse{Bill: toPBBill(processed)}, nil
	}

	if err := s.queue.Enqueue(ctx, async.Job{BillID: b.ID, SubmittedAt: time.Now()}); err != nil {
		return nil, common.InternalErrorf("enqueue bill: %v", err)
	}
	return &waresyspb.UploadBillResponse{Bill: toPBBill(b)}, nil
}

func (s *InvoicesService) GetBill(ctx context.Context, req *waresyspb.GetBillRequest) (*waresyspb.GetBillResponse, error) {
	id, err := parseBillID(req.GetBillId())
	if err != nil {
		return nil, err
	}
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("bill not found")
		}
		return nil, common.InternalErrorf("get bill: %v", err)
	}
	return &waresyspb.GetBillResponse{Bill: toPBBill(b)}, nil
}

func (s *InvoicesService) ListBills(ctx context.Context, req *waresyspb.ListBillsRequest) (*waresyspb.ListBillsResponse, error) {
	var filter *constants.BillStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		bs := constants.BillStatus(strings.ToUpper(st))
		switch bs {
		case constants.BillStatusUploaded, constants.BillStatusProcessing,
			constants.BillStatusProcessed, constants.BillStatusFailed,
			constants.BillStatusConfirmed:
			filter = &bs
		default:
			return nil, common.InvalidArgumentErrorf("unknown status: %s", st)
		}
	}

	bs, err := s.bills.List(ctx, filter, int(req.GetLimit()))
	if err != nil {
		return nil, common.InternalErrorf("list bills: %v", err)
	}
	out := make([]*waresyspb.Bill, len(bs))
	for i, b := range bs {
		out[i] = toPBBill(b)
	}
	return &waresyspb.ListBillsResponse{Bills: out}, nil
}

func (s *InvoicesService) ListReviewQueue(ctx context.Context, _ *waresyspb.ListReviewQueueRequest) (*waresyspb.ListReviewQueueResponse, error) {
	bs, err := s.bills.ListReviewQueue(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list review queue: %v", err)
	}
	out := make([]*waresyspb.Bill, len(bs))
	for i, b := range bs {
		out[i] = toPBBill(b)
	}
	return &waresyspb.ListReviewQueueResponse{Bills: out}, nil
}

func (s *InvoicesService) ConfirmBill(ctx context.Context, req *waresyspb.ConfirmBillRequest) (*waresyspb.ConfirmBillResponse, error) {
	id, err := parseBillID(req.GetBillId())
	if err != nil {
		return nil, err
	}

	b, err := s.bills.Confirm(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, common.NotFoundError("bill not found")
		case isConflict(err):
			return nil, common.FailedPreconditionError(err.Error())
		default:
			return nil, common.InternalErrorf("confirm bill: %v", err)
		}
	}
	s.logger.Info("bill confirmed", "bill_id", id)
	return &waresyspb.ConfirmBillResponse{Bill: toPBBill(b)}, nil
}

func (s *InvoicesService) ExportBills(ctx context.Context, req *waresyspb.ExportBillsRequest) (*waresyspb.ExportBillsResponse, error) {
	var filter *constants.BillStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		bs := constants.BillStatus(strings.ToUpper(st))
		filter = &bs
	}
	data, err := s.exporter.ExportBillsXLSX(ctx, filter)
	if err != nil {
		return nil, common.InternalErrorf("export bills: %v", err)
	}
	return &waresyspb.ExportBillsResponse{Xlsx: data}, nil
}

func (s *InvoicesService) storeUpload(filename string, content []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	// Prefix with a UUID so repeated filenames never collide.
	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func parseBillID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, common.InvalidArgumentError("bill_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("bill_id must be a UUID")
	}
	return id, nil
}

func isConflict(err error) bool {
	var appErr *common.AppError
	return errors.As(err, &appErr) && errors.Is(appErr.Cause, common.ErrConflict)
}
