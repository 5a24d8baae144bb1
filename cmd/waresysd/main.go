package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	waresyspb "github.com/Alan-K-Biju-7/waresys-mvp/gen/proto/waresys/v1"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/async"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/common"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/export"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/ingest"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/ocr"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}

	billsRepo := repository.NewBillRepository(entc, logger)
	vendorsRepo := repository.NewVendorRepository(entc, logger)
	productsRepo := repository.NewProductRepository(entc, logger)
	reference := repository.NewReference(vendorsRepo, productsRepo, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	pipeline := invoice.NewPipeline(invoice.Config{
		MinCharsPerPage:    cfg.Pipeline.MinCharsPerPage,
		ReviewThreshold:    cfg.Pipeline.ReviewThreshold,
		OCRConfidenceFloor: float32(cfg.Pipeline.OCRConfidenceFloor),
	}, extractor, reference, logger)

	processor := async.NewProcessor(billsRepo, vendorsRepo, productsRepo, pipeline, logger)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.WorkerCount),
		async.WithProcessTimeout(cfg.Pipeline.JobTimeout),
	)

	if len(cfg.Ingest.InboxDirs) > 0 {
		inbox := ingest.NewInbox(billsRepo, queue, logger)
		go func() {
			err := inbox.Run(ctx, ingest.WatchConfig{
				Roots:       cfg.Ingest.InboxDirs,
				InitialScan: cfg.Ingest.InitialScan,
				Debounce:    cfg.Ingest.Debounce,
			})
			if err != nil && ctx.Err() == nil {
				logger.Error("inbox watcher stopped", "error", err)
			}
		}()
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(billsRepo, logger)
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	svc := server.NewInvoicesService(billsRepo, queue, processor, exporter, uploadDir, logger)
	waresyspb.RegisterInvoicesServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
