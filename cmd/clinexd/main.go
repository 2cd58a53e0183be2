package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/medrecord-tools/clinex/gen/proto/clinex/v1"
	"github.com/medrecord-tools/clinex/internal/async"
	"github.com/medrecord-tools/clinex/internal/codes"
	"github.com/medrecord-tools/clinex/internal/common"
	"github.com/medrecord-tools/clinex/internal/export"
	"github.com/medrecord-tools/clinex/internal/extract"
	"github.com/medrecord-tools/clinex/internal/ingest"
	"github.com/medrecord-tools/clinex/internal/ner"
	"github.com/medrecord-tools/clinex/internal/pipeline"
	repo "github.com/medrecord-tools/clinex/internal/repository"
	"github.com/medrecord-tools/clinex/internal/segment"
	svc "github.com/medrecord-tools/clinex/internal/server"
	"github.com/medrecord-tools/clinex/internal/terms"
)

func main() {
	// zap carries process-lifecycle events; components get slog.
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}
	grpcServer := grpc.NewServer()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	reportsRepo := repo.NewReportRecordRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{Pdftotext: cfg.Extract.Pdftotext}, logger)
	stage := pipeline.NewExtractStage(docsRepo, jobsRepo, extractor, logger)

	segmenter := segment.NewSegmenter(segment.Config{MinMarkerGap: cfg.Pipeline.MinMarkerGap})
	validator := codes.NewValidator(codes.Config{ModifierWindow: cfg.Pipeline.ModifierWindow})

	assemblerOpts := []pipeline.AssemblerOption{pipeline.WithAssemblerLogger(logger)}
	if cfg.NER.BaseURL != "" {
		recognizers := make([]ner.Recognizer, 0, len(cfg.NER.Models))
		for _, model := range cfg.NER.Models {
			recognizers = append(recognizers, ner.NewHTTPRecognizer(ner.HTTPConfig{
				BaseURL: cfg.NER.BaseURL,
				Model:   model,
				Timeout: cfg.NER.Timeout,
			}, logger))
		}
		chain := ner.NewChain(logger, recognizers...)
		assemblerOpts = append(assemblerOpts, pipeline.WithRecognizer(ner.NewAdapter(chain, cfg.NER.Timeout, logger)))
	} else {
		logger.Warn("NER_URL not configured, extraction runs on the dictionary alone")
	}
	assembler := pipeline.NewAssembler(terms.DefaultVocabulary(), validator, assemblerOpts...)

	processor := pipeline.NewProcessor(stage, segmenter, assembler, reportsRepo, jobsRepo,
		pipeline.WithBlockWorkers(cfg.Pipeline.BlockWorkers),
		pipeline.WithProcessorLogger(logger),
	)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, queue, logger))
	v1.RegisterReportsServiceServer(grpcServer, svc.NewReportsService(docsRepo, jobsRepo, reportsRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(export.NewService(docsRepo, reportsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional directory watcher: new documents under WATCH_DIRS are
	// ingested and queued without an RPC.
	if roots := watchRoots(); len(roots) > 0 {
		startWatchLoop(ctx, roots, ingestor, queue, logger, zlog)
	}

	zlog.Info("clinexd listening", zap.String("addr", cfg.Server.GRPCAddr))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("gRPC serve error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func watchRoots() []string {
	raw := os.Getenv("WATCH_DIRS")
	if raw == "" {
		return nil
	}
	var roots []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roots = append(roots, r)
		}
	}
	return roots
}

func startWatchLoop(ctx context.Context, roots []string, ingestor ingest.Ingestor, queue *async.ProcessorQueue, logger *slog.Logger, zlog *zap.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    2 * time.Second,
	})
	if err != nil {
		zlog.Fatal("failed to start directory watcher", zap.Error(err))
	}
	zlog.Info("watching directories", zap.Strings("roots", roots))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-evCh:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "err", err)
					continue
				}
				if id, err := uuid.Parse(r.DocumentID); err == nil {
					_ = queue.Enqueue(ctx, async.Job{DocumentID: id, SubmittedAt: time.Now()})
				}
			case err, ok := <-errCh:
				if ok && err != nil {
					logger.Error("watcher error", "err", err)
				}
			}
		}
	}()
}
