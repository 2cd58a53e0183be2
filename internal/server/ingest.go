package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/medrecord-tools/clinex/gen/proto/clinex/v1"
	"github.com/medrecord-tools/clinex/internal/async"
	"github.com/medrecord-tools/clinex/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    *async.ProcessorQueue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue *async.ProcessorQueue, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{ingestor: ing, queue: queue, logger: logger}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)
	s.enqueue(ctx, r.DocumentID)
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		out.Results = append(out.Results, toPBIngestResponse(r))
		if r.Err == "" && r.DocumentID != "" {
			s.enqueue(ctx, r.DocumentID)
		}
	}
	return out, nil
}

// enqueue hands the document to the extraction workers; malformed IDs from
// the ingest layer are a bug worth a log line, not a request failure.
func (s *IngestionService) enqueue(ctx context.Context, documentID string) {
	id, err := uuid.Parse(documentID)
	if err != nil {
		s.logger.Error("unparseable document id from ingest", "document_id", documentID, "err", err)
		return
	}
	_ = s.queue.Enqueue(ctx, async.Job{DocumentID: id, SubmittedAt: time.Now()})
}

func toPBIngestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
