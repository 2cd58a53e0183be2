package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/medrecord-tools/clinex/gen/proto/clinex/v1"
	"github.com/medrecord-tools/clinex/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportExtractions(ctx context.Context, req *v1.ExportExtractionsRequest) (*v1.ExportExtractionsResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.GetDocumentIds()))
	for _, raw := range req.GetDocumentIds() {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "document_ids must be UUIDs: %q", raw)
		}
		ids = append(ids, id)
	}

	xlsx, err := s.svc.ExportXLSX(ctx, ids)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportExtractionsResponse{Xlsx: xlsx}, nil
}
