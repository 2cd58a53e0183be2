package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/medrecord-tools/clinex/gen/proto/clinex/v1"
	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/internal/report"
	"github.com/medrecord-tools/clinex/internal/repository"
)

type ReportsService struct {
	v1.UnimplementedReportsServiceServer
	docs    repository.DocumentRepository
	jobs    repository.ExtractJobRepository
	reports repository.ReportRecordRepository
	logger  *slog.Logger
}

func NewReportsService(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, reports repository.ReportRecordRepository, logger *slog.Logger) *ReportsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsService{docs: docs, jobs: jobs, reports: reports, logger: logger}
}

func (s *ReportsService) ListDocuments(ctx context.Context, _ *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	rows, err := s.docs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}

	out := make([]*v1.Document, 0, len(rows))
	for _, d := range rows {
		out = append(out, &v1.Document{
			Id:         d.ID.String(),
			SourcePath: d.SourcePath,
			Filename:   d.Filename,
			FileExt:    d.FileExt,
			FileSize:   int64(d.FileSize),
			UploadedAt: d.UploadedAt.UTC().Format(time.RFC3339),
		})
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *ReportsService) GetExtraction(ctx context.Context, req *v1.GetExtractionRequest) (*v1.GetExtractionResponse, error) {
	id := strings.TrimSpace(req.GetDocumentId())
	if id == "" {
		s.logger.Error("get extraction request missing document_id")
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	documentID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", id, "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	if _, err := s.docs.GetByID(ctx, documentID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to load document", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}

	jobStatus := ""
	if job, err := s.jobs.LatestForDocument(ctx, documentID); err == nil {
		jobStatus = job.Status
	}

	rows, err := s.reports.ListByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to list reports", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "list reports: %v", err)
	}

	result := make(report.Result, 0, len(rows))
	for _, row := range rows {
		var rec report.Extracted
		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			s.logger.Error("stored report payload is corrupt", "document_id", documentID, "seq", row.Seq, "error", err)
			return nil, status.Error(codes.Internal, "stored report payload is corrupt")
		}
		result = append(result, rec)
	}

	data, err := result.JSON()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "render result: %v", err)
	}

	out := &v1.GetExtractionResponse{
		DocumentId: documentID.String(),
		JobStatus:  jobStatus,
		Reports:    make([]*v1.Report, 0, len(result)),
		Json:       data,
	}
	for _, rec := range result {
		out.Reports = append(out.Reports, toPBReport(rec))
	}
	return out, nil
}

func toPBReport(rec report.Extracted) *v1.Report {
	return &v1.Report{
		ReportId:            rec.ReportID,
		ClinicalTerms:       rec.ClinicalTerms,
		AnatomicalLocations: rec.AnatomicalLocations,
		Diagnosis:           rec.Diagnosis,
		Procedures:          rec.Procedures,
		Icd10:               rec.ICD10,
		Cpt:                 rec.CPT,
		Hcpcs:               rec.HCPCS,
		Modifiers:           rec.Modifiers,
	}
}
