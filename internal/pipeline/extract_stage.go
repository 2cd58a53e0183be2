package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/common"
	"github.com/medrecord-tools/clinex/internal/extract"
	"github.com/medrecord-tools/clinex/internal/repository"
)

// ExtractStage owns the document -> raw text half of the pipeline and the
// job bookkeeping around it. It loads the document row, opens a job, runs
// the extractor, and records the outcome before handing the text on.
type ExtractStage struct {
	docs      repository.DocumentRepository
	jobs      repository.ExtractJobRepository
	extractor extract.TextExtractor
	log       *slog.Logger
}

func NewExtractStage(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, extractor extract.TextExtractor, log *slog.Logger) *ExtractStage {
	if log == nil {
		log = slog.Default()
	}
	return &ExtractStage{docs: docs, jobs: jobs, extractor: extractor, log: log}
}

// Run extracts raw text for the document and returns the job it opened so
// the caller can finish or fail it. A failed extraction finishes the job as
// FAILED before the error is returned.
func (s *ExtractStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		s.log.Error("document load failed", "document_id", documentID, "err", err)
		return uuid.Nil, extract.TextExtractionResult{}, common.ErrNotFound
	}

	format := constants.MapExtToFormat(constants.NormalizeExt(filepath.Ext(doc.SourcePath)))
	job, err := s.jobs.Start(ctx, documentID, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	res, err := s.extractor.Extract(ctx, doc.SourcePath)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}
	for _, w := range res.Warnings {
		s.log.Warn("extraction warning", "job_id", job.ID, "warning", w)
	}

	if err := s.jobs.FinishText(ctx, job.ID, res.Text, res.Method, map[string]any{
		"source_type": res.SourceType,
		"duration_ms": res.Duration.Milliseconds(),
	}); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
