package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format, status string) (*ent.ExtractJob, error)
	FinishText(ctx context.Context, jobID uuid.UUID, rawText, method string, modelParams map[string]any) error
	FinishExtract(ctx context.Context, jobID uuid.UUID, reportCount int) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishText(ctx context.Context, jobID uuid.UUID, rawText, method string, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetModelName(method).
		SetModelParams(params).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text extracted", "job_id", jobID, "method", method, "bytes", len(rawText))
	return nil
}

func (r *extractJobRepo) FinishExtract(ctx context.Context, jobID uuid.UUID, reportCount int) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetReportCount(reportCount).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (EXTRACT_OK)", "job_id", jobID, "reports", reportCount)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) LatestForDocument(ctx context.Context, documentID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.
		Query().
		Where(extractjob.DocumentIDEQ(documentID)).
		Order(ent.Desc(extractjob.FieldStartedAt)).
		First(ctx)
}
