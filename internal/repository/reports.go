package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/gen/ent/reportrecord"
	"github.com/medrecord-tools/clinex/internal/report"
)

type ReportRecordRepository interface {
	// ReplaceForDocument replaces the document's stored reports with the
	// given extraction result, keyed to the producing job.
	ReplaceForDocument(ctx context.Context, documentID, jobID uuid.UUID, result report.Result) error
	// ListByDocument returns the stored reports in document order.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ReportRecord, error)
}

type reportRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReportRecordRepository(entc *ent.Client, log *slog.Logger) ReportRecordRepository {
	return &reportRecordRepo{ent: entc, log: log}
}

func (r *reportRecordRepo) ReplaceForDocument(ctx context.Context, documentID, jobID uuid.UUID, result report.Result) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.ReportRecord.
		Delete().
		Where(reportrecord.DocumentIDEQ(documentID)).
		Exec(ctx); err != nil {
		r.log.Error("report_records delete failed", "document_id", documentID, "err", err)
		return rollback(tx, err)
	}

	builders := make([]*ent.ReportRecordCreate, 0, len(result))
	for i, rec := range result {
		payload, err := json.Marshal(rec)
		if err != nil {
			return rollback(tx, err)
		}
		builders = append(builders, tx.ReportRecord.
			Create().
			SetDocumentID(documentID).
			SetJobID(jobID).
			SetSeq(i+1).
			SetPayload(payload))
	}
	if _, err := tx.ReportRecord.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("report_records create failed", "document_id", documentID, "err", err)
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("report_records stored", "document_id", documentID, "job_id", jobID, "count", len(result))
	return nil
}

func (r *reportRecordRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.ReportRecord, error) {
	return r.ent.ReportRecord.
		Query().
		Where(reportrecord.DocumentIDEQ(documentID)).
		Order(ent.Asc(reportrecord.FieldSeq)).
		All(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
