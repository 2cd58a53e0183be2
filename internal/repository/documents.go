package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/gen/ent/document"
)

type DocumentRepository interface {
	// UpsertByHash returns the existing row when the content hash is already
	// known (deduplicated=true), otherwise creates a new one.
	UpsertByHash(ctx context.Context, sourcePath, fileExt string, contentHash []byte, size int, uploadedAt time.Time) (*ent.Document, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	List(ctx context.Context) ([]*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) UpsertByHash(ctx context.Context, sourcePath, fileExt string, contentHash []byte, size int, uploadedAt time.Time) (*ent.Document, bool, error) {
	existing, err := r.ent.Document.
		Query().
		Where(document.ContentHashEQ(contentHash)).
		Only(ctx)
	if err == nil {
		r.log.Info("document deduplicated", "document_id", existing.ID, "path", sourcePath)
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		r.log.Error("document lookup failed", "path", sourcePath, "err", err)
		return nil, false, err
	}

	row, err := r.ent.Document.
		Create().
		SetSourcePath(sourcePath).
		SetContentHash(contentHash).
		SetFilename(filepath.Base(sourcePath)).
		SetFileExt(fileExt).
		SetFileSize(size).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "path", sourcePath, "err", err)
		return nil, false, err
	}
	r.log.Info("document created", "document_id", row.ID, "path", sourcePath)
	return row, false, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) List(ctx context.Context) ([]*ent.Document, error) {
	return r.ent.Document.
		Query().
		Order(ent.Asc(document.FieldUploadedAt)).
		All(ctx)
}
