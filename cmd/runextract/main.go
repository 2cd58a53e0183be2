package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/internal/extract"
	"github.com/medrecord-tools/clinex/internal/pipeline"
	repo "github.com/medrecord-tools/clinex/internal/repository"
	"github.com/medrecord-tools/clinex/internal/segment"
)

// runextract runs stage 1 (text extraction) plus segmentation for a single
// stored document and reports what it found. Useful when a document
// segments unexpectedly.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{Pdftotext: os.Getenv("PDFTOTEXT")}, logger)
	stage := pipeline.NewExtractStage(docsRepo, jobsRepo, extractor, logger)

	start := time.Now()
	jobID, res, err := stage.Run(ctx, documentID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	blocks := segment.NewSegmenter(segment.Config{}).Segment(res.Text)

	logger.Info("text extraction OK",
		"job_id", jobID,
		"method", res.Method,
		"bytes", len(res.Text),
		"blocks", len(blocks),
		"duration_ms", dur.Milliseconds(),
	)
	for _, b := range blocks {
		preview := b.Text
		if len(preview) > 80 {
			preview = preview[:80]
		}
		logger.Info("block", "id", b.ID, "bytes", len(b.Text), "preview", preview)
	}
}
