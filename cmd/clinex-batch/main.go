package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/gen/ent"
	"github.com/medrecord-tools/clinex/internal/codes"
	"github.com/medrecord-tools/clinex/internal/common"
	"github.com/medrecord-tools/clinex/internal/export"
	"github.com/medrecord-tools/clinex/internal/extract"
	"github.com/medrecord-tools/clinex/internal/ingest"
	"github.com/medrecord-tools/clinex/internal/ner"
	"github.com/medrecord-tools/clinex/internal/output"
	"github.com/medrecord-tools/clinex/internal/pipeline"
	"github.com/medrecord-tools/clinex/internal/report"
	repo "github.com/medrecord-tools/clinex/internal/repository"
	"github.com/medrecord-tools/clinex/internal/segment"
	"github.com/medrecord-tools/clinex/internal/terms"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", true, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of clinical documents to process")
		file  = flag.String("file", "", "single document to process")
		out   = flag.String("out", "", "output JSON file path (optional, defaults next to input)")
		xlsx  = flag.String("xlsx", "", "also write an XLSX summary to this path (optional)")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		printError("Error: --dir or --file is required\n")
		os.Exit(1)
	}
	if *dir != "" && *file != "" {
		printError("Error: --dir and --file are mutually exclusive\n")
		os.Exit(1)
	}

	input := *dir
	if input == "" {
		input = *file
	}
	if *out == "" {
		parentDir := filepath.Dir(input)
		*out = filepath.Join(parentDir, "extractions.json")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

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
	}
	assembler := pipeline.NewAssembler(terms.DefaultVocabulary(), validator, assemblerOpts...)
	processor := pipeline.NewProcessor(stage, segmenter, assembler, reportsRepo, jobsRepo,
		pipeline.WithBlockWorkers(cfg.Pipeline.BlockWorkers),
		pipeline.WithProcessorLogger(logger),
	)

	ingestor := ingest.NewFSIngestor(docsRepo, logger)

	var ingested []uuid.UUID
	if *file != "" {
		r, err := ingestor.IngestPath(ctx, *file)
		if err != nil {
			logger.Error("failed to ingest file", "path", *file, "error", err)
			os.Exit(1)
		}
		ingested = documentIDs([]ingest.IngestionResult{r})
		if len(ingested) == 0 {
			logger.Error("ingest returned an unusable document id", "path", *file, "document_id", r.DocumentID)
			os.Exit(1)
		}
	} else {
		logger.Info("starting ingestion", "dir", *dir)
		results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
		if err != nil {
			logger.Error("failed to ingest directory", "error", err)
			os.Exit(1)
		}
		ingested = documentIDs(results)
		logger.Info("ingestion complete",
			"documents_ingested", len(ingested),
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"deduplicated", stats.Deduplicated)
	}

	processed := 0
	failures := 0
	var combined report.Result
	for _, docID := range ingested {
		logger.Info("processing document", "document_id", docID)
		result, err := processor.ProcessDocument(ctx, docID)
		if err != nil {
			logger.Error("failed to process document", "document_id", docID, "error", err)
			failures++
			continue
		}
		processed++
		combined = append(combined, result...)
	}

	data, err := combined.JSON()
	if err != nil {
		logger.Error("failed to render result", "error", err)
		os.Exit(1)
	}
	if err := output.ValidateJSONAgainstSchema(output.BuildExtractionJSONSchema(), data); err != nil {
		logger.Warn("output failed schema validation", "error", err)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	if *xlsx != "" {
		exportService := export.NewService(docsRepo, reportsRepo, logger)
		xlsxBytes, err := exportService.ExportXLSX(ctx, ingested)
		if err != nil {
			logger.Error("failed to export XLSX", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write XLSX file", "path", *xlsx, "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Reports extracted: %d\n", len(combined))
	fmt.Printf("- Output: %s\n", *out)
	if *xlsx != "" {
		fmt.Printf("- XLSX: %s\n", *xlsx)
	}
}

// documentIDs collects the parsed ids of the successfully ingested results,
// skipping failures and malformed ids so uuid.Nil is never queued.
func documentIDs(results []ingest.IngestionResult) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		id, err := uuid.Parse(r.DocumentID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// openDatabase picks the in-memory engine or Postgres from flags/env and
// returns the client plus its cleanup.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		entc, err := repo.OpenSQLite(ctx, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() { repo.Close(entc, nil, logger) }, nil
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
