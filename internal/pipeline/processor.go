package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/medrecord-tools/clinex/internal/output"
	"github.com/medrecord-tools/clinex/internal/report"
	"github.com/medrecord-tools/clinex/internal/repository"
	"github.com/medrecord-tools/clinex/internal/segment"
)

const defaultBlockWorkers = 4

// Processor drives a document through the full pipeline: text extraction,
// segmentation, per-block assembly, output validation, and persistence.
type Processor struct {
	stage     *ExtractStage
	segmenter *segment.Segmenter
	assembler *Assembler
	reports   repository.ReportRecordRepository
	jobs      repository.ExtractJobRepository
	workers   int
	log       *slog.Logger
}

type ProcessorOption func(*Processor)

// WithBlockWorkers bounds how many report blocks are assembled concurrently.
func WithBlockWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithProcessorLogger(log *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

func NewProcessor(stage *ExtractStage, segmenter *segment.Segmenter, assembler *Assembler, reports repository.ReportRecordRepository, jobs repository.ExtractJobRepository, opts ...ProcessorOption) *Processor {
	p := &Processor{
		stage:     stage,
		segmenter: segmenter,
		assembler: assembler,
		reports:   reports,
		jobs:      jobs,
		workers:   defaultBlockWorkers,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessDocument runs the pipeline end to end for one stored document and
// returns the ordered extraction result. The result is persisted and the
// job is marked EXTRACT_OK before returning.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (report.Result, error) {
	jobID, extracted, err := p.stage.Run(ctx, documentID)
	if err != nil {
		return nil, err
	}

	result, err := p.ProcessText(ctx, extracted.Text)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return nil, err
	}

	if err := p.reports.ReplaceForDocument(ctx, documentID, jobID, result); err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return nil, err
	}
	if err := p.jobs.FinishExtract(ctx, jobID, len(result)); err != nil {
		return nil, err
	}
	return result, nil
}

// ProcessText segments raw document text and assembles each block. It is
// the persistence-free core shared by the server and the batch CLI.
func (p *Processor) ProcessText(ctx context.Context, text string) (report.Result, error) {
	blocks := p.segmenter.Segment(text)
	p.log.Info("document segmented", "blocks", len(blocks))

	result := p.assembleAll(ctx, blocks)
	for _, rec := range result {
		p.log.Info("report assembled",
			"report_id", rec.ReportID,
			"clinical_terms", len(rec.ClinicalTerms),
			"anatomical_locations", len(rec.AnatomicalLocations),
			"diagnosis", len(rec.Diagnosis),
			"procedures", len(rec.Procedures),
			"codes", len(rec.ICD10)+len(rec.CPT)+len(rec.HCPCS)+len(rec.Modifiers))
	}

	if data, err := result.JSON(); err == nil {
		if verr := output.ValidateJSONAgainstSchema(output.BuildExtractionJSONSchema(), data); verr != nil {
			// shape drift is a bug, not a reason to drop the document
			p.log.Warn("extraction output failed schema validation", "err", verr)
		}
	}
	return result, nil
}

// assembleAll fans block assembly out over the worker bound while keeping
// results indexed by block, so output order never depends on scheduling.
func (p *Processor) assembleAll(ctx context.Context, blocks []segment.Block) report.Result {
	results := make(report.Result, len(blocks))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, block segment.Block) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = p.assembler.Assemble(ctx, block)
		}(i, block)
	}
	wg.Wait()
	return results
}
