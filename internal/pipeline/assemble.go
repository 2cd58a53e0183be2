package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/codes"
	"github.com/medrecord-tools/clinex/internal/common"
	"github.com/medrecord-tools/clinex/internal/ner"
	"github.com/medrecord-tools/clinex/internal/report"
	"github.com/medrecord-tools/clinex/internal/section"
	"github.com/medrecord-tools/clinex/internal/segment"
	"github.com/medrecord-tools/clinex/internal/terms"
)

// Assembler runs the per-report extraction stages over a single block of
// text and merges their outputs into one record. Dictionary candidates merge
// before NER candidates so the dictionary's canonical surfaces win
// first-seen ordering ties.
type Assembler struct {
	dict      *terms.Matcher
	proc      *terms.Matcher
	nerAd     *ner.Adapter
	diagnoses *section.Parser
	procs     *section.Parser
	validator *codes.Validator
	log       *slog.Logger
}

type AssemblerOption func(*Assembler)

func WithAssemblerLogger(log *slog.Logger) AssemblerOption {
	return func(a *Assembler) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRecognizer attaches an NER adapter. Without one, extraction runs on
// the dictionary alone.
func WithRecognizer(ad *ner.Adapter) AssemblerOption {
	return func(a *Assembler) {
		a.nerAd = ad
	}
}

func NewAssembler(vocab terms.Vocabulary, validator *codes.Validator, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		dict:      terms.NewMatcher(vocab.TermDictionary()),
		proc:      terms.NewMatcher(vocab.ProcedureDictionary()),
		diagnoses: section.NewParser(section.DiagnosisHeaders()),
		procs:     section.NewParser(section.ProcedureHeaders()),
		validator: validator,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble extracts one report record from a block. It never returns an
// error: a panic in any stage is recovered and the record keeps whatever
// fields were filled before the failure.
func (a *Assembler) Assemble(ctx context.Context, block segment.Block) (rec report.Extracted) {
	rec = report.New(block.ID)

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("assemble.recovered",
				"document_id", common.DocumentIDFromContext(ctx),
				"report_id", rec.ReportID, "panic", r)
		}
	}()

	a.fillTerms(ctx, block.Text, &rec)
	a.fillSections(block.Text, &rec)
	a.fillCodes(block.Text, &rec)
	return rec
}

func (a *Assembler) fillTerms(ctx context.Context, text string, rec *report.Extracted) {
	candidates := a.dict.Match(text)
	candidates = append(candidates, a.nerAd.Candidates(ctx, text)...)

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		key := string(c.Category) + "\x00" + c.Surface
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		switch c.Category {
		case constants.ClinicalTerm:
			rec.ClinicalTerms = append(rec.ClinicalTerms, c.Surface)
		case constants.AnatomicalLocation:
			rec.AnatomicalLocations = append(rec.AnatomicalLocations, c.Surface)
		}
	}
}

func (a *Assembler) fillSections(text string, rec *report.Extracted) {
	rec.Diagnosis = append(rec.Diagnosis, a.diagnoses.Extract(text)...)
	rec.Procedures = append(rec.Procedures, a.procs.Extract(text)...)

	// Known procedure names supplement the section capture, skipping any
	// already named inside a captured statement.
	for _, c := range a.proc.Match(text) {
		if containsFold(rec.Procedures, c.Surface) {
			continue
		}
		rec.Procedures = append(rec.Procedures, c.Surface)
	}
}

func (a *Assembler) fillCodes(text string, rec *report.Extracted) {
	seen := make(map[string]struct{})
	for _, c := range a.validator.Scan(text) {
		key := string(c.Kind) + "\x00" + c.Raw
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		switch c.Kind {
		case codes.ICD10:
			rec.ICD10 = append(rec.ICD10, c.Raw)
		case codes.CPT:
			rec.CPT = append(rec.CPT, c.Raw)
		case codes.HCPCS:
			rec.HCPCS = append(rec.HCPCS, c.Raw)
		case codes.Modifier:
			rec.Modifiers = append(rec.Modifiers, c.Raw)
		}
	}
}

func containsFold(items []string, needle string) bool {
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
