package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrecord-tools/clinex/internal/codes"
	"github.com/medrecord-tools/clinex/internal/ner"
	"github.com/medrecord-tools/clinex/internal/segment"
	"github.com/medrecord-tools/clinex/internal/terms"
)

const sampleReport = `Report 1:
PROCEDURE PERFORMED: Colonoscopy to the cecum.
FINDINGS: Sigmoid diverticulosis. Two polyps in the ascending colon.
IMPRESSION: Diverticulosis; Colonic polyps.
Billing: 45378 -59 dx K57.30
`

type stubRecognizer struct {
	ents []ner.Entity
	err  error
}

func (s *stubRecognizer) Name() string { return "stub" }
func (s *stubRecognizer) Recognize(context.Context, string) ([]ner.Entity, error) {
	return s.ents, s.err
}

func newTestAssembler(opts ...AssemblerOption) *Assembler {
	return NewAssembler(terms.DefaultVocabulary(), codes.NewValidator(codes.Config{}), opts...)
}

func TestAssembleFullReport(t *testing.T) {
	a := newTestAssembler()

	rec := a.Assemble(context.Background(), segment.Block{ID: 1, Text: sampleReport})

	assert.Equal(t, "Report 1", rec.ReportID)
	assert.Contains(t, rec.ClinicalTerms, "diverticulosis")
	assert.Contains(t, rec.ClinicalTerms, "polyps")
	assert.Contains(t, rec.AnatomicalLocations, "sigmoid")
	assert.Contains(t, rec.AnatomicalLocations, "ascending colon")
	assert.Contains(t, rec.AnatomicalLocations, "cecum")
	assert.Contains(t, rec.Diagnosis, "Diverticulosis")
	assert.Contains(t, rec.Diagnosis, "Colonic polyps")
	assert.Contains(t, rec.Procedures, "Colonoscopy to the cecum")
	assert.Equal(t, []string{"K57.30"}, rec.ICD10)
	assert.Equal(t, []string{"45378"}, rec.CPT)
	assert.Equal(t, []string{"59"}, rec.Modifiers)
	assert.Empty(t, rec.HCPCS)
}

func TestAssembleMergesNERAfterDictionary(t *testing.T) {
	rec := &stubRecognizer{ents: []ner.Entity{
		{Text: "diverticulosis", Label: "DISEASE"}, // duplicate of dictionary hit
		{Text: "melena", Label: "SYMPTOM"},
	}}
	a := newTestAssembler(WithRecognizer(ner.NewAdapter(rec, time.Second, nil)))

	got := a.Assemble(context.Background(), segment.Block{ID: 1, Text: "Diverticulosis seen."})

	count := 0
	for _, term := range got.ClinicalTerms {
		if term == "diverticulosis" {
			count++
		}
	}
	assert.Equal(t, 1, count, "dictionary and NER hits for the same term must collapse")
	assert.Contains(t, got.ClinicalTerms, "melena")
}

func TestAssembleDegradesWhenNERFails(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("service down")}
	a := newTestAssembler(WithRecognizer(ner.NewAdapter(rec, time.Second, nil)))

	got := a.Assemble(context.Background(), segment.Block{ID: 1, Text: "Gastritis in the antrum."})

	// dictionary extraction still works without the recognizer
	assert.Contains(t, got.ClinicalTerms, "gastritis")
	assert.Contains(t, got.AnatomicalLocations, "antrum")
}

func TestAssembleNoRecognizerConfigured(t *testing.T) {
	a := newTestAssembler()

	got := a.Assemble(context.Background(), segment.Block{ID: 2, Text: "Colitis of the rectum."})
	assert.Equal(t, "Report 2", got.ReportID)
	assert.Contains(t, got.ClinicalTerms, "colitis")
	assert.Contains(t, got.AnatomicalLocations, "rectum")
}

func TestAssembleEmptyBlockYieldsEmptyRecord(t *testing.T) {
	a := newTestAssembler()

	got := a.Assemble(context.Background(), segment.Block{ID: 1, Text: "no recognizable content here"})
	assert.Equal(t, "Report 1", got.ReportID)
	assert.NotNil(t, got.ClinicalTerms)
	assert.NotNil(t, got.ICD10)
	assert.Empty(t, got.CPT)
}

func TestAssembleDeterministic(t *testing.T) {
	a := newTestAssembler()
	block := segment.Block{ID: 1, Text: sampleReport}

	first := a.Assemble(context.Background(), block)
	second := a.Assemble(context.Background(), block)
	assert.Equal(t, first, second)
}

func TestProcessTextTwoReports(t *testing.T) {
	a := newTestAssembler()
	p := NewProcessor(nil, segment.NewSegmenter(segment.Config{}), a, nil, nil, WithBlockWorkers(2))

	text := "Report 1:\nFINDINGS: Gastritis in the antrum with erythema and friability noted throughout the examination.\n\n" +
		"Report 2:\nFINDINGS: Diverticulosis of the sigmoid colon, extensive and scattered throughout.\n"
	result, err := p.ProcessText(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Report 1", result[0].ReportID)
	assert.Equal(t, "Report 2", result[1].ReportID)
	assert.Contains(t, result[0].ClinicalTerms, "gastritis")
	assert.Contains(t, result[1].ClinicalTerms, "diverticulosis")

	// a report with no codes is still emitted, with empty code arrays
	assert.Empty(t, result[1].ICD10)
	assert.Empty(t, result[1].CPT)
	assert.Empty(t, result[1].HCPCS)
	assert.Empty(t, result[1].Modifiers)
}

func TestProcessTextIdempotentJSON(t *testing.T) {
	a := newTestAssembler()
	p := NewProcessor(nil, segment.NewSegmenter(segment.Config{}), a, nil, nil, WithBlockWorkers(4))

	text := "Report 1:\n" + sampleReport + "\nReport 2:\nFINDINGS: Esophagitis at the gastroesophageal junction area.\n"

	first, err := p.ProcessText(context.Background(), text)
	require.NoError(t, err)
	second, err := p.ProcessText(context.Background(), text)
	require.NoError(t, err)

	fj, err := first.JSON()
	require.NoError(t, err)
	sj, err := second.JSON()
	require.NoError(t, err)
	assert.Equal(t, fj, sj, "repeat runs must be byte-identical")
}

func TestProcessTextSingleBlockWithoutMarkers(t *testing.T) {
	a := newTestAssembler()
	p := NewProcessor(nil, segment.NewSegmenter(segment.Config{}), a, nil, nil)

	result, err := p.ProcessText(context.Background(), "FINDINGS: Mild duodenitis observed today.")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Report 1", result[0].ReportID)
}
