package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDiagnosisSameLine(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	got := p.Extract("IMPRESSION: Sigmoid diverticulosis without bleeding.\n")
	require.Len(t, got, 1)
	assert.Equal(t, "Sigmoid diverticulosis without bleeding", got[0])
}

func TestExtractDiagnosisMultiLine(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	text := "DIAGNOSIS:\n1. Diverticulosis of sigmoid colon\n2. Internal hemorrhoids\n\nPLAN: follow up"
	got := p.Extract(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Diverticulosis of sigmoid colon", got[0])
	assert.Equal(t, "Internal hemorrhoids", got[1])
}

func TestExtractStopsAtNextHeader(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	text := "FINDINGS: Erythema in the antrum\nPROCEDURE: EGD with biopsy\n"
	got := p.Extract(text)
	require.Len(t, got, 1)
	assert.Equal(t, "Erythema in the antrum", got[0])
}

func TestExtractSemicolonStatements(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	got := p.Extract("IMPRESSION: Gastritis, mild; Duodenitis noted.\n")
	require.Len(t, got, 2)
	assert.Equal(t, "Gastritis, mild", got[0])
	assert.Equal(t, "Duodenitis noted", got[1])
}

func TestExtractProcedureHeaders(t *testing.T) {
	p := NewParser(ProcedureHeaders())

	got := p.Extract("PROCEDURE PERFORMED: Colonoscopy with polypectomy.\n")
	require.Len(t, got, 1)
	assert.Equal(t, "Colonoscopy with polypectomy", got[0])
}

func TestExtractMissingSection(t *testing.T) {
	p := NewParser(DiagnosisHeaders())
	assert.Empty(t, p.Extract("No recognizable sections in this narrative text."))
}

func TestExtractDropsShortAndDuplicateStatements(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	text := "IMPRESSION: ok\nDIAGNOSIS: Chronic gastritis\nFINDINGS: chronic GASTRITIS\n"
	got := p.Extract(text)
	// "ok" is below the length floor; the second gastritis differs only by case
	require.Len(t, got, 1)
	assert.Equal(t, "Chronic gastritis", got[0])
}

func TestExtractNormalizesWhitespace(t *testing.T) {
	p := NewParser(DiagnosisHeaders())

	got := p.Extract("IMPRESSION:   Mild   esophagitis   \n")
	require.Len(t, got, 1)
	assert.Equal(t, "Mild esophagitis", got[0])
}
