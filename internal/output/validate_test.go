package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrecord-tools/clinex/internal/report"
)

func TestValidateWellFormedResult(t *testing.T) {
	data, err := report.Result{report.New(1), report.New(2)}.JSON()
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), data))
}

func TestValidateRejectsBadReportID(t *testing.T) {
	rec := report.New(1)
	rec.ReportID = "report one"
	data, err := report.Result{rec}.JSON()
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), data))
}

func TestValidateRejectsMissingKey(t *testing.T) {
	data := []byte(`[{"ReportID":"Report 1"}]`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), data))
}

func TestValidateRejectsExtraKey(t *testing.T) {
	data := []byte(`[{
		"ReportID": "Report 1",
		"Clinical Terms": [], "Anatomical Locations": [],
		"Diagnosis": [], "Procedures": [],
		"ICD-10": [], "CPT": [], "HCPCS": [], "Modifiers": [],
		"Unexpected": []
	}]`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), data))
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	assert.Error(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), []byte(`{not json`)))
}
