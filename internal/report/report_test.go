package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasEmptyArrays(t *testing.T) {
	rec := New(3)
	assert.Equal(t, "Report 3", rec.ReportID)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	// empty fields serialize as [], never null
	assert.NotContains(t, string(data), "null")
}

func TestJSONKeyNames(t *testing.T) {
	data, err := Result{New(1)}.JSON()
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	for _, key := range []string{
		"ReportID", "Clinical Terms", "Anatomical Locations",
		"Diagnosis", "Procedures", "ICD-10", "CPT", "HCPCS", "Modifiers",
	} {
		assert.Contains(t, decoded[0], key)
	}
	assert.Len(t, decoded[0], 9)
}

func TestJSONByteIdentical(t *testing.T) {
	r := Result{
		{
			ReportID:            "Report 1",
			ClinicalTerms:       []string{"gastritis", "polyp"},
			AnatomicalLocations: []string{"antrum"},
			Diagnosis:           []string{"Chronic gastritis"},
			Procedures:          []string{"egd"},
			ICD10:               []string{"K29.50"},
			CPT:                 []string{"43239"},
			HCPCS:               []string{},
			Modifiers:           []string{},
		},
	}

	first, err := r.JSON()
	require.NoError(t, err)
	second, err := r.JSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONNilResult(t *testing.T) {
	var r Result
	data, err := r.JSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
