package output

// BuildExtractionJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// for the emitted extraction array. Used locally to validate output before
// it leaves the pipeline.
func BuildExtractionJSONSchema() map[string]any {
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"ReportID":             map[string]any{"type": "string", "pattern": `^Report \d+$`},
				"Clinical Terms":       stringArray,
				"Anatomical Locations": stringArray,
				"Diagnosis":            stringArray,
				"Procedures":           stringArray,
				"ICD-10":               stringArray,
				"CPT":                  stringArray,
				"HCPCS":                stringArray,
				"Modifiers":            stringArray,
			},
			"required": []string{
				"ReportID", "Clinical Terms", "Anatomical Locations",
				"Diagnosis", "Procedures", "ICD-10", "CPT", "HCPCS", "Modifiers",
			},
		},
	}
}
