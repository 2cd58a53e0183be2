package report

import (
	"encoding/json"
	"fmt"
)

// Extracted is the structured record produced for one report block. Slice
// fields are never nil so the JSON output always carries arrays, and their
// order is first-seen order, which makes repeat runs byte-identical.
type Extracted struct {
	ReportID            string   `json:"ReportID"`
	ClinicalTerms       []string `json:"Clinical Terms"`
	AnatomicalLocations []string `json:"Anatomical Locations"`
	Diagnosis           []string `json:"Diagnosis"`
	Procedures          []string `json:"Procedures"`
	ICD10               []string `json:"ICD-10"`
	CPT                 []string `json:"CPT"`
	HCPCS               []string `json:"HCPCS"`
	Modifiers           []string `json:"Modifiers"`
}

// New returns an empty record for the given 1-based report sequence number.
func New(seq int) Extracted {
	return Extracted{
		ReportID:            FormatID(seq),
		ClinicalTerms:       []string{},
		AnatomicalLocations: []string{},
		Diagnosis:           []string{},
		Procedures:          []string{},
		ICD10:               []string{},
		CPT:                 []string{},
		HCPCS:               []string{},
		Modifiers:           []string{},
	}
}

// FormatID renders the public report identifier for a sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("Report %d", seq)
}

// Result is the ordered extraction output for one document, one element per
// report block in document order.
type Result []Extracted

// JSON renders the result as the indented array emitted to callers.
func (r Result) JSON() ([]byte, error) {
	if r == nil {
		r = Result{}
	}
	return json.MarshalIndent(r, "", "  ")
}
