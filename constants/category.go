package constants

import (
	"strings"
)

// TermCategory classifies an extracted candidate term.
type TermCategory string

const (
	ClinicalTerm       TermCategory = "ClinicalTerm"
	AnatomicalLocation TermCategory = "AnatomicalLocation"
)

// CanonicalizeLabel maps an external NER label onto a TermCategory.
// Labels that carry no clinical meaning for us return ok=false and are
// discarded by the adapter.
func CanonicalizeLabel(label string) (TermCategory, bool) {
	if label == "" {
		return "", false
	}

	normalized := strings.ToUpper(strings.TrimSpace(label))

	// label map across the specialized and general models
	labels := map[string]TermCategory{
		"DISEASE":           ClinicalTerm,
		"SYMPTOM":           ClinicalTerm,
		"TREATMENT":         ClinicalTerm,
		"MEDICAL_CONDITION": ClinicalTerm,
		"PROCEDURE":         ClinicalTerm,
		"ANATOMY":           AnatomicalLocation,
		"BODY_PART":         AnatomicalLocation,
		"ANATOMICAL_SITE":   AnatomicalLocation,
	}

	cat, ok := labels[normalized]
	return cat, ok
}
