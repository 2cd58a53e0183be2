package terms

import (
	"regexp"
	"strings"

	"github.com/medrecord-tools/clinex/constants"
)

// Source records which extraction path produced a candidate.
type Source string

const (
	SourceDictionary Source = "dictionary"
	SourceNER        Source = "ner"
)

// Candidate is a provisional extracted term before deduplication.
type Candidate struct {
	Surface  string
	Category constants.TermCategory
	Source   Source
}

type compiledTerm struct {
	term     string
	category constants.TermCategory
	re       *regexp.Regexp
}

// Matcher scans text for configured vocabulary with case-insensitive,
// word-boundary matching. Patterns are compiled once at construction.
type Matcher struct {
	terms []compiledTerm
}

// categoryOrder fixes iteration order over the dictionary so match output is
// deterministic for the same input.
var categoryOrder = []constants.TermCategory{
	constants.ClinicalTerm,
	constants.AnatomicalLocation,
}

func NewMatcher(dict Dictionary) *Matcher {
	m := &Matcher{}
	for _, cat := range categoryOrder {
		for _, term := range dict[cat] {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			m.terms = append(m.terms, compiledTerm{
				term:     term,
				category: cat,
				re:       compileTerm(term, cat),
			})
		}
	}
	return m
}

// compileTerm builds the word-boundary pattern for one vocabulary entry.
// Multi-word terms match across normalized whitespace. Clinical terms
// tolerate plural suffixes; sites tolerate common adjectival ones, but the
// reported surface stays the configured term.
func compileTerm(term string, cat constants.TermCategory) *regexp.Regexp {
	parts := strings.Fields(term)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	body := strings.Join(parts, `\s+`)

	suffix := ""
	switch cat {
	case constants.ClinicalTerm:
		suffix = `(?:s|es|ies)?`
	case constants.AnatomicalLocation:
		suffix = `(?:al|ic|ine|ar)?`
	}
	return regexp.MustCompile(`(?i)\b` + body + suffix + `\b`)
}

// Match returns every dictionary hit in the text, deduplicated by
// case-normalized surface within a category, in first-seen order. The
// surface of a hit is the configured term itself, so "polyps" in text
// reports the "polyps" entry, not an inflected variant.
func (m *Matcher) Match(text string) []Candidate {
	if text == "" || len(m.terms) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []Candidate
	for _, ct := range m.terms {
		if !ct.re.MatchString(text) {
			continue
		}
		key := string(ct.category) + "\x00" + ct.term
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{
			Surface:  ct.term,
			Category: ct.category,
			Source:   SourceDictionary,
		})
	}
	return out
}
