package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrecord-tools/clinex/constants"
)

func testMatcher() *Matcher {
	return NewMatcher(DefaultVocabulary().TermDictionary())
}

func TestMatchWordBoundary(t *testing.T) {
	m := testMatcher()

	// "colon" must not fire inside "colonoscopy"
	got := m.Match("A colonoscopy was performed.")
	for _, c := range got {
		assert.NotEqual(t, "colon", c.Surface)
	}

	got = m.Match("The colon appeared normal.")
	surfaces := surfacesOf(got, constants.AnatomicalLocation)
	assert.Contains(t, surfaces, "colon")
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := testMatcher()

	got := m.Match("DIVERTICULOSIS noted in the Sigmoid Colon")
	assert.Contains(t, surfacesOf(got, constants.ClinicalTerm), "diverticulosis")
	assert.Contains(t, surfacesOf(got, constants.AnatomicalLocation), "sigmoid colon")
}

func TestMatchMultiWordAcrossWhitespace(t *testing.T) {
	m := testMatcher()

	got := m.Match("history of crohn's   disease")
	assert.Contains(t, surfacesOf(got, constants.ClinicalTerm), "crohn's disease")
}

func TestMatchPluralReportsConfiguredTerm(t *testing.T) {
	m := NewMatcher(Dictionary{constants.ClinicalTerm: {"ulcer"}})

	got := m.Match("multiple ulcers were seen")
	require.Len(t, got, 1)
	assert.Equal(t, "ulcer", got[0].Surface)
	assert.Equal(t, SourceDictionary, got[0].Source)
}

func TestMatchDedupWithinCategory(t *testing.T) {
	m := NewMatcher(Dictionary{constants.ClinicalTerm: {"polyp"}})

	got := m.Match("polyp one, polyp two, polyp three")
	assert.Len(t, got, 1)
}

func TestMatchEmptyText(t *testing.T) {
	assert.Empty(t, testMatcher().Match(""))
}

func TestMatchDeterministicOrder(t *testing.T) {
	m := testMatcher()
	text := "gastritis and colitis in the stomach and rectum"

	first := m.Match(text)
	second := m.Match(text)
	assert.Equal(t, first, second)
}

func TestProcedureDictionary(t *testing.T) {
	m := NewMatcher(DefaultVocabulary().ProcedureDictionary())

	got := m.Match("underwent colonoscopy with polypectomy")
	surfaces := surfacesOf(got, constants.ClinicalTerm)
	assert.Contains(t, surfaces, "colonoscopy")
	assert.Contains(t, surfaces, "polypectomy")
}

func surfacesOf(cands []Candidate, cat constants.TermCategory) []string {
	var out []string
	for _, c := range cands {
		if c.Category == cat {
			out = append(out, c.Surface)
		}
	}
	return out
}
