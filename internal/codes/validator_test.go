package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateICD10(t *testing.T) {
	v := NewValidator(Config{})

	for _, tok := range []string{"K57", "K57.30", "K57.3", "Z12.11", "C18.9", "K22.70A"} {
		c, ok := v.Validate(tok)
		require.True(t, ok, tok)
		assert.Equal(t, ICD10, c.Kind, tok)
		assert.Equal(t, tok, c.Raw)
	}
}

func TestValidateICD10Rejects(t *testing.T) {
	v := NewValidator(Config{})

	for _, tok := range []string{"k57.30", "K5", "K577", "K57.", "K57.301A", "KK7.30", "K57-30"} {
		_, ok := v.Validate(tok)
		assert.False(t, ok, tok)
	}
}

func TestValidateCPT(t *testing.T) {
	v := NewValidator(Config{})

	c, ok := v.Validate("45378")
	require.True(t, ok)
	assert.Equal(t, CPT, c.Kind)

	c, ok = v.Validate("99999")
	require.True(t, ok)
	assert.Equal(t, CPT, c.Kind)

	c, ok = v.Validate("10000")
	require.True(t, ok)
	assert.Equal(t, CPT, c.Kind)
}

func TestValidateCPTRange(t *testing.T) {
	v := NewValidator(Config{})

	// five digits below the CPT floor are not a valid code of any kind
	_, ok := v.Validate("00000")
	assert.False(t, ok)
	_, ok = v.Validate("00999")
	assert.False(t, ok)
	_, ok = v.Validate("09999")
	assert.False(t, ok)
}

func TestValidateHCPCS(t *testing.T) {
	v := NewValidator(Config{})

	c, ok := v.Validate("A1234")
	require.True(t, ok)
	assert.Equal(t, HCPCS, c.Kind)

	c, ok = v.Validate("J0120")
	require.True(t, ok)
	assert.Equal(t, HCPCS, c.Kind)
}

func TestPrecedenceFirstMatchWins(t *testing.T) {
	v := NewValidator(Config{})

	// A1234 shape could be read as HCPCS only; K57 only as ICD-10. A token
	// never classifies under two kinds because rules run in fixed order.
	c, _ := v.Validate("K57")
	assert.Equal(t, ICD10, c.Kind)
}

func TestValidateRejectsBareModifier(t *testing.T) {
	v := NewValidator(Config{})

	_, ok := v.Validate("LT")
	assert.False(t, ok)
	_, ok = v.Validate("59")
	assert.False(t, ok)
}

func TestScanModifierNearCPT(t *testing.T) {
	v := NewValidator(Config{})

	got := v.Scan("Billing: 45378 with LT applied")
	kinds := map[Kind]map[string]bool{}
	for _, c := range got {
		if kinds[c.Kind] == nil {
			kinds[c.Kind] = map[string]bool{}
		}
		kinds[c.Kind][c.Raw] = true
	}
	assert.True(t, kinds[CPT]["45378"])
	assert.True(t, kinds[Modifier]["LT"])
}

func TestScanHyphenatedModifier(t *testing.T) {
	v := NewValidator(Config{})

	// the common billing notation attaches the modifier directly to the code
	got := v.Scan("Procedure billed as 45378-59 today.")
	kinds := map[Kind]map[string]bool{}
	for _, c := range got {
		if kinds[c.Kind] == nil {
			kinds[c.Kind] = map[string]bool{}
		}
		kinds[c.Kind][c.Raw] = true
	}
	assert.True(t, kinds[CPT]["45378"])
	assert.True(t, kinds[Modifier]["59"])

	got = v.Scan("Colonoscopy 45380-LT performed.")
	var hasLT bool
	for _, c := range got {
		if c.Kind == Modifier && c.Raw == "LT" {
			hasLT = true
		}
	}
	assert.True(t, hasLT)
}

func TestScanModifierOutsideWindow(t *testing.T) {
	v := NewValidator(Config{ModifierWindow: 2})

	got := v.Scan("45378 one two three four LT")
	for _, c := range got {
		assert.NotEqual(t, Modifier, c.Kind)
	}
}

func TestScanModifierAfterLiteralWord(t *testing.T) {
	v := NewValidator(Config{})

	got := v.Scan("applied modifier 59 to the claim")
	require.Len(t, got, 1)
	assert.Equal(t, Modifier, got[0].Kind)
	assert.Equal(t, "59", got[0].Raw)
}

func TestScanStripsPunctuation(t *testing.T) {
	v := NewValidator(Config{})

	got := v.Scan("Codes: (K57.30), [45378]; 'A1234'.")
	raws := map[string]Kind{}
	for _, c := range got {
		raws[c.Raw] = c.Kind
	}
	assert.Equal(t, ICD10, raws["K57.30"])
	assert.Equal(t, CPT, raws["45378"])
	assert.Equal(t, HCPCS, raws["A1234"])
}

func TestScanEmbeddedCodes(t *testing.T) {
	v := NewValidator(Config{})

	got := v.Scan("dx=K57.30,cpt:45378")
	var hasICD, hasCPT bool
	for _, c := range got {
		if c.Kind == ICD10 && c.Raw == "K57.30" {
			hasICD = true
		}
		if c.Kind == CPT && c.Raw == "45378" {
			hasCPT = true
		}
	}
	assert.True(t, hasICD)
	assert.True(t, hasCPT)
}

func TestScanPositionalOrder(t *testing.T) {
	v := NewValidator(Config{})

	got := v.Scan("first K57.30 then C18.9 after")
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "K57.30", got[0].Raw)
	assert.Equal(t, "C18.9", got[1].Raw)
}
