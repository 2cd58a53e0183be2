package codes

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the coding system a candidate belongs to.
type Kind string

const (
	ICD10    Kind = "ICD-10"
	CPT      Kind = "CPT"
	HCPCS    Kind = "HCPCS"
	Modifier Kind = "Modifier"
)

// Candidate is an accepted billing-code token.
type Candidate struct {
	Raw  string
	Kind Kind
}

// rule is one entry of the precedence chain: pattern, kind, and an optional
// extra predicate on the full token.
type rule struct {
	kind Kind
	re   *regexp.Regexp
	ok   func(token string) bool
}

var (
	// letter, two digits, then optionally a dot, one or two digits and a
	// trailing letter. "K57" and "K57.30" both qualify; the subcategory
	// digits require the dot.
	icd10Re = regexp.MustCompile(`^[A-Z]\d{2}(?:\.\d{1,2}[A-Z]?)?$`)
	cptRe   = regexp.MustCompile(`^\d{5}$`)
	hcpcsRe = regexp.MustCompile(`^[A-Z]\d{4}$`)
	modRe   = regexp.MustCompile(`^(?:[A-Z]{2}|\d{2})$`)

	// embedded-code sweep: codes frequently appear inline without
	// surrounding whitespace ("(K57.30," or "cpt:45378").
	embeddedRe = regexp.MustCompile(`\b[A-Z]\d{2}\.\d{1,2}[A-Z]?\b|\b[A-Z]\d{4}\b|\b\d{5}\b`)
)

// Config tunes the context heuristic for bare modifier tokens.
type Config struct {
	// ModifierWindow accepts a two-character token as a Modifier only when a
	// CPT code sits within this many tokens of it. The literal word
	// "modifier" immediately before the token also qualifies. This is a
	// tuning parameter, not a fixed law; 3 works for the billing lines seen
	// in practice ("45378 -59 LT").
	ModifierWindow int
}

const defaultModifierWindow = 3

type Validator struct {
	rules  []rule
	window int
}

func NewValidator(cfg Config) *Validator {
	if cfg.ModifierWindow <= 0 {
		cfg.ModifierWindow = defaultModifierWindow
	}
	return &Validator{
		window: cfg.ModifierWindow,
		// evaluated in fixed order; first match wins so a literal token is
		// never classified under two kinds.
		rules: []rule{
			{kind: ICD10, re: icd10Re},
			{kind: CPT, re: cptRe, ok: cptInRange},
			{kind: HCPCS, re: hcpcsRe},
		},
	}
}

func cptInRange(token string) bool {
	n, err := strconv.Atoi(token)
	if err != nil {
		return false
	}
	return n >= 10000 && n <= 99999
}

// Validate classifies a single token against the context-free rules.
// Bare modifier-shaped tokens are rejected here; they are only accepted by
// Scan, which can see their surroundings. A token failing all rules yields
// ok=false, never an error.
func (v *Validator) Validate(token string) (Candidate, bool) {
	for _, r := range v.rules {
		if !r.re.MatchString(token) {
			continue
		}
		if r.ok != nil && !r.ok(token) {
			continue
		}
		return Candidate{Raw: token, Kind: r.kind}, true
	}
	return Candidate{}, false
}

// Scan tokenizes text, classifies every token, sweeps for embedded codes,
// and applies the modifier-context rule. Results come back in positional
// order; duplicates are kept (deduplication is the assembler's concern).
func (v *Validator) Scan(text string) []Candidate {
	tokens := tokenize(text)

	kinds := make([]Kind, len(tokens))
	var out []Candidate
	for i, tok := range tokens {
		if c, ok := v.Validate(tok); ok {
			kinds[i] = c.Kind
			out = append(out, c)
		}
	}

	// modifier pass: two letters or two digits, only near a CPT code or
	// right after the word "modifier".
	for i, tok := range tokens {
		if kinds[i] != "" || !modRe.MatchString(tok) {
			continue
		}
		if v.nearCPT(kinds, i) || (i > 0 && strings.EqualFold(tokens[i-1], "modifier")) {
			out = append(out, Candidate{Raw: tok, Kind: Modifier})
		}
	}

	// secondary sweep for codes embedded in tokens the split missed.
	for _, hit := range embeddedRe.FindAllString(text, -1) {
		if c, ok := v.Validate(hit); ok {
			out = append(out, c)
		}
	}
	return out
}

func (v *Validator) nearCPT(kinds []Kind, i int) bool {
	lo := i - v.window
	if lo < 0 {
		lo = 0
	}
	hi := i + v.window
	if hi > len(kinds)-1 {
		hi = len(kinds) - 1
	}
	for j := lo; j <= hi; j++ {
		if kinds[j] == CPT {
			return true
		}
	}
	return false
}

// tokenize splits on whitespace and strips surrounding punctuation, keeping
// interior dots intact so "K57.30," becomes "K57.30". Interior hyphens split
// the token: the billing forms "-59" and "45378-59" both yield a "59" token
// adjacent to its CPT code.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,;:()[]{}"'-`+"`")
		for _, part := range strings.Split(f, "-") {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}
