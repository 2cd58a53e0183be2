package section

import (
	"regexp"
	"strings"
)

// Parser locates a recognized section header line and captures the section
// body as a sequence of statement strings. A missing section is a valid
// report state and yields an empty result.
type Parser struct {
	headers []*regexp.Regexp
	minLen  int
}

// anyHeader matches a generic all-caps "LABEL:" line, which terminates the
// capture of the preceding section even when the label is not one we parse.
var anyHeaderRe = regexp.MustCompile(`^[ \t]*[A-Z][A-Z ()/\-]{2,}:`)

// enumRe strips leading list enumerators ("1.", "2)") from a statement.
var enumRe = regexp.MustCompile(`^\d+[.)]\s*`)

// DiagnosisHeaders returns the default header patterns for diagnosis-like
// sections.
func DiagnosisHeaders() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[ \t]*(?:diagnosis|impression|findings?|conclusion)\s*:`),
		regexp.MustCompile(`(?i)^[ \t]*(?:primary|secondary|final)\s+diagnosis\s*:`),
	}
}

// ProcedureHeaders returns the default header patterns for procedure-like
// sections.
func ProcedureHeaders() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^[ \t]*procedure(?:\s+performed)?\s*:`),
		regexp.MustCompile(`(?i)^[ \t]*(?:endoscopic|surgical)\s+procedure\s*:`),
	}
}

const defaultMinStatementLen = 6

func NewParser(headers []*regexp.Regexp) *Parser {
	return &Parser{headers: headers, minLen: defaultMinStatementLen}
}

// Extract returns the statements of every matching section in the text, in
// document order, deduplicated.
func (p *Parser) Extract(text string) []string {
	lines := strings.Split(text, "\n")

	var bodies []string
	for i := 0; i < len(lines); i++ {
		rest, ok := p.matchHeader(lines[i])
		if !ok {
			continue
		}
		body := []string{rest}
		j := i + 1
		for ; j < len(lines); j++ {
			line := lines[j]
			if strings.TrimSpace(line) == "" {
				break
			}
			if anyHeaderRe.MatchString(line) {
				break
			}
			body = append(body, line)
		}
		bodies = append(bodies, strings.Join(body, "\n"))
		i = j - 1
	}

	seen := make(map[string]struct{})
	var out []string
	for _, body := range bodies {
		for _, st := range splitStatements(body) {
			if len(st) < p.minLen {
				continue
			}
			key := strings.ToLower(st)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, st)
		}
	}
	return out
}

// matchHeader reports whether the line is one of the configured headers and
// returns any content following the colon on the same line.
func (p *Parser) matchHeader(line string) (string, bool) {
	for _, h := range p.headers {
		loc := h.FindStringIndex(line)
		if loc == nil {
			continue
		}
		return line[loc[1]:], true
	}
	return "", false
}

// splitStatements breaks a section body into distinct statements on
// semicolons and line breaks, dropping enumerators and trailing periods.
func splitStatements(body string) []string {
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = enumRe.ReplaceAllString(strings.TrimSpace(part), "")
		part = strings.TrimRight(strings.TrimSpace(part), ".")
		part = strings.Join(strings.Fields(part), " ")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
