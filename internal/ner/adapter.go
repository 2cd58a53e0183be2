package ner

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/terms"
)

// Adapter normalizes recognizer output to the candidate-term shape shared
// with the dictionary matcher. Recognizer failures and timeouts degrade to
// an empty candidate list; they never propagate.
type Adapter struct {
	rec     Recognizer
	timeout time.Duration
	log     *slog.Logger
}

const defaultTimeout = 5 * time.Second

func NewAdapter(rec Recognizer, timeout time.Duration, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Adapter{rec: rec, timeout: timeout, log: logger}
}

// Candidates runs recognition on text, bounded by the adapter timeout, and
// maps recognized labels onto term categories. Unmapped labels are
// discarded. Surfaces are lowercased so downstream dedup is case-stable.
func (a *Adapter) Candidates(ctx context.Context, text string) []terms.Candidate {
	if a == nil || a.rec == nil || text == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	ents, err := a.rec.Recognize(ctx, text)
	if err != nil {
		a.log.Warn("ner.adapter.degraded", "model", a.rec.Name(), "error", err)
		return nil
	}

	out := make([]terms.Candidate, 0, len(ents))
	for _, e := range ents {
		cat, ok := constants.CanonicalizeLabel(e.Label)
		if !ok {
			continue
		}
		surface := strings.ToLower(strings.TrimSpace(e.Text))
		if surface == "" {
			continue
		}
		out = append(out, terms.Candidate{
			Surface:  surface,
			Category: cat,
			Source:   terms.SourceNER,
		})
	}
	return out
}
