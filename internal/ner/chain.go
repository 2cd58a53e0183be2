package ner

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Chain tries an ordered list of recognizers and returns the first success.
// The intended order is specialized clinical model first, then a general
// model. Exhausting the chain returns the joined errors; the adapter turns
// that into empty candidates rather than a failed report.
type Chain struct {
	recognizers []Recognizer
	log         *slog.Logger
}

func NewChain(logger *slog.Logger, recognizers ...Recognizer) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{recognizers: recognizers, log: logger}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.recognizers))
	for i, r := range c.recognizers {
		names[i] = r.Name()
	}
	return strings.Join(names, ">")
}

func (c *Chain) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if len(c.recognizers) == 0 {
		return nil, nil
	}
	var errs []error
	for _, r := range c.recognizers {
		ents, err := r.Recognize(ctx, text)
		if err == nil {
			return ents, nil
		}
		c.log.Warn("ner.chain.fallback", "model", r.Name(), "error", err)
		errs = append(errs, err)
		if ctx.Err() != nil {
			// the whole budget is spent; trying the next model is pointless
			break
		}
	}
	return nil, errors.Join(errs...)
}
