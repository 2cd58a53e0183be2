package ner

import "context"

// Entity is one span returned by an external entity-recognition service.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Recognizer is the behavior the adapter depends on.
type Recognizer interface {
	// Name identifies the backing model, for logs.
	Name() string
	// Recognize returns the entity spans found in text.
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
