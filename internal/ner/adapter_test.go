package ner

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/terms"
)

type fakeRecognizer struct {
	name string
	ents []Entity
	err  error
	wait time.Duration
}

func (f *fakeRecognizer) Name() string { return f.name }

func (f *fakeRecognizer) Recognize(ctx context.Context, _ string) ([]Entity, error) {
	if f.wait > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.wait):
		}
	}
	return f.ents, f.err
}

func TestAdapterMapsLabels(t *testing.T) {
	rec := &fakeRecognizer{name: "fake", ents: []Entity{
		{Text: "Diverticulosis", Label: "DISEASE"},
		{Text: "Sigmoid Colon", Label: "ANATOMY"},
		{Text: "John Smith", Label: "PERSON"},
	}}
	a := NewAdapter(rec, time.Second, nil)

	got := a.Candidates(context.Background(), "report text")
	require.Len(t, got, 2)

	assert.Equal(t, terms.Candidate{
		Surface:  "diverticulosis",
		Category: constants.ClinicalTerm,
		Source:   terms.SourceNER,
	}, got[0])
	assert.Equal(t, "sigmoid colon", got[1].Surface)
	assert.Equal(t, constants.AnatomicalLocation, got[1].Category)
}

func TestAdapterDegradesOnError(t *testing.T) {
	rec := &fakeRecognizer{name: "fake", err: errors.New("connection refused")}
	a := NewAdapter(rec, time.Second, nil)

	assert.Empty(t, a.Candidates(context.Background(), "report text"))
}

func TestAdapterDegradesOnTimeout(t *testing.T) {
	rec := &fakeRecognizer{name: "slow", wait: 200 * time.Millisecond, ents: []Entity{{Text: "polyp", Label: "DISEASE"}}}
	a := NewAdapter(rec, 10*time.Millisecond, nil)

	assert.Empty(t, a.Candidates(context.Background(), "report text"))
}

func TestAdapterNilRecognizer(t *testing.T) {
	var a *Adapter
	assert.Empty(t, a.Candidates(context.Background(), "text"))

	a = NewAdapter(nil, time.Second, nil)
	assert.Empty(t, a.Candidates(context.Background(), "text"))
}

func TestChainFallsBack(t *testing.T) {
	primary := &fakeRecognizer{name: "en_core_sci_sm", err: errors.New("model unavailable")}
	fallback := &fakeRecognizer{name: "en_core_web_sm", ents: []Entity{{Text: "gastritis", Label: "DISEASE"}}}
	c := NewChain(nil, primary, fallback)

	ents, err := c.Recognize(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, "gastritis", ents[0].Text)
	assert.Equal(t, "en_core_sci_sm>en_core_web_sm", c.Name())
}

func TestChainAllFail(t *testing.T) {
	c := NewChain(nil,
		&fakeRecognizer{name: "a", err: errors.New("down")},
		&fakeRecognizer{name: "b", err: errors.New("also down")},
	)

	_, err := c.Recognize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
}

func TestHTTPRecognizer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"text":"colitis","label":"DISEASE","start":10,"end":17}]`))
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(HTTPConfig{BaseURL: srv.URL, Model: "en_core_sci_sm"}, nil)
	ents, err := rec.Recognize(context.Background(), "report with colitis")
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, Entity{Text: "colitis", Label: "DISEASE", Start: 10, End: 17}, ents[0])
}

func TestHTTPRecognizerStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(HTTPConfig{BaseURL: srv.URL, Model: "en_core_sci_sm"}, nil)
	_, err := rec.Recognize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
