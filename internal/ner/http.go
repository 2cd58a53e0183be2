package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPConfig configures one entity-recognition endpoint.
type HTTPConfig struct {
	BaseURL string // service root, e.g. http://localhost:8000
	Model   string // model identifier sent with each request
	Timeout time.Duration
}

// HTTPRecognizer calls a spaCy-style REST entity service: POST /ent with
// {"text": ..., "model": ...}, response is an array of {text,label,start,end}.
type HTTPRecognizer struct {
	cfg        HTTPConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewHTTPRecognizer(cfg HTTPConfig, logger *slog.Logger) *HTTPRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &HTTPRecognizer{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

func (r *HTTPRecognizer) Name() string { return r.cfg.Model }

func (r *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := map[string]any{
		"text":  text,
		"model": r.cfg.Model,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode ner request: %w", err)
	}

	endpoint := strings.TrimRight(r.cfg.BaseURL, "/") + "/ent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build ner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r.log.Debug("ner.http.request",
		"req_id", rid, "model", r.cfg.Model, "text_len", len(text))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Warn("ner.http.send_error",
			"req_id", rid, "model", r.cfg.Model, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			r.log.Warn("ner.http.body_close_error", "req_id", rid, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		r.log.Warn("ner.http.status_error",
			"req_id", rid, "model", r.cfg.Model, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("ner service status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var ents []Entity
	if err := json.Unmarshal(raw, &ents); err != nil {
		return nil, fmt.Errorf("decode ner response: %w", err)
	}

	r.log.Debug("ner.http.response",
		"req_id", rid, "model", r.cfg.Model, "entities", len(ents),
		"elapsed_ms", time.Since(start).Milliseconds())
	return ents, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
