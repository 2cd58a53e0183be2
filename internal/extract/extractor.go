package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

// Extractor converts a source document into raw text. PDFs go through the
// external pdftotext binary; plain-text files are read directly.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension. A readable file with no
// extractable text fails with common.ErrNoExtractableText.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.TXT:
		res, err := e.extractPlain(path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("unsupported extraction extension", "extension", ext)
		return TextExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	res := TextExtractionResult{SourceType: constants.PDF, Method: "pdf-text"}

	// "-" writes the text to stdout; -layout keeps header lines on their
	// own rows, which the segmenter and section parser depend on.
	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-nopgbrk", path, "-")
	if err != nil {
		return res, fmt.Errorf("pdftotext: %w", err)
	}
	if len(stderr) > 0 {
		res.Warnings = append(res.Warnings, strings.TrimSpace(string(stderr)))
	}

	res.Text = string(stdout)
	if strings.TrimSpace(res.Text) == "" {
		return res, fmt.Errorf("%s: %w", path, common.ErrNoExtractableText)
	}
	return res, nil
}

func (e *Extractor) extractPlain(path string) (TextExtractionResult, error) {
	res := TextExtractionResult{SourceType: constants.TXT, Method: "plain-text"}

	b, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read text file: %w", err)
	}
	res.Text = string(b)
	if strings.TrimSpace(res.Text) == "" {
		return res, fmt.Errorf("%s: %w", path, common.ErrNoExtractableText)
	}
	return res, nil
}
