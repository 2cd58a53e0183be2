package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrecord-tools/clinex/constants"
	"github.com/medrecord-tools/clinex/internal/common"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func TestExtractPDF(t *testing.T) {
	r := &fakeRunner{stdout: []byte("Report 1:\nColonoscopy findings.\n")}
	e := NewExtractor(Config{Pdftotext: "pdftotext"}, nil)
	e.runner = r

	res, err := e.Extract(context.Background(), "/data/scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Contains(t, res.Text, "Colonoscopy")

	assert.Equal(t, "pdftotext", r.gotName)
	assert.Equal(t, []string{"-layout", "-nopgbrk", "/data/scan.pdf", "-"}, r.gotArgs)
}

func TestExtractPDFStderrBecomesWarning(t *testing.T) {
	r := &fakeRunner{
		stdout: []byte("some text content"),
		stderr: []byte("Syntax Warning: Invalid Font Weight\n"),
	}
	e := NewExtractor(Config{}, nil)
	e.runner = r

	res, err := e.Extract(context.Background(), "/data/scan.pdf")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Invalid Font Weight")
}

func TestExtractPDFEmptyOutput(t *testing.T) {
	r := &fakeRunner{stdout: []byte("  \n \t ")}
	e := NewExtractor(Config{}, nil)
	e.runner = r

	_, err := e.Extract(context.Background(), "/data/scan.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoExtractableText))
}

func TestExtractPDFCommandFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = r

	_, err := e.Extract(context.Background(), "/data/scan.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext")
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("Report 1:\nEGD findings."), 0o644))

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, constants.TXT, res.SourceType)
	assert.Equal(t, "plain-text", res.Method)
	assert.Contains(t, res.Text, "EGD findings")
}

func TestExtractPlainTextEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), path)
	assert.True(t, errors.Is(err, common.ErrNoExtractableText))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "/data/image.heic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}
