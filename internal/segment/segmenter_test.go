package segment

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentNoMarkerSingleBlock(t *testing.T) {
	s := NewSegmenter(Config{})

	blocks := s.Segment("Patient presented with abdominal pain and nausea.")
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].ID)
	assert.Equal(t, "Patient presented with abdominal pain and nausea.", blocks[0].Text)
}

func TestSegmentWhitespaceOnly(t *testing.T) {
	s := NewSegmenter(Config{})
	assert.Empty(t, s.Segment("   \n\t  \n"))
}

func TestSegmentReportHeaders(t *testing.T) {
	text := "Report 1:\n" + strings.Repeat("colonoscopy findings here. ", 5) +
		"\nReport 2:\n" + strings.Repeat("egd findings here. ", 5)

	s := NewSegmenter(Config{})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].ID)
	assert.Equal(t, 2, blocks[1].ID)
	assert.Contains(t, blocks[0].Text, "colonoscopy")
	assert.Contains(t, blocks[1].Text, "egd")
	assert.NotContains(t, blocks[0].Text, "Report 1")
}

func TestSegmentSeparatorRule(t *testing.T) {
	text := strings.Repeat("first report text. ", 6) + "\n----\n" + strings.Repeat("second report text. ", 6)

	s := NewSegmenter(Config{})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "first report")
	assert.Contains(t, blocks[1].Text, "second report")
}

func TestSegmentIDsSequentialAfterFilter(t *testing.T) {
	// the span between the two adjacent separators is too short to survive
	text := strings.Repeat("alpha text block content. ", 5) +
		"\n---\nxx\n" + strings.Repeat("-", 3) + "\n" +
		strings.Repeat("beta text block content. ", 5)

	s := NewSegmenter(Config{MinMarkerGap: 1})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].ID)
	assert.Equal(t, 2, blocks[1].ID)
}

func TestSegmentMinMarkerGapSuppression(t *testing.T) {
	// second marker lands within the gap window and must be ignored
	text := strings.Repeat("lead-in clinical narrative. ", 4) +
		"\nReport 1:\nshort\nReport 2:\n" + strings.Repeat("tail narrative. ", 4)

	s := NewSegmenter(Config{MinMarkerGap: 4096})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
}

func TestSegmentDateNameHeaderPair(t *testing.T) {
	text := "Date: 2024-01-02\nName: Doe, J\n" + strings.Repeat("first visit narrative. ", 5) +
		"\nDate: 2024-01-09\nName: Roe, A\n" + strings.Repeat("second visit narrative. ", 5)

	s := NewSegmenter(Config{})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "first visit")
	assert.Contains(t, blocks[1].Text, "second visit")
}

func TestSegmentEnumeratedStarts(t *testing.T) {
	text := "1. Patient presented with melena. " + strings.Repeat("history details follow. ", 4) +
		"\n2. Patient presented with dysphagia. " + strings.Repeat("exam details follow. ", 4)

	s := NewSegmenter(Config{})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "melena")
	assert.Contains(t, blocks[1].Text, "dysphagia")
}

func TestSegmentCustomMarkers(t *testing.T) {
	text := "STUDY A\n" + strings.Repeat("content one. ", 4) + "\nSTUDY B\n" + strings.Repeat("content two. ", 4)

	s := NewSegmenter(Config{
		Markers:      []*regexp.Regexp{regexp.MustCompile(`(?m)^STUDY [A-Z]$`)},
		MinMarkerGap: 1,
	})
	blocks := s.Segment(text)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "content one")
	assert.Contains(t, blocks[1].Text, "content two")
}

func TestSegmentRoundTripModuloMarkers(t *testing.T) {
	text := "Report 1:\n" + strings.Repeat("alpha clinical narrative. ", 4) +
		"\nReport 2:\n" + strings.Repeat("beta clinical narrative. ", 4)

	s := NewSegmenter(Config{})
	blocks := s.Segment(text)
	require.Len(t, blocks, 2)

	// every block is a contiguous span of the original, in document order
	offset := 0
	for _, b := range blocks {
		idx := strings.Index(text[offset:], b.Text)
		require.GreaterOrEqual(t, idx, 0, "block %d not found in source", b.ID)
		offset += idx + len(b.Text)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	text := "Report 1:\n" + strings.Repeat("findings alpha. ", 5) + "\nReport 2:\n" + strings.Repeat("findings beta. ", 5)
	s := NewSegmenter(Config{})

	first := s.Segment(text)
	second := s.Segment(text)
	assert.Equal(t, first, second)
}
