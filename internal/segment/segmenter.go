package segment

import (
	"regexp"
	"sort"
	"strings"
)

// Block is one independent report cut out of a multi-report document.
// IDs are 1-based, sequential and gap-free in document order.
type Block struct {
	ID   int
	Text string
}

// Config controls boundary detection.
type Config struct {
	// Markers are tried in order; the first pattern with at least one hit
	// decides the cut points. Nil falls back to DefaultMarkers.
	Markers []*regexp.Regexp

	// MinBlockLen drops trimmed spans shorter than this many bytes (noise
	// between adjacent markers). IDs are assigned after filtering.
	MinBlockLen int

	// MinMarkerGap suppresses a marker that starts within this many bytes
	// of the previous accepted cut. In-prose mentions ("see report 2")
	// tend to cluster close to real content; a real report boundary does not.
	MinMarkerGap int
}

const (
	defaultMinBlockLen  = 10
	defaultMinMarkerGap = 64
)

// DefaultMarkers returns the boundary patterns recognized out of the box:
// "Report N" / "Case N" / "Patient N" header lines, a "Date:" line followed
// by a "Name:" line, enumerated "N. Patient/Report" starts, and separator
// rules.
func DefaultMarkers() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?mi)^[ \t]*report[ \t]+\d+[ \t]*:?`),
		regexp.MustCompile(`(?mi)^[ \t]*case[ \t]+\d+[ \t]*:?`),
		regexp.MustCompile(`(?mi)^[ \t]*patient[ \t]+\d+[ \t]*:?`),
		regexp.MustCompile(`(?mi)^[ \t]*date:.*\n.*name:`),
		regexp.MustCompile(`(?mi)^[ \t]*\d+\.[ \t]*(?:patient|report)`),
		regexp.MustCompile(`(?m)^[ \t]*-{3,}[ \t]*$`),
		regexp.MustCompile(`(?m)^[ \t]*={3,}[ \t]*$`),
	}
}

type Segmenter struct {
	cfg Config
}

func NewSegmenter(cfg Config) *Segmenter {
	if cfg.Markers == nil {
		cfg.Markers = DefaultMarkers()
	}
	if cfg.MinBlockLen <= 0 {
		cfg.MinBlockLen = defaultMinBlockLen
	}
	if cfg.MinMarkerGap <= 0 {
		cfg.MinMarkerGap = defaultMinMarkerGap
	}
	return &Segmenter{cfg: cfg}
}

// Segment cuts text into ordered, non-overlapping report blocks. When no
// marker matches anywhere the whole text becomes a single block with ID 1.
// An all-whitespace input yields no blocks.
func (s *Segmenter) Segment(text string) []Block {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cuts := s.findCuts(text)
	if len(cuts) == 0 {
		return []Block{{ID: 1, Text: strings.TrimSpace(text)}}
	}

	spans := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		spans = append(spans, text[prev:c[0]])
		prev = c[1]
	}
	spans = append(spans, text[prev:])

	blocks := make([]Block, 0, len(spans))
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if len(span) < s.cfg.MinBlockLen {
			continue
		}
		// IDs assigned post-filter so they stay sequential and gap-free.
		blocks = append(blocks, Block{ID: len(blocks) + 1, Text: span})
	}
	if len(blocks) == 0 {
		return []Block{{ID: 1, Text: strings.TrimSpace(text)}}
	}
	return blocks
}

// findCuts returns the accepted marker ranges of the first pattern that
// matches, with the minimum-gap suppression applied.
func (s *Segmenter) findCuts(text string) [][]int {
	for _, marker := range s.cfg.Markers {
		hits := marker.FindAllStringIndex(text, -1)
		if len(hits) == 0 {
			continue
		}
		sort.Slice(hits, func(i, j int) bool { return hits[i][0] < hits[j][0] })

		accepted := make([][]int, 0, len(hits))
		lastEnd := -s.cfg.MinMarkerGap
		for _, h := range hits {
			if h[0]-lastEnd < s.cfg.MinMarkerGap {
				continue
			}
			accepted = append(accepted, h)
			lastEnd = h[1]
		}
		if len(accepted) > 0 {
			return accepted
		}
	}
	return nil
}
