package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol are half-open grapheme indices
	// into the line text.
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// Buffer is the document being rendered. Highlighters that need
	// document-wide state (multi-line comments) can key caches on it and
	// its TextVersion.
	Buffer *buffer.Buffer
}

// Highlighter styles spans of one line. It is called only for rows inside
// the viewport. An error renders the line unstyled.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// normalizeHighlightSpans clamps spans to the line, sorts them and drops
// empty or overlapping ones.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	merged := out[:0]
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartGraphemeCol < merged[n-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
