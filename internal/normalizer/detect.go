package normalizer

import (
	"regexp"
	"strings"
)

// Format classifies the shape of a raw model response.
type Format int

const (
	FormatFullDocument Format = iota
	FormatFragment
	FormatFencedBlocks
	FormatPlainText
)

func (f Format) String() string {
	switch f {
	case FormatFullDocument:
		return "full_document"
	case FormatFragment:
		return "fragment"
	case FormatFencedBlocks:
		return "fenced_blocks"
	default:
		return "plain_text"
	}
}

var htmlTagRe = regexp.MustCompile(`(?s)<\s*[a-zA-Z][^>]*>`)

// DetectFormat decides how raw output will be assembled. A complete
// document wins even when the model wrapped it in a stray fence; any
// other text containing a fence is treated as fenced blocks so that a
// broken fence fails loudly instead of leaking backticks into markup.
func DetectFormat(raw string) Format {
	trimmed := strings.TrimSpace(raw)
	stripped := strings.TrimSpace(stripWrappingFence(trimmed))

	lower := strings.ToLower(stripped)
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		return FormatFullDocument
	}
	if strings.Contains(trimmed, "```") {
		return FormatFencedBlocks
	}
	if htmlTagRe.MatchString(trimmed) {
		return FormatFragment
	}
	return FormatPlainText
}

// stripWrappingFence removes a single markdown fence wrapping the whole
// text, including an optional language tag on the opening line.
func stripWrappingFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		return s
	}
	rest = strings.TrimRight(rest, " \t\n")
	if !strings.HasSuffix(rest, "```") {
		return s
	}
	return strings.TrimSuffix(rest, "```")
}

// extractFence returns the body of the first fenced block carrying one
// of the given language labels. ok is false when no complete labeled
// block exists.
func extractFence(raw string, labels ...string) (string, bool) {
	for _, label := range labels {
		marker := "```" + label
		start := strings.Index(raw, marker)
		if start < 0 {
			continue
		}
		body := raw[start+len(marker):]
		if idx := strings.IndexByte(body, '\n'); idx >= 0 {
			body = body[idx+1:]
		}
		end := strings.Index(body, "```")
		if end < 0 {
			return "", false
		}
		return strings.TrimSpace(body[:end]), true
	}
	return "", false
}
