package normalizer

import (
	"html"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"playcraft-backend/internal/models"
)

// MaxRawBytes caps how much model output is processed. Anything past
// the cap is discarded before assembly.
const MaxRawBytes = 1 << 20

const baseStyleID = "game-base-style"

const baseStyle = `<style id="` + baseStyleID + `">
*, *::before, *::after { box-sizing: border-box; }
html, body { margin: 0; padding: 0; min-height: 100%; }
body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: #f8fafc; color: #1e293b; }
button { font-family: inherit; cursor: pointer; }
</style>`

var (
	titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Re    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
)

// Normalize turns raw model output into a Game holding one complete
// HTML document. It never returns an error: unusable input becomes the
// deterministic error document, and any panic during assembly is
// recovered into the same.
func Normalize(raw, topic string) (g models.Game) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("normalization panicked")
			g = ErrorGame()
		}
	}()

	if len(raw) > MaxRawBytes {
		raw = raw[:MaxRawBytes]
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrorGame()
	}

	if game, ok := fromJSONContract(trimmed, topic); ok {
		return game
	}

	format := DetectFormat(trimmed)
	log.Debug().Str("format", format.String()).Msg("normalizing model response")

	switch format {
	case FormatFullDocument:
		doc := normalizeDocument(strings.TrimSpace(stripWrappingFence(trimmed)))
		return models.Game{Title: extractTitle(doc, topic), Content: doc}

	case FormatFencedBlocks:
		return fromFences(trimmed, topic)

	case FormatFragment:
		doc := assembleDocument(topic, trimmed, "", "")
		return models.Game{Title: extractTitle(doc, topic), Content: doc}

	default:
		body := `<pre class="plain-content">` + html.EscapeString(trimmed) + `</pre>`
		doc := assembleDocument(topic, body, "", "")
		return models.Game{Title: extractTitle(doc, topic), Content: doc}
	}
}

// ErrorGame is the document served when model output cannot be made
// presentable. Deterministic so it can be asserted on.
func ErrorGame() models.Game {
	const doc = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Error</title>
</head>
<body>
<main style="font-family: system-ui, sans-serif; text-align: center; padding: 3rem 1rem;">
<h1>Không thể tạo trò chơi</h1>
<p>Nội dung nhận được không hợp lệ. Vui lòng thử lại.</p>
</main>
</body>
</html>`
	return models.Game{Title: "Error", Content: doc}
}

// fromJSONContract handles the {title, description, content} shape the
// JSON output contract asks for, including the usual fence wrapping and
// stray prose around the object.
func fromJSONContract(trimmed, topic string) (models.Game, bool) {
	stripped := strings.TrimSpace(stripWrappingFence(trimmed))
	stripped = strings.TrimSpace(strings.TrimPrefix(stripped, "json"))
	if !strings.HasPrefix(stripped, "{") {
		return models.Game{}, false
	}

	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
	}
	if err := sonic.Unmarshal([]byte(stripped), &payload); err != nil {
		start := strings.Index(stripped, "{")
		end := strings.LastIndex(stripped, "}")
		if start < 0 || end <= start {
			return models.Game{}, false
		}
		if err := sonic.Unmarshal([]byte(stripped[start:end+1]), &payload); err != nil {
			return models.Game{}, false
		}
	}
	if strings.TrimSpace(payload.Content) == "" {
		return models.Game{}, false
	}

	inner := Normalize(payload.Content, topic)
	if payload.Title != "" {
		inner.Title = payload.Title
	}
	inner.Description = payload.Description
	return inner, true
}

func fromFences(trimmed, topic string) models.Game {
	htmlPart, ok := extractFence(trimmed, "html", "HTML")
	if !ok {
		htmlPart, ok = extractFence(trimmed, "")
	}
	if !ok || strings.TrimSpace(htmlPart) == "" {
		return ErrorGame()
	}

	cssPart, _ := extractFence(trimmed, "css", "CSS")
	jsPart, _ := extractFence(trimmed, "js", "javascript", "JS")

	lower := strings.ToLower(strings.TrimSpace(htmlPart))
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		doc := normalizeDocument(injectAssets(htmlPart, cssPart, jsPart))
		return models.Game{Title: extractTitle(doc, topic), Content: doc}
	}

	doc := assembleDocument(topic, htmlPart, cssPart, jsPart)
	return models.Game{Title: extractTitle(doc, topic), Content: doc}
}

// assembleDocument wraps body markup in a complete shell. The escaped
// topic becomes the document title.
func assembleDocument(topic, body, css, js string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"vi\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>" + html.EscapeString(strings.TrimSpace(topic)) + "</title>\n")
	sb.WriteString(baseStyle + "\n")
	if strings.TrimSpace(css) != "" {
		sb.WriteString("<style>\n" + css + "\n</style>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	if strings.TrimSpace(js) != "" {
		sb.WriteString("<script>\n" + js + "\n</script>\n")
	}
	sb.WriteString("</body>\n</html>")
	return sb.String()
}

// injectAssets folds separate css/js blocks into an already complete
// document.
func injectAssets(doc, css, js string) string {
	if strings.TrimSpace(css) != "" {
		style := "<style>\n" + css + "\n</style>"
		if idx := strings.Index(strings.ToLower(doc), "</head>"); idx >= 0 {
			doc = doc[:idx] + style + "\n" + doc[idx:]
		} else {
			doc = style + "\n" + doc
		}
	}
	if strings.TrimSpace(js) != "" {
		script := "<script>\n" + js + "\n</script>"
		if idx := strings.Index(strings.ToLower(doc), "</body>"); idx >= 0 {
			doc = doc[:idx] + script + "\n" + doc[idx:]
		} else {
			doc = doc + "\n" + script
		}
	}
	return doc
}

// normalizeDocument guarantees the invariants every served document
// carries: doctype, charset meta, viewport meta, and the base style.
func normalizeDocument(doc string) string {
	doc = strings.TrimSpace(doc)
	if !strings.HasPrefix(strings.ToLower(doc), "<!doctype") {
		doc = "<!DOCTYPE html>\n" + doc
	}

	lower := strings.ToLower(doc)
	headIdx := strings.Index(lower, "<head")
	if headIdx < 0 {
		if htmlIdx := strings.Index(lower, "<html"); htmlIdx >= 0 {
			if end := strings.IndexByte(doc[htmlIdx:], '>'); end >= 0 {
				at := htmlIdx + end + 1
				doc = doc[:at] + "\n<head></head>" + doc[at:]
			}
		} else if end := strings.IndexByte(doc, '>'); end >= 0 {
			// Doctype with no root element; wrap the remainder.
			doc = doc[:end+1] + "\n<html>\n<head></head>" + doc[end+1:] + "\n</html>"
		}
		lower = strings.ToLower(doc)
		headIdx = strings.Index(lower, "<head")
		if headIdx < 0 {
			return doc
		}
	}

	headEnd := strings.IndexByte(doc[headIdx:], '>')
	if headEnd < 0 {
		return doc
	}
	at := headIdx + headEnd + 1

	var add strings.Builder
	if !strings.Contains(lower, "charset") {
		add.WriteString("\n<meta charset=\"UTF-8\">")
	}
	if !strings.Contains(lower, `name="viewport"`) && !strings.Contains(lower, "name='viewport'") {
		add.WriteString("\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">")
	}
	if !strings.Contains(doc, baseStyleID) {
		add.WriteString("\n" + baseStyle)
	}
	if add.Len() > 0 {
		doc = doc[:at] + add.String() + doc[at:]
	}
	return doc
}

// extractTitle picks the display title: <title>, then the first <h1>,
// then the topic itself.
func extractTitle(doc, topic string) string {
	if m := titleRe.FindStringSubmatch(doc); m != nil {
		if t := cleanTitle(m[1]); t != "" {
			return t
		}
	}
	if m := h1Re.FindStringSubmatch(doc); m != nil {
		if t := cleanTitle(m[1]); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(topic); t != "" {
		return t
	}
	return "Trò chơi học tập"
}

func cleanTitle(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
