package normalizer

import (
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Format
	}{
		{"doctype document", "<!DOCTYPE html><html><body>hi</body></html>", FormatFullDocument},
		{"html root document", "<html><body>hi</body></html>", FormatFullDocument},
		{"document in stray fence", "```html\n<!DOCTYPE html><html></html>\n```", FormatFullDocument},
		{"labeled fences", "```html\n<div></div>\n```\n```js\nalert(1)\n```", FormatFencedBlocks},
		{"unterminated fence", "```html\n<div>oops", FormatFencedBlocks},
		{"fragment", "<div class=\"quiz\"><button>Go</button></div>", FormatFragment},
		{"plain text", "Here are ten questions about photosynthesis.", FormatPlainText},
		{"empty", "", FormatPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.raw); got != tt.want {
				t.Errorf("DetectFormat = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizeFullDocument(t *testing.T) {
	raw := "<!DOCTYPE html>\n<html>\n<head><title>Số học vui</title></head>\n<body><h1>Chơi ngay</h1></body>\n</html>"
	g := Normalize(raw, "toán lớp 3")

	if g.Title != "Số học vui" {
		t.Errorf("Title = %q, want document title", g.Title)
	}
	assertDocumentInvariants(t, g.Content)
}

func TestNormalizeFragmentUsesTopicAsTitle(t *testing.T) {
	g := Normalize(`<div id="game"><h1>Ignored heading</h1></div>`, "lịch sử Việt Nam")

	if g.Title != "lịch sử Việt Nam" {
		t.Errorf("Title = %q, want topic", g.Title)
	}
	if !strings.Contains(g.Content, `<div id="game">`) {
		t.Error("fragment body missing from document")
	}
	assertDocumentInvariants(t, g.Content)
}

func TestNormalizeFencedBlocks(t *testing.T) {
	raw := "Here is your game:\n```html\n<div id=\"board\"></div>\n```\n```css\n#board { display: grid; }\n```\n```js\nconsole.log('start');\n```"
	g := Normalize(raw, "ô chữ")

	for _, want := range []string{`<div id="board">`, "#board { display: grid; }", "console.log('start');"} {
		if !strings.Contains(g.Content, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(g.Content, "```") {
		t.Error("backticks leaked into document")
	}
	assertDocumentInvariants(t, g.Content)
}

func TestNormalizePlainTextEscaped(t *testing.T) {
	g := Normalize("1 < 2 & 2 > 1", "so sánh số")

	if !strings.Contains(g.Content, "1 &lt; 2 &amp; 2 &gt; 1") {
		t.Error("plain text not escaped")
	}
	assertDocumentInvariants(t, g.Content)
}

func TestNormalizeJSONContract(t *testing.T) {
	raw := "```json\n{\"title\":\"Đố vui hóa học\",\"description\":\"Trắc nghiệm ngắn\",\"content\":\"<!DOCTYPE html><html><head><title>x</title></head><body>game</body></html>\"}\n```"
	g := Normalize(raw, "hóa học")

	if g.Title != "Đố vui hóa học" {
		t.Errorf("Title = %q, want payload title", g.Title)
	}
	if g.Description != "Trắc nghiệm ngắn" {
		t.Errorf("Description = %q", g.Description)
	}
	if !strings.Contains(g.Content, "game") {
		t.Error("payload content lost")
	}
	assertDocumentInvariants(t, g.Content)
}

func TestNormalizeBadInputYieldsErrorGame(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"unterminated fence", "```html\n<div>never closed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Normalize(tt.raw, "anything")
			if g.Title != "Error" {
				t.Errorf("Title = %q, want Error", g.Title)
			}
			assertDocumentInvariants(t, g.Content)
		})
	}
}

func TestNormalizeCapsOversizedInput(t *testing.T) {
	raw := "<!DOCTYPE html><html><head><title>big</title></head><body>" +
		strings.Repeat("x", MaxRawBytes+1024) + "</body></html>"
	g := Normalize(raw, "big")
	if len(g.Content) > MaxRawBytes+4096 {
		t.Errorf("content length %d exceeds cap margin", len(g.Content))
	}
}

func TestNormalizeDoctypeWithoutRoot(t *testing.T) {
	g := Normalize("<!DOCTYPE html><div>loose content</div>", "chủ đề")
	if g.Title == "Error" {
		t.Fatal("rootless document should be repaired, not rejected")
	}
	lower := strings.ToLower(g.Content)
	if !strings.Contains(lower, "<html") || !strings.Contains(lower, "</html>") {
		t.Error("root element not reconstructed")
	}
	if !strings.Contains(lower, "charset") || !strings.Contains(lower, `name="viewport"`) {
		t.Error("head metadata missing from repaired document")
	}
	if g.Title != "chủ đề" {
		t.Errorf("Title = %q, want topic fallback", g.Title)
	}
}

func TestNormalizeTitleFallsBackToH1(t *testing.T) {
	raw := "<!DOCTYPE html><html><head></head><body><h1>Vòng quay <em>may mắn</em></h1></body></html>"
	g := Normalize(raw, "topic")
	if g.Title != "Vòng quay may mắn" {
		t.Errorf("Title = %q, want h1 text with tags stripped", g.Title)
	}
}

func TestNormalizeIdempotentOnItsOwnOutput(t *testing.T) {
	g1 := Normalize(`<div>body</div>`, "chủ đề")
	g2 := Normalize(g1.Content, "chủ đề")
	if strings.Count(g2.Content, baseStyleID) != 1 {
		t.Error("base style duplicated on renormalization")
	}
	if strings.Count(strings.ToLower(g2.Content), "charset") != 1 {
		t.Error("charset meta duplicated")
	}
}

func assertDocumentInvariants(t *testing.T, doc string) {
	t.Helper()
	lower := strings.ToLower(doc)
	if !strings.HasPrefix(lower, "<!doctype html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(lower, "charset") {
		t.Error("missing charset meta")
	}
	if !strings.Contains(lower, `name="viewport"`) {
		t.Error("missing viewport meta")
	}
	if !strings.Contains(doc, "<title>") {
		t.Error("missing title element")
	}
}
