package prompt

import (
	"strings"
	"testing"

	"playcraft-backend/internal/gametype"
)

func TestBuildIncludesTopicAndMechanic(t *testing.T) {
	arch := gametype.Classify("trắc nghiệm địa lý")
	s := arch.DefaultSettings()

	got := Build("địa lý Việt Nam", arch, s, ContractFencedBlocks)

	if !strings.Contains(got, "địa lý Việt Nam") {
		t.Error("prompt missing topic")
	}
	if !strings.Contains(got, arch.Name) {
		t.Error("prompt missing mechanic name")
	}
	if !strings.Contains(got, "Exactly 10 questions") {
		t.Errorf("prompt missing question count constraint:\n%s", got)
	}
	if !strings.Contains(got, "Vietnamese") {
		t.Error("default language should be Vietnamese")
	}
}

func TestBuildContracts(t *testing.T) {
	arch := gametype.Classify("")
	s := arch.DefaultSettings()

	fenced := Build("x", arch, s, ContractFencedBlocks)
	if !strings.Contains(fenced, "```html") {
		t.Error("fenced contract missing html block instruction")
	}

	jsonP := Build("x", arch, s, ContractJSON)
	if !strings.Contains(jsonP, `"title"`) || strings.Contains(jsonP, "```html") {
		t.Error("JSON contract built wrong output section")
	}
}

func TestBuildCanvasToggle(t *testing.T) {
	arch := gametype.Classify("")
	s := arch.DefaultSettings()
	useCanvas := true
	s.UseCanvas = &useCanvas

	got := Build("x", arch, s, ContractFencedBlocks)
	if !strings.Contains(got, "<canvas>") {
		t.Error("canvas mode not reflected in prompt")
	}

	s.UseCanvas = nil
	got = Build("x", arch, s, ContractFencedBlocks)
	if strings.Contains(got, "<canvas>") {
		t.Error("DOM mode should not mention canvas")
	}
}

func TestBuildDeterministic(t *testing.T) {
	arch := gametype.Classify("điền từ")
	s := arch.DefaultSettings()
	s.Prompt = "thêm hiệu ứng âm thanh"

	a := Build("ngữ pháp", arch, s, ContractFencedBlocks)
	b := Build("ngữ pháp", arch, s, ContractFencedBlocks)
	if a != b {
		t.Error("Build is not deterministic")
	}
	if !strings.Contains(a, "thêm hiệu ứng âm thanh") {
		t.Error("author instructions not appended")
	}
}

func TestBuildRefinementCarriesDocument(t *testing.T) {
	doc := "<!DOCTYPE html><html><body>game</body></html>"
	got := BuildRefinement("hóa học", doc)
	if !strings.Contains(got, doc) {
		t.Error("refinement prompt must embed the document verbatim")
	}
	if !strings.Contains(got, "hóa học") {
		t.Error("refinement prompt missing topic")
	}
}
