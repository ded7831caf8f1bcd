package prompt

import (
	"fmt"
	"strings"

	"playcraft-backend/internal/gametype"
	"playcraft-backend/internal/models"
)

// Contract selects the output shape the model is instructed to emit.
type Contract int

const (
	// ContractFencedBlocks asks for separate fenced html/css/js blocks.
	ContractFencedBlocks Contract = iota
	// ContractJSON asks for a single JSON object {title, description, content}.
	ContractJSON
)

// Build assembles the generation prompt for one request. It is pure:
// same inputs, same prompt, no I/O. Layers are appended in a fixed
// order so prompts stay diffable across runs.
func Build(topic string, arch *gametype.Archetype, s models.GenerationSettings, contract Contract) string {
	var sb strings.Builder

	sb.WriteString("You are an expert educational game developer. ")
	sb.WriteString("Create a complete, self-contained interactive HTML game for learners.\n\n")

	sb.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	sb.WriteString(fmt.Sprintf("Game mechanic: %s — %s\n\n", arch.Name, arch.Description))

	writeConstraints(&sb, s)
	writeRendering(&sb, s)
	writeLanguage(&sb, s)

	if p := strings.TrimSpace(s.Prompt); p != "" {
		sb.WriteString("Additional instructions from the author:\n")
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}

	writeContract(&sb, contract)
	return sb.String()
}

func writeConstraints(sb *strings.Builder, s models.GenerationSettings) {
	sb.WriteString("Constraints:\n")
	if s.QuestionCount > 0 {
		sb.WriteString(fmt.Sprintf("- Exactly %d questions/items.\n", s.QuestionCount))
	}
	if s.TimePerQuestion > 0 {
		sb.WriteString(fmt.Sprintf("- %d seconds per item.\n", s.TimePerQuestion))
	}
	if s.TotalTime > 0 {
		sb.WriteString(fmt.Sprintf("- Total time limit of %d seconds.\n", s.TotalTime))
	}
	if s.BonusTime > 0 {
		sb.WriteString(fmt.Sprintf("- Add %d seconds on a correct answer.\n", s.BonusTime))
	}
	if s.PenaltyTime > 0 {
		sb.WriteString(fmt.Sprintf("- Subtract %d seconds on a wrong answer.\n", s.PenaltyTime))
	}
	if s.Difficulty != "" {
		sb.WriteString(fmt.Sprintf("- Difficulty level: %s.\n", s.Difficulty))
	}
	if s.Category != "" && s.Category != "general" {
		sb.WriteString(fmt.Sprintf("- Subject category: %s.\n", s.Category))
	}
	if s.GridSize > 0 {
		sb.WriteString(fmt.Sprintf("- Grid size: %dx%d.\n", s.GridSize, s.GridSize))
	}
	if s.ShuffleItems != nil && *s.ShuffleItems {
		sb.WriteString("- Shuffle item order on every load.\n")
	}
	if s.ShowHints != nil && *s.ShowHints {
		sb.WriteString("- Provide a hint button for each item.\n")
	}
	sb.WriteString("\n")
}

func writeRendering(sb *strings.Builder, s models.GenerationSettings) {
	if s.UseCanvas != nil && *s.UseCanvas {
		sb.WriteString("Render the game on an HTML5 <canvas> element with requestAnimationFrame for the game loop. Keep all drawing code in plain JavaScript, no external libraries.\n\n")
		return
	}
	sb.WriteString("Render the game with regular DOM elements and CSS transitions. Do not load external JavaScript libraries, fonts, or stylesheets.\n\n")
}

func writeLanguage(sb *strings.Builder, s models.GenerationSettings) {
	switch s.Language {
	case "en":
		sb.WriteString("All visible text must be in English.\n\n")
	default:
		sb.WriteString("All visible text must be in Vietnamese.\n\n")
	}
}

func writeContract(sb *strings.Builder, c Contract) {
	switch c {
	case ContractJSON:
		sb.WriteString("Output format: respond with a single JSON object and nothing else:\n")
		sb.WriteString(`{"title": "<game title>", "description": "<one sentence>", "content": "<the complete HTML document as a string>"}` + "\n")
	default:
		sb.WriteString("Output format: respond with exactly three fenced code blocks, in this order:\n")
		sb.WriteString("```html\n<!-- body markup only -->\n```\n")
		sb.WriteString("```css\n/* all styles */\n```\n")
		sb.WriteString("```js\n// all behavior\n```\n")
		sb.WriteString("Alternatively a single complete HTML document (starting with <!DOCTYPE html>) with styles and scripts inlined is acceptable. No commentary outside the code.\n")
	}
}

// BuildRefinement wraps an already-generated document in a polish
// instruction for the secondary backend. The document travels verbatim;
// the instruction asks for the full corrected document back.
func BuildRefinement(topic, content string) string {
	var sb strings.Builder
	sb.WriteString("You are a senior front-end engineer reviewing an educational HTML game about \"")
	sb.WriteString(topic)
	sb.WriteString("\".\n")
	sb.WriteString("Fix any JavaScript bugs, broken layout, or unfinished logic. Do not change the game mechanic or the questions.\n")
	sb.WriteString("Return the complete corrected HTML document and nothing else.\n\n")
	sb.WriteString(content)
	return sb.String()
}
