package models

// Game is the pipeline's output: a title plus one complete, standalone
// HTML document safe to host in a sandboxed iframe. A Game is built once
// per generation run and never mutated afterward.
type Game struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
}

// GenerationSettings carries the knobs a caller may tune per generation.
// Zero values mean "use the archetype default". Settings travel by value
// through the pipeline; no component mutates the caller's copy.
type GenerationSettings struct {
	Difficulty      string `json:"difficulty,omitempty"` // "easy" | "medium" | "hard"
	QuestionCount   int    `json:"question_count,omitempty"`
	TimePerQuestion int    `json:"time_per_question,omitempty"` // seconds
	TotalTime       int    `json:"total_time,omitempty"`        // seconds, 0 = no total limit
	BonusTime       int    `json:"bonus_time,omitempty"`        // seconds added on correct answer
	PenaltyTime     int    `json:"penalty_time,omitempty"`      // seconds removed on wrong answer
	Category        string `json:"category,omitempty"`
	Language        string `json:"language,omitempty"` // "vi" | "en"
	Prompt          string `json:"prompt,omitempty"`   // free-text override appended to the built prompt

	// Archetype-specific flags.
	UseCanvas    *bool `json:"use_canvas,omitempty"`
	GridSize     int   `json:"grid_size,omitempty"`
	ShuffleItems *bool `json:"shuffle_items,omitempty"`
	ShowHints    *bool `json:"show_hints,omitempty"`
}

// GenerationRequest is assembled once per Generate call and reused
// unchanged across retries of the same attempt.
type GenerationRequest struct {
	Topic       string             `json:"topic"`
	ArchetypeID string             `json:"archetype_id"`
	Settings    GenerationSettings `json:"settings"`
}

type GenerateGameRequest struct {
	Topic    string              `json:"topic"`
	Settings *GenerationSettings `json:"settings,omitempty"`
}
