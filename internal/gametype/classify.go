package gametype

import "strings"

// Scoring weights for topic classification.
const (
	nameWeight    = 10
	keywordWeight = 8
	subjectWeight = 5
)

// Classify maps a free-text topic onto the best-matching archetype.
// Scoring is additive: the archetype's display name appearing in the
// topic counts most, then its mechanic keywords, then subject hints.
// Ties resolve to the earlier catalog entry; no match at all means quiz.
func Classify(topic string) *Archetype {
	lower := strings.ToLower(strings.TrimSpace(topic))

	var best *Archetype
	bestScore := 0
	for _, a := range catalog {
		score := 0
		if strings.Contains(lower, strings.ToLower(a.Name)) {
			score += nameWeight
		}
		for _, kw := range a.keywords {
			if strings.Contains(lower, kw) {
				score += keywordWeight
			}
		}
		for _, subj := range a.subjects {
			if strings.Contains(lower, subj) {
				score += subjectWeight
			}
		}
		if score > bestScore {
			best = a
			bestScore = score
		}
	}

	if best == nil {
		def, _ := ByID(DefaultArchetypeID)
		return def
	}
	return best
}
