package domain

import "strings"

// Difficulty is the difficulty level of a question.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty parses a difficulty string case-insensitively.
// Unrecognized values map to DifficultyUnknown rather than failing;
// the renderer falls back to a generic badge for those.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// BadgeClass returns the CSS-style badge tag for the difficulty level.
func (d Difficulty) BadgeClass() string {
	return "diff-" + d.String()
}

// KeyEntities groups the named entities extracted from the source articles.
// Any group may be absent in the payload; absent groups behave as empty.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Flatten returns all entities as one ordered list: people first,
// then organizations, then locations.
func (e KeyEntities) Flatten() []string {
	tags := make([]string, 0, len(e.People)+len(e.Organizations)+len(e.Locations))
	tags = append(tags, e.People...)
	tags = append(tags, e.Organizations...)
	tags = append(tags, e.Locations...)
	return tags
}

// Question is a single multiple-choice question within a quiz payload.
// The JSON field names follow the remote service's wire format.
type Question struct {
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// CorrectIndex returns the index of the first option that exactly equals
// the correct answer, or -1 when no option matches. Payloads may carry
// duplicate options; first match by list order wins.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether the option at the given index equals the
// correct answer. Out-of-range indexes and an answer absent from the
// options both evaluate to false; the comparison never fails.
func (q Question) IsCorrect(optionIndex int) bool {
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return false
	}
	return q.Options[optionIndex] == q.Answer
}

// QuizPayload is the full generated quiz returned by the remote service.
// It is treated as immutable once fetched.
type QuizPayload struct {
	ID            int64       `json:"id,omitempty"`
	URL           string      `json:"url,omitempty"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	KeyEntities   KeyEntities `json:"key_entities"`
	Questions     []Question  `json:"quiz"`
	RelatedTopics []string    `json:"related_topics"`
}

// HistoryEntry is one row of the remote service's quiz history listing.
type HistoryEntry struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	CreatedAt string `json:"created_at"`
}
