package dto

// OptionRef is the structured selection reference carried by every
// interactive option. A shared handler reads this data back instead of
// parsing option text out of an interpolated handler argument, which
// removes the quote-escaping logic and its injection surface entirely.
type OptionRef struct {
	ContainerID   string `json:"container_id"`
	QuestionIndex int    `json:"question_index"`
	OptionIndex   int    `json:"option_index"`
}

// OptionView is one selectable option within a question unit.
type OptionView struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Ref   OptionRef `json:"ref"`
}

// AnswerPanelView is the hidden-by-default answer/explanation panel of
// a question unit.
type AnswerPanelView struct {
	ID            string `json:"id"`
	Hidden        bool   `json:"hidden"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// QuestionView is the interactive unit description for one question.
type QuestionView struct {
	ID          string          `json:"id"`
	Number      int             `json:"number"`
	Prompt      string          `json:"prompt"`
	Difficulty  string          `json:"difficulty"`
	BadgeClass  string          `json:"badge_class"`
	Options     []OptionView    `json:"options"`
	AnswerPanel AnswerPanelView `json:"answer_panel"`
}

// ScoreView is the score indicator state for a session. It stays hidden
// until the first answer is given.
type ScoreView struct {
	Visible   bool   `json:"visible"`
	Correct   int    `json:"correct"`
	Attempted int    `json:"attempted"`
	Total     int    `json:"total"`
	Display   string `json:"display"`
}

// SessionView is the fully wired, scorable view of one quiz session
// rendered into one container.
type SessionView struct {
	ContainerID   string         `json:"container_id"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	EntityTags    []string       `json:"entity_tags"`
	Score         ScoreView      `json:"score"`
	Questions     []QuestionView `json:"questions"`
	RelatedTopics []string       `json:"related_topics"`
}

// AnswerResultView is the display delta produced by a successful answer
// transition.
type AnswerResultView struct {
	ContainerID    string    `json:"container_id"`
	QuestionIndex  int       `json:"question_index"`
	SelectedIndex  int       `json:"selected_index"`
	Correct        bool      `json:"correct"`
	HighlightIndex int       `json:"highlight_index"`
	RevealPanelID  string    `json:"reveal_panel_id"`
	OptionsLocked  bool      `json:"options_locked"`
	Score          ScoreView `json:"score"`
}
