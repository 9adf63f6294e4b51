package dto

// GenerateRequest is the request body for generating a quiz from a set
// of source URLs and rendering it into a container.
type GenerateRequest struct {
	URLs        []string `json:"urls"`
	ContainerID string   `json:"container_id"`
}

// SubmitAnswerRequest is the request body for the answer transition.
type SubmitAnswerRequest struct {
	QuestionIndex int `json:"question_index"`
	OptionIndex   int `json:"option_index"`
}

// HistoryRow is one row of the rendered history table.
type HistoryRow struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	CreatedAt string `json:"created_at"`
}

// HistoryTableView is the rendered history listing. An empty history
// renders a literal empty-state row rather than an empty table body.
type HistoryTableView struct {
	Rows         []HistoryRow `json:"rows"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}
