package response_models

type QuizOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
}

type QuizQuestion struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Multiple bool         `json:"multiple,omitempty"`
	Options  []QuizOption `json:"options"`
}

// QuizStateResponse is the full visible state of a quiz session. State is
// the current step key, or "loading"/"results" once the steps are done.
type QuizStateResponse struct {
	SessionID   string            `json:"session_id"`
	State       string            `json:"state"`
	StepIndex   int               `json:"step_index"`
	TotalSteps  int               `json:"total_steps"`
	Question    *QuizQuestion     `json:"question,omitempty"`
	Answers     map[string]string `json:"answers"`
	Interests   []string          `json:"interests"`
	Suggestions []GiftSuggestion  `json:"suggestions,omitempty"`
}
