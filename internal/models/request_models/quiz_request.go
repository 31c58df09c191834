package request_models

// QuizSelectRequest records one answer option. On the multi-select interests
// step the value is toggled rather than advancing the quiz.
type QuizSelectRequest struct {
	Value string `json:"value"`
}
