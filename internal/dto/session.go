package dto

import "time"

// StartSessionRequest is the request body for starting a quiz session.
// @Description Request body for starting a new quiz session
type StartSessionRequest struct {
	Category string `json:"category,omitempty"`
	Size     int    `json:"size,omitempty"`
}

// QuestionResponse is one question as presented to the player. It never
// carries the correct index or the explanation; those are revealed only
// through SubmitAnswerResponse.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
}

// AnswerResponse represents one recorded answer in a session.
type AnswerResponse struct {
	QuestionID  string    `json:"question_id"`
	ChosenIndex int       `json:"chosen_index"`
	IsCorrect   bool      `json:"is_correct"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// SessionResponse represents a quiz session in the API response.
type SessionResponse struct {
	SessionID     string             `json:"session_id"`
	Questions     []QuestionResponse `json:"questions"`
	Answers       []AnswerResponse   `json:"answers"`
	Score         int                `json:"score"`
	AnsweredCount int                `json:"answered_count"`
	TotalCount    int                `json:"total_count"`
	Completed     bool               `json:"completed"`
	StartedAt     time.Time          `json:"started_at"`
}

// SubmitAnswerRequest is the request body for answering a question.
// ChosenIndex is a pointer so a missing field can be told apart from
// choosing the first option.
type SubmitAnswerRequest struct {
	QuestionID  string `json:"question_id"`
	ChosenIndex *int   `json:"chosen_index"`
}

// SubmitAnswerResponse carries the grading outcome for one answer.
type SubmitAnswerResponse struct {
	QuestionID    string `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectIndex  int    `json:"correct_index"`
	Explanation   string `json:"explanation"`
	Score         int    `json:"score"`
	AnsweredCount int    `json:"answered_count"`
	TotalCount    int    `json:"total_count"`
	Completed     bool   `json:"completed"`
}

// SummaryResponse represents the running or final score of a session.
type SummaryResponse struct {
	SessionID     string  `json:"session_id"`
	AnsweredCount int     `json:"answered_count"`
	TotalCount    int     `json:"total_count"`
	Score         int     `json:"score"`
	Accuracy      float64 `json:"accuracy"`
	Completed     bool    `json:"completed"`
}

// CategoryResponse represents a quizzable category in the API response.
type CategoryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
