package domain

import (
	"math/rand"
	"time"
)

// Answer records a user's submitted choice for one session question.
type Answer struct {
	QuestionID  string    `json:"question_id"`
	ChosenIndex int       `json:"chosen_index"`
	Correct     bool      `json:"correct"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// AnswerResult is the feedback payload returned immediately after an
// answer is submitted, regardless of correctness.
type AnswerResult struct {
	QuestionID   string `json:"question_id"`
	IsCorrect    bool   `json:"is_correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
}

// Summary aggregates statistics over a session's answered questions.
type Summary struct {
	AnsweredCount int     `json:"answered_count"`
	TotalCount    int     `json:"total_count"`
	Score         int     `json:"score"`
	Accuracy      float64 `json:"accuracy"`
}

// Session is one user's quiz attempt: a randomized subset of the question
// bank plus the answers recorded against it so far. A session is owned by
// a single caller and is never shared across concurrent users; the hosting
// layer is responsible for isolation and lifecycle. The struct is fully
// JSON-serializable so it can be parked in an external store.
type Session struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
	Answers   []Answer   `json:"answers"`
	Score     int        `json:"score"`
	StartedAt time.Time  `json:"started_at"`
}

// NewSession draws size distinct questions from bank uniformly at random
// without replacement, preserving the draw order as presentation order.
// A nil rand source is seeded from the wall clock; tests pass a seeded
// one for determinism.
func NewSession(bank []Question, size int, r *rand.Rand) (*Session, error) {
	if len(bank) == 0 {
		return nil, NewEmptyBankError()
	}
	if size < 1 || size > len(bank) {
		return nil, NewInvalidSessionSizeError(size, len(bank))
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	selected := make([]Question, 0, size)
	for _, idx := range r.Perm(len(bank))[:size] {
		selected = append(selected, bank[idx])
	}

	return &Session{
		Questions: selected,
		Answers:   make([]Answer, 0, size),
		StartedAt: time.Now(),
	}, nil
}

// Question returns the session question with the given id.
func (s *Session) Question(questionID string) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// AnswerFor returns the recorded answer for a question, if any.
func (s *Session) AnswerFor(questionID string) (*Answer, bool) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			return &s.Answers[i], true
		}
	}
	return nil, false
}

// Submit records the user's choice for a session question and returns the
// feedback payload. A failed submit leaves the session unchanged.
func (s *Session) Submit(questionID string, chosenIndex int) (*AnswerResult, error) {
	question, ok := s.Question(questionID)
	if !ok {
		return nil, NewUnknownQuestionError(questionID)
	}
	if _, answered := s.AnswerFor(questionID); answered {
		return nil, NewAlreadyAnsweredError(questionID)
	}
	if chosenIndex < 0 || chosenIndex >= len(question.Options) {
		return nil, NewInvalidChoiceError(chosenIndex, len(question.Options))
	}

	correct := chosenIndex == question.CorrectIndex
	s.Answers = append(s.Answers, Answer{
		QuestionID:  questionID,
		ChosenIndex: chosenIndex,
		Correct:     correct,
		AnsweredAt:  time.Now(),
	})
	if correct {
		s.Score++
	}

	return &AnswerResult{
		QuestionID:   questionID,
		IsCorrect:    correct,
		CorrectIndex: question.CorrectIndex,
		Explanation:  question.Explanation,
	}, nil
}

// Completed reports whether every session question has an answer. There is
// no explicit transition operation; callers infer completion from here or
// from Summary.
func (s *Session) Completed() bool {
	return len(s.Answers) == len(s.Questions)
}

// Summary returns aggregate statistics over the answered questions.
// Accuracy is 0 when nothing has been answered yet.
func (s *Session) Summary() Summary {
	summary := Summary{
		AnsweredCount: len(s.Answers),
		TotalCount:    len(s.Questions),
		Score:         s.Score,
	}
	if summary.AnsweredCount > 0 {
		summary.Accuracy = float64(summary.Score) / float64(summary.AnsweredCount)
	}
	return summary
}
