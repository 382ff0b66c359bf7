package repository

import (
	"fmt"
	"time"

	"healthquiz/internal/domain"
	"healthquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB.
// It is the SQLite-backed alternative to the embedded bank.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) *QuestionDatabaseAdapter {
	return &QuestionDatabaseAdapter{db: db}
}

const questionColumns = `id, category, prompt, options, correct_index, explanation, created_at, updated_at`

// GetAll implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAll() ([]domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC`
	return a.selectQuestions(query)
}

// GetByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByCategory(category domain.Category) ([]domain.Question, error) {
	if !category.IsValid() {
		return nil, domain.NewInvalidCategoryError(string(category))
	}
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id ASC`
	return a.selectQuestions(query, string(category))
}

// SaveQuestion persists one bank entry; used by the seeding command.
func (a *QuestionDatabaseAdapter) SaveQuestion(question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	model := toModelQuestion(question)
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO questions (
		id, category, prompt, options, correct_index, explanation, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := a.db.Exec(query,
		model.ID,
		model.Category,
		model.Prompt,
		model.Options,
		model.CorrectIndex,
		model.Explanation,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question %s: %w", model.ID, err)
	}
	return nil
}

// Count returns the number of bank entries, used to make seeding idempotent.
func (a *QuestionDatabaseAdapter) Count() (int, error) {
	var count int
	if err := a.db.Get(&count, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (a *QuestionDatabaseAdapter) selectQuestions(query string, args ...interface{}) ([]domain.Question, error) {
	var modelQuestions []models.Question
	if err := a.db.Select(&modelQuestions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		q := toDomainQuestion(&modelQuestions[i])
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid question %q in database: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Helper functions for model conversion
func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:           m.ID,
		Category:     domain.Category(m.Category),
		Prompt:       m.Prompt,
		Options:      []string(m.Options),
		CorrectIndex: m.CorrectIndex,
		Explanation:  m.Explanation,
	}
}

func toModelQuestion(d *domain.Question) *models.Question {
	return &models.Question{
		ID:           d.ID,
		Category:     string(d.Category),
		Prompt:       d.Prompt,
		Options:      models.StringSlice(d.Options),
		CorrectIndex: d.CorrectIndex,
		Explanation:  d.Explanation,
	}
}
