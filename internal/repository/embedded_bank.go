package repository

import (
	"fmt"

	"healthquiz/internal/domain"
)

// EmbeddedBank implements domain.QuestionRepository over an in-process
// question slice, the default bank source. Entries are validated once at
// construction; the bank is immutable afterwards and therefore safe for
// concurrent readers.
type EmbeddedBank struct {
	questions  []domain.Question
	byCategory map[domain.Category][]domain.Question
}

// NewEmbeddedBank validates the given questions and indexes them by
// category. It fails on the first invalid entry so a bad bank aborts
// startup instead of surfacing mid-session.
func NewEmbeddedBank(questions []domain.Question) (*EmbeddedBank, error) {
	byCategory := make(map[domain.Category][]domain.Question)
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid question %q: %w", q.ID, err)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}
	return &EmbeddedBank{questions: questions, byCategory: byCategory}, nil
}

// GetAll implements domain.QuestionRepository.
func (b *EmbeddedBank) GetAll() ([]domain.Question, error) {
	return b.questions, nil
}

// GetByCategory implements domain.QuestionRepository.
func (b *EmbeddedBank) GetByCategory(category domain.Category) ([]domain.Question, error) {
	if !category.IsValid() {
		return nil, domain.NewInvalidCategoryError(string(category))
	}
	return b.byCategory[category], nil
}
