package service

import (
	"context"

	"healthquiz/internal/config"
	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
	"healthquiz/internal/logger"
	"healthquiz/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz session operations
type QuizService interface {
	StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetSummary(ctx context.Context, sessionID string) (*dto.SummaryResponse, error)
	EndSession(ctx context.Context, sessionID string) (*dto.SummaryResponse, error)
	ListCategories() ([]dto.CategoryResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo  domain.QuestionRepository
	store SessionStore
	cfg   *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuestionRepository, store SessionStore, cfg *config.Config) QuizService {
	return &quizService{
		repo:  repo,
		store: store,
		cfg:   cfg,
	}
}

// StartSession implements QuizService. An empty category draws from the
// whole bank; a zero size falls back to the configured default, clamped
// to however many questions the chosen bank actually holds.
func (s *quizService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	bank, err := s.loadBank(req.Category)
	if err != nil {
		return nil, err
	}

	size := req.Size
	if size == 0 {
		size = s.cfg.Quiz.DefaultSessionSize
		if size > len(bank) {
			size = len(bank)
		}
	}

	session, err := domain.NewSession(bank, size, nil)
	if err != nil {
		return nil, err
	}
	session.ID = util.NewULID()

	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("quiz session started",
		zap.String("sessionID", session.ID),
		zap.String("category", req.Category),
		zap.Int("size", size))

	return toSessionResponse(session), nil
}

// GetSession implements QuizService
func (s *quizService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// SubmitAnswer implements QuizService. A rejected submission leaves the
// stored session untouched.
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.Submit(req.QuestionID, *req.ChosenIndex)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, session); err != nil {
		return nil, err
	}

	summary := session.Summary()
	return &dto.SubmitAnswerResponse{
		QuestionID:    result.QuestionID,
		IsCorrect:     result.IsCorrect,
		CorrectIndex:  result.CorrectIndex,
		Explanation:   result.Explanation,
		Score:         summary.Score,
		AnsweredCount: summary.AnsweredCount,
		TotalCount:    summary.TotalCount,
		Completed:     session.Completed(),
	}, nil
}

// GetSummary implements QuizService
func (s *quizService) GetSummary(ctx context.Context, sessionID string) (*dto.SummaryResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSummaryResponse(session), nil
}

// EndSession implements QuizService. It returns the final summary and
// removes the session from the store.
func (s *quizService) EndSession(ctx context.Context, sessionID string) (*dto.SummaryResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := toSummaryResponse(session)

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	logger.Get().Info("quiz session ended",
		zap.String("sessionID", sessionID),
		zap.Int("score", summary.Score),
		zap.Int("total", summary.TotalCount))

	return summary, nil
}

// ListCategories implements QuizService. Only categories with at least one
// question in the bank are returned.
func (s *quizService) ListCategories() ([]dto.CategoryResponse, error) {
	bank, err := s.repo.GetAll()
	if err != nil {
		return nil, domain.NewInternalError("failed to load question bank", err)
	}

	counts := make(map[domain.Category]int)
	for _, q := range bank {
		counts[q.Category]++
	}

	categories := make([]dto.CategoryResponse, 0, len(counts))
	for _, category := range domain.Categories() {
		if counts[category] == 0 {
			continue
		}
		categories = append(categories, dto.CategoryResponse{
			ID:            string(category),
			Title:         category.Title(),
			QuestionCount: counts[category],
		})
	}
	return categories, nil
}

func (s *quizService) loadBank(category string) ([]domain.Question, error) {
	if category == "" {
		bank, err := s.repo.GetAll()
		if err != nil {
			return nil, domain.NewInternalError("failed to load question bank", err)
		}
		return bank, nil
	}

	bank, err := s.repo.GetByCategory(domain.Category(category))
	if err != nil {
		return nil, err
	}
	return bank, nil
}

func toSessionResponse(session *domain.Session) *dto.SessionResponse {
	questions := make([]dto.QuestionResponse, 0, len(session.Questions))
	for _, q := range session.Questions {
		questions = append(questions, dto.QuestionResponse{
			ID:       q.ID,
			Category: string(q.Category),
			Prompt:   q.Prompt,
			Options:  q.Options,
		})
	}

	answers := make([]dto.AnswerResponse, 0, len(session.Answers))
	for _, a := range session.Answers {
		answers = append(answers, dto.AnswerResponse{
			QuestionID:  a.QuestionID,
			ChosenIndex: a.ChosenIndex,
			IsCorrect:   a.Correct,
			AnsweredAt:  a.AnsweredAt,
		})
	}

	summary := session.Summary()
	return &dto.SessionResponse{
		SessionID:     session.ID,
		Questions:     questions,
		Answers:       answers,
		Score:         summary.Score,
		AnsweredCount: summary.AnsweredCount,
		TotalCount:    summary.TotalCount,
		Completed:     session.Completed(),
		StartedAt:     session.StartedAt,
	}
}

func toSummaryResponse(session *domain.Session) *dto.SummaryResponse {
	summary := session.Summary()
	return &dto.SummaryResponse{
		SessionID:     session.ID,
		AnsweredCount: summary.AnsweredCount,
		TotalCount:    summary.TotalCount,
		Score:         summary.Score,
		Accuracy:      summary.Accuracy,
		Completed:     session.Completed(),
	}
}
