package service

import (
	"context"
	"testing"

	"healthquiz/internal/config"
	"healthquiz/internal/domain"
	"healthquiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Quiz: config.QuizConfig{
			DefaultSessionSize: 3,
			MaxSessionSize:     10,
		},
	}
}

func serviceTestBank() []domain.Question {
	return []domain.Question{
		{
			ID:           "metabolic-1",
			Category:     domain.CategoryMetabolic,
			Prompt:       "Which hormone lowers blood glucose?",
			Options:      []string{"Insulin", "Glucagon"},
			CorrectIndex: 0,
			Explanation:  "Insulin moves glucose from the blood into cells.",
		},
		{
			ID:           "cardio-1",
			Category:     domain.CategoryCardiovascular,
			Prompt:       "What is a normal resting blood pressure?",
			Options:      []string{"Below 120/80", "150/95"},
			CorrectIndex: 0,
			Explanation:  "Normal blood pressure is below 120/80 mmHg.",
		},
		{
			ID:           "fitness-1",
			Category:     domain.CategoryFitness,
			Prompt:       "How many minutes of moderate activity per week?",
			Options:      []string{"30", "150"},
			CorrectIndex: 1,
			Explanation:  "Guidelines recommend at least 150 minutes weekly.",
		},
		{
			ID:           "fitness-2",
			Category:     domain.CategoryFitness,
			Prompt:       "How often should adults do strength training?",
			Options:      []string{"Never", "At least twice a week"},
			CorrectIndex: 1,
			Explanation:  "Strength training is recommended at least twice weekly.",
		},
	}
}

func newTestQuizService(repo domain.QuestionRepository) (QuizService, *MemorySessionStore) {
	store := NewMemorySessionStore(0)
	return NewQuizService(repo, store, testConfig()), store
}

func TestQuizService_StartSession_DefaultSize(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Len(t, resp.Questions, 3)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 0, resp.Score)
	assert.False(t, resp.Completed)
	repo.AssertExpectations(t)
}

func TestQuizService_StartSession_DefaultSizeClampedToBank(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank()[:2], nil)
	svc, _ := newTestQuizService(repo)

	// Default size is 3 but the bank only holds 2 questions.
	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
}

func TestQuizService_StartSession_ExplicitSizeTooLarge(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 9})
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidSessionSize, domainErr.Code)
}

func TestQuizService_StartSession_CategoryFilter(t *testing.T) {
	fitnessOnly := serviceTestBank()[2:]
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", domain.CategoryFitness).Return(fitnessOnly, nil)
	svc, _ := newTestQuizService(repo)

	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Category: "fitness", Size: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	for _, q := range resp.Questions {
		assert.Equal(t, "fitness", q.Category)
	}
	repo.AssertExpectations(t)
}

func TestQuizService_StartSession_InvalidCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", domain.Category("astrology")).
		Return(nil, domain.NewInvalidCategoryError("astrology"))
	svc, _ := newTestQuizService(repo)

	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Category: "astrology", Size: 1})
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidCategory, domainErr.Code)
}

func TestQuizService_StartSession_EmptyCategoryBank(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", domain.CategorySkin).Return([]domain.Question{}, nil)
	svc, _ := newTestQuizService(repo)

	_, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Category: "skin", Size: 1})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeEmptyBank, domainErr.Code)
}

func TestQuizService_SessionDTOHidesAnswers(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	resp, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 4})
	require.NoError(t, err)

	// Presented questions carry prompt and options only; grading data is
	// revealed per question through SubmitAnswer.
	for _, q := range resp.Questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, len(q.Options), 2)
	}
}

func TestQuizService_SubmitAnswer(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	started, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 4})
	require.NoError(t, err)

	correct := 0
	resp, err := svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
		QuestionID:  "metabolic-1",
		ChosenIndex: &correct,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, 0, resp.CorrectIndex)
	assert.Equal(t, "Insulin moves glucose from the blood into cells.", resp.Explanation)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 1, resp.AnsweredCount)
	assert.False(t, resp.Completed)

	// Wrong answer still reveals the correct index and explanation.
	wrong := 0
	resp, err = svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
		QuestionID:  "fitness-1",
		ChosenIndex: &wrong,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsCorrect)
	assert.Equal(t, 1, resp.CorrectIndex)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.AnsweredCount)
}

func TestQuizService_SubmitAnswer_PersistsAcrossRequests(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	started, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 4})
	require.NoError(t, err)

	idx := 0
	_, err = svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
		QuestionID:  "cardio-1",
		ChosenIndex: &idx,
	})
	require.NoError(t, err)

	fetched, err := svc.GetSession(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.AnsweredCount)
	require.Len(t, fetched.Answers, 1)
	assert.Equal(t, "cardio-1", fetched.Answers[0].QuestionID)
	assert.True(t, fetched.Answers[0].IsCorrect)
}

func TestQuizService_SubmitAnswer_DoubleSubmit(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	started, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 4})
	require.NoError(t, err)

	idx := 0
	_, err = svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
		QuestionID:  "metabolic-1",
		ChosenIndex: &idx,
	})
	require.NoError(t, err)

	other := 1
	_, err = svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
		QuestionID:  "metabolic-1",
		ChosenIndex: &other,
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeAlreadyAnswered, domainErr.Code)

	// The rejected submission must not change the stored session.
	summary, err := svc.GetSummary(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AnsweredCount)
	assert.Equal(t, 1, summary.Score)
}

func TestQuizService_SubmitAnswer_UnknownSession(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc, _ := newTestQuizService(repo)

	idx := 0
	_, err := svc.SubmitAnswer(context.Background(), "no-such-session", &dto.SubmitAnswerRequest{
		QuestionID:  "metabolic-1",
		ChosenIndex: &idx,
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestQuizService_GetSummary_Completion(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", domain.CategoryFitness).Return(serviceTestBank()[2:], nil)
	svc, _ := newTestQuizService(repo)

	started, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Category: "fitness", Size: 2})
	require.NoError(t, err)

	right := 1
	for _, q := range started.Questions {
		_, err = svc.SubmitAnswer(context.Background(), started.SessionID, &dto.SubmitAnswerRequest{
			QuestionID:  q.ID,
			ChosenIndex: &right,
		})
		require.NoError(t, err)
	}

	summary, err := svc.GetSummary(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.True(t, summary.Completed)
	assert.Equal(t, 2, summary.AnsweredCount)
	assert.Equal(t, 2, summary.Score)
	assert.InDelta(t, 1.0, summary.Accuracy, 1e-9)
}

func TestQuizService_EndSession(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	started, err := svc.StartSession(context.Background(), &dto.StartSessionRequest{Size: 4})
	require.NoError(t, err)

	summary, err := svc.EndSession(context.Background(), started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, started.SessionID, summary.SessionID)

	_, err = svc.GetSession(context.Background(), started.SessionID)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestQuizService_ListCategories(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetAll").Return(serviceTestBank(), nil)
	svc, _ := newTestQuizService(repo)

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	byID := make(map[string]dto.CategoryResponse)
	for _, c := range categories {
		byID[c.ID] = c
	}
	assert.Equal(t, 2, byID["fitness"].QuestionCount)
	assert.Equal(t, 1, byID["metabolic"].QuestionCount)
	assert.NotEmpty(t, byID["cardiovascular"].Title)
	assert.NotContains(t, byID, "skin")
}
