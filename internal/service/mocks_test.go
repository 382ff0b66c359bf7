package service

import (
	"context"
	"time"

	"healthquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetAll() ([]domain.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(category domain.Category) ([]domain.Question, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockPubMedClient ---
type MockPubMedClient struct {
	mock.Mock
}

func (m *MockPubMedClient) Search(ctx context.Context, query string, limit int) ([]domain.PubMedArticle, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PubMedArticle), args.Error(1)
}

// --- MockCDCSource ---
type MockCDCSource struct {
	mock.Mock
}

func (m *MockCDCSource) Guideline(topic string) (*domain.CDCGuideline, bool) {
	args := m.Called(topic)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.CDCGuideline), args.Bool(1)
}

// --- MockNIHSource ---
type MockNIHSource struct {
	mock.Mock
}

func (m *MockNIHSource) Resource(topic string) (*domain.NIHResource, bool) {
	args := m.Called(topic)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.NIHResource), args.Bool(1)
}
