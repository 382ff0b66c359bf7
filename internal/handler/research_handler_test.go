package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
	"healthquiz/internal/handler"
	"healthquiz/internal/middleware"
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockResearchService
type MockResearchService struct {
	LookupFunc func(ctx context.Context, query string) (*dto.ResearchResponse, error)
}

func (m *MockResearchService) Lookup(ctx context.Context, query string) (*dto.ResearchResponse, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, query)
	}
	panic("MockResearchService.LookupFunc not implemented")
}

func newResearchTestApp(svc *MockResearchService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewResearchHandler(svc, validation.NewValidator(50))
	app.Get("/research", h.Lookup)
	return app
}

func TestResearchLookupHandler_Success(t *testing.T) {
	svc := &MockResearchService{
		LookupFunc: func(_ context.Context, query string) (*dto.ResearchResponse, error) {
			assert.Equal(t, "diabetes", query)
			return &dto.ResearchResponse{
				Query: query,
				Articles: []dto.ArticleResponse{
					{Title: "Diabetes prevention in adults", Year: "2023"},
				},
				Guideline: &dto.GuidelineResponse{Topic: "diabetes"},
			}, nil
		},
	}
	app := newResearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/research?q=diabetes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ResearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Articles, 1)
	require.NotNil(t, got.Guideline)
	assert.Nil(t, got.Resource)
}

func TestResearchLookupHandler_MissingQuery(t *testing.T) {
	app := newResearchTestApp(&MockResearchService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/research", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResearchLookupHandler_Unavailable(t *testing.T) {
	svc := &MockResearchService{
		LookupFunc: func(_ context.Context, _ string) (*dto.ResearchResponse, error) {
			return nil, domain.NewResearchUnavailableError("pubmed", errors.New("eutils timeout"))
		},
	}
	app := newResearchTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/research?q=diabetes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var got middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, string(domain.CodeResearchUnavailable), got.Code)
}
