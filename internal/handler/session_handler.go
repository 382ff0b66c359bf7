package handler

import (
	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
	"healthquiz/internal/logger"
	"healthquiz/internal/service"
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.QuizService, validator *validation.Validator) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validator,
	}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Draws a fresh set of questions and returns the new session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest false "Session options"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	req := new(dto.StartSessionRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
	}

	if errs := h.validator.ValidateStartSessionRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartSession(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Returns the current state of a session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.service.GetSession(c.Context(), c.Params("sessionID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Grades one answer and reveals the explanation for it
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionID}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	req := new(dto.SubmitAnswerRequest)
	if err := c.BodyParser(req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswerRequest(req); len(errs) > 0 {
		return errs
	}

	sessionID := c.Params("sessionID")
	resp, err := h.service.SubmitAnswer(c.Context(), sessionID, req)
	if err != nil {
		return err
	}

	logger.Get().Debug("answer graded",
		zap.String("sessionID", sessionID),
		zap.String("questionID", req.QuestionID),
		zap.Bool("correct", resp.IsCorrect))

	return c.JSON(resp)
}

// GetSummary godoc
// @Summary Get a session summary
// @Description Returns the running or final score of a session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionID}/summary [get]
func (h *SessionHandler) GetSummary(c *fiber.Ctx) error {
	resp, err := h.service.GetSummary(c.Context(), c.Params("sessionID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession godoc
// @Summary End a quiz session
// @Description Returns the final summary and discards the session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{sessionID} [delete]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	resp, err := h.service.EndSession(c.Context(), c.Params("sessionID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListCategories godoc
// @Summary List quiz categories
// @Description Returns the categories that have questions in the bank
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/categories [get]
func (h *SessionHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}
