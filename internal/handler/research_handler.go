package handler

import (
	"healthquiz/internal/service"
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ResearchHandler handles health research lookup HTTP requests
type ResearchHandler struct {
	service   service.ResearchService
	validator *validation.Validator
}

// NewResearchHandler creates a new ResearchHandler instance
func NewResearchHandler(service service.ResearchService, validator *validation.Validator) *ResearchHandler {
	return &ResearchHandler{service: service, validator: validator}
}

// Lookup godoc
// @Summary Look up health research
// @Description Searches PubMed and the curated CDC/NIH sets for a topic
// @Tags research
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.ResearchResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /research [get]
func (h *ResearchHandler) Lookup(c *fiber.Ctx) error {
	query := c.Query("q")
	if errs := h.validator.ValidateResearchQuery(query); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Lookup(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
