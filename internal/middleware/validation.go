package middleware

import (
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateSessionID validates the sessionID path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("sessionID")

		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals("validated_session_id", sessionID)
		return c.Next()
	}
}

// ValidateResearchQuery validates the q query parameter
func (vm *ValidationMiddleware) ValidateResearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")

		if errors := vm.validator.ValidateResearchQuery(query); len(errors) > 0 {
			return errors
		}

		c.Locals("validated_query", query)
		return c.Next()
	}
}
