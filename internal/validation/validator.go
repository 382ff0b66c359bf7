package validation

import (
	"regexp"
	"strings"

	"healthquiz/internal/domain"
	"healthquiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct {
	maxSessionSize int
}

// NewValidator creates a new validator instance
func NewValidator(maxSessionSize int) *Validator {
	return &Validator{maxSessionSize: maxSessionSize}
}

// ValidateStartSessionRequest validates the start session request. Category
// and size are both optional; when present they must be well-formed. Whether
// the requested size fits the question bank is decided later, against the
// bank itself.
func (v *Validator) ValidateStartSessionRequest(req *dto.StartSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Category != "" && !isValidSlug(req.Category) {
		errors = append(errors, domain.NewInvalidFormatError("category", req.Category))
	}

	if req.Size < 0 || req.Size > v.maxSessionSize {
		errors = append(errors, domain.NewOutOfRangeError("size", req.Size, 0, v.maxSessionSize))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the submit answer request body.
// Bounds checking of the chosen index against the question's options is
// left to the session itself.
func (v *Validator) ValidateSubmitAnswerRequest(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !isValidSlug(req.QuestionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", req.QuestionID))
	}

	if req.ChosenIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("chosen_index"))
	}

	return errors
}

// ValidateSessionID validates a session ID path parameter.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateResearchQuery validates the research lookup query parameter.
func (v *Validator) ValidateResearchQuery(query string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(query) == "" {
		errors = append(errors, domain.NewMissingFieldError("query"))
	} else if len(query) > 200 {
		errors = append(errors, domain.NewOutOfRangeError("query", len(query), 1, 200))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidSlug checks category and question identifiers: alphanumeric with
// hyphens and underscores, 1-64 characters.
func isValidSlug(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}
	validSlug := regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	return validSlug.MatchString(s)
}
