package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Session specific errors
	CodeInvalidSessionSize ErrorCode = "INVALID_SESSION_SIZE"
	CodeEmptyBank          ErrorCode = "EMPTY_BANK"
	CodeUnknownQuestion    ErrorCode = "UNKNOWN_QUESTION"
	CodeAlreadyAnswered    ErrorCode = "ALREADY_ANSWERED"
	CodeInvalidChoice      ErrorCode = "INVALID_CHOICE"
	CodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"

	// Content specific errors
	CodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
	CodeTopicNotFound   ErrorCode = "TOPIC_NOT_FOUND"
	CodeMythNotFound    ErrorCode = "MYTH_NOT_FOUND"

	// Research lookup errors
	CodeResearchUnavailable ErrorCode = "RESEARCH_UNAVAILABLE"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidSessionSizeError(size, bankSize int) *DomainError {
	err := NewError(CodeInvalidSessionSize,
		fmt.Sprintf("Session size %d is outside [1, %d]", size, bankSize), nil)
	err.Context = map[string]interface{}{"size": size, "bank_size": bankSize}
	return err
}

func NewEmptyBankError() *DomainError {
	return NewError(CodeEmptyBank, "Question bank is empty", nil)
}

func NewUnknownQuestionError(questionID string) *DomainError {
	return NewError(CodeUnknownQuestion,
		fmt.Sprintf("Question %s is not part of this session", questionID), nil)
}

func NewAlreadyAnsweredError(questionID string) *DomainError {
	return NewError(CodeAlreadyAnswered,
		fmt.Sprintf("Question %s has already been answered", questionID), nil)
}

func NewInvalidChoiceError(chosenIndex, optionCount int) *DomainError {
	err := NewError(CodeInvalidChoice,
		fmt.Sprintf("Choice %d is out of bounds for %d options", chosenIndex, optionCount), nil)
	err.Context = map[string]interface{}{"chosen_index": chosenIndex, "option_count": optionCount}
	return err
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound,
		fmt.Sprintf("Session not found: %s", sessionID), nil)
}

func NewInvalidCategoryError(category string) *DomainError {
	return NewError(CodeInvalidCategory, fmt.Sprintf("Invalid category: %s", category), nil)
}

func NewTopicNotFoundError(topicID string) *DomainError {
	return NewError(CodeTopicNotFound, fmt.Sprintf("Topic not found: %s", topicID), nil)
}

func NewMythNotFoundError(mythID string) *DomainError {
	return NewError(CodeMythNotFound, fmt.Sprintf("Myth not found: %s", mythID), nil)
}

func NewResearchUnavailableError(source string, cause error) *DomainError {
	return NewError(CodeResearchUnavailable,
		fmt.Sprintf("Research source %s is unavailable", source), cause)
}
