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
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	CodeAlreadyAnswered ErrorCode = "ALREADY_ANSWERED"

	// Remote service errors
	CodeQuizNotFound ErrorCode = "QUIZ_NOT_FOUND"
	CodeUpstream     ErrorCode = "UPSTREAM_ERROR"
	CodeStaleRequest ErrorCode = "STALE_REQUEST"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
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

// WithContext attaches a key/value pair surfaced in the error response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
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
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewSessionNotFoundError(containerID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("No session for container: %s", containerID), nil)
}

func NewAlreadyAnsweredError(containerID string, questionIndex int) *DomainError {
	return NewError(CodeAlreadyAnswered,
		fmt.Sprintf("Question %d already answered in container: %s", questionIndex, containerID), nil)
}

func NewQuizNotFoundError(quizID int64) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %d", quizID), nil)
}

func NewUpstreamError(message string, cause error) *DomainError {
	return NewError(CodeUpstream, message, cause)
}

func NewStaleRequestError(containerID string) *DomainError {
	return NewError(CodeStaleRequest,
		fmt.Sprintf("Response superseded by a newer request for container: %s", containerID), nil)
}
