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
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Auth specific errors
	CodeDuplicateUser       ErrorCode = "DUPLICATE_USER"
	CodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidRefreshToken ErrorCode = "INVALID_REFRESH_TOKEN"
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"

	// Interview specific errors
	CodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"

	// AI gateway errors
	CodeAIServiceError    ErrorCode = "AI_SERVICE_ERROR"
	CodeAIResponseParse   ErrorCode = "AI_RESPONSE_PARSE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
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

// Helper constructors for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewDuplicateUserError() *DomainError {
	return NewError(CodeDuplicateUser, "User with this email already exists", nil)
}

// NewInvalidCredentialsError deliberately carries the same message for both
// "no such user" and "wrong password" so callers cannot enumerate accounts.
func NewInvalidCredentialsError() *DomainError {
	return NewError(CodeInvalidCredentials, "Invalid email or password", nil)
}

func NewInvalidRefreshTokenError(cause error) *DomainError {
	return NewError(CodeInvalidRefreshToken, "Invalid or expired refresh token", cause)
}

func NewUserNotFoundError(userID string) *DomainError {
	return NewError(CodeUserNotFound, fmt.Sprintf("User not found: %s", userID), nil)
}

func NewSessionNotFoundError() *DomainError {
	return NewError(CodeSessionNotFound, "Session not found", nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("Question not found: %s", questionID), nil)
}

func NewAIServiceError(cause error) *DomainError {
	return NewError(CodeAIServiceError, "Failed to generate AI response", cause)
}

func NewAIResponseParseError(cause error) *DomainError {
	return NewError(CodeAIResponseParse, "Failed to parse AI JSON response", cause)
}
