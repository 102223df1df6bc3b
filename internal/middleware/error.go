package middleware

import (
	"errors"
	"net/http"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field details alongside the envelope.
type ValidationErrorResponse struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Details []domain.ValidationError `json:"details"`
}

// ErrorHandler is the centralized fiber error handler. Handlers return
// domain errors; this is the single place they become HTTP responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation failed",
				zap.String("path", c.Path()),
				zap.Int("errorCount", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Status:  "error",
				Message: "Request validation failed",
				Details: validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred",
					zap.String("code", string(domainErr.Code)),
					zap.String("path", c.Path()),
					zap.Error(domainErr.Cause),
				)
			} else {
				log.Warn("Request failed",
					zap.String("code", string(domainErr.Code)),
					zap.String("path", c.Path()),
					zap.Int("status", statusCode),
				)
			}

			message := domainErr.Message
			if statusCode >= http.StatusInternalServerError {
				// Internal details stay in the logs.
				message = "Internal server error"
				if domainErr.Code == domain.CodeAIServiceError {
					message = "AI service is unavailable"
				}
			}

			return c.Status(statusCode).JSON(ErrorResponse{
				Status:  "error",
				Message: message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Status:  "error",
				Message: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation, domain.CodeDuplicateUser:
		return http.StatusBadRequest
	case domain.CodeUnauthorized, domain.CodeInvalidCredentials, domain.CodeInvalidRefreshToken:
		return http.StatusUnauthorized
	case domain.CodeUserNotFound, domain.CodeSessionNotFound, domain.CodeQuestionNotFound:
		return http.StatusNotFound
	case domain.CodeAIServiceError, domain.CodeAIResponseParse:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
