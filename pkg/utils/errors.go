package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// Provider specific errors. These never propagate past the aggregator;
// they exist so adapter failures can be logged with a consistent shape.

// NewProviderUnavailableError returns an error for an adapter whose
// credential is missing and which is therefore disabled.
func NewProviderUnavailableError(provider string) *CustomError {
	return &CustomError{
		Code:    http.StatusServiceUnavailable,
		Message: "Provider unavailable",
		Detail:  fmt.Sprintf("%s is not configured", provider),
	}
}

// NewProviderError returns an error for a failed upstream provider call
// (network failure, non-2xx status or malformed payload).
func NewProviderError(provider, detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: fmt.Sprintf("Provider %s request failed", provider),
		Detail:  detail,
	}
}
