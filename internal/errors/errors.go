package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidID is returned when a path or body identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidAmount is returned when a charge amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrEmptyUpdate is returned when a patch carries none of the updatable fields.
	ErrEmptyUpdate = errors.New("no updatable fields")
	// ErrChargeFailed is returned when the payment provider rejects a charge intent.
	ErrChargeFailed = errors.New("charge intent failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched too.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAmount.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrEmptyUpdate):
		return NewHTTPError(http.StatusBadRequest, ErrEmptyUpdate.Error(), "EMPTY_UPDATE")
	case errors.Is(err, ErrChargeFailed):
		return NewHTTPError(http.StatusBadGateway, ErrChargeFailed.Error(), "CHARGE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
