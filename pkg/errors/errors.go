package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Investment comparison errors
	ErrCodeBeforeFundStart ErrorCode = "BEFORE_FUND_START"
	ErrCodeCannotCompare   ErrorCode = "CANNOT_COMPARE"

	// System errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AdvisorError represents a standardized error
type AdvisorError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AdvisorError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New creates a new AdvisorError
func New(code ErrorCode, message string) *AdvisorError {
	return &AdvisorError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Details:    make(map[string]interface{}),
	}
}

// AddDetail adds a detail to the error
func (e *AdvisorError) AddDetail(key string, value interface{}) *AdvisorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeBeforeFundStart, ErrCodeCannotCompare:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

func ValidationError(message string) *AdvisorError {
	return New(ErrCodeValidation, message)
}

func NotFound(message string) *AdvisorError {
	return New(ErrCodeNotFound, message)
}

// BeforeFundStart signals that a requested date precedes a fund's first NAV
// observation. The start date detail lets callers realign instead of failing.
func BeforeFundStart(message, startDate string) *AdvisorError {
	return New(ErrCodeBeforeFundStart, message).AddDetail("fund_start_date", startDate)
}

func CannotCompare(message, startDate string) *AdvisorError {
	return New(ErrCodeCannotCompare, message).AddDetail("fund2_start_date", startDate)
}

func Internal(message string) *AdvisorError {
	return New(ErrCodeInternal, message)
}

// AsAdvisorError extracts an *AdvisorError from err if it is one
func AsAdvisorError(err error) (*AdvisorError, bool) {
	var ae *AdvisorError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsCode reports whether err is an AdvisorError with the given code
func IsCode(err error, code ErrorCode) bool {
	if ae, ok := AsAdvisorError(err); ok {
		return ae.Code == code
	}
	return false
}

// StartDate returns the fund_start_date detail carried by inception errors
func StartDate(err error) string {
	if ae, ok := AsAdvisorError(err); ok {
		if v, ok := ae.Details["fund_start_date"].(string); ok {
			return v
		}
	}
	return ""
}
