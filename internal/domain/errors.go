package domain

import (
	"errors"
	"fmt"
)

// Error codes carried by AppError.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeAuth         = "AUTH_ERROR"
	CodeRateLimited  = "RATE_LIMITED"
	CodeService      = "SERVICE_ERROR"
	CodeNetwork      = "NETWORK_ERROR"
	CodeParse        = "PARSE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
)

// AppError is the base domain error type.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Standard domain error constructors.

func ErrNotFound(msg string, status int) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg, Status: status}
}

func ErrAuth(msg string, status int) *AppError {
	return &AppError{Code: CodeAuth, Message: msg, Status: status}
}

func ErrRateLimited(msg string) *AppError {
	return &AppError{Code: CodeRateLimited, Message: msg, Status: 429}
}

// ErrService carries the upstream message verbatim when one was supplied.
func ErrService(msg string, status int) *AppError {
	return &AppError{Code: CodeService, Message: msg, Status: status}
}

func ErrNetwork(msg string, cause error) *AppError {
	return &AppError{Code: CodeNetwork, Message: msg, Cause: cause}
}

func ErrParse(msg string, cause error) *AppError {
	return &AppError{Code: CodeParse, Message: msg, Cause: cause}
}

func ErrInvalidInput(msg string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: msg}
}
