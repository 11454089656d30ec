package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to the presentation layer.
const (
	CodeInsufficientBalance = "PAY_001"
	CodeInvalidAmount       = "PAY_002"
	CodeInvalidBucket       = "PAY_003"
	CodeNoContextSelected   = "CTX_001"
	CodeInvalidContext      = "CTX_002"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"` // Input the client should flag, if any
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithField returns a copy of e that points the client at an input field.
func (e *AppError) WithField(field string) *AppError {
	cp := *e
	cp.Field = field
	return &cp
}

// HasCode reports whether err is, or wraps, an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// ---- Payment confirmation (PAY) ----

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired).WithField("amount")
}

// ErrInvalidAmount covers missing, non-numeric and non-positive amounts.
// The message tells them apart; the code does not.
func ErrInvalidAmount(reason string) *AppError {
	msg := "Invalid amount"
	if reason != "" {
		msg = msg + ": " + reason
	}
	return New(CodeInvalidAmount, msg, http.StatusBadRequest).WithField("amount")
}

func ErrInvalidBucket(bucket string) *AppError {
	return New(CodeInvalidBucket, fmt.Sprintf("Unknown balance bucket %q", bucket), http.StatusBadRequest)
}

// ---- Restaurant context (CTX) ----

func ErrNoContextSelected() *AppError {
	return New(CodeNoContextSelected, "Please select a restaurant first", http.StatusConflict)
}

// ErrInvalidContext signals a restaurant id that was never registered.
func ErrInvalidContext(id string) *AppError {
	return New(CodeInvalidContext, fmt.Sprintf("Restaurant %q is not registered", id), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrEmailExists() *AppError {
	return New("AUTH_002", "Email already registered", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotFound(entity string) *AppError {
	return New("AUTH_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrSeedFailure(err error) *AppError {
	return Wrap("SYS_002", "Restaurant seed data unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
