package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type returned by session methods,
// command handlers and projections.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match predefined errors by code, so call sites can
// compare against the sentinel variables below even when a helper built a
// fresh instance with a custom message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if stderrors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	ErrInvalidCredentials   = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized         = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden            = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrAuthorizationFailed  = New(CodeAuthorizationFailed, "Actor does not own this resource", http.StatusForbidden)
	ErrNotFound             = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrValidationFailed     = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrDuplicateApplication = New(CodeDuplicateApplication, "Application already exists for this job", http.StatusConflict)
	ErrInvalidTransition    = New(CodeInvalidTransition, "Application status can only change while pending", http.StatusConflict)
	ErrPayloadTooLarge      = New(CodePayloadTooLarge, "Payload exceeds the allowed size", http.StatusRequestEntityTooLarge)
	ErrDuplicateID          = New(CodeDuplicateID, "Identifier already present", http.StatusConflict)
)

// Factory helpers

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NewValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func AuthorizationError(message string) *AppError {
	return New(CodeAuthorizationFailed, message, http.StatusForbidden)
}

func InvalidTransition(current string) *AppError {
	return New(CodeInvalidTransition,
		fmt.Sprintf("Cannot change application status: current status is %q, not pending", current),
		http.StatusConflict)
}

func PayloadTooLarge(size, max int64) *AppError {
	return New(CodePayloadTooLarge,
		fmt.Sprintf("Payload of %d bytes exceeds the %d byte limit", size, max),
		http.StatusRequestEntityTooLarge)
}

func DuplicateID(id string) *AppError {
	return New(CodeDuplicateID, fmt.Sprintf("Identifier %q already present", id), http.StatusConflict)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}
