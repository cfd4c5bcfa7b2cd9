package apperrors

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Generic business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeDuplicateID      ErrorCode = "DUPLICATE_ID"

	// Authentication and authorization
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials  ErrorCode = "INVALID_CREDENTIALS"
	CodeAuthorizationFailed ErrorCode = "AUTHORIZATION_FAILED"

	// Domain
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	CodePayloadTooLarge      ErrorCode = "PAYLOAD_TOO_LARGE"
)
