package errors

// Error code constants.
// Errors carry code + params; messages stay short and English-only.
// Frontend handles i18n translation.

// Resource lookup error codes.
const (
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeEventNotFound   = "EVENT_NOT_FOUND"
	CodeUserNotFound    = "USER_NOT_FOUND"
)

// Enrollment window error codes.
const (
	CodeNoEnrollmentConfig = "NO_ENROLLMENT_CONFIG"
	CodeWaitlistDisabled   = "WAITLIST_DISABLED"
)

// Batch request error codes.
const (
	CodeInvalidChoice    = "INVALID_CHOICE"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeUserInactive     = "USER_INACTIVE"
)

// Slot budget error codes.
const (
	CodeEmailRequired      = "EMAIL_REQUIRED"
	CodeManagerInfoMissing = "MANAGER_INFO_MISSING"
	CodeEnrollmentAccess   = "ENROLLMENT_ACCESS_REQUIRED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrSessionNotFound creates a session not found error.
func ErrSessionNotFound(sessionID int64) *AppError {
	return NotFound(CodeSessionNotFound, "session not found").
		WithParams(map[string]interface{}{"session_id": sessionID})
}

// ErrNoEnrollmentConfig reports that no enrollment window is open.
func ErrNoEnrollmentConfig(eventID int64) *AppError {
	return Forbidden(CodeNoEnrollmentConfig, "enrollment is not open for this event").
		WithParams(map[string]interface{}{"event_id": eventID})
}

// ErrCapacityExceeded reports that a batch asked for more confirmed seats
// than the session has left.
func ErrCapacityExceeded(requested, available int) *AppError {
	return Conflict(CodeCapacityExceeded, "not enough spots available").
		WithParams(map[string]interface{}{
			"requested": requested,
			"available": available,
		})
}

// ErrInvalidChoice reports an unrecognized enrollment action.
func ErrInvalidChoice(raw string) *AppError {
	return BadRequest(CodeInvalidChoice, "invalid enrollment action").
		WithParams(map[string]interface{}{"action": raw})
}
