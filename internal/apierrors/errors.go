package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in the "code" field
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"

	// Accounts
	CodeEmailExists  = "EMAIL_EXISTS"
	CodeUserNotFound = "USER_NOT_FOUND"
	CodeInvalidRole  = "INVALID_ROLE"

	// Countdowns
	CodeCountdownNotFound = "COUNTDOWN_NOT_FOUND"
	CodeTitleRequired     = "TITLE_REQUIRED"
	CodeInvalidDayType    = "INVALID_DAY_TYPE"
	CodeInvalidSchedule   = "INVALID_SCHEDULE"
	CodeInvalidStartDate  = "INVALID_START_DATE"
	CodeDayOutOfRange     = "DAY_OUT_OF_RANGE"

	// Sharing
	CodeInvitationNotFound = "INVITATION_NOT_FOUND"
	CodeInvitationExpired  = "INVITATION_EXPIRED"
	CodeNotReceiver        = "NOT_RECEIVER"

	// Receiver
	CodeAssignmentNotFound = "ASSIGNMENT_NOT_FOUND"
	CodeNotShared          = "NOT_SHARED"
	CodeInvalidQRToken     = "INVALID_QR_TOKEN"
	CodeDayNotAvailable    = "DAY_NOT_AVAILABLE"
	CodeDayNotUnlocked     = "DAY_NOT_UNLOCKED"
	CodeDayContentNotFound = "DAY_CONTENT_NOT_FOUND"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
)

const internalErrorMessage = "An internal error occurred. Please try again later."

// APIError is an error that knows its HTTP status and client-facing message.
// Cause is logged but never sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]interface{}
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a copy of e carrying an extra response field.
func (e *APIError) WithDetail(key string, value interface{}) *APIError {
	out := *e
	out.Details = make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		out.Details[k] = v
	}
	out.Details[key] = value
	return &out
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden uses the generic FORBIDDEN code; use ForbiddenWithCode for a specific one.
func Forbidden(message string) *APIError {
	return ForbiddenWithCode(CodeForbidden, message)
}

func ForbiddenWithCode(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func TooManyRequests(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: code, Message: message}
}

// InternalError hides err behind a generic message.
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    internalErrorMessage,
		Cause:      err,
	}
}

func ServiceUnavailable(message string, err error) *APIError {
	return &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       CodeUnavailable,
		Message:    message,
		Cause:      err,
	}
}
