package apierrors

import (
	"errors"
	"time"

	authProcessor "countdown-server/internal/auth/processor"
	countdownProcessor "countdown-server/internal/countdown/processor"
	"countdown-server/internal/daycards"
	receiverProcessor "countdown-server/internal/receiver/processor"
	"countdown-server/internal/store"
)

// MapError converts processor errors to APIErrors. An APIError is returned
// as-is; unknown errors become a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var notAvailable *receiverProcessor.DayNotAvailableError
	if errors.As(err, &notAvailable) {
		return ForbiddenWithCode(CodeDayNotAvailable, "This day is not available yet").
			WithDetail("nextUnlockAt", notAvailable.NextUnlockAt.UTC().Format(time.RFC3339))
	}

	switch {
	// Auth
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")
	case errors.Is(err, authProcessor.ErrIncorrectCredentials):
		return Unauthorized("Invalid email or password")
	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")
	case errors.Is(err, authProcessor.ErrInvalidRole):
		return BadRequest(CodeInvalidRole, "Role must be creator or receiver")
	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Authorization token has expired")
	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Authorization token is missing or invalid")
	case errors.Is(err, authProcessor.ErrFailedSignup),
		errors.Is(err, authProcessor.ErrFailedLogin):
		return InternalError(err)

	// Countdowns
	case errors.Is(err, countdownProcessor.ErrCountdownNotFound),
		errors.Is(err, receiverProcessor.ErrCountdownNotFound):
		return NotFound(CodeCountdownNotFound, "Countdown not found")
	case errors.Is(err, countdownProcessor.ErrForbidden):
		return Forbidden("You do not have access to this countdown")
	case errors.Is(err, countdownProcessor.ErrTitleRequired):
		return BadRequest(CodeTitleRequired, "title is required")
	case errors.Is(err, countdownProcessor.ErrInvalidDayType):
		return BadRequest(CodeInvalidDayType, "type must be one of: story qr voucher")
	case errors.Is(err, countdownProcessor.ErrInvalidSchedule):
		return BadRequest(CodeInvalidSchedule, "endDate must not be before startDate")
	case errors.Is(err, daycards.ErrDayOutOfRange):
		return BadRequest(CodeDayOutOfRange, "Day is out of range for this countdown")

	// Sharing
	case errors.Is(err, countdownProcessor.ErrInvitationNotFound):
		return NotFound(CodeInvitationNotFound, "Invitation not found")
	case errors.Is(err, countdownProcessor.ErrInvitationExpired):
		return NotFound(CodeInvitationExpired, "Invitation has expired")
	case errors.Is(err, countdownProcessor.ErrNotReceiver):
		return ForbiddenWithCode(CodeNotReceiver, "Only receivers can accept invitations")

	// Receiver
	case errors.Is(err, receiverProcessor.ErrAssignmentNotFound):
		return NotFound(CodeAssignmentNotFound, "Assignment not found")
	case errors.Is(err, receiverProcessor.ErrNotShared):
		return ForbiddenWithCode(CodeNotShared, "This countdown is not shared with you")
	case errors.Is(err, receiverProcessor.ErrInvalidQRToken):
		return BadRequest(CodeInvalidQRToken, "Invalid QR token")
	case errors.Is(err, receiverProcessor.ErrDayNotUnlocked):
		return ForbiddenWithCode(CodeDayNotUnlocked, "Scan this day's QR code to unlock it")
	case errors.Is(err, receiverProcessor.ErrDayContentNotFound):
		return NotFound(CodeDayContentNotFound, "No content for this day")
	case errors.Is(err, receiverProcessor.ErrTooManyAttempts):
		return TooManyRequests(CodeTooManyAttempts, "Too many unlock attempts. Please wait a minute and try again.")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	}

	return InternalError(err)
}
