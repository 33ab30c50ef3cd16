package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/profile"
	"github.com/mcoot/mindcare/internal/services/scheduler"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidProfile     = "INVALID_PROFILE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeCounselorNotFound  = "COUNSELOR_NOT_FOUND"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeCallInProgress     = "CALL_IN_PROGRESS"
	CodeNotFound           = "NOT_FOUND"
	CodeUnavailable        = "UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Settings errors name the offending field
	if errors.Is(err, model.ErrInvalidSettings) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	}

	// Map validation errors; their messages are safe to show
	switch {
	case errors.Is(err, model.ErrEmptyMessage),
		errors.Is(err, model.ErrInvalidMood),
		errors.Is(err, model.ErrCounselorUnavailable),
		errors.Is(err, model.ErrInvalidTimeSlot),
		errors.Is(err, model.ErrTimeSlotTaken),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrUnsupportedSessionType),
		errors.Is(err, model.ErrMissingReason),
		errors.Is(err, model.ErrInvalidUrgency),
		errors.Is(err, model.ErrInvalidPost),
		errors.Is(err, model.ErrEmptyReply),
		errors.Is(err, model.ErrUnknownAnalysisMode),
		errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, model.ErrUnknownResourceType),
		errors.Is(err, model.ErrUnknownHelpline):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, rootMessage(err)}}
	}

	switch {
	case errors.Is(err, profile.ErrInvalidID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidProfile, "A valid X-Profile-ID header is required"}}
	case errors.Is(err, model.ErrCounselorNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCounselorNotFound, "Counselor not found"}}
	case errors.Is(err, model.ErrPostNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePostNotFound, "Post not found"}}
	case errors.Is(err, model.ErrResourceNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeResourceNotFound, "Resource not found"}}
	case errors.Is(err, model.ErrCallInProgress):
		return &httpError{http.StatusConflict, APIError{CodeCallInProgress, "A call is already connecting"}}
	case errors.Is(err, chat.ErrConversationClosed), errors.Is(err, scheduler.ErrCancelled):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeUnavailable, "The request could not be completed"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// rootMessage returns the message of the innermost wrapped error
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Login required"}}
}

// NewEmailExistsError creates the error for a signup with a registered email
func NewEmailExistsError() error {
	return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already exists"}}
}

// NewInvalidCredentialsError creates the error for a failed login
func NewInvalidCredentialsError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
}

// NewNotFoundError creates a generic not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
