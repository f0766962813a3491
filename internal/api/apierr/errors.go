package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajmarsh/context-collapse-server/internal/model"
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
	CodeMissingField       = "MISSING_FIELD"
	CodeNameTooLong        = "NAME_TOO_LONG"
	CodeInvalidDifficulty  = "INVALID_DIFFICULTY"
	CodeInvalidScore       = "INVALID_SCORE"
	CodeInvalidNameChars   = "INVALID_NAME_CHARS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeCheatingDetected   = "CHEATING_DETECTED"
	CodeCheckInNotCurrent  = "CHECKIN_NOT_CURRENT"
	CodeNotHighScore       = "NOT_HIGH_SCORE"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeLeaderboardMissing = "LEADERBOARD_NOT_FOUND"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidName        = "INVALID_NAME"
	CodeEmptyMessage       = "EMPTY_MESSAGE"
	CodeUpstreamFailure    = "UPSTREAM_FAILURE"
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Input-policy violations
	case errors.Is(err, model.ErrMissingField):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingField, err.Error()}}
	case errors.Is(err, model.ErrNameTooLong):
		return &httpError{http.StatusBadRequest, APIError{CodeNameTooLong, "name provided is too long"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "difficulty provided is invalid"}}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScore, "score provided is invalid"}}
	case errors.Is(err, model.ErrInvalidNameChars):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidNameChars,
			"name has invalid characters. Use only letters, numbers, and the following symbols: -_+=~!@#$%^&*"}}

	// Anti-cheat rejections: still 400, but with codes distinct from the
	// input-policy failures
	case errors.Is(err, model.ErrInvalidSessionToken):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidToken, "no valid token provided"}}
	case errors.Is(err, model.ErrCheatingDetected):
		return &httpError{http.StatusBadRequest, APIError{CodeCheatingDetected, "score invalid: cheating detected"}}
	case errors.Is(err, model.ErrCheckInNotCurrent):
		return &httpError{http.StatusBadRequest, APIError{CodeCheckInNotCurrent, "score invalid: check-in not current"}}

	// A valid submission that isn't a new best: expected outcome, own status
	case errors.Is(err, model.ErrNotHighScore):
		return &httpError{http.StatusConflict, APIError{CodeNotHighScore, "not a new high score"}}

	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusBadRequest, APIError{CodeSessionNotFound, "token does not exist"}}
	case errors.Is(err, model.ErrScoreNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLeaderboardMissing, "leaderboard not found"}}

	// Contact form
	case errors.Is(err, model.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidEmail, "invalid email address"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "name must not contain line breaks"}}
	case errors.Is(err, model.ErrEmptyMessage):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyMessage, "message must not be empty"}}

	// External collaborators
	case errors.Is(err, model.ErrUpstreamFailure), errors.Is(err, model.ErrMailNotConfigured):
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamFailure, "upstream request failed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewStoreError creates the 404 the leaderboard endpoint returns when the
// store cannot be read
func NewStoreError() error {
	return &httpError{http.StatusNotFound, APIError{CodeLeaderboardMissing, "leaderboard not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
