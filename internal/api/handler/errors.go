package handler

import (
	"net/http"

	"github.com/ajmarsh/context-collapse-server/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeMissingField       = apierr.CodeMissingField
	CodeNameTooLong        = apierr.CodeNameTooLong
	CodeInvalidDifficulty  = apierr.CodeInvalidDifficulty
	CodeInvalidScore       = apierr.CodeInvalidScore
	CodeInvalidNameChars   = apierr.CodeInvalidNameChars
	CodeInvalidToken       = apierr.CodeInvalidToken
	CodeCheatingDetected   = apierr.CodeCheatingDetected
	CodeCheckInNotCurrent  = apierr.CodeCheckInNotCurrent
	CodeNotHighScore       = apierr.CodeNotHighScore
	CodeSessionNotFound    = apierr.CodeSessionNotFound
	CodeLeaderboardMissing = apierr.CodeLeaderboardMissing
	CodeInvalidEmail       = apierr.CodeInvalidEmail
	CodeInvalidName        = apierr.CodeInvalidName
	CodeEmptyMessage       = apierr.CodeEmptyMessage
	CodeUpstreamFailure    = apierr.CodeUpstreamFailure
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewStoreError creates the leaderboard store-failure error
func NewStoreError() error {
	return apierr.NewStoreError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
