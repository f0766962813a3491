package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajmarsh/context-collapse-server/internal/api/request"
	"github.com/ajmarsh/context-collapse-server/internal/api/response"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/services/session"
)

// SessionHandler handles anti-cheat session issuance and check-in
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// IssueToken handles GET /context-collapse-token
func (h *SessionHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessionService.Issue(r.Context())
	if err != nil {
		WriteError(w, NewInvalidRequestError("could not issue token"))
		return
	}

	response.JSON(w, http.StatusOK, response.Token{Token: string(s.Token)})
}

// CheckIn handles POST /context-collapse-checkin
func (h *SessionHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req request.CheckInRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Token == "" {
		WriteError(w, model.ErrMissingField)
		return
	}

	if err := h.sessionService.CheckIn(r.Context(), model.SessionToken(req.Token)); err != nil {
		WriteError(w, err)
		return
	}

	response.Empty(w, http.StatusOK)
}
