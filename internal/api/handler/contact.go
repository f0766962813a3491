package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajmarsh/context-collapse-server/internal/api/request"
	"github.com/ajmarsh/context-collapse-server/internal/api/response"
	"github.com/ajmarsh/context-collapse-server/internal/services/contact"
)

// ContactHandler handles contact-form submissions
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.contactService.Relay(contact.Message{
		Email:   req.Email,
		Name:    req.Name,
		Message: req.Message,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Empty(w, http.StatusOK)
}
