package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lamsa-decor/backend/internal/i18n"
	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/service"
	"github.com/lamsa-decor/backend/pkg/auth"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Message     string `json:"message"`
}

// Submit handles POST /api/contact.
// full_name, phone_number and message are required; email is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "")
		return
	}

	if req.FullName == "" {
		writeError(w, http.StatusBadRequest, "full_name_required", msgs.Errors.RequiredField)
		return
	}
	if req.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "phone_number_required", msgs.Errors.RequiredField)
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required", msgs.Errors.RequiredField)
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long", "")
		return
	}

	msg := &model.ContactMessage{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Message:     req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		writeError(w, http.StatusInternalServerError, "submit_failed", msgs.Form.SendFailed)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"ok": "true", "message": msgs.Form.Sent})
}

// adminListResponse is the JSON response for GET /api/admin/messages.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// AdminList handles GET /api/admin/messages. All messages, newest first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed", "")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, adminListResponse{Messages: messages})
}
