package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

type ContactHandler struct {
	contactService services.ContactServiceInterface
}

func NewContactHandler(contactService services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactParams
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.contactService.Submit(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Thanks for reaching out! We'll get back to you soon.",
	})
}
