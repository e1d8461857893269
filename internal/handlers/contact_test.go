package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
	"github.com/HammerMeetNail/bloomnext/internal/testutil"
)

func TestContactHandler_Submit(t *testing.T) {
	var got models.ContactParams
	handler := NewContactHandler(&mockContactService{
		SubmitFunc: func(ctx context.Context, params models.ContactParams) error {
			got = params
			return nil
		},
	})

	email := testutil.RandomEmail()
	req := testutil.NewTestRequestWithJSON(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Grace",
		"email":   email,
		"message": "Do you deliver on Sundays?",
	})
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusOK)
	testutil.AssertEqual(t, email, got.Email, "email passed to service")
	testutil.AssertJSONContains(t, rr.Body.Bytes(), "message", "Thanks for reaching out! We'll get back to you soon.")
}

func TestContactHandler_FieldErrors(t *testing.T) {
	handler := NewContactHandler(services.NewContactService(services.NewFormValidator(), discardNotifier{}))

	req := testutil.NewTestRequestWithJSON(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "G",
		"email":   "nope",
		"message": "short",
	})
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	testutil.AssertStatusCode(t, rr, http.StatusBadRequest)
	testutil.AssertFieldError(t, rr.Body.Bytes(), "name", "Name is required")
	testutil.AssertFieldError(t, rr.Body.Bytes(), "email", "Invalid email address")
	testutil.AssertFieldError(t, rr.Body.Bytes(), "message", "Message must be at least 10 characters")
}

func TestContactHandler_Errors(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewContactHandler(&mockContactService{}).Submit(rr, httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{")))

		assertErrorResponse(t, rr, http.StatusBadRequest, "Invalid request body")
	})

	t.Run("service failure", func(t *testing.T) {
		handler := NewContactHandler(&mockContactService{
			SubmitFunc: func(ctx context.Context, params models.ContactParams) error {
				return errors.New("notifier down")
			},
		})
		rr := httptest.NewRecorder()
		handler.Submit(rr, testutil.NewTestRequestWithJSON(t, http.MethodPost, "/api/contact", map[string]string{}))

		assertErrorResponse(t, rr, http.StatusInternalServerError, "An unexpected error occurred.")
	})
}
