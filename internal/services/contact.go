package services

import (
	"context"
	"fmt"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
)

type ContactService struct {
	forms    *FormValidator
	notifier Notifier
}

func NewContactService(forms *FormValidator, notifier Notifier) *ContactService {
	return &ContactService{forms: forms, notifier: notifier}
}

// Submit validates a contact message, logs it and acknowledges the sender.
// Nothing is stored.
func (s *ContactService) Submit(ctx context.Context, params models.ContactParams) error {
	if err := s.forms.Validate(params); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("Contact form submitted", map[string]interface{}{
		"name":           params.Name,
		"email":          params.Email,
		"message_length": len(params.Message),
	})

	if err := s.notifier.Send(ctx, &Notification{
		To:      params.Email,
		Subject: "We received your message",
		Text:    renderContactReceipt(params),
	}); err != nil {
		return fmt.Errorf("sending contact receipt: %w", err)
	}
	return nil
}
