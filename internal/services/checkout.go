package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
)

// CheckoutService places mock orders. No payment is taken and nothing is stored.
type CheckoutService struct {
	forms    *FormValidator
	notifier Notifier
	now      func() time.Time
}

func NewCheckoutService(forms *FormValidator, notifier Notifier) *CheckoutService {
	return &CheckoutService{forms: forms, notifier: notifier, now: time.Now}
}

// PlaceOrder validates the checkout form against a non-empty cart and returns
// the order receipt. The caller is responsible for clearing the cart.
func (s *CheckoutService) PlaceOrder(ctx context.Context, params models.CheckoutParams, cart *models.Cart) (*models.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if err := s.forms.Validate(params); err != nil {
		return nil, err
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &models.Order{
		ID:        uuid.New(),
		Email:     params.Email,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
		PlacedAt:  s.now().UTC(),
	}

	log := logging.FromContext(ctx)
	log.Info("Order placed", map[string]interface{}{
		"order_id":   order.ID.String(),
		"email":      order.Email,
		"item_count": order.ItemCount,
		"total":      order.Total,
	})

	// A failed confirmation does not undo the order.
	if err := s.notifier.Send(ctx, &Notification{
		To:      params.Email,
		Subject: "Your BloomNext order is confirmed",
		Text:    renderOrderConfirmation(order, params.Name),
	}); err != nil {
		log.Warn("Failed to send order confirmation", map[string]interface{}{
			"order_id": order.ID.String(),
			"error":    err.Error(),
		})
	}

	return order, nil
}
