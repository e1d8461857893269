package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
)

// Notification is an outbound message to a shopper or the store.
type Notification struct {
	To      string
	Subject string
	Text    string
}

// Notifier delivers notifications.
type Notifier interface {
	Send(ctx context.Context, n *Notification) error
}

// ConsoleNotifier logs notifications instead of delivering them.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (p *ConsoleNotifier) Send(ctx context.Context, n *Notification) error {
	logging.FromContext(ctx).Info("Mock notification sent", map[string]interface{}{
		"to":          n.To,
		"subject":     n.Subject,
		"text_length": len(n.Text),
	})
	return nil
}

func renderOrderConfirmation(order *models.Order, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThanks for shopping with BloomNext. Your order %s is confirmed.\n\n", name, order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s  $%.2f\n", item.Quantity, item.Product.Name, item.Subtotal())
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", order.Total)
	return b.String()
}

func renderContactReceipt(params models.ContactParams) string {
	return fmt.Sprintf("Hi %s,\n\nWe received your message and will get back to you soon.\n\nBloomNext", params.Name)
}
