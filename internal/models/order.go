package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutParams is the shipping and (mock) payment data submitted at checkout.
type CheckoutParams struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Address string `json:"address" validate:"min=5"`
	Card    string `json:"card" validate:"len=16"`
	Expiry  string `json:"expiry" validate:"expiry"`
	CVC     string `json:"cvc" validate:"len=3"`
}

// Order is the receipt returned for a mock checkout. It is never stored.
type Order struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	PlacedAt  time.Time  `json:"placed_at"`
}

// ContactParams is a contact form submission.
type ContactParams struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message" validate:"min=10"`
}
