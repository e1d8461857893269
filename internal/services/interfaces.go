package services

import (
	"context"

	"github.com/HammerMeetNail/bloomnext/internal/models"
)

// CatalogServiceInterface defines the contract for catalog lookups used by handlers.
type CatalogServiceInterface interface {
	List(filter models.ProductFilter) []models.Product
	Get(id string) (*models.Product, error)
	Seasonal() []models.Product
	Categories() []string
	Occasions() []string
	Colors() []string
}

// CartServiceInterface defines the contract for cart operations.
type CartServiceInterface interface {
	Encode(cart *models.Cart) (string, error)
	Decode(value string) *models.Cart
	AddItem(cart *models.Cart, productID string, quantity int) error
	UpdateItem(cart *models.Cart, productID string, quantity int) error
	RemoveItem(cart *models.Cart, productID string) error
}

// AuthServiceInterface defines the contract for mock authentication.
type AuthServiceInterface interface {
	Login(ctx context.Context, params models.LoginParams) (*models.User, error)
	Register(ctx context.Context, params models.RegisterParams) (*models.User, error)
}

// ContactServiceInterface defines the contract for contact form submissions.
type ContactServiceInterface interface {
	Submit(ctx context.Context, params models.ContactParams) error
}

// CheckoutServiceInterface defines the contract for placing mock orders.
type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context, params models.CheckoutParams, cart *models.Cart) (*models.Order, error)
}

var (
	_ CatalogServiceInterface  = (*CatalogService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ AuthServiceInterface     = (*AuthService)(nil)
	_ ContactServiceInterface  = (*ContactService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
)
