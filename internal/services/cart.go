package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HammerMeetNail/bloomnext/internal/models"
)

var (
	ErrCartItemNotFound = errors.New("item not in cart")
	ErrEmptyCart        = errors.New("your cart is empty")
	ErrQuantityTooLarge = errors.New("quantity exceeds the per-item limit")
)

// storedCartItem is the browser-side form of a cart line. Product details are
// re-resolved from the catalog on every decode.
type storedCartItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartService applies cart operations and converts carts to and from their
// cookie encoding. It holds no cart state of its own.
type CartService struct {
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{catalog: catalog}
}

// Encode serializes the cart as base64url JSON of [{id, quantity}].
func (s *CartService) Encode(cart *models.Cart) (string, error) {
	stored := make([]storedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		stored = append(stored, storedCartItem{ID: item.Product.ID, Quantity: item.Quantity})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encoding cart: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode rebuilds a cart from its cookie value. Unknown products and
// non-positive quantities are dropped; duplicate entries merge and saturate at
// models.MaxItemQuantity. A corrupt value yields an empty cart.
func (s *CartService) Decode(value string) *models.Cart {
	cart := &models.Cart{}
	if value == "" {
		return cart
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return cart
	}
	var stored []storedCartItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return cart
	}
	for _, item := range stored {
		if item.Quantity <= 0 {
			continue
		}
		product, err := s.catalog.Get(item.ID)
		if err != nil {
			continue
		}
		cart.Add(*product, item.Quantity)
	}
	return cart
}

// AddItem adds quantity units of productID. A quantity of zero or less adds one.
// The running quantity saturates at models.MaxItemQuantity.
func (s *CartService) AddItem(cart *models.Cart, productID string, quantity int) error {
	if quantity > models.MaxItemQuantity {
		return ErrQuantityTooLarge
	}
	product, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}
	cart.Add(*product, quantity)
	return nil
}

// UpdateItem sets the quantity of productID; zero or less removes it.
func (s *CartService) UpdateItem(cart *models.Cart, productID string, quantity int) error {
	if quantity > models.MaxItemQuantity {
		return ErrQuantityTooLarge
	}
	if !cart.UpdateQuantity(productID, quantity) {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) RemoveItem(cart *models.Cart, productID string) error {
	if !cart.Remove(productID) {
		return ErrCartItemNotFound
	}
	return nil
}
