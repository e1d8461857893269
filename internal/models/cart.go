package models

import "math"

// MaxItemQuantity caps the units of a single product in one cart.
const MaxItemQuantity = 99

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the item's price times its quantity, rounded to cents.
func (i CartItem) Subtotal() float64 {
	return roundCents(i.Product.Price * float64(i.Quantity))
}

// Cart is an ordered list of items holding at most one entry per product.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add puts qty units of p in the cart. A non-positive qty adds one unit and
// the resulting quantity saturates at MaxItemQuantity.
func (c *Cart) Add(p Product, qty int) {
	if qty <= 0 {
		qty = 1
	}
	qty = min(qty, MaxItemQuantity)
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity = min(c.Items[i].Quantity+qty, MaxItemQuantity)
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: qty})
}

// UpdateQuantity sets the quantity of productID. A quantity of zero or less
// removes the item and larger values are capped at MaxItemQuantity. It
// returns false when the product is not in the cart.
func (c *Cart) UpdateQuantity(productID string, qty int) bool {
	if qty <= 0 {
		return c.Remove(productID)
	}
	qty = min(qty, MaxItemQuantity)
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Remove drops productID from the cart and reports whether it was present.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of all item subtotals, rounded to cents.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return roundCents(total)
}

// ItemCount is the total number of units across all items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
