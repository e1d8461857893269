package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

// CartHandler serves the cookie-backed shopping cart. Every mutating request
// reads the cart cookie, applies the change and writes the cookie back.
type CartHandler struct {
	carts  services.CartServiceInterface
	secure bool
}

func NewCartHandler(carts services.CartServiceInterface, secure bool) *CartHandler {
	return &CartHandler{carts: carts, secure: secure}
}

type CartResponse struct {
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func newCartResponse(cart *models.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResponse{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.load(r)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	cart := h.load(r)
	if err := h.carts.AddItem(cart, req.ProductID, req.Quantity); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.respond(w, r, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cart := h.load(r)
	if err := h.carts.UpdateItem(cart, r.PathValue("id"), req.Quantity); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.respond(w, r, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart := h.load(r)
	if err := h.carts.RemoveItem(cart, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.respond(w, r, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, CartCookieName, h.secure)
	writeJSON(w, http.StatusOK, newCartResponse(&models.Cart{}))
}

func (h *CartHandler) load(r *http.Request) *models.Cart {
	return h.carts.Decode(cartCookieValue(r))
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, cart *models.Cart) {
	if cart.IsEmpty() {
		clearCookie(w, CartCookieName, h.secure)
		writeJSON(w, http.StatusOK, newCartResponse(cart))
		return
	}
	value, err := h.carts.Encode(cart)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	setCookie(w, CartCookieName, value, h.secure)
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}
