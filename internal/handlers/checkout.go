package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
	carts           services.CartServiceInterface
	secure          bool
}

func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface, carts services.CartServiceInterface, secure bool) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		carts:           carts,
		secure:          secure,
	}
}

type CheckoutResponse struct {
	Order   *models.Order `json:"order"`
	Message string        `json:"message"`
}

// PlaceOrder checks out the cart held in the cart cookie. The cookie is
// cleared only once the order has been placed.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutParams
	if !decodeJSON(w, r, &req) {
		return
	}

	cart := h.carts.Decode(cartCookieValue(r))
	order, err := h.checkoutService.PlaceOrder(r.Context(), req, cart)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	clearCookie(w, CartCookieName, h.secure)
	writeJSON(w, http.StatusCreated, CheckoutResponse{
		Order:   order,
		Message: "Order placed! A confirmation is on its way to " + order.Email + ".",
	})
}
