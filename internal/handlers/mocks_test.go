package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
	"github.com/HammerMeetNail/bloomnext/internal/services/ai"
	"github.com/HammerMeetNail/bloomnext/internal/testutil"
)

type mockAuthService struct {
	LoginFunc    func(ctx context.Context, params models.LoginParams) (*models.User, error)
	RegisterFunc func(ctx context.Context, params models.RegisterParams) (*models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, params models.LoginParams) (*models.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, params)
	}
	return &models.User{Username: params.Username}, nil
}

func (m *mockAuthService) Register(ctx context.Context, params models.RegisterParams) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, params)
	}
	return &models.User{Username: params.Username}, nil
}

type mockContactService struct {
	SubmitFunc func(ctx context.Context, params models.ContactParams) error
}

func (m *mockContactService) Submit(ctx context.Context, params models.ContactParams) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, params)
	}
	return nil
}

type mockCheckoutService struct {
	PlaceOrderFunc func(ctx context.Context, params models.CheckoutParams, cart *models.Cart) (*models.Order, error)
}

func (m *mockCheckoutService) PlaceOrder(ctx context.Context, params models.CheckoutParams, cart *models.Cart) (*models.Order, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, params, cart)
	}
	return nil, errors.New("PlaceOrderFunc not set")
}

type mockRecommender struct {
	RecommendFunc func(ctx context.Context, req ai.RecommendationRequest) (*ai.RecommendationResult, error)
	Calls         int
}

func (m *mockRecommender) Recommend(ctx context.Context, req ai.RecommendationRequest) (*ai.RecommendationResult, error) {
	m.Calls++
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, req)
	}
	return nil, errors.New("RecommendFunc not set")
}

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Health(ctx context.Context) error {
	return m.err
}

var (
	_ services.AuthServiceInterface     = (*mockAuthService)(nil)
	_ services.ContactServiceInterface  = (*mockContactService)(nil)
	_ services.CheckoutServiceInterface = (*mockCheckoutService)(nil)
	_ Recommender                       = (*mockRecommender)(nil)
)

// newTestCatalog returns catalog and cart services over the shared fixture.
func newTestCatalog() (*services.CatalogService, *services.CartService) {
	catalog := services.NewCatalogService(testutil.Products())
	return catalog, services.NewCartService(catalog)
}

// cartCookie encodes a cart of the given product quantities as a request cookie.
func cartCookie(t *testing.T, carts *services.CartService, quantities map[string]int) *http.Cookie {
	t.Helper()
	cart := &models.Cart{}
	for _, id := range []string{"rose", "tulip", "fern", "wreath", "cactus"} {
		if qty, ok := quantities[id]; ok {
			if err := carts.AddItem(cart, id, qty); err != nil {
				t.Fatalf("failed to add %s: %v", id, err)
			}
		}
	}
	value, err := carts.Encode(cart)
	if err != nil {
		t.Fatalf("failed to encode cart: %v", err)
	}
	return &http.Cookie{Name: CartCookieName, Value: value}
}

// cookieFromResponse carries a cookie set on rr over to the next request.
func cookieFromResponse(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	cookie := testutil.ResponseCookie(rr, name)
	if cookie == nil {
		t.Fatalf("expected %s cookie to be set", name)
	}
	return &http.Cookie{Name: cookie.Name, Value: cookie.Value}
}

func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("expected status %d, got %d", status, rr.Code)
	}
	if ct := rr.Result().Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected content type application/json, got %q", ct)
	}

	var response ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Error != message {
		t.Fatalf("expected error %q, got %q", message, response.Error)
	}
}
