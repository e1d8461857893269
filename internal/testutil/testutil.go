// Package testutil provides shared assertions, request builders and catalog
// fixtures for storefront tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/bloomnext/internal/models"
)

// AssertEqual compares two values and fails the test if they're not equal.
func AssertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertContains fails the test if s does not contain substr.
func AssertContains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: expected %q to contain %q", msg, s, substr)
	}
}

// AssertStatusCode checks if the response has the expected status code.
func AssertStatusCode(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// AssertJSONContains checks if the JSON response contains expected key-value pairs.
func AssertJSONContains(t *testing.T, body []byte, key string, expected interface{}) {
	t.Helper()
	result := ParseJSONResponse(t, body)
	if result[key] != expected {
		t.Errorf("expected %s to be %v, got %v", key, expected, result[key])
	}
}

// AssertFieldError checks that a form error response reports message for field.
// Form errors are encoded as {"error": {"field": ["message", ...]}}.
func AssertFieldError(t *testing.T, body []byte, field, message string) {
	t.Helper()
	var result struct {
		Error map[string][]string `json:"error"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to parse field errors from %s: %v", body, err)
	}
	for _, got := range result.Error[field] {
		if got == message {
			return
		}
	}
	t.Errorf("expected field %q to report %q, got %v", field, message, result.Error[field])
}

// NewTestRequest creates a new HTTP request for testing.
func NewTestRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewTestRequestWithJSON creates a new HTTP request with JSON body.
func NewTestRequestWithJSON(t *testing.T, method, path string, data interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return NewTestRequest(method, path, strings.NewReader(string(body)))
}

// ParseJSONResponse parses a JSON response body into a map.
func ParseJSONResponse(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v", err)
	}
	return result
}

// ResponseCookie returns the cookie named name set on the recorded response, or nil.
func ResponseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RandomEmail generates a random email for testing.
func RandomEmail() string {
	return uuid.New().String()[:8] + "@test.com"
}

// Products returns a small catalog covering both categories, several
// occasions and colors, and two seasonal items.
func Products() []models.Product {
	return []models.Product{
		{ID: "rose", Name: "Red Roses", Price: 10.10, Category: models.CategoryFlowers, Occasion: models.OccasionAnniversary, Color: models.ColorRed},
		{ID: "tulip", Name: "Pink Tulips", Price: 20.20, Category: models.CategoryFlowers, Occasion: models.OccasionBirthday, Color: models.ColorPink},
		{ID: "fern", Name: "Fern", Price: 5.55, Category: models.CategoryPlants, Occasion: models.OccasionBirthday, Color: models.ColorGreen},
		{ID: "wreath", Name: "Winter Wreath", Price: 30.00, Category: models.CategoryFlowers, Occasion: models.OccasionSeasonal, Color: models.ColorRed, IsSeasonal: true},
		{ID: "cactus", Name: "Seasonal Cactus", Price: 7.25, Category: models.CategoryPlants, Occasion: models.OccasionSeasonal, Color: models.ColorGreen, IsSeasonal: true},
	}
}
