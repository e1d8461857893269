package middleware

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfTokenLen   = 32
	csrfMaxAge     = 12 * 60 * 60 // 12 hours
)

// CSRFMiddleware implements double-submit cookie protection: state-changing
// requests must echo the csrf_token cookie in the X-CSRF-Token header.
type CSRFMiddleware struct {
	secure bool
}

func NewCSRFMiddleware(secure bool) *CSRFMiddleware {
	return &CSRFMiddleware{secure: secure}
}

func (m *CSRFMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if token, ok := m.ensureToken(w, r); ok {
				r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey{}, token))
			}
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(csrfCookieName)
		if err != nil || cookie.Value == "" {
			rejectCSRF(w, "CSRF token missing")
			return
		}

		headerToken := r.Header.Get(csrfHeaderName)
		if headerToken == "" {
			rejectCSRF(w, "CSRF token header missing")
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(headerToken)) != 1 {
			rejectCSRF(w, "CSRF token mismatch")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetToken returns the caller's CSRF token as {"token": "..."}, issuing one if needed.
func (m *CSRFMiddleware) GetToken(w http.ResponseWriter, r *http.Request) {
	token, ok := m.ensureToken(w, r)
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to generate CSRF token"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

type csrfTokenKey struct{}

// ensureToken exposes the existing token, or issues a new one, in the response header.
func (m *CSRFMiddleware) ensureToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	if token, ok := r.Context().Value(csrfTokenKey{}).(string); ok && token != "" {
		return token, true
	}
	if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != "" {
		w.Header().Set(csrfHeaderName, cookie.Value)
		return cookie.Value, true
	}

	token, err := generateCSRFToken()
	if err != nil {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfMaxAge,
		HttpOnly: false, // read by the page script
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	w.Header().Set(csrfHeaderName, token)
	return token, true
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func rejectCSRF(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
