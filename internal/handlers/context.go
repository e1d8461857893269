package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/HammerMeetNail/bloomnext/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

const (
	UserCookieName = "bloomnext_user"
	CartCookieName = "bloomnext_cart"

	cookieMaxAge = 30 * 24 * time.Hour
)

func SetUserInContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// SetUserCookie remembers the signed-in username. The value is only encoded,
// not signed: the account is a mock and grants nothing.
func SetUserCookie(w http.ResponseWriter, username string, secure bool) {
	setCookie(w, UserCookieName, base64.RawURLEncoding.EncodeToString([]byte(username)), secure)
}

func ClearUserCookie(w http.ResponseWriter, secure bool) {
	clearCookie(w, UserCookieName, secure)
}

// UserFromCookie returns the user named by the cookie, or nil when the cookie
// is absent or unreadable.
func UserFromCookie(r *http.Request) *models.User {
	cookie, err := r.Cookie(UserCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	username := strings.TrimSpace(string(raw))
	if username == "" {
		return nil
	}
	return &models.User{Username: username}
}

func cartCookieValue(r *http.Request) string {
	cookie, err := r.Cookie(CartCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setCookie(w http.ResponseWriter, name, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
