package middleware

import (
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/handlers"
)

// SessionMiddleware loads the mock signed-in user from its cookie. Requests
// without a user are never rejected here.
type SessionMiddleware struct{}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := handlers.UserFromCookie(r)
		if user == nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(handlers.SetUserInContext(r.Context(), user)))
	})
}
