package middleware

import (
	"net/http"
	"path"
	"strings"
)

// CacheControl adds cache headers chosen by request path.
type CacheControl struct {
	pages map[string]bool
}

// NewCacheControl creates a cache middleware; pagePaths are HTML pages that
// may be cached but must be revalidated.
func NewCacheControl(pagePaths ...string) *CacheControl {
	pages := map[string]bool{"/": true}
	for _, p := range pagePaths {
		pages[p] = true
	}
	return &CacheControl{pages: pages}
}

// Apply adds cache headers based on the request path.
func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path

		switch {
		case strings.HasPrefix(p, "/static/"):
			w.Header().Set("Cache-Control", staticCacheControl(p))

		case strings.HasPrefix(p, "/api/"):
			// Cart and user state are carried in cookies; never cache.
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")

		case c.pages[p]:
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}

func staticCacheControl(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".woff", ".woff2", ".ttf", ".otf",
		".jpg", ".jpeg", ".png", ".gif", ".webp", ".ico", ".svg":
		return "public, max-age=31536000, immutable"
	case ".css", ".js":
		return "public, max-age=86400, must-revalidate"
	default:
		return "public, max-age=3600"
	}
}
