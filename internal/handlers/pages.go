package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

// AssetResolver returns versioned URLs for the shared static assets.
type AssetResolver interface {
	StylesURL() string
	ScriptURL() string
}

type PageHandler struct {
	templates *template.Template
	catalog   services.CatalogServiceInterface
	carts     services.CartServiceInterface
	assets    AssetResolver
}

var templateFuncs = template.FuncMap{
	"price": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
}

func NewPageHandler(templatesDir string, catalog services.CatalogServiceInterface, carts services.CartServiceInterface, assets AssetResolver) (*PageHandler, error) {
	templates, err := template.New("").Funcs(templateFuncs).ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates: templates,
		catalog:   catalog,
		carts:     carts,
		assets:    assets,
	}, nil
}

type PageData struct {
	Title     string
	Active    string
	User      *models.User
	CartCount int
	StylesURL string
	ScriptURL string

	Products   []models.Product
	Seasonal   []models.Product
	Filter     models.ProductFilter
	Categories []string
	Occasions  []string
	Colors     []string

	Cart *CartResponse
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "BloomNext - Fresh Flowers & Plants", "home")
	data.Filter = filterFromQuery(r)
	data.Products = h.catalog.List(data.Filter)
	data.Seasonal = h.catalog.Seasonal()
	data.Categories = h.catalog.Categories()
	data.Occasions = h.catalog.Occasions()
	data.Colors = h.catalog.Colors()
	h.render(w, r, "home.html", http.StatusOK, data)
}

func (h *PageHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "AI Flower Recommendations", "recommendations")
	data.Occasions = withoutAll(h.catalog.Occasions())
	h.render(w, r, "recommendations.html", http.StatusOK, data)
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact.html", http.StatusOK, h.pageData(r, "Contact Us", "contact"))
}

func (h *PageHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Checkout", "checkout")
	cart := newCartResponse(h.carts.Decode(cartCookieValue(r)))
	data.Cart = &cart
	h.render(w, r, "checkout.html", http.StatusOK, data)
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", http.StatusOK, h.pageData(r, "Log In", "login"))
}

func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", http.StatusOK, h.pageData(r, "Create Account", "register"))
}

// NotFound renders the 404 error page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "404.html", http.StatusNotFound, h.pageData(r, "Page Not Found", ""))
}

// InternalError renders the 500 error page.
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "500.html", http.StatusInternalServerError, h.pageData(r, "Something Went Wrong", ""))
}

func (h *PageHandler) pageData(r *http.Request, title, active string) PageData {
	data := PageData{
		Title:     title,
		Active:    active,
		User:      GetUserFromContext(r.Context()),
		CartCount: h.carts.Decode(cartCookieValue(r)).ItemCount(),
		StylesURL: "/static/css/styles.css",
		ScriptURL: "/static/js/app.js",
	}
	if h.assets != nil {
		data.StylesURL = h.assets.StylesURL()
		data.ScriptURL = h.assets.ScriptURL()
	}
	return data
}

// render executes into a buffer so a template failure can still produce a
// clean error response.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, status int, data PageData) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.FromContext(r.Context()).Error("Template render failed", map[string]interface{}{
			"template": name,
			"error":    err.Error(),
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func withoutAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != models.FilterAll {
			out = append(out, v)
		}
	}
	return out
}
