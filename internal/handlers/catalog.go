package handlers

import (
	"errors"
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogServiceInterface
}

func NewCatalogHandler(catalog services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type ProductsResponse struct {
	Products []models.Product      `json:"products"`
	Filter   *models.ProductFilter `json:"filter,omitempty"`
}

type FiltersResponse struct {
	Categories []string `json:"categories"`
	Occasions  []string `json:"occasions"`
	Colors     []string `json:"colors"`
}

// filterFromQuery reads category, occasion and color; missing values mean All.
func filterFromQuery(r *http.Request) models.ProductFilter {
	q := r.URL.Query()
	filter := models.ProductFilter{
		Category: q.Get("category"),
		Occasion: q.Get("occasion"),
		Color:    q.Get("color"),
	}
	if filter.Category == "" {
		filter.Category = models.FilterAll
	}
	if filter.Occasion == "" {
		filter.Occasion = models.FilterAll
	}
	if filter.Color == "" {
		filter.Color = models.FilterAll
	}
	return filter
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	writeJSON(w, http.StatusOK, ProductsResponse{
		Products: nonNilProducts(h.catalog.List(filter)),
		Filter:   &filter,
	})
}

func (h *CatalogHandler) Filters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FiltersResponse{
		Categories: h.catalog.Categories(),
		Occasions:  h.catalog.Occasions(),
		Colors:     h.catalog.Colors(),
	})
}

func (h *CatalogHandler) Seasonal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProductsResponse{
		Products: nonNilProducts(h.catalog.Seasonal()),
	})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.PathValue("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

func nonNilProducts(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
