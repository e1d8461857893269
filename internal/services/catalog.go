package services

import (
	"errors"

	"github.com/HammerMeetNail/bloomnext/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService serves the static product catalog. It never mutates its
// product list, so it is safe for concurrent use.
type CatalogService struct {
	products []models.Product
	byID     map[string]int
}

// NewCatalogService builds a catalog from products. A nil slice selects the
// built-in catalog.
func NewCatalogService(products []models.Product) *CatalogService {
	if products == nil {
		products = defaultProducts
	}
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = i
		}
	}
	return &CatalogService{products: products, byID: byID}
}

// List returns the products matching every dimension of filter, in catalog order.
func (s *CatalogService) List(filter models.ProductFilter) []models.Product {
	result := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

func (s *CatalogService) Get(id string) (*models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

func (s *CatalogService) Seasonal() []models.Product {
	var result []models.Product
	for _, p := range s.products {
		if p.IsSeasonal {
			result = append(result, p)
		}
	}
	return result
}

// Occasions returns "All" followed by each distinct occasion in order of first appearance.
func (s *CatalogService) Occasions() []string {
	return s.distinct(func(p models.Product) string { return string(p.Occasion) })
}

// Colors returns "All" followed by each distinct color in order of first appearance.
func (s *CatalogService) Colors() []string {
	return s.distinct(func(p models.Product) string { return string(p.Color) })
}

func (s *CatalogService) distinct(field func(models.Product) string) []string {
	seen := make(map[string]bool)
	values := []string{models.FilterAll}
	for _, p := range s.products {
		v := field(p)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Categories returns the fixed category filter options.
func (s *CatalogService) Categories() []string {
	return []string{models.FilterAll, string(models.CategoryFlowers), string(models.CategoryPlants)}
}
