package dto

import (
	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/domain/catalogs/category"
)

// CatalogItemResponse is the response body for reference data entries
// (categories and brands).
type CatalogItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromCategory creates response DTO from a category.
func FromCategory(item *category.Category) *CatalogItemResponse {
	return &CatalogItemResponse{ID: item.ID, Name: item.Name}
}

// FromBrand creates response DTO from a brand.
func FromBrand(item *brand.Brand) *CatalogItemResponse {
	return &CatalogItemResponse{ID: item.ID, Name: item.Name}
}
