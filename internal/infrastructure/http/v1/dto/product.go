package dto

import (
	"github.com/shopspring/decimal"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	ImageURL      *string         `json:"imageUrl"`
	DueDate       string          `json:"dueDate" binding:"required"`
	CategoryID    string          `json:"categoryId" binding:"required"`
	BrandID       *string         `json:"brandId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	dueDate, err := ParseDate("dueDate", r.DueDate)
	if err != nil {
		return nil, err
	}

	item := product.NewProduct(r.ID, r.Name, r.Price, r.StockQuantity, dueDate, r.CategoryID)
	item.ImageURL = r.ImageURL
	item.BrandID = r.BrandID
	return item, nil
}

// EditProductRequest is the request body for replacing a product.
// Every field is supplied; the stored record takes exactly these values.
type EditProductRequest struct {
	ID            string          `json:"id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	ImageURL      *string         `json:"imageUrl"`
	DueDate       string          `json:"dueDate" binding:"required"`
	CategoryID    string          `json:"categoryId" binding:"required"`
	BrandID       *string         `json:"brandId"`
}

// ToEntity converts DTO to domain entity.
func (r *EditProductRequest) ToEntity() (*product.Product, error) {
	if r.ID == "" {
		return nil, apperror.NewInvalidInput("id is required", "id")
	}

	dueDate, err := ParseDate("dueDate", r.DueDate)
	if err != nil {
		return nil, err
	}

	item := product.NewProduct(r.ID, r.Name, r.Price, r.StockQuantity, dueDate, r.CategoryID)
	item.ImageURL = r.ImageURL
	item.BrandID = r.BrandID
	return item, nil
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	ImageURL      *string         `json:"imageUrl,omitempty"`
	DueDate       string          `json:"dueDate"`
	CategoryID    string          `json:"categoryId"`
	BrandID       *string         `json:"brandId,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(item *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		ImageURL:      item.ImageURL,
		DueDate:       item.DueDate.Format("2006-01-02"),
		CategoryID:    item.CategoryID,
		BrandID:       item.BrandID,
	}
}
