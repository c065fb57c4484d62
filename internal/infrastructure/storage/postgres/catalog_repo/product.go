package catalog_repo

import (
	"stockpilot/internal/domain/catalogs/product"
	"stockpilot/internal/infrastructure/storage/postgres"
)

// ProductRepo implements product.Repository for PostgreSQL.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// Compile-time interface check.
var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"products",
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}
