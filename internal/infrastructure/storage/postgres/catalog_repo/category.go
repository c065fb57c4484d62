package catalog_repo

import (
	"stockpilot/internal/domain/catalogs/category"
	"stockpilot/internal/infrastructure/storage/postgres"
)

// CategoryRepo implements category.Repository for PostgreSQL.
// Categories are reference data; writes happen only through the seeder,
// so the base Create/Replace stay unexported from the service layer.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

var _ category.Repository = (*CategoryRepo)(nil)

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"categories",
			postgres.ExtractDBColumns[category.Category](),
			func() *category.Category { return &category.Category{} },
		),
	}
}
