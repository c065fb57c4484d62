package catalog_repo

import (
	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/infrastructure/storage/postgres"
)

// BrandRepo implements brand.Repository for PostgreSQL.
type BrandRepo struct {
	*BaseCatalogRepo[*brand.Brand]
}

var _ brand.Repository = (*BrandRepo)(nil)

// NewBrandRepo creates a new brand repository.
func NewBrandRepo(txm *postgres.TxManager) *BrandRepo {
	return &BrandRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"brands",
			postgres.ExtractDBColumns[brand.Brand](),
			func() *brand.Brand { return &brand.Brand{} },
		),
	}
}
