package product

import (
	"context"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/tx"
	"stockpilot/internal/domain"
	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/domain/catalogs/category"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations;
// referential checks against categories and brands run as hooks before
// any repository mutation.
type Service struct {
	*domain.CatalogService[*Product]
	repo       Repository
	categories category.Repository
	brands     brand.Repository
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	categories category.Repository,
	brands brand.Repository,
	txManager tx.Manager,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		categories:     categories,
		brands:         brands,
	}

	base.Hooks().OnBeforeCreate(svc.checkReferences)
	base.Hooks().OnBeforeUpdate(svc.checkReferences)

	return svc
}

// Edit fully replaces an existing product identified by its id.
// Check order: field invariants, target existence, referential integrity.
func (s *Service) Edit(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, p.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("product", p.ID)
	}

	return s.Replace(ctx, p)
}

// checkReferences verifies that categoryId (and brandId, when present)
// point at existing reference rows.
func (s *Service) checkReferences(ctx context.Context, p *Product) error {
	exists, err := s.categories.Exists(ctx, p.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewInvalidReference("category", "categoryId", p.CategoryID)
	}

	if p.HasBrand() {
		exists, err := s.brands.Exists(ctx, *p.BrandID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NewInvalidReference("brand", "brandId", *p.BrandID)
		}
	}

	return nil
}
