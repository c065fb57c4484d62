package category

import (
	"context"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/id"
	"stockpilot/internal/domain"
)

// Service provides read access to the Category catalog.
// Categories are created and managed elsewhere, so no write operations
// are exposed.
type Service struct {
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a category by id.
func (s *Service) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("category", categoryID)
		}
		return nil, err
	}
	return cat, nil
}

// List retrieves categories matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Category], error) {
	return s.repo.List(ctx, filter)
}

// Exists reports whether a category with the given id exists.
func (s *Service) Exists(ctx context.Context, categoryID id.ID) (bool, error) {
	return s.repo.Exists(ctx, categoryID)
}
