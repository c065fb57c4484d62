package brand

import (
	"context"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/id"
	"stockpilot/internal/domain"
)

// Service provides read access to the Brand catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Brand service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a brand by id.
func (s *Service) GetByID(ctx context.Context, brandID id.ID) (*Brand, error) {
	b, err := s.repo.GetByID(ctx, brandID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("brand", brandID)
		}
		return nil, err
	}
	return b, nil
}

// List retrieves brands matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Brand], error) {
	return s.repo.List(ctx, filter)
}

// Exists reports whether a brand with the given id exists.
func (s *Service) Exists(ctx context.Context, brandID id.ID) (bool, error) {
	return s.repo.Exists(ctx, brandID)
}
