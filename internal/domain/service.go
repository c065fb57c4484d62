// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/entity"
	"stockpilot/internal/core/id"
	"stockpilot/internal/core/tx"
)

// CatalogService provides business logic for catalog entities.
// The repository and transaction manager are injected explicitly; the
// service keeps no state between calls beyond those collaborators.
type CatalogService[T entity.Validatable] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T entity.Validatable] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T entity.Validatable](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the name used in error messages.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInvalidInput(err.Error(), "")
}

func (s *CatalogService[T]) normalizeGetErr(err error, entityID any) error {
	if err == nil {
		return nil
	}
	// Preserve existing AppError, but map not-found to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, entityID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", entityID)
}

// Create validates and persists a new catalog entity.
// No mutation happens when validation or any before-create hook fails.
func (s *CatalogService[T]) Create(ctx context.Context, item T) error {
	// 1. Validate entity invariants
	if err := item.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	// 2. Run before-create hooks (uniqueness, referential checks)
	if err := s.hooks.RunBeforeCreate(ctx, item); err != nil {
		return err
	}

	// 3. Create in transaction
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, item); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			return appErr
		}
		return err
	}

	// 4. Run after-create hooks (outside transaction, best effort)
	_ = s.hooks.RunAfterCreate(ctx, item)

	return nil
}

// GetByID retrieves entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	item, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return item, s.normalizeGetErr(err, entityID)
	}
	return item, nil
}

// Replace validates and fully replaces an existing entity by id.
func (s *CatalogService[T]) Replace(ctx context.Context, item T) error {
	// 1. Validate entity invariants
	if err := item.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	// 2. Run before-update hooks
	if err := s.hooks.RunBeforeUpdate(ctx, item); err != nil {
		return err
	}

	// 3. Replace in transaction
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Replace(ctx, item); err != nil {
			return fmt.Errorf("replace %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Code == apperror.CodeNotFound {
				return apperror.NewNotFound(s.entityName, entityIDOf(item))
			}
			return appErr
		}
		return err
	}

	// 4. Run after-update hooks
	_ = s.hooks.RunAfterUpdate(ctx, item)

	return nil
}

// List retrieves entities with filtering.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	return s.repo.List(ctx, filter)
}

// Exists checks if entity exists.
func (s *CatalogService[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return s.repo.Exists(ctx, entityID)
}

func entityIDOf(item any) any {
	if ident, ok := item.(entity.Identifiable); ok {
		return ident.EntityID()
	}
	return nil
}
