package client

import (
	"context"
	"fmt"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/id"
	"stockpilot/internal/core/tx"
	"stockpilot/internal/domain"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for common CRUD operations;
// uniqueness checks run as hooks before any repository mutation.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txManager,
	}

	base.Hooks().OnBeforeCreate(svc.checkUniqueness)
	base.Hooks().OnBeforeUpdate(svc.checkUniqueness)

	return svc
}

// Edit fully replaces an existing client identified by userId.
// An absent phone retains the stored one; the uniqueness scans exclude
// the target record so a client can be re-saved with its own values.
func (s *Service) Edit(ctx context.Context, c *Client) error {
	existing, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("client", c.ID)
		}
		return err
	}

	if c.Phone == "" {
		c.Phone = existing.Phone
	}
	c.Normalize()

	return s.Replace(ctx, c)
}

// DeleteMany removes all clients in ids. Ids with no matching record are
// silently ignored; the returned count reflects rows actually removed.
func (s *Service) DeleteMany(ctx context.Context, ids []id.ID) (int64, error) {
	cleaned := make([]id.ID, 0, len(ids))
	for _, userID := range ids {
		if !id.IsZero(userID) {
			cleaned = append(cleaned, userID)
		}
	}
	if len(cleaned) == 0 {
		return 0, apperror.NewInvalidInput("at least one userId is required", "userIds")
	}

	var count int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		count, err = s.repo.DeleteMany(ctx, cleaned)
		if err != nil {
			return fmt.Errorf("delete clients: %w", err)
		}
		return nil
	})
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			return 0, appErr
		}
		return 0, err
	}

	return count, nil
}

// checkUniqueness enforces the case-insensitive name constraint and the
// normalized phone constraint, excluding the record under edit so it
// never collides with itself.
func (s *Service) checkUniqueness(ctx context.Context, c *Client) error {
	c.Normalize()

	taken, err := s.nameTaken(ctx, c.Name, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return apperror.NewDuplicateName("client", c.Name)
	}

	taken, err = s.phoneTaken(ctx, c.PhoneNormalized, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return apperror.NewDuplicatePhone("client", c.Phone)
	}

	return nil
}

// nameTaken checks if the name is already used by another client.
func (s *Service) nameTaken(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	// If found and it's a different record
	return existing.ID != excludeID, nil
}

// phoneTaken checks if the normalized phone is already used by another client.
func (s *Service) phoneTaken(ctx context.Context, phoneNormalized string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPhone(ctx, phoneNormalized)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
