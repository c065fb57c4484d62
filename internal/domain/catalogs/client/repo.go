package client

import (
	"context"

	"stockpilot/internal/core/id"
	"stockpilot/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByName retrieves a client by name, compared case-insensitively.
	FindByName(ctx context.Context, name string) (*Client, error)

	// FindByPhone retrieves a client by normalized phone.
	FindByPhone(ctx context.Context, phoneNormalized string) (*Client, error)

	// DeleteMany removes all clients whose id is in ids and returns the
	// number of rows removed. Unknown ids are ignored.
	DeleteMany(ctx context.Context, ids []id.ID) (int64, error)
}
