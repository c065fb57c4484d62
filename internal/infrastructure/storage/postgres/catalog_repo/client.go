package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"stockpilot/internal/core/id"
	"stockpilot/internal/domain/catalogs/client"
	"stockpilot/internal/infrastructure/storage/postgres"
)

// ClientRepo implements client.Repository for PostgreSQL.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// Compile-time interface check.
var _ client.Repository = (*ClientRepo)(nil)

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"clients",
			postgres.ExtractDBColumns[client.Client](),
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByName retrieves a client by name, compared case-insensitively.
func (r *ClientRepo) FindByName(ctx context.Context, name string) (*client.Client, error) {
	q := r.baseSelect().
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1)

	return r.FindOne(ctx, q)
}

// FindByPhone retrieves a client by normalized phone.
func (r *ClientRepo) FindByPhone(ctx context.Context, phoneNormalized string) (*client.Client, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"phone_normalized": phoneNormalized}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// DeleteMany removes all clients whose id is in ids. Ids that match no
// row are skipped silently; the returned count reflects actual deletes.
func (r *ClientRepo) DeleteMany(ctx context.Context, ids []id.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := r.Builder().
		Delete("clients").
		Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.TranslateError(err, "clients")
	}

	return result.RowsAffected(), nil
}
