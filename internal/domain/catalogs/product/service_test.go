package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/id"
	"stockpilot/internal/core/types"
	"stockpilot/internal/domain"
	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/domain/catalogs/category"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCatalogRepo is a minimal in-memory CatalogRepository.
type fakeCatalogRepo[T interface {
	Validate(ctx context.Context) error
}] struct {
	items map[id.ID]T
	ids   func(T) id.ID
}

func (r *fakeCatalogRepo[T]) Create(ctx context.Context, item T) error {
	r.items[r.ids(item)] = item
	return nil
}

func (r *fakeCatalogRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	if item, ok := r.items[entityID]; ok {
		return item, nil
	}
	var zero T
	return zero, apperror.NewNotFound("entity", entityID)
}

func (r *fakeCatalogRepo[T]) Replace(ctx context.Context, item T) error {
	entityID := r.ids(item)
	if _, ok := r.items[entityID]; !ok {
		return apperror.NewNotFound("entity", entityID)
	}
	r.items[entityID] = item
	return nil
}

func (r *fakeCatalogRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{Limit: filter.Limit, Offset: filter.Offset}
	for _, item := range r.items {
		result.Items = append(result.Items, item)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (r *fakeCatalogRepo[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	_, ok := r.items[entityID]
	return ok, nil
}

func newTestService() (*Service, *fakeCatalogRepo[*Product]) {
	productRepo := &fakeCatalogRepo[*Product]{
		items: make(map[id.ID]*Product),
		ids:   func(p *Product) id.ID { return p.ID },
	}
	categoryRepo := &fakeCatalogRepo[*category.Category]{
		items: map[id.ID]*category.Category{
			"cat-1": category.NewCategory("cat-1", "Beverages"),
		},
		ids: func(c *category.Category) id.ID { return c.ID },
	}
	brandRepo := &fakeCatalogRepo[*brand.Brand]{
		items: map[id.ID]*brand.Brand{
			"brand-1": brand.NewBrand("brand-1", "Acme"),
		},
		ids: func(b *brand.Brand) id.ID { return b.ID },
	}

	svc := NewService(productRepo, categoryRepo, brandRepo, fakeTxManager{})
	return svc, productRepo
}

func newProduct(productID, name, categoryID string) *Product {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return NewProduct(productID, name, types.MustMoney("2.50"), 5, due, categoryID)
}

func TestCreate_Succeeds(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := newProduct("", "Sparkling Water", "cat-1")
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Len(t, repo.items, 1)
}

func TestCreate_DuplicateNameAllowed(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Product names are not unique; any valid input referencing an
	// existing category succeeds.
	require.NoError(t, svc.Create(ctx, newProduct("", "Sparkling Water", "cat-1")))
	require.NoError(t, svc.Create(ctx, newProduct("", "Sparkling Water", "cat-1")))

	assert.Len(t, repo.items, 2)
}

func TestCreate_UnknownCategoryRejectedWithoutInsert(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	err := svc.Create(ctx, newProduct("", "Sparkling Water", "ghost"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, "categoryId", appErr.Details["field"])
	assert.Empty(t, repo.items, "failed create must not persist anything")
}

func TestCreate_UnknownBrandRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p := newProduct("", "Sparkling Water", "cat-1")
	ghost := "ghost-brand"
	p.BrandID = &ghost

	err := svc.Create(ctx, p)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, "brandId", appErr.Details["field"])
}

func TestCreate_NilBrandSkipsBrandCheck(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p := newProduct("", "Sparkling Water", "cat-1")
	p.BrandID = nil

	require.NoError(t, svc.Create(ctx, p))
}

func TestEdit_FullReplace(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := newProduct("p1", "Sparkling Water", "cat-1")
	p.StockQuantity = 5
	require.NoError(t, svc.Create(ctx, p))

	edited := newProduct("p1", "Sparkling Water", "cat-1")
	edited.StockQuantity = 3
	require.NoError(t, svc.Edit(ctx, edited))

	stored := repo.items["p1"]
	assert.Equal(t, 3, stored.StockQuantity, "replace stores exactly the submitted quantity")
}

func TestEdit_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	err := svc.Edit(ctx, newProduct("missing", "Nobody", "cat-1"))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestEdit_ValidatesBeforeExistenceCheck(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p := newProduct("missing", "", "cat-1")
	err := svc.Edit(ctx, p)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidInput(err), "field errors win over not-found")
}

func TestEdit_UnknownCategoryRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newProduct("p1", "Sparkling Water", "cat-1")))

	err := svc.Edit(ctx, newProduct("p1", "Sparkling Water", "ghost"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
}
