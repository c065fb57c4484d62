package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"stockpilot/internal/core/id"
	"stockpilot/internal/domain"
	"stockpilot/internal/infrastructure/http/v1/dto"
)

// ReferenceService is the read surface shared by the reference catalogs
// (categories and brands).
type ReferenceService[T any] interface {
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error)
	GetByID(ctx context.Context, entityID id.ID) (T, error)
}

// ReferenceHandler provides read-only HTTP handlers for reference data.
type ReferenceHandler[T any] struct {
	*BaseHandler
	service  ReferenceService[T]
	mapToDTO func(item T) any
}

// NewReferenceHandler creates a handler for a reference catalog.
func NewReferenceHandler[T any](
	base *BaseHandler,
	service ReferenceService[T],
	mapToDTO func(item T) any,
) *ReferenceHandler[T] {
	return &ReferenceHandler[T]{
		BaseHandler: base,
		service:     service,
		mapToDTO:    mapToDTO,
	}
}

// List handles GET requests for the reference catalog.
func (h *ReferenceHandler[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter, ok := h.ParseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
