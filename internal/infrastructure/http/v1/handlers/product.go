package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/domain/catalogs/product"
	"stockpilot/internal/infrastructure/http/v1/dto"
)

// ProductHandler provides HTTP handlers for the Product catalog.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /products - list with search and pagination.
func (h *ProductHandler) List(c *gin.Context) {
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

	items := make([]*dto.ProductResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromProduct(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /products/:id - get single product.
func (h *ProductHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	productID := c.Param("id")
	if productID == "" {
		h.Error(c, apperror.NewInvalidInput("id is required", "id"))
		return
	}

	item, err := h.service.GetByID(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(item))
}

// Create handles POST /products - create new product.
func (h *ProductHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromProduct(item))
}

// Edit handles PUT /products/edit - full replace by id in body.
func (h *ProductHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EditProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Edit(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(item))
}
