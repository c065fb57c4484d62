package handlers

import (
	"github.com/gin-gonic/gin"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/domain/catalogs/client"
	"stockpilot/internal/infrastructure/http/v1/dto"
)

// ClientHandler provides HTTP handlers for the Client catalog.
type ClientHandler struct {
	*BaseHandler
	service *client.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	return &ClientHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /clients - list with search and pagination.
func (h *ClientHandler) List(c *gin.Context) {
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

	items := make([]*dto.ClientResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromClient(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /clients/:id - get single client.
func (h *ClientHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	clientID := c.Param("id")
	if clientID == "" {
		h.Error(c, apperror.NewInvalidInput("id is required", "id"))
		return
	}

	item, err := h.service.GetByID(ctx, clientID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromClient(item))
}

// Create handles POST /clients - create new client.
func (h *ClientHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := req.ToEntity()

	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromClient(item))
}

// Edit handles PUT /clients/edit - full replace by userId in body.
func (h *ClientHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EditClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := req.ToEntity()

	if err := h.service.Edit(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromClient(item))
}

// Delete handles DELETE /clients/delete - bulk delete by ids in body.
// Ids that match no record are skipped; the response carries the number
// of records actually removed.
func (h *ClientHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.DeleteClientsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	count, err := h.service.DeleteMany(ctx, req.UserIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.DeleteResponse{DeletedCount: count})
}
