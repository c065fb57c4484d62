package dto

import (
	"stockpilot/internal/domain/catalogs/client"
)

// --- Request DTOs ---

// CreateClientRequest is the request body for creating a client.
// The identifier field is userId on both create and edit.
type CreateClientRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	return client.NewClient(r.UserID, r.Name, r.Phone)
}

// EditClientRequest is the request body for replacing a client.
// An empty phone keeps the stored one.
type EditClientRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
}

// ToEntity converts DTO to domain entity.
func (r *EditClientRequest) ToEntity() *client.Client {
	return client.NewClient(r.UserID, r.Name, r.Phone)
}

// DeleteClientsRequest is the request body for bulk client deletion.
type DeleteClientsRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// FromClient creates response DTO from domain entity.
func FromClient(item *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:    item.ID,
		Name:  item.Name,
		Phone: item.Phone,
	}
}
