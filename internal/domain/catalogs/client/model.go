// Package client provides the Client catalog: the customers of the
// inventory, unique by name (case-insensitive) and by phone.
package client

import (
	"context"
	"strings"

	"stockpilot/internal/core/apperror"
	"stockpilot/internal/core/entity"
)

// Client represents a customer record.
type Client struct {
	entity.Catalog

	// Phone is the contact phone as entered by the user.
	Phone string `db:"phone" json:"phone"`

	// PhoneNormalized is the digits-only form of Phone, maintained on
	// every write and used for uniqueness comparison. The store carries
	// a unique index on this column.
	PhoneNormalized string `db:"phone_normalized" json:"-"`
}

// NewClient creates a new Client with required fields.
func NewClient(userID, name, phone string) *Client {
	c := &Client{
		Catalog: entity.NewCatalog(userID, name),
		Phone:   phone,
	}
	c.Normalize()
	return c
}

// NormalizePhone reduces a phone number to bare digits so that
// "+55 (11) 99999-0000" and "11999990000" compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize recomputes the derived comparison fields.
func (c *Client) Normalize() {
	c.PhoneNormalized = NormalizePhone(c.Phone)
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	// Base catalog validation (name presence)
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(c.Phone) == "" {
		return apperror.NewInvalidInput("phone is required", "phone")
	}

	if NormalizePhone(c.Phone) == "" {
		return apperror.NewInvalidInput("phone must contain digits", "phone")
	}

	return nil
}
