// Package id provides identifier generation for all entities.
// Identifiers are opaque strings: callers may supply their own (the UI
// assigns product and client ids before submit), otherwise a UUIDv7 is
// generated so new rows sort naturally by creation time.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque entity identifier.
type ID = string

// New generates a new UUIDv7-based ID (time-ordered).
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.NewString()
	}
	return v7.String()
}

// OrNew returns the given id trimmed, or a fresh one when empty.
func OrNew(s string) ID {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return New()
}

// IsZero checks if the id is absent.
func IsZero(id ID) bool {
	return strings.TrimSpace(id) == ""
}
