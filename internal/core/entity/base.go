package entity

import (
	"context"

	"stockpilot/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Identifiable is implemented by entities with an opaque identifier.
// Repositories rely on it for lookups and full-field replaces.
type Identifiable interface {
	EntityID() id.ID
}
