package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
)

// ProfileStore persists teacher profiles.
type ProfileStore interface {
	// GetByID returns the profile whose ID is the identity subject.
	// Returns ErrProfileNotFound if none exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// Create inserts a new profile.
	// Returns ErrProfileExists if a profile with the same ID already exists.
	Create(ctx context.Context, profile *domain.Profile) error

	// WithTx returns a ProfileStore bound to tx.
	WithTx(tx *sql.Tx) ProfileStore
}
