package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/store"
)

// ProfileService manages teacher profiles.
type ProfileService interface {
	// EnsureProfile returns the profile for identity, creating it on first use.
	EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
}

// ProfileServiceImpl implements the ProfileService interface
type ProfileServiceImpl struct {
	profileStore store.ProfileStore
	db           *sql.DB
	logger       *slog.Logger
}

var _ ProfileService = (*ProfileServiceImpl)(nil)

// NewProfileService creates a new ProfileService
func NewProfileService(profileStore store.ProfileStore, db *sql.DB, logger *slog.Logger) (*ProfileServiceImpl, error) {
	if profileStore == nil {
		return nil, domain.NewValidationError("profileStore", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileServiceImpl{
		profileStore: profileStore,
		db:           db,
		logger:       logger.With("component", "profile_service"),
	}, nil
}

// EnsureProfile fetches the profile whose ID is the identity subject. When it
// does not exist it is created from the identity, with the full name falling
// back to the email and then to "User". If a concurrent request inserts the
// profile first, the stored row is read back and returned.
func (s *ProfileServiceImpl) EnsureProfile(
	ctx context.Context,
	identity domain.Identity,
) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if identity.Subject == uuid.Nil {
		return nil, ErrIdentityRequired
	}

	var profile *domain.Profile
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.profileStore.WithTx(tx)

		existing, err := txStore.GetByID(ctx, identity.Subject)
		if err == nil {
			profile = existing
			return nil
		}
		if !errors.Is(err, store.ErrProfileNotFound) {
			return err
		}

		created, err := domain.NewProfile(identity)
		if err != nil {
			return err
		}
		if err := txStore.Create(ctx, created); err != nil {
			return err
		}

		log.Info("created profile on first sign-in", "user_id", identity.Subject)
		profile = created
		return nil
	})

	if errors.Is(err, store.ErrProfileExists) {
		log.Debug("profile created concurrently, reading it back", "user_id", identity.Subject)
		profile, err = s.profileStore.GetByID(ctx, identity.Subject)
	}
	if err != nil {
		log.Error("failed to ensure profile",
			"error", err,
			"user_id", identity.Subject)
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	return profile, nil
}
