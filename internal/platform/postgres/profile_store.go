package postgres

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

// PostgresProfileStore implements store.ProfileStore.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// NewPostgresProfileStore creates a ProfileStore on db.
// If logger is nil, the default logger is used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// GetByID implements store.ProfileStore.GetByID.
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, full_name, email, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var profile domain.Profile
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.String("profile_id", id.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile",
			slog.String("profile_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("profile", "get", "query failed", MapError(err))
	}

	return &profile, nil
}

// Create implements store.ProfileStore.Create.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO profiles (id, full_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Email,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Info("profile already exists", slog.String("profile_id", profile.ID.String()))
			return store.ErrProfileExists
		}
		log.Error("failed to create profile",
			slog.String("profile_id", profile.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("profile", "create", "insert failed", MapError(err))
	}

	log.Info("profile created", slog.String("profile_id", profile.ID.String()))
	return nil
}

// WithTx implements store.ProfileStore.WithTx.
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{db: tx, logger: s.logger}
}
