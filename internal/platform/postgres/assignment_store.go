package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/store"
)

// PostgresAssignmentStore implements store.AssignmentStore.
type PostgresAssignmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.AssignmentStore = (*PostgresAssignmentStore)(nil)

// NewPostgresAssignmentStore creates an AssignmentStore on db.
func NewPostgresAssignmentStore(db store.DBTX, logger *slog.Logger) *PostgresAssignmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAssignmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "assignment_store")),
	}
}

// ListByTeacher implements store.AssignmentStore.ListByTeacher.
func (s *PostgresAssignmentStore) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Assignment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, subject, grade, description, due_date, created_by, created_at
		FROM assignments
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		log.Error("failed to list assignments",
			slog.String("teacher_id", teacherID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("assignment", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		var (
			a           domain.Assignment
			description sql.NullString
			dueDate     sql.NullTime
		)
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Subject, &a.Grade,
			&description, &dueDate, &a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("assignment", "list", "scan failed", err)
		}
		a.Description = description.String
		if dueDate.Valid {
			due := dueDate.Time
			a.DueDate = &due
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("assignment", "list", "row iteration failed", err)
	}

	log.Debug("listed assignments",
		slog.String("teacher_id", teacherID.String()),
		slog.Int("count", len(assignments)))
	return assignments, nil
}

// Create implements store.AssignmentStore.Create.
func (s *PostgresAssignmentStore) Create(ctx context.Context, a *domain.Assignment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var dueDate sql.NullTime
	if a.DueDate != nil {
		dueDate = sql.NullTime{Time: *a.DueDate, Valid: true}
	}

	query := `
		INSERT INTO assignments (id, title, subject, grade, description, due_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Subject, a.Grade,
		nullString(a.Description), dueDate, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create assignment",
			slog.String("assignment_id", a.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("assignment", "create", "insert failed", MapError(err))
	}

	log.Info("assignment created",
		slog.String("assignment_id", a.ID.String()),
		slog.String("teacher_id", a.CreatedBy.String()))
	return nil
}
