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

// PostgresStudentStore implements store.StudentStore.
type PostgresStudentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.StudentStore = (*PostgresStudentStore)(nil)

// NewPostgresStudentStore creates a StudentStore on db.
func NewPostgresStudentStore(db store.DBTX, logger *slog.Logger) *PostgresStudentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStudentStore{
		db:     db,
		logger: logger.With(slog.String("component", "student_store")),
	}
}

// ListByTeacher implements store.StudentStore.ListByTeacher.
func (s *PostgresStudentStore) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, grade, subject, performance_score, teacher_id, created_at
		FROM students
		WHERE teacher_id = $1
		ORDER BY name ASC
	`
	rows, err := s.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		log.Error("failed to list students",
			slog.String("teacher_id", teacherID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("student", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		var (
			st      domain.Student
			subject sql.NullString
			score   sql.NullInt32
		)
		if err := rows.Scan(
			&st.ID, &st.Name, &st.Grade, &subject, &score, &st.TeacherID, &st.CreatedAt,
		); err != nil {
			return nil, store.NewStoreError("student", "list", "scan failed", err)
		}
		st.Subject = subject.String
		if score.Valid {
			v := int(score.Int32)
			st.PerformanceScore = &v
		}
		students = append(students, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("student", "list", "row iteration failed", err)
	}

	log.Debug("listed students",
		slog.String("teacher_id", teacherID.String()),
		slog.Int("count", len(students)))
	return students, nil
}

// Create implements store.StudentStore.Create.
func (s *PostgresStudentStore) Create(ctx context.Context, st *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := st.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var score sql.NullInt32
	if st.PerformanceScore != nil {
		score = sql.NullInt32{Int32: int32(*st.PerformanceScore), Valid: true}
	}

	query := `
		INSERT INTO students (id, name, grade, subject, performance_score, teacher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		st.ID, st.Name, st.Grade, nullString(st.Subject), score, st.TeacherID, st.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create student",
			slog.String("student_id", st.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("student", "create", "insert failed", MapError(err))
	}

	log.Info("student created",
		slog.String("student_id", st.ID.String()),
		slog.String("teacher_id", st.TeacherID.String()))
	return nil
}
