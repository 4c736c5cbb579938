package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
	"github.com/phrazzld/sahayak-api/internal/platform/logger"
	"github.com/phrazzld/sahayak-api/internal/store"
)

// AssignmentParams holds the fields a teacher supplies for a new assignment.
type AssignmentParams struct {
	Title       string
	Subject     string
	Grade       string
	Description string
	DueDate     *time.Time
}

// StudentParams holds the fields a teacher supplies for a new student.
type StudentParams struct {
	Name             string
	Grade            string
	Subject          string
	PerformanceScore *int
}

// ClassroomService manages the assignments and students that belong to a teacher.
// Every operation is scoped to teacherID.
type ClassroomService interface {
	ListAssignments(ctx context.Context, teacherID uuid.UUID) ([]*domain.Assignment, error)
	CreateAssignment(ctx context.Context, teacherID uuid.UUID, params AssignmentParams) (*domain.Assignment, error)
	ListStudents(ctx context.Context, teacherID uuid.UUID) ([]*domain.Student, error)
	CreateStudent(ctx context.Context, teacherID uuid.UUID, params StudentParams) (*domain.Student, error)
}

// ClassroomServiceImpl implements the ClassroomService interface
type ClassroomServiceImpl struct {
	assignments store.AssignmentStore
	students    store.StudentStore
	logger      *slog.Logger
}

var _ ClassroomService = (*ClassroomServiceImpl)(nil)

// NewClassroomService creates a new ClassroomService
func NewClassroomService(
	assignments store.AssignmentStore,
	students store.StudentStore,
	logger *slog.Logger,
) (*ClassroomServiceImpl, error) {
	if assignments == nil {
		return nil, domain.NewValidationError("assignments", "cannot be nil", domain.ErrValidation)
	}
	if students == nil {
		return nil, domain.NewValidationError("students", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ClassroomServiceImpl{
		assignments: assignments,
		students:    students,
		logger:      logger.With("component", "classroom_service"),
	}, nil
}

// ListAssignments returns the teacher's assignments, newest first.
func (s *ClassroomServiceImpl) ListAssignments(
	ctx context.Context,
	teacherID uuid.UUID,
) ([]*domain.Assignment, error) {
	if teacherID == uuid.Nil {
		return nil, ErrIdentityRequired
	}

	assignments, err := s.assignments.ListByTeacher(ctx, teacherID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list assignments",
			"error", err,
			"teacher_id", teacherID)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment validates params and stores a new assignment owned by teacherID.
func (s *ClassroomServiceImpl) CreateAssignment(
	ctx context.Context,
	teacherID uuid.UUID,
	params AssignmentParams,
) (*domain.Assignment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if teacherID == uuid.Nil {
		return nil, ErrIdentityRequired
	}

	assignment, err := domain.NewAssignment(
		teacherID,
		params.Title,
		params.Subject,
		params.Grade,
		params.Description,
		params.DueDate,
	)
	if err != nil {
		log.Debug("invalid assignment", "error", err, "teacher_id", teacherID)
		return nil, err
	}

	if err := s.assignments.Create(ctx, assignment); err != nil {
		log.Error("failed to create assignment",
			"error", err,
			"teacher_id", teacherID)
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}

// ListStudents returns the teacher's students ordered by name.
func (s *ClassroomServiceImpl) ListStudents(
	ctx context.Context,
	teacherID uuid.UUID,
) ([]*domain.Student, error) {
	if teacherID == uuid.Nil {
		return nil, ErrIdentityRequired
	}

	students, err := s.students.ListByTeacher(ctx, teacherID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list students",
			"error", err,
			"teacher_id", teacherID)
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// CreateStudent validates params and stores a new student for teacherID.
func (s *ClassroomServiceImpl) CreateStudent(
	ctx context.Context,
	teacherID uuid.UUID,
	params StudentParams,
) (*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if teacherID == uuid.Nil {
		return nil, ErrIdentityRequired
	}

	student, err := domain.NewStudent(
		teacherID,
		params.Name,
		params.Grade,
		params.Subject,
		params.PerformanceScore,
	)
	if err != nil {
		log.Debug("invalid student", "error", err, "teacher_id", teacherID)
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		log.Error("failed to create student",
			"error", err,
			"teacher_id", teacherID)
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return student, nil
}
