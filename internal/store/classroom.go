package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
)

// AssignmentStore persists assignments.
type AssignmentStore interface {
	// ListByTeacher returns the teacher's assignments, newest first.
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Assignment, error)

	// Create inserts a new assignment.
	Create(ctx context.Context, assignment *domain.Assignment) error
}

// StudentStore persists students.
type StudentStore interface {
	// ListByTeacher returns the teacher's students ordered by name.
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Student, error)

	// Create inserts a new student.
	Create(ctx context.Context, student *domain.Student) error
}
