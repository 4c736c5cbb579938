package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Performance score bounds, inclusive.
const (
	MinPerformanceScore = 0
	MaxPerformanceScore = 100
)

// Student is a learner tracked by a teacher.
type Student struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Grade            string    `json:"grade"`
	Subject          string    `json:"subject,omitempty"`
	PerformanceScore *int      `json:"performance_score,omitempty"`
	TeacherID        uuid.UUID `json:"teacher_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewStudent creates a Student belonging to teacherID.
// Returns an error if validation fails.
func NewStudent(teacherID uuid.UUID, name, grade, subject string, score *int) (*Student, error) {
	student := &Student{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(name),
		Grade:            strings.TrimSpace(grade),
		Subject:          strings.TrimSpace(subject),
		PerformanceScore: score,
		TeacherID:        teacherID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// Validate checks if the Student has valid data.
func (s *Student) Validate() error {
	if s.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if s.TeacherID == uuid.Nil {
		return NewValidationError("teacher_id", "cannot be empty", ErrInvalidID)
	}
	if s.Name == "" {
		return NewValidationError("name", "required field", ErrEmptyContent)
	}
	if s.Grade == "" {
		return NewValidationError("grade", "required field", ErrEmptyContent)
	}
	if s.PerformanceScore != nil {
		score := *s.PerformanceScore
		if score < MinPerformanceScore || score > MaxPerformanceScore {
			return NewValidationError("performance_score", "must be between 0 and 100", nil)
		}
	}
	return nil
}
