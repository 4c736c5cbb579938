package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Assignment is a piece of work a teacher sets for a class.
type Assignment struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Grade       string     `json:"grade"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewAssignment creates an Assignment owned by teacherID.
// Returns an error if validation fails.
func NewAssignment(
	teacherID uuid.UUID,
	title, subject, grade, description string,
	dueDate *time.Time,
) (*Assignment, error) {
	assignment := &Assignment{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Subject:     strings.TrimSpace(subject),
		Grade:       strings.TrimSpace(grade),
		Description: description,
		DueDate:     dueDate,
		CreatedBy:   teacherID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := assignment.Validate(); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate checks if the Assignment has valid data.
func (a *Assignment) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if a.CreatedBy == uuid.Nil {
		return NewValidationError("created_by", "cannot be empty", ErrInvalidID)
	}
	if a.Title == "" {
		return NewValidationError("title", "required field", ErrEmptyContent)
	}
	if a.Subject == "" {
		return NewValidationError("subject", "required field", ErrEmptyContent)
	}
	if a.Grade == "" {
		return NewValidationError("grade", "required field", ErrEmptyContent)
	}
	return nil
}
