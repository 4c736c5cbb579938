package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewAssignment(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	a, err := NewAssignment(teacherID, " Fractions ", "Mathematics", "4", "Chapter 3", &due)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "Fractions", a.Title)
	assert.Equal(t, teacherID, a.CreatedBy)
	assert.Equal(t, &due, a.DueDate)

	tests := []struct {
		name      string
		teacherID uuid.UUID
		title     string
		subject   string
		grade     string
		wantField string
	}{
		{"missing teacher", uuid.Nil, "t", "s", "g", "created_by"},
		{"missing title", teacherID, "", "s", "g", "title"},
		{"missing subject", teacherID, "t", " ", "g", "subject"},
		{"missing grade", teacherID, "t", "s", "", "grade"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAssignment(tc.teacherID, tc.title, tc.subject, tc.grade, "", nil)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestNewStudent(t *testing.T) {
	t.Parallel()

	teacherID := uuid.New()

	s, err := NewStudent(teacherID, "Ravi", "5", "", intPtr(82))
	require.NoError(t, err)
	assert.Equal(t, "Ravi", s.Name)
	assert.Equal(t, 82, *s.PerformanceScore)

	s, err = NewStudent(teacherID, "Meena", "5", "Science", nil)
	require.NoError(t, err)
	assert.Nil(t, s.PerformanceScore)

	tests := []struct {
		name      string
		student   string
		grade     string
		score     *int
		wantField string
	}{
		{"missing name", "", "5", nil, "name"},
		{"missing grade", "Ravi", "", nil, "grade"},
		{"score below range", "Ravi", "5", intPtr(-1), "performance_score"},
		{"score above range", "Ravi", "5", intPtr(101), "performance_score"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStudent(teacherID, tc.student, tc.grade, "", tc.score)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}

	for _, edge := range []int{MinPerformanceScore, MaxPerformanceScore} {
		_, err := NewStudent(teacherID, "Edge", "5", "", intPtr(edge))
		assert.NoError(t, err)
	}
}
