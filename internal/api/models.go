package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/sahayak-api/internal/domain"
)

// GenerateContentRequest is the body of the content relay function.
type GenerateContentRequest struct {
	Prompt    string `json:"prompt"`
	Type      string `json:"type"`
	Language  string `json:"language"`
	Grade     string `json:"grade"`
	Subject   string `json:"subject"`
	Challenge string `json:"challenge"`
}

// ToDomain converts the request, applying the default language.
func (r GenerateContentRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Type:      domain.ContentType(r.Type),
		Prompt:    r.Prompt,
		Language:  r.Language,
		Grade:     r.Grade,
		Subject:   r.Subject,
		Challenge: r.Challenge,
	}.WithDefaults()
}

// GenerateContentResponse carries the generated text.
type GenerateContentResponse struct {
	Content string `json:"content"`
}

// GenerateImageRequest is the body of the image relay function.
type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateImageResponse carries the generated image URL.
type GenerateImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ProfileResponse represents a teacher profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAssignmentRequest defines the payload for creating an assignment.
type CreateAssignmentRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Subject     string     `json:"subject"     validate:"required"`
	Grade       string     `json:"grade"       validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// AssignmentResponse represents an assignment.
type AssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	Grade       string     `json:"grade"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateStudentRequest defines the payload for creating a student.
type CreateStudentRequest struct {
	Name             string `json:"name"              validate:"required"`
	Grade            string `json:"grade"             validate:"required"`
	Subject          string `json:"subject"`
	PerformanceScore *int   `json:"performance_score" validate:"omitempty,min=0,max=100"`
}

// StudentResponse represents a student.
type StudentResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Grade            string    `json:"grade"`
	Subject          string    `json:"subject,omitempty"`
	PerformanceScore *int      `json:"performance_score,omitempty"`
	TeacherID        uuid.UUID `json:"teacher_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func profileToResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func assignmentToResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Subject:     a.Subject,
		Grade:       a.Grade,
		Description: a.Description,
		DueDate:     a.DueDate,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func studentToResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		ID:               s.ID,
		Name:             s.Name,
		Grade:            s.Grade,
		Subject:          s.Subject,
		PerformanceScore: s.PerformanceScore,
		TeacherID:        s.TeacherID,
		CreatedAt:        s.CreatedAt,
	}
}
