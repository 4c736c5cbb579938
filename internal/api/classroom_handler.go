package api

import (
	"net/http"

	"github.com/phrazzld/sahayak-api/internal/api/shared"
	"github.com/phrazzld/sahayak-api/internal/service"
)

// ClassroomHandler handles assignment and student HTTP requests.
type ClassroomHandler struct {
	classroomService service.ClassroomService
}

// NewClassroomHandler creates a new ClassroomHandler
func NewClassroomHandler(classroomService service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService}
}

// ListAssignments handles GET /api/assignments
func (h *ClassroomHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	assignments, err := h.classroomService.ListAssignments(r.Context(), identity.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list assignments")
		return
	}

	response := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		response = append(response, assignmentToResponse(a))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateAssignment handles POST /api/assignments
func (h *ClassroomHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateAssignmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	assignment, err := h.classroomService.CreateAssignment(r.Context(), identity.Subject, service.AssignmentParams{
		Title:       req.Title,
		Subject:     req.Subject,
		Grade:       req.Grade,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create assignment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, assignmentToResponse(assignment))
}

// ListStudents handles GET /api/students
func (h *ClassroomHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	students, err := h.classroomService.ListStudents(r.Context(), identity.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list students")
		return
	}

	response := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		response = append(response, studentToResponse(s))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateStudent handles POST /api/students
func (h *ClassroomHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateStudentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	student, err := h.classroomService.CreateStudent(r.Context(), identity.Subject, service.StudentParams{
		Name:             req.Name,
		Grade:            req.Grade,
		Subject:          req.Subject,
		PerformanceScore: req.PerformanceScore,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create student")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, studentToResponse(student))
}
