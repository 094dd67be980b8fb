package handler

import (
	"errors"
	"net/http"

	"github.com/Siddaarth-Babu/MOOC/internal/middleware"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/Siddaarth-Babu/MOOC/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StudentHandler serves the student portal routes.
type StudentHandler struct {
	students *service.StudentService
	log      zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{
		students: students,
		log:      log.With().Str("component", "student_handler").Logger(),
	}
}

// Me handles GET /student/me.
func (h *StudentHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.GetStudent(c))
}

// UpdateMe handles PATCH /student/me.
func (h *StudentHandler) UpdateMe(c *gin.Context) {
	var req model.UpdateStudentProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := middleware.GetStudent(c)
	updated, err := h.students.UpdateProfile(c.Request.Context(), student.ID, &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Profile update failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Courses handles GET /student/courses.
func (h *StudentHandler) Courses(c *gin.Context) {
	student := middleware.GetStudent(c)
	courses, err := h.students.EnrolledCourses(c.Request.Context(), student.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Enrolled courses lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// Catalog handles GET /student/catalog.
func (h *StudentHandler) Catalog(c *gin.Context) {
	limit, offset := pagination(c)
	courses, err := h.students.Catalog(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("Catalog lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// Course handles GET /student/courses/:id.
func (h *StudentHandler) Course(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	student := middleware.GetStudent(c)
	view, err := h.students.CourseView(c.Request.Context(), student.ID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Course view failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Enroll handles POST /student/courses/:id/enroll.
func (h *StudentHandler) Enroll(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	student := middleware.GetStudent(c)
	if err := h.students.Enroll(c.Request.Context(), student.ID, courseID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
		default:
			h.log.Error().Err(err).Msg("Enrollment failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Enrolled successfully."})
}

// Submit handles POST /student/assignments/:id/submissions.
func (h *StudentHandler) Submit(c *gin.Context) {
	assignmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CreateSubmissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := middleware.GetStudent(c)
	submission, err := h.students.SubmitAssignment(c.Request.Context(), student.ID, assignmentID, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotEnrolled):
			response.Fail(c, http.StatusForbidden, response.ErrNotEnrolled)
		default:
			h.log.Error().Err(err).Msg("Submission failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusCreated, submission)
}

// Results handles GET /student/results.
func (h *StudentHandler) Results(c *gin.Context) {
	student := middleware.GetStudent(c)
	results, err := h.students.Results(c.Request.Context(), student.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Results lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, results)
}
