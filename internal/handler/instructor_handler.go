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

// InstructorHandler serves the instructor portal routes.
type InstructorHandler struct {
	instructors *service.InstructorService
	log         zerolog.Logger
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructors *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{
		instructors: instructors,
		log:         log.With().Str("component", "instructor_handler").Logger(),
	}
}

// fail maps instructor portal errors to HTTP responses.
func (h *InstructorHandler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrNotCourseInstructor):
		response.Fail(c, http.StatusForbidden, response.ErrNotCourseInstructor)
	case errors.Is(err, service.ErrNotEnrolled):
		response.Fail(c, http.StatusBadRequest, response.ErrNotEnrolled)
	case errors.Is(err, repository.ErrTextbookExists):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		h.log.Error().Err(err).Str("action", action).Msg("Instructor operation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// Me handles GET /instructor/me.
func (h *InstructorHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.GetInstructor(c))
}

// Courses handles GET /instructor/courses.
func (h *InstructorHandler) Courses(c *gin.Context) {
	instructor := middleware.GetInstructor(c)
	courses, err := h.instructors.Teaching(c.Request.Context(), instructor.ID)
	if err != nil {
		h.fail(c, err, "list_courses")
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// Course handles GET /instructor/courses/:id.
func (h *InstructorHandler) Course(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	instructor := middleware.GetInstructor(c)
	view, err := h.instructors.CourseView(c.Request.Context(), instructor.ID, courseID)
	if err != nil {
		h.fail(c, err, "course_view")
		return
	}
	response.Success(c, http.StatusOK, view)
}

// AddTextbook handles POST /instructor/courses/:id/textbook.
func (h *InstructorHandler) AddTextbook(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.AddTextbookRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	textbook, err := h.instructors.AddTextbook(c.Request.Context(), instructor.ID, courseID, &req)
	if err != nil {
		h.fail(c, err, "add_textbook")
		return
	}
	response.Success(c, http.StatusCreated, textbook)
}

// AddVideo handles POST /instructor/courses/:id/videos.
func (h *InstructorHandler) AddVideo(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.AddVideoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	video, err := h.instructors.AddVideo(c.Request.Context(), instructor.ID, courseID, &req)
	if err != nil {
		h.fail(c, err, "add_video")
		return
	}
	response.Success(c, http.StatusCreated, video)
}

// AddNote handles POST /instructor/courses/:id/notes.
func (h *InstructorHandler) AddNote(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.AddNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	note, err := h.instructors.AddNote(c.Request.Context(), instructor.ID, courseID, &req)
	if err != nil {
		h.fail(c, err, "add_note")
		return
	}
	response.Success(c, http.StatusCreated, note)
}

// DeleteTextbook handles DELETE /instructor/courses/:id/textbook.
func (h *InstructorHandler) DeleteTextbook(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	instructor := middleware.GetInstructor(c)
	if err := h.instructors.DeleteTextbook(c.Request.Context(), instructor.ID, courseID); err != nil {
		h.fail(c, err, "delete_textbook")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Textbook removed."})
}

// DeleteVideo handles DELETE /instructor/courses/:id/videos/:videoId.
func (h *InstructorHandler) DeleteVideo(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	videoID, ok := paramID(c, "videoId")
	if !ok {
		return
	}
	instructor := middleware.GetInstructor(c)
	if err := h.instructors.DeleteVideo(c.Request.Context(), instructor.ID, courseID, videoID); err != nil {
		h.fail(c, err, "delete_video")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Video removed."})
}

// DeleteNote handles DELETE /instructor/courses/:id/notes/:noteId.
func (h *InstructorHandler) DeleteNote(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	noteID, ok := paramID(c, "noteId")
	if !ok {
		return
	}
	instructor := middleware.GetInstructor(c)
	if err := h.instructors.DeleteNote(c.Request.Context(), instructor.ID, courseID, noteID); err != nil {
		h.fail(c, err, "delete_note")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Note removed."})
}

// CreateAssignment handles POST /instructor/courses/:id/assignments.
func (h *InstructorHandler) CreateAssignment(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	assignment, err := h.instructors.CreateAssignment(c.Request.Context(), instructor.ID, courseID, &req)
	if err != nil {
		h.fail(c, err, "create_assignment")
		return
	}
	response.Success(c, http.StatusCreated, assignment)
}

// DeleteAssignment handles DELETE /instructor/assignments/:id.
func (h *InstructorHandler) DeleteAssignment(c *gin.Context) {
	assignmentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	instructor := middleware.GetInstructor(c)
	if err := h.instructors.DeleteAssignment(c.Request.Context(), instructor.ID, assignmentID); err != nil {
		h.fail(c, err, "delete_assignment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Assignment deleted."})
}

// Submissions handles GET /instructor/assignments/:id/submissions.
func (h *InstructorHandler) Submissions(c *gin.Context) {
	assignmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	instructor := middleware.GetInstructor(c)
	submissions, err := h.instructors.ListSubmissions(c.Request.Context(), instructor.ID, assignmentID)
	if err != nil {
		h.fail(c, err, "list_submissions")
		return
	}
	response.Success(c, http.StatusOK, submissions)
}

// GradeSubmission handles PATCH /instructor/submissions/:id/grade.
func (h *InstructorHandler) GradeSubmission(c *gin.Context) {
	submissionID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.GradeSubmissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	submission, err := h.instructors.GradeSubmission(c.Request.Context(), instructor.ID, submissionID, req.ObtainedMarks)
	if err != nil {
		h.fail(c, err, "grade_submission")
		return
	}
	response.Success(c, http.StatusOK, submission)
}

// CourseEvaluations handles GET /instructor/courses/:id/evaluations.
func (h *InstructorHandler) CourseEvaluations(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	instructor := middleware.GetInstructor(c)
	evaluations, err := h.instructors.CourseEvaluations(c.Request.Context(), instructor.ID, courseID)
	if err != nil {
		h.fail(c, err, "course_evaluations")
		return
	}
	response.Success(c, http.StatusOK, evaluations)
}

// RecordEvaluation handles POST /instructor/courses/:id/evaluations.
func (h *InstructorHandler) RecordEvaluation(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CreateEvaluationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor := middleware.GetInstructor(c)
	evaluation, err := h.instructors.RecordEvaluation(c.Request.Context(), instructor.ID, courseID, &req)
	if err != nil {
		h.fail(c, err, "record_evaluation")
		return
	}
	response.Success(c, http.StatusCreated, evaluation)
}
