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

// AdminHandler serves the admin portal routes.
type AdminHandler struct {
	admin *service.AdminService
	stats *service.StatsService
	log   zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		stats: stats,
		log:   log.With().Str("component", "admin_handler").Logger(),
	}
}

func (h *AdminHandler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrUniversityExists),
		errors.Is(err, repository.ErrAlreadyAssigned),
		errors.Is(err, repository.ErrDuplicateTopic):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		h.log.Error().Err(err).Str("action", action).Msg("Admin operation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// Me handles GET /admin/me.
func (h *AdminHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.GetAdmin(c))
}

// PlatformStats handles GET /admin/stats/platform.
func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.stats.Platform(c.Request.Context())
	if err != nil {
		h.fail(c, err, "platform_stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// CourseEnrollment handles GET /admin/stats/course-enrollment.
func (h *AdminHandler) CourseEnrollment(c *gin.Context) {
	report, err := h.stats.CourseEnrollment(c.Request.Context())
	if err != nil {
		h.fail(c, err, "course_enrollment")
		return
	}
	response.Success(c, http.StatusOK, report)
}

// ListStudents handles GET /admin/students.
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.admin.ListStudents(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_students")
		return
	}
	response.Success(c, http.StatusOK, students)
}

// StudentDetail handles GET /admin/students/:id.
func (h *AdminHandler) StudentDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.admin.StudentDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "student_detail")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// DeleteStudent handles DELETE /admin/students/:id.
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteStudent(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_student")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Student profile deleted."})
}

// ListInstructors handles GET /admin/instructors.
func (h *AdminHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.admin.ListInstructors(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_instructors")
		return
	}
	response.Success(c, http.StatusOK, instructors)
}

// InstructorDetail handles GET /admin/instructors/:id.
func (h *AdminHandler) InstructorDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.admin.InstructorDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "instructor_detail")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// DeleteInstructor handles DELETE /admin/instructors/:id.
func (h *AdminHandler) DeleteInstructor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteInstructor(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_instructor")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Instructor profile deleted."})
}

// ListAnalysts handles GET /admin/analysts.
func (h *AdminHandler) ListAnalysts(c *gin.Context) {
	analysts, err := h.admin.ListAnalysts(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_analysts")
		return
	}
	response.Success(c, http.StatusOK, analysts)
}

// AnalystDetail handles GET /admin/analysts/:id.
func (h *AdminHandler) AnalystDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	analyst, err := h.admin.AnalystDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "analyst_detail")
		return
	}
	response.Success(c, http.StatusOK, analyst)
}

// DeleteAnalyst handles DELETE /admin/analysts/:id.
func (h *AdminHandler) DeleteAnalyst(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteAnalyst(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_analyst")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Analyst profile deleted."})
}

// ListUniversities handles GET /admin/universities.
func (h *AdminHandler) ListUniversities(c *gin.Context) {
	universities, err := h.admin.ListUniversities(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_universities")
		return
	}
	response.Success(c, http.StatusOK, universities)
}

// UniversityDetail handles GET /admin/universities/:id.
func (h *AdminHandler) UniversityDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.admin.UniversityDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "university_detail")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// CreateUniversity handles POST /admin/universities.
func (h *AdminHandler) CreateUniversity(c *gin.Context) {
	var req model.CreateUniversityRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	university, err := h.admin.CreateUniversity(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "create_university")
		return
	}
	response.Success(c, http.StatusCreated, university)
}

// DeleteUniversity handles DELETE /admin/universities/:id.
func (h *AdminHandler) DeleteUniversity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteUniversity(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_university")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "University deleted."})
}

// ListCourses handles GET /admin/courses.
func (h *AdminHandler) ListCourses(c *gin.Context) {
	limit, offset := pagination(c)
	courses, err := h.admin.ListCourses(c.Request.Context(), limit, offset)
	if err != nil {
		h.fail(c, err, "list_courses")
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// CourseDetail handles GET /admin/courses/:id.
func (h *AdminHandler) CourseDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.admin.CourseDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "course_detail")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// CreateCourse handles POST /admin/courses.
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	course, err := h.admin.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "create_course")
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// UpdateCourseFees handles PATCH /admin/courses/:id/fees.
func (h *AdminHandler) UpdateCourseFees(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateCourseFeesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	course, err := h.admin.UpdateCourseFees(c.Request.Context(), id, req.Fees)
	if err != nil {
		h.fail(c, err, "update_course_fees")
		return
	}
	response.Success(c, http.StatusOK, course)
}

// DeleteCourse handles DELETE /admin/courses/:id.
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteCourse(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_course")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Course deleted."})
}

// AssignInstructor handles POST /admin/courses/:id/instructors/:instructorId.
func (h *AdminHandler) AssignInstructor(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	instructorID, ok := paramID(c, "instructorId")
	if !ok {
		return
	}
	if err := h.admin.AssignInstructor(c.Request.Context(), courseID, instructorID); err != nil {
		h.fail(c, err, "assign_instructor")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Instructor assigned."})
}

// AttachTopic handles POST /admin/courses/:id/topics/:topicId.
func (h *AdminHandler) AttachTopic(c *gin.Context) {
	courseID, ok := paramID(c, "id")
	if !ok {
		return
	}
	topicID, ok := paramID(c, "topicId")
	if !ok {
		return
	}
	if err := h.admin.AttachTopic(c.Request.Context(), courseID, topicID); err != nil {
		h.fail(c, err, "attach_topic")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Topic attached."})
}

// ListPrograms handles GET /admin/programs.
func (h *AdminHandler) ListPrograms(c *gin.Context) {
	programs, err := h.admin.ListPrograms(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_programs")
		return
	}
	response.Success(c, http.StatusOK, programs)
}

// CreateProgram handles POST /admin/programs.
func (h *AdminHandler) CreateProgram(c *gin.Context) {
	var req model.CreateProgramRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	program, err := h.admin.CreateProgram(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "create_program")
		return
	}
	response.Success(c, http.StatusCreated, program)
}

// DeleteProgram handles DELETE /admin/programs/:id.
func (h *AdminHandler) DeleteProgram(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteProgram(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_program")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Program deleted."})
}

// ListTopics handles GET /admin/topics.
func (h *AdminHandler) ListTopics(c *gin.Context) {
	topics, err := h.admin.ListTopics(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list_topics")
		return
	}
	response.Success(c, http.StatusOK, topics)
}

// CreateTopic handles POST /admin/topics.
func (h *AdminHandler) CreateTopic(c *gin.Context) {
	var req model.CreateTopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	topic, err := h.admin.CreateTopic(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "create_topic")
		return
	}
	response.Success(c, http.StatusCreated, topic)
}

// DeleteTopic handles DELETE /admin/topics/:id.
func (h *AdminHandler) DeleteTopic(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admin.DeleteTopic(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete_topic")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Topic deleted."})
}
