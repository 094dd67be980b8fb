package router

import (
	"net/http"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/handler"
	"github.com/Siddaarth-Babu/MOOC/internal/middleware"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Instructor *handler.InstructorHandler
	Analyst    *handler.AnalystHandler
	Admin      *handler.AdminHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Every role group sits behind the same RequireRole gate, parameterized by
// the role it admits.
func SetupRouter(
	auth *service.AuthService,
	accounts *service.AccountService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	authAPI := router.Group("/api/v1/auth")
	authAPI.Use(authLimiter.Middleware())
	{
		authAPI.POST("/signup", handlers.Auth.Signup)
		authAPI.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Student Group ──────────────────────────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(middleware.RequireRole(auth, accounts, model.RoleStudent))
	{
		studentAPI.GET("/me", handlers.Student.Me)
		studentAPI.PATCH("/me", handlers.Student.UpdateMe)
		studentAPI.GET("/catalog", handlers.Student.Catalog)
		studentAPI.GET("/courses", handlers.Student.Courses)
		studentAPI.GET("/courses/:id", handlers.Student.Course)
		studentAPI.POST("/courses/:id/enroll", handlers.Student.Enroll)
		studentAPI.POST("/assignments/:id/submissions", handlers.Student.Submit)
		studentAPI.GET("/results", handlers.Student.Results)
	}

	// ─── 3. Instructor Group ───────────────────────────────────────────
	instructorAPI := router.Group("/api/v1/instructor")
	instructorAPI.Use(middleware.RequireRole(auth, accounts, model.RoleInstructor))
	{
		instructorAPI.GET("/me", handlers.Instructor.Me)
		instructorAPI.GET("/courses", handlers.Instructor.Courses)
		instructorAPI.GET("/courses/:id", handlers.Instructor.Course)
		instructorAPI.POST("/courses/:id/textbook", handlers.Instructor.AddTextbook)
		instructorAPI.DELETE("/courses/:id/textbook", handlers.Instructor.DeleteTextbook)
		instructorAPI.POST("/courses/:id/videos", handlers.Instructor.AddVideo)
		instructorAPI.DELETE("/courses/:id/videos/:videoId", handlers.Instructor.DeleteVideo)
		instructorAPI.POST("/courses/:id/notes", handlers.Instructor.AddNote)
		instructorAPI.DELETE("/courses/:id/notes/:noteId", handlers.Instructor.DeleteNote)
		instructorAPI.POST("/courses/:id/assignments", handlers.Instructor.CreateAssignment)
		instructorAPI.GET("/courses/:id/evaluations", handlers.Instructor.CourseEvaluations)
		instructorAPI.POST("/courses/:id/evaluations", handlers.Instructor.RecordEvaluation)
		instructorAPI.DELETE("/assignments/:id", handlers.Instructor.DeleteAssignment)
		instructorAPI.GET("/assignments/:id/submissions", handlers.Instructor.Submissions)
		instructorAPI.PATCH("/submissions/:id/grade", handlers.Instructor.GradeSubmission)
	}

	// ─── 4. Analyst Group ──────────────────────────────────────────────
	analystAPI := router.Group("/api/v1/analyst")
	analystAPI.Use(middleware.RequireRole(auth, accounts, model.RoleAnalyst))
	{
		analystAPI.GET("/me", handlers.Analyst.Me)
		analystAPI.GET("/stats/platform", handlers.Analyst.PlatformStats)
		analystAPI.GET("/stats/course-enrollment", handlers.Analyst.CourseEnrollment)
	}

	// ─── 5. Admin Group ────────────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireRole(auth, accounts, model.RoleAdmin))
	{
		adminAPI.GET("/me", handlers.Admin.Me)
		adminAPI.GET("/stats/platform", handlers.Admin.PlatformStats)
		adminAPI.GET("/stats/course-enrollment", handlers.Admin.CourseEnrollment)

		adminAPI.GET("/students", handlers.Admin.ListStudents)
		adminAPI.GET("/students/:id", handlers.Admin.StudentDetail)
		adminAPI.DELETE("/students/:id", handlers.Admin.DeleteStudent)

		adminAPI.GET("/instructors", handlers.Admin.ListInstructors)
		adminAPI.GET("/instructors/:id", handlers.Admin.InstructorDetail)
		adminAPI.DELETE("/instructors/:id", handlers.Admin.DeleteInstructor)

		adminAPI.GET("/analysts", handlers.Admin.ListAnalysts)
		adminAPI.GET("/analysts/:id", handlers.Admin.AnalystDetail)
		adminAPI.DELETE("/analysts/:id", handlers.Admin.DeleteAnalyst)

		adminAPI.GET("/universities", handlers.Admin.ListUniversities)
		adminAPI.POST("/universities", handlers.Admin.CreateUniversity)
		adminAPI.GET("/universities/:id", handlers.Admin.UniversityDetail)
		adminAPI.DELETE("/universities/:id", handlers.Admin.DeleteUniversity)

		adminAPI.GET("/courses", handlers.Admin.ListCourses)
		adminAPI.POST("/courses", handlers.Admin.CreateCourse)
		adminAPI.GET("/courses/:id", handlers.Admin.CourseDetail)
		adminAPI.PATCH("/courses/:id/fees", handlers.Admin.UpdateCourseFees)
		adminAPI.DELETE("/courses/:id", handlers.Admin.DeleteCourse)
		adminAPI.POST("/courses/:id/instructors/:instructorId", handlers.Admin.AssignInstructor)
		adminAPI.POST("/courses/:id/topics/:topicId", handlers.Admin.AttachTopic)

		adminAPI.GET("/programs", handlers.Admin.ListPrograms)
		adminAPI.POST("/programs", handlers.Admin.CreateProgram)
		adminAPI.DELETE("/programs/:id", handlers.Admin.DeleteProgram)

		adminAPI.GET("/topics", handlers.Admin.ListTopics)
		adminAPI.POST("/topics", handlers.Admin.CreateTopic)
		adminAPI.DELETE("/topics/:id", handlers.Admin.DeleteTopic)
	}

	return router
}
