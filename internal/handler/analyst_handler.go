package handler

import (
	"net/http"

	"github.com/Siddaarth-Babu/MOOC/internal/middleware"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AnalystHandler serves the analyst dashboard routes.
type AnalystHandler struct {
	stats *service.StatsService
	log   zerolog.Logger
}

// NewAnalystHandler creates a new AnalystHandler.
func NewAnalystHandler(stats *service.StatsService) *AnalystHandler {
	return &AnalystHandler{
		stats: stats,
		log:   log.With().Str("component", "analyst_handler").Logger(),
	}
}

// Me handles GET /analyst/me.
func (h *AnalystHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.GetAnalyst(c))
}

// PlatformStats handles GET /analyst/stats/platform.
func (h *AnalystHandler) PlatformStats(c *gin.Context) {
	stats, err := h.stats.Platform(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Platform stats failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// CourseEnrollment handles GET /analyst/stats/course-enrollment.
func (h *AnalystHandler) CourseEnrollment(c *gin.Context) {
	report, err := h.stats.CourseEnrollment(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Course enrollment report failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, report)
}
