package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/app/services"
	"github.com/yigit/sharelearning/internal/middleware"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
)

// OverviewController serves the catalog counters and the health probe
type OverviewController struct {
	overviewService services.OverviewService
}

// NewOverviewController creates a new OverviewController
func NewOverviewController(overviewService services.OverviewService) *OverviewController {
	return &OverviewController{
		overviewService: overviewService,
	}
}

// GetOverview handles GET /overview
func (c *OverviewController) GetOverview(ctx *gin.Context) {
	counts, err := c.overviewService.GetOverview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgCoursesNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewOverviewResponse(counts))
}

// GetCourseReviewsOverview handles GET /course/:id/reviews.
// It answers with the per-source catalog counts, not with the reviews themselves.
func (c *OverviewController) GetCourseReviewsOverview(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, services.MsgCoursesNotFound)
		return
	}

	counts, err := c.overviewService.CourseReviewsOverview(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgCoursesNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseReviewsOverviewResponse(counts))
}

// Health handles GET /health
func (c *OverviewController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
