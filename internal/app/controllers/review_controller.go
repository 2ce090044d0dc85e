package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/app/services"
	"github.com/yigit/sharelearning/internal/middleware"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
)

// ReviewController handles review-related operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview handles POST /reviews/:id.
// The body is {"content": "..."}; success is answered with a plain text confirmation.
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		// a malformed id can never name a stored course
		ctx.String(http.StatusNotFound, fmt.Sprintf("Course (id: %s) is not stored", ctx.Param("id")))
		return
	}

	// the course is checked before the content, whatever the body holds
	req := middleware.DecodeJSON[dto.CreateReviewRequest](ctx)

	if _, err := c.reviewService.CreateReview(ctx.Request.Context(), courseID, req); err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusInternalServerError, services.MsgReviewCreateFailed)
		return
	}

	ctx.String(http.StatusOK, dto.MsgReviewCreated)
}

// GetCourseReviews handles GET /reviews/:id
func (c *ReviewController) GetCourseReviews(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, services.MsgCourseNotFound)
		return
	}

	reviews, err := c.reviewService.GetCourseReviews(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgCourseNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseReviewsResponse{
		CourseID: courseID,
		Reviews:  dto.NewReviewResponses(reviews),
	})
}
