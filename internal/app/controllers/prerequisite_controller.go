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

// PrerequisiteController handles course prerequisites
type PrerequisiteController struct {
	prerequisiteService services.PrerequisiteService
}

// NewPrerequisiteController creates a new PrerequisiteController
func NewPrerequisiteController(prerequisiteService services.PrerequisiteService) *PrerequisiteController {
	return &PrerequisiteController{
		prerequisiteService: prerequisiteService,
	}
}

// CreatePrerequisite handles POST /prerequisite/:id with body {"prerequisite": "..."}
func (c *PrerequisiteController) CreatePrerequisite(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, fmt.Sprintf("Course (id: %s) is not stored", ctx.Param("id")))
		return
	}

	req := middleware.DecodeJSON[dto.CreatePrerequisiteRequest](ctx)

	if _, err := c.prerequisiteService.CreatePrerequisite(ctx.Request.Context(), courseID, req); err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusInternalServerError, services.MsgPrerequisiteCreateFailed)
		return
	}

	ctx.String(http.StatusOK, dto.MsgPrerequisiteCreated)
}

// GetCoursePrerequisites handles GET /prerequisite/:id
func (c *PrerequisiteController) GetCoursePrerequisites(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, services.MsgCourseNotFound)
		return
	}

	prerequisites, err := c.prerequisiteService.GetCoursePrerequisites(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgCourseNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.CoursePrerequisitesResponse{
		CourseID:      courseID,
		Prerequisites: dto.NewCoursePrerequisiteResponses(prerequisites),
	})
}
