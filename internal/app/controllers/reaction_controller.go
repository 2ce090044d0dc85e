package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/app/services"
	"github.com/yigit/sharelearning/internal/middleware"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
)

// MsgReactionsNotFound answers a failed reaction listing
const MsgReactionsNotFound = "Reactions not found"

// ReactionController handles reactions and their attachment to reviews and prerequisites
type ReactionController struct {
	reactionService services.ReactionService
}

// NewReactionController creates a new ReactionController
func NewReactionController(reactionService services.ReactionService) *ReactionController {
	return &ReactionController{
		reactionService: reactionService,
	}
}

// CreateReaction handles POST /reactions/new_reaction
func (c *ReactionController) CreateReaction(ctx *gin.Context) {
	var req dto.CreateReactionRequest
	if !middleware.BindJSON(ctx, &req, http.StatusUnprocessableEntity, services.MsgParamsNotCorrect) {
		return
	}

	if _, err := c.reactionService.CreateReaction(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusBadRequest, services.MsgReactionCreateFailed)
		return
	}

	ctx.String(http.StatusOK, dto.MsgReactionCreated)
}

// GetAllReactions handles GET /reactions
func (c *ReactionController) GetAllReactions(ctx *gin.Context) {
	reactions, err := c.reactionService.GetAllReactions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, MsgReactionsNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReactionListResponse{Reactions: dto.NewReactionResponses(reactions)})
}

// CreateReviewReaction handles POST /reactions/new_review_reaction
func (c *ReactionController) CreateReviewReaction(ctx *gin.Context) {
	var req dto.CreateReviewReactionRequest
	if !middleware.BindJSON(ctx, &req, http.StatusUnprocessableEntity, services.MsgParamsNotCorrect) {
		return
	}

	if _, err := c.reactionService.CreateReviewReaction(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusBadRequest, services.MsgReviewReactionCreateFailed)
		return
	}

	ctx.String(http.StatusOK, dto.MsgReviewReactionCreated)
}

// CreatePrerequisiteReaction handles POST /reactions/new_prerequisite_reaction
func (c *ReactionController) CreatePrerequisiteReaction(ctx *gin.Context) {
	var req dto.CreatePrerequisiteReactionRequest
	if !middleware.BindJSON(ctx, &req, http.StatusUnprocessableEntity, services.MsgParamsNotCorrect) {
		return
	}

	if _, err := c.reactionService.CreatePrerequisiteReaction(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusBadRequest, services.MsgPrerequisiteReactionCreateFailed)
		return
	}

	ctx.String(http.StatusOK, dto.MsgPrerequisiteReactionCreated)
}

// GetReviewReactions handles GET /review/reactions/:id
func (c *ReactionController) GetReviewReactions(ctx *gin.Context) {
	reviewID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, services.MsgReviewNotFound)
		return
	}

	reactions, err := c.reactionService.GetReviewReactions(ctx.Request.Context(), reviewID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgReviewNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReviewReactionsResponse{
		ReviewID:  reviewID,
		Reactions: dto.NewReactionResponses(reactions),
	})
}

// GetPrerequisiteReactions handles GET /prerequisite/reactions/:id
func (c *ReactionController) GetPrerequisiteReactions(ctx *gin.Context) {
	coursePrerequisiteID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.String(http.StatusNotFound, services.MsgCoursePrerequisiteNotFound)
		return
	}

	reactions, err := c.reactionService.GetPrerequisiteReactions(ctx.Request.Context(), coursePrerequisiteID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, http.StatusNotFound, services.MsgCoursePrerequisiteNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.PrerequisiteReactionsResponse{
		CoursePrerequisiteID: coursePrerequisiteID,
		Reactions:            dto.NewReactionResponses(reactions),
	})
}
