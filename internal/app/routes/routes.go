package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/app/controllers"
	"github.com/yigit/sharelearning/internal/app/services"
	"github.com/yigit/sharelearning/internal/middleware"
	"github.com/yigit/sharelearning/internal/pkg/websocket"
)

// SetupRouter configures all application routes under apiPrefix, e.g. "/api/v0.1".
// Every route recovers from panics with the same fixed response it uses for
// unclassified failures.
func SetupRouter(
	router *gin.Engine,
	apiPrefix string,
	overviewController *controllers.OverviewController,
	reviewController *controllers.ReviewController,
	prerequisiteController *controllers.PrerequisiteController,
	reactionController *controllers.ReactionController,
	feedHandler *websocket.Handler,
) {
	api := router.Group(apiPrefix)

	api.GET("/health", overviewController.Health)

	// --- Catalog counters ---
	catalog := api.Group("")
	catalog.Use(middleware.Guard(http.StatusNotFound, services.MsgCoursesNotFound))
	{
		catalog.GET("/overview", overviewController.GetOverview)
		catalog.GET("/course/:id/reviews", overviewController.GetCourseReviewsOverview)
	}

	// --- Reviews ---
	reviews := api.Group("/reviews")
	{
		reviews.POST("/:id",
			middleware.Guard(http.StatusInternalServerError, services.MsgReviewCreateFailed),
			reviewController.CreateReview)
		reviews.GET("/:id",
			middleware.Guard(http.StatusNotFound, services.MsgCourseNotFound),
			reviewController.GetCourseReviews)
	}

	// --- Prerequisites ---
	prerequisites := api.Group("/prerequisite")
	{
		prerequisites.POST("/:id",
			middleware.Guard(http.StatusInternalServerError, services.MsgPrerequisiteCreateFailed),
			prerequisiteController.CreatePrerequisite)
		prerequisites.GET("/:id",
			middleware.Guard(http.StatusNotFound, services.MsgCourseNotFound),
			prerequisiteController.GetCoursePrerequisites)
		prerequisites.GET("/reactions/:id",
			middleware.Guard(http.StatusNotFound, services.MsgCoursePrerequisiteNotFound),
			reactionController.GetPrerequisiteReactions)
	}

	// --- Reactions ---
	reactions := api.Group("/reactions")
	{
		reactions.GET("",
			middleware.Guard(http.StatusNotFound, controllers.MsgReactionsNotFound),
			reactionController.GetAllReactions)
		// live feed of reaction events over a websocket
		reactions.GET("/live", feedHandler.Subscribe)

		writes := reactions.Group("")
		writes.Use(middleware.Guard(http.StatusBadRequest, services.MsgReactionCreateFailed))
		{
			writes.POST("/new_reaction", reactionController.CreateReaction)
			writes.POST("/new_review_reaction", reactionController.CreateReviewReaction)
			writes.POST("/new_prerequisite_reaction", reactionController.CreatePrerequisiteReaction)
		}
	}

	api.GET("/review/reactions/:id",
		middleware.Guard(http.StatusNotFound, services.MsgReviewNotFound),
		reactionController.GetReviewReactions)
}
