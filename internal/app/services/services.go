package services

import (
	"context"
	"time"

	"github.com/yigit/sharelearning/internal/app/models"
)

// Services defined in this package:
// - ReviewService: creates and lists course reviews
// - ReactionService: creates reactions and attaches them to reviews and prerequisites
// - PrerequisiteService: creates and lists course prerequisites
// - OverviewService: reports per-source course counts
//
// Write operations run as pipelines (see internal/pkg/pipeline). Failures are
// *apperrors.CustomError values whose Kind the controllers map to a status.

// CourseStore is the course catalog as seen by the services
type CourseStore interface {
	CourseExists(ctx context.Context, id int64) (bool, error)
	CountBySource(ctx context.Context) (map[models.CourseSource]int64, error)
}

// ReviewStore persists reviews
type ReviewStore interface {
	CreateForCourse(ctx context.Context, courseID int64, review *models.Review) (int64, error)
	ReviewExists(ctx context.Context, id int64) (bool, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Review, error)
}

// ReactionStore persists reactions
type ReactionStore interface {
	CreateReaction(ctx context.Context, reaction *models.Reaction) (int64, error)
	ReactionExists(ctx context.Context, id int64) (bool, error)
	TypeExists(ctx context.Context, reactionType string) (bool, error)
	GetAllReactions(ctx context.Context) ([]*models.Reaction, error)
}

// ReviewReactionStore persists reactions attached to reviews
type ReviewReactionStore interface {
	CreateReviewReaction(ctx context.Context, rr *models.ReviewReaction) (int64, error)
	GetReactionsByReviewID(ctx context.Context, reviewID int64) ([]*models.Reaction, error)
}

// PrerequisiteStore persists prerequisites and their course links
type PrerequisiteStore interface {
	CreateForCourse(ctx context.Context, courseID int64, prerequisite *models.Prerequisite) (*models.CoursePrerequisite, error)
	CoursePrerequisiteExists(ctx context.Context, id int64) (bool, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.CoursePrerequisite, error)
}

// PrerequisiteReactionStore persists reactions attached to course prerequisites
type PrerequisiteReactionStore interface {
	CreatePrerequisiteReaction(ctx context.Context, pr *models.CoursePrerequisiteReaction) (int64, error)
	GetReactionsByCoursePrerequisiteID(ctx context.Context, coursePrerequisiteID int64) ([]*models.Reaction, error)
}

// ReactionPublisher receives reaction events after the write has been stored
type ReactionPublisher interface {
	Publish(event models.ReactionEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(models.ReactionEvent) {}

// Clock returns the current time; replaced in tests
type Clock func() time.Time
