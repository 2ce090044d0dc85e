package services

import (
	"context"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// MsgCoursesNotFound is returned whenever the catalog cannot be queried
const MsgCoursesNotFound = "Courses not found"

// OverviewService reports how many courses each source holds
type OverviewService interface {
	GetOverview(ctx context.Context) (models.SourceCounts, error)
	// CourseReviewsOverview looks the course up first; a lookup failure is reported,
	// an unknown id is not.
	CourseReviewsOverview(ctx context.Context, courseID int64) (models.SourceCounts, error)
}

type overviewServiceImpl struct {
	courses CourseStore
}

// NewOverviewService creates a new overview service instance
func NewOverviewService(courses CourseStore) OverviewService {
	return &overviewServiceImpl{courses: courses}
}

// GetOverview counts the stored courses per source. YouTube is never counted.
func (s *overviewServiceImpl) GetOverview(ctx context.Context) (models.SourceCounts, error) {
	counts, err := s.courses.CountBySource(ctx)
	if err != nil {
		return models.SourceCounts{}, apperrors.NewNotFoundError(err, MsgCoursesNotFound)
	}

	return models.SourceCounts{
		Coursera: models.FiniteCount(counts[models.SourceCoursera]),
		Udacity:  models.FiniteCount(counts[models.SourceUdacity]),
		YouTube:  models.InfiniteCount(),
	}, nil
}

func (s *overviewServiceImpl) CourseReviewsOverview(ctx context.Context, courseID int64) (models.SourceCounts, error) {
	exists, err := s.courses.CourseExists(ctx, courseID)
	if err != nil {
		return models.SourceCounts{}, apperrors.NewNotFoundError(err, MsgCoursesNotFound)
	}
	if !exists {
		logger.Debug().Int64("course_id", courseID).Msg("Course reviews overview requested for unknown course")
	}
	return s.GetOverview(ctx)
}
