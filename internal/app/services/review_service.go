package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
	"github.com/yigit/sharelearning/internal/pkg/pipeline"
	"github.com/yigit/sharelearning/internal/pkg/validation"
)

// Client-facing review failure messages
const (
	MsgReviewNoContent    = "The review has no content to be stored"
	MsgReviewCreateFailed = "Failed to create review"
	MsgCourseNotFound     = "Course not found"
)

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	CreateReview(ctx context.Context, courseID int64, req dto.CreateReviewRequest) (*models.Review, error)
	GetCourseReviews(ctx context.Context, courseID int64) ([]*models.Review, error)
}

// reviewParams is the record passed between the create review steps
type reviewParams struct {
	CourseID int64
	Content  *string
	Review   models.Review
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	courses CourseStore
	reviews ReviewStore
	now     Clock
	create  *pipeline.Pipeline[reviewParams]
}

// NewReviewService creates a new review service instance
func NewReviewService(courses CourseStore, reviews ReviewStore, now Clock) ReviewService {
	if now == nil {
		now = time.Now
	}
	s := &reviewServiceImpl{courses: courses, reviews: reviews, now: now}
	s.create = pipeline.New[reviewParams]().
		Then("check_course", s.checkCourse).
		Then("validate_content", s.validateContent).
		Then("create_review", s.createReview)
	return s
}

// courseNotStored builds the 404 failure for an unknown course id
func courseNotStored(courseID int64) *apperrors.CustomError {
	return apperrors.NewNotFoundError(apperrors.ErrCourseNotFound, fmt.Sprintf("Course (id: %d) is not stored", courseID))
}

func (s *reviewServiceImpl) checkCourse(ctx context.Context, p reviewParams) (reviewParams, error) {
	exists, err := s.courses.CourseExists(ctx, p.CourseID)
	if err != nil {
		return p, apperrors.NewInternalError(err, MsgReviewCreateFailed)
	}
	if !exists {
		return p, courseNotStored(p.CourseID)
	}
	return p, nil
}

func (s *reviewServiceImpl) validateContent(_ context.Context, p reviewParams) (reviewParams, error) {
	v := validation.NewStringValidation(p.Content).WithMaxLength(validation.ReviewContentMaxLength)
	if !v.Validate() {
		return p, apperrors.NewBadRequestError(apperrors.ErrReviewEmptyContent, MsgReviewNoContent)
	}
	p.Review.Content = v.Value
	return p, nil
}

func (s *reviewServiceImpl) createReview(ctx context.Context, p reviewParams) (reviewParams, error) {
	review := models.Review{
		Content:     p.Review.Content,
		CreatedTime: helpers.CreationTime(s.now()),
	}
	if _, err := s.reviews.CreateForCourse(ctx, p.CourseID, &review); err != nil {
		return p, apperrors.NewInternalError(err, MsgReviewCreateFailed)
	}
	p.Review = review
	return p, nil
}

// CreateReview stores a review for an existing course together with its course link
func (s *reviewServiceImpl) CreateReview(ctx context.Context, courseID int64, req dto.CreateReviewRequest) (*models.Review, error) {
	res := s.create.Run(ctx, reviewParams{CourseID: courseID, Content: req.Content})
	if !res.OK() {
		return nil, res.Err()
	}
	review := res.Params.Review
	return &review, nil
}

// GetCourseReviews lists the reviews of an existing course
func (s *reviewServiceImpl) GetCourseReviews(ctx context.Context, courseID int64) ([]*models.Review, error) {
	exists, err := s.courses.CourseExists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCourseNotFound, MsgCourseNotFound)
	}

	reviews, err := s.reviews.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reviews: %w", err)
	}
	return reviews, nil
}
