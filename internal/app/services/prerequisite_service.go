package services

import (
	"context"
	"fmt"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/pipeline"
	"github.com/yigit/sharelearning/internal/pkg/validation"
)

// Client-facing prerequisite failure messages
const (
	MsgPrerequisiteNoContent    = "The prerequisite has no content to be stored"
	MsgPrerequisiteCreateFailed = "Failed to create prerequisite"
)

// PrerequisiteService defines the interface for prerequisite-related operations
type PrerequisiteService interface {
	CreatePrerequisite(ctx context.Context, courseID int64, req dto.CreatePrerequisiteRequest) (*models.CoursePrerequisite, error)
	GetCoursePrerequisites(ctx context.Context, courseID int64) ([]*models.CoursePrerequisite, error)
}

type prerequisiteParams struct {
	CourseID           int64
	Content            *string
	CoursePrerequisite models.CoursePrerequisite
}

type prerequisiteServiceImpl struct {
	courses       CourseStore
	prerequisites PrerequisiteStore
	create        *pipeline.Pipeline[prerequisiteParams]
}

// NewPrerequisiteService creates a new prerequisite service instance
func NewPrerequisiteService(courses CourseStore, prerequisites PrerequisiteStore) PrerequisiteService {
	s := &prerequisiteServiceImpl{courses: courses, prerequisites: prerequisites}
	s.create = pipeline.New[prerequisiteParams]().
		Then("check_course", s.checkCourse).
		Then("validate_prerequisite", s.validatePrerequisite).
		Then("create_prerequisite", s.createPrerequisite)
	return s
}

func (s *prerequisiteServiceImpl) checkCourse(ctx context.Context, p prerequisiteParams) (prerequisiteParams, error) {
	exists, err := s.courses.CourseExists(ctx, p.CourseID)
	if err != nil {
		return p, apperrors.NewInternalError(err, MsgPrerequisiteCreateFailed)
	}
	if !exists {
		return p, courseNotStored(p.CourseID)
	}
	return p, nil
}

func (s *prerequisiteServiceImpl) validatePrerequisite(_ context.Context, p prerequisiteParams) (prerequisiteParams, error) {
	v := validation.NewStringValidation(p.Content).WithMaxLength(validation.PrerequisiteMaxLength)
	if !v.Validate() {
		return p, apperrors.NewBadRequestError(apperrors.ErrPrerequisiteEmptyContent, MsgPrerequisiteNoContent)
	}
	p.CoursePrerequisite.Content = v.Value
	return p, nil
}

func (s *prerequisiteServiceImpl) createPrerequisite(ctx context.Context, p prerequisiteParams) (prerequisiteParams, error) {
	cp, err := s.prerequisites.CreateForCourse(ctx, p.CourseID, &models.Prerequisite{Content: p.CoursePrerequisite.Content})
	if err != nil {
		return p, apperrors.NewInternalError(err, MsgPrerequisiteCreateFailed)
	}
	p.CoursePrerequisite = *cp
	return p, nil
}

// CreatePrerequisite stores a prerequisite and links it to an existing course
func (s *prerequisiteServiceImpl) CreatePrerequisite(ctx context.Context, courseID int64, req dto.CreatePrerequisiteRequest) (*models.CoursePrerequisite, error) {
	res := s.create.Run(ctx, prerequisiteParams{CourseID: courseID, Content: req.Prerequisite})
	if !res.OK() {
		return nil, res.Err()
	}
	cp := res.Params.CoursePrerequisite
	return &cp, nil
}

// GetCoursePrerequisites lists the prerequisites of an existing course
func (s *prerequisiteServiceImpl) GetCoursePrerequisites(ctx context.Context, courseID int64) ([]*models.CoursePrerequisite, error) {
	exists, err := s.courses.CourseExists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCourseNotFound, MsgCourseNotFound)
	}

	prerequisites, err := s.prerequisites.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving prerequisites: %w", err)
	}
	return prerequisites, nil
}

