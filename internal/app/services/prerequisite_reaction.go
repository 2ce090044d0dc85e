package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
	"github.com/yigit/sharelearning/internal/pkg/validation"
)

// Client-facing prerequisite reaction messages
const (
	MsgPrerequisiteReactionIDsNotCorrect = "course_prerequisite_id or reaction_id not correct"
	MsgPrerequisiteReactionCreateFailed  = "Failed to create reaction for prerequisite"
	MsgCoursePrerequisiteNotFound        = "Prerequisite not found"
)

// prerequisiteReactionParams is the record passed between the prerequisite reaction steps
type prerequisiteReactionParams struct {
	Request              dto.CreatePrerequisiteReactionRequest
	CoursePrerequisiteID int64
	ReactionID           int64
	PrerequisiteReaction models.CoursePrerequisiteReaction
}

func (s *reactionServiceImpl) validatePrerequisiteReactionIDs(_ context.Context, p prerequisiteReactionParams) (prerequisiteReactionParams, error) {
	if err := validation.Struct(p.Request); err != nil {
		return p, apperrors.NewUnprocessableError(apperrors.ErrValidationFailed, MsgParamsNotCorrect).
			WithDetails(map[string]interface{}{"validation": err.Error()})
	}
	p.CoursePrerequisiteID = *p.Request.CoursePrerequisiteID
	p.ReactionID = *p.Request.ReactionID
	return p, nil
}

func (s *reactionServiceImpl) checkPrerequisiteReactionIDsExist(ctx context.Context, p prerequisiteReactionParams) (prerequisiteReactionParams, error) {
	exists, err := s.deps.Prerequisites.CoursePrerequisiteExists(ctx, p.CoursePrerequisiteID)
	if err != nil {
		return p, apperrors.NewBadRequestError(err, MsgPrerequisiteReactionIDsNotCorrect)
	}
	if !exists {
		return p, apperrors.NewUnprocessableError(apperrors.ErrCoursePrerequisiteNotFound, MsgPrerequisiteReactionIDsNotCorrect)
	}
	if err := s.checkReactionExists(ctx, p.ReactionID, MsgPrerequisiteReactionIDsNotCorrect); err != nil {
		return p, err
	}
	return p, nil
}

func (s *reactionServiceImpl) insertPrerequisiteReaction(ctx context.Context, p prerequisiteReactionParams) (prerequisiteReactionParams, error) {
	pr := models.CoursePrerequisiteReaction{
		CoursePrerequisiteID: p.CoursePrerequisiteID,
		ReactionID:           p.ReactionID,
		Time:                 helpers.CreationTime(s.now()),
	}
	if _, err := s.deps.PrerequisiteReactions.CreatePrerequisiteReaction(ctx, &pr); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return p, apperrors.NewUnprocessableError(err, MsgPrerequisiteReactionIDsNotCorrect)
		}
		return p, apperrors.NewBadRequestError(err, MsgPrerequisiteReactionCreateFailed)
	}
	p.PrerequisiteReaction = pr
	return p, nil
}

// CreatePrerequisiteReaction attaches an existing reaction to an existing course prerequisite
func (s *reactionServiceImpl) CreatePrerequisiteReaction(ctx context.Context, req dto.CreatePrerequisiteReactionRequest) (*models.CoursePrerequisiteReaction, error) {
	res := s.createPrerequisiteReaction.Run(ctx, prerequisiteReactionParams{Request: req})
	if !res.OK() {
		return nil, res.Err()
	}
	pr := res.Params.PrerequisiteReaction
	s.deps.Publisher.Publish(models.ReactionEvent{
		Type:                 models.EventPrerequisiteReactionCreated,
		ReactionID:           pr.ReactionID,
		CoursePrerequisiteID: pr.CoursePrerequisiteID,
		Time:                 pr.Time,
	})
	return &pr, nil
}

// GetPrerequisiteReactions lists the reactions attached to an existing course prerequisite
func (s *reactionServiceImpl) GetPrerequisiteReactions(ctx context.Context, coursePrerequisiteID int64) ([]*models.Reaction, error) {
	exists, err := s.deps.Prerequisites.CoursePrerequisiteExists(ctx, coursePrerequisiteID)
	if err != nil {
		return nil, fmt.Errorf("error checking course prerequisite: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.ErrCoursePrerequisiteNotFound, MsgCoursePrerequisiteNotFound)
	}

	reactions, err := s.deps.PrerequisiteReactions.GetReactionsByCoursePrerequisiteID(ctx, coursePrerequisiteID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving prerequisite reactions: %w", err)
	}
	return reactions, nil
}
