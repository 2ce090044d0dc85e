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

// Client-facing review reaction messages
const (
	MsgReviewReactionIDsNotCorrect = "review_id or reaction_id not correct"
	MsgReviewReactionCreateFailed  = "Failed to create reaction for review"
	MsgReviewNotFound              = "Review not found"
)

// reviewReactionParams is the record passed between the review reaction steps
type reviewReactionParams struct {
	Request        dto.CreateReviewReactionRequest
	ReviewID       int64
	ReactionID     int64
	ReviewReaction models.ReviewReaction
}

func (s *reactionServiceImpl) validateReviewReactionIDs(_ context.Context, p reviewReactionParams) (reviewReactionParams, error) {
	if err := validation.Struct(p.Request); err != nil {
		return p, apperrors.NewUnprocessableError(apperrors.ErrValidationFailed, MsgParamsNotCorrect).
			WithDetails(map[string]interface{}{"validation": err.Error()})
	}
	p.ReviewID = *p.Request.ReviewID
	p.ReactionID = *p.Request.ReactionID
	return p, nil
}

func (s *reactionServiceImpl) checkReviewReactionIDsExist(ctx context.Context, p reviewReactionParams) (reviewReactionParams, error) {
	exists, err := s.deps.Reviews.ReviewExists(ctx, p.ReviewID)
	if err != nil {
		return p, apperrors.NewBadRequestError(err, MsgReviewReactionIDsNotCorrect)
	}
	if !exists {
		return p, apperrors.NewUnprocessableError(apperrors.ErrReviewNotFound, MsgReviewReactionIDsNotCorrect)
	}
	if err := s.checkReactionExists(ctx, p.ReactionID, MsgReviewReactionIDsNotCorrect); err != nil {
		return p, err
	}
	return p, nil
}

func (s *reactionServiceImpl) insertReviewReaction(ctx context.Context, p reviewReactionParams) (reviewReactionParams, error) {
	rr := models.ReviewReaction{
		ReviewID:   p.ReviewID,
		ReactionID: p.ReactionID,
		Time:       helpers.CreationTime(s.now()),
	}
	if _, err := s.deps.ReviewReactions.CreateReviewReaction(ctx, &rr); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return p, apperrors.NewUnprocessableError(err, MsgReviewReactionIDsNotCorrect)
		}
		return p, apperrors.NewBadRequestError(err, MsgReviewReactionCreateFailed)
	}
	p.ReviewReaction = rr
	return p, nil
}

// CreateReviewReaction attaches an existing reaction to an existing review
func (s *reactionServiceImpl) CreateReviewReaction(ctx context.Context, req dto.CreateReviewReactionRequest) (*models.ReviewReaction, error) {
	res := s.createReviewReaction.Run(ctx, reviewReactionParams{Request: req})
	if !res.OK() {
		return nil, res.Err()
	}
	rr := res.Params.ReviewReaction
	s.deps.Publisher.Publish(models.ReactionEvent{
		Type:       models.EventReviewReactionCreated,
		ReactionID: rr.ReactionID,
		ReviewID:   rr.ReviewID,
		Time:       rr.Time,
	})
	return &rr, nil
}

// GetReviewReactions lists the reactions attached to an existing review
func (s *reactionServiceImpl) GetReviewReactions(ctx context.Context, reviewID int64) ([]*models.Reaction, error) {
	exists, err := s.deps.Reviews.ReviewExists(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("error checking review: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.ErrReviewNotFound, MsgReviewNotFound)
	}

	reactions, err := s.deps.ReviewReactions.GetReactionsByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving review reactions: %w", err)
	}
	return reactions, nil
}
