package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/helpers"
	"github.com/yigit/sharelearning/internal/pkg/pipeline"
	"github.com/yigit/sharelearning/internal/pkg/validation"
)

// Client-facing reaction failure messages
const (
	MsgParamsNotCorrect     = "params are not correct"
	MsgReactionTypeExists   = "The type of reaction already exists"
	MsgReactionCreateFailed = "Failed to create reaction"
)

// ReactionService defines the interface for reaction-related operations
type ReactionService interface {
	CreateReaction(ctx context.Context, req dto.CreateReactionRequest) (*models.Reaction, error)
	GetAllReactions(ctx context.Context) ([]*models.Reaction, error)

	CreateReviewReaction(ctx context.Context, req dto.CreateReviewReactionRequest) (*models.ReviewReaction, error)
	GetReviewReactions(ctx context.Context, reviewID int64) ([]*models.Reaction, error)

	CreatePrerequisiteReaction(ctx context.Context, req dto.CreatePrerequisiteReactionRequest) (*models.CoursePrerequisiteReaction, error)
	GetPrerequisiteReactions(ctx context.Context, coursePrerequisiteID int64) ([]*models.Reaction, error)
}

// ReactionServiceDeps groups the stores used by the reaction service
type ReactionServiceDeps struct {
	Reactions             ReactionStore
	Reviews               ReviewStore
	ReviewReactions       ReviewReactionStore
	Prerequisites         PrerequisiteStore
	PrerequisiteReactions PrerequisiteReactionStore

	// Publisher is optional; events are discarded when nil
	Publisher ReactionPublisher
}

// reactionParams is the record passed between the create reaction steps
type reactionParams struct {
	Request  dto.CreateReactionRequest
	Reaction models.Reaction
}

// reactionServiceImpl implements the ReactionService interface
type reactionServiceImpl struct {
	deps ReactionServiceDeps
	now  Clock

	createReaction             *pipeline.Pipeline[reactionParams]
	createReviewReaction       *pipeline.Pipeline[reviewReactionParams]
	createPrerequisiteReaction *pipeline.Pipeline[prerequisiteReactionParams]
}

// NewReactionService creates a new reaction service instance
func NewReactionService(deps ReactionServiceDeps, now Clock) ReactionService {
	if now == nil {
		now = time.Now
	}
	if deps.Publisher == nil {
		deps.Publisher = noopPublisher{}
	}
	s := &reactionServiceImpl{deps: deps, now: now}

	s.createReaction = pipeline.New[reactionParams]().
		Then("validate_reaction", s.validateReaction).
		Then("check_type_unique", s.checkTypeUnique).
		Then("create_reaction", s.insertReaction)

	s.createReviewReaction = pipeline.New[reviewReactionParams]().
		Then("validate_ids", s.validateReviewReactionIDs).
		Then("check_ids_exist", s.checkReviewReactionIDsExist).
		Then("create_review_reaction", s.insertReviewReaction)

	s.createPrerequisiteReaction = pipeline.New[prerequisiteReactionParams]().
		Then("validate_ids", s.validatePrerequisiteReactionIDs).
		Then("check_ids_exist", s.checkPrerequisiteReactionIDsExist).
		Then("create_prerequisite_reaction", s.insertPrerequisiteReaction)

	return s
}

func (s *reactionServiceImpl) validateReaction(_ context.Context, p reactionParams) (reactionParams, error) {
	if err := validation.Struct(p.Request); err != nil {
		return p, apperrors.NewUnprocessableError(apperrors.ErrValidationFailed, MsgParamsNotCorrect).
			WithDetails(map[string]interface{}{"validation": err.Error()})
	}

	typ := validation.NewStringValidation(p.Request.Type).WithMaxLength(validation.ReactionTypeMaxLength)
	emoji := validation.NewStringValidation(p.Request.Emoji).WithMaxLength(validation.EmojiMaxLength)
	if !typ.Validate() || !emoji.Validate() {
		return p, apperrors.NewUnprocessableError(apperrors.ErrValidationFailed, MsgParamsNotCorrect)
	}

	p.Reaction = models.Reaction{Type: typ.Value, Emoji: emoji.Value}
	return p, nil
}

func (s *reactionServiceImpl) checkTypeUnique(ctx context.Context, p reactionParams) (reactionParams, error) {
	exists, err := s.deps.Reactions.TypeExists(ctx, p.Reaction.Type)
	if err != nil {
		return p, apperrors.NewBadRequestError(err, MsgReactionCreateFailed)
	}
	if exists {
		return p, apperrors.NewUnprocessableError(apperrors.ErrReactionTypeExists, MsgReactionTypeExists)
	}
	return p, nil
}

func (s *reactionServiceImpl) insertReaction(ctx context.Context, p reactionParams) (reactionParams, error) {
	reaction := p.Reaction
	if _, err := s.deps.Reactions.CreateReaction(ctx, &reaction); err != nil {
		// a concurrent insert of the same type lost the race on the unique constraint
		if errors.Is(err, apperrors.ErrReactionTypeExists) {
			return p, apperrors.NewUnprocessableError(err, MsgReactionTypeExists)
		}
		return p, apperrors.NewBadRequestError(err, MsgReactionCreateFailed)
	}
	p.Reaction = reaction
	return p, nil
}

// CreateReaction stores a reaction whose type is not taken yet
func (s *reactionServiceImpl) CreateReaction(ctx context.Context, req dto.CreateReactionRequest) (*models.Reaction, error) {
	res := s.createReaction.Run(ctx, reactionParams{Request: req})
	if !res.OK() {
		return nil, res.Err()
	}
	reaction := res.Params.Reaction
	s.deps.Publisher.Publish(models.ReactionEvent{
		Type:         models.EventReactionCreated,
		ReactionID:   reaction.ID,
		ReactionType: reaction.Type,
		Emoji:        reaction.Emoji,
		Time:         helpers.CreationTime(s.now()),
	})
	return &reaction, nil
}

// GetAllReactions retrieves all reactions
func (s *reactionServiceImpl) GetAllReactions(ctx context.Context) ([]*models.Reaction, error) {
	reactions, err := s.deps.Reactions.GetAllReactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reactions: %w", err)
	}
	return reactions, nil
}

// checkReactionExists is shared by both attachment pipelines.
// A missing reaction is reported with notFoundMsg as an unprocessable failure.
func (s *reactionServiceImpl) checkReactionExists(ctx context.Context, reactionID int64, notFoundMsg string) error {
	exists, err := s.deps.Reactions.ReactionExists(ctx, reactionID)
	if err != nil {
		return apperrors.NewBadRequestError(err, notFoundMsg)
	}
	if !exists {
		return apperrors.NewUnprocessableError(apperrors.ErrReactionNotFound, notFoundMsg)
	}
	return nil
}
