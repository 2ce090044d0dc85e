package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/dberrors"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// ReviewReactionRepository handles reactions attached to reviews
type ReviewReactionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReviewReactionRepository creates a new ReviewReactionRepository
func NewReviewReactionRepository(db DBTX) *ReviewReactionRepository {
	return &ReviewReactionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateReviewReaction inserts the join row and sets its ID
func (r *ReviewReactionRepository) CreateReviewReaction(ctx context.Context, rr *models.ReviewReaction) (int64, error) {
	sql, args, err := r.sb.Insert("review_reactions").
		Columns("review_id", "reaction_id", "time").
		Values(rr.ReviewID, rr.ReactionID, rr.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create review reaction SQL")
		return 0, fmt.Errorf("failed to build create review reaction query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rr.ID); err != nil {
		// a referenced row was deleted after the existence checks
		if dberrors.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("review reaction references a missing row: %w", apperrors.ErrResourceNotFound)
		}
		logger.Error().Err(err).Int64("reviewID", rr.ReviewID).Int64("reactionID", rr.ReactionID).Msg("Error executing create review reaction query")
		return 0, fmt.Errorf("error creating review reaction: %w", err)
	}

	return rr.ID, nil
}

// GetReactionsByReviewID returns the reactions attached to a review, one entry per attachment
func (r *ReviewReactionRepository) GetReactionsByReviewID(ctx context.Context, reviewID int64) ([]*models.Reaction, error) {
	query := r.sb.Select("re.id", "re.type", "re.emoji").
		From("review_reactions rr").
		Join("reactions re ON re.id = rr.reaction_id").
		Where(squirrel.Eq{"rr.review_id": reviewID}).
		OrderBy("rr.id ASC")
	return queryReactions(ctx, r.db, query)
}
