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

// PrerequisiteReactionRepository handles reactions attached to course prerequisites
type PrerequisiteReactionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPrerequisiteReactionRepository creates a new PrerequisiteReactionRepository
func NewPrerequisiteReactionRepository(db DBTX) *PrerequisiteReactionRepository {
	return &PrerequisiteReactionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreatePrerequisiteReaction inserts the join row and sets its ID
func (r *PrerequisiteReactionRepository) CreatePrerequisiteReaction(ctx context.Context, pr *models.CoursePrerequisiteReaction) (int64, error) {
	sql, args, err := r.sb.Insert("course_prerequisite_reactions").
		Columns("course_prerequisite_id", "reaction_id", "time").
		Values(pr.CoursePrerequisiteID, pr.ReactionID, pr.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create prerequisite reaction SQL")
		return 0, fmt.Errorf("failed to build create prerequisite reaction query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&pr.ID); err != nil {
		// a referenced row was deleted after the existence checks
		if dberrors.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("prerequisite reaction references a missing row: %w", apperrors.ErrResourceNotFound)
		}
		logger.Error().Err(err).Int64("coursePrerequisiteID", pr.CoursePrerequisiteID).Int64("reactionID", pr.ReactionID).Msg("Error executing create prerequisite reaction query")
		return 0, fmt.Errorf("error creating prerequisite reaction: %w", err)
	}

	return pr.ID, nil
}

// GetReactionsByCoursePrerequisiteID returns the reactions attached to a course prerequisite
func (r *PrerequisiteReactionRepository) GetReactionsByCoursePrerequisiteID(ctx context.Context, coursePrerequisiteID int64) ([]*models.Reaction, error) {
	query := r.sb.Select("re.id", "re.type", "re.emoji").
		From("course_prerequisite_reactions cpr").
		Join("reactions re ON re.id = cpr.reaction_id").
		Where(squirrel.Eq{"cpr.course_prerequisite_id": coursePrerequisiteID}).
		OrderBy("cpr.id ASC")
	return queryReactions(ctx, r.db, query)
}
