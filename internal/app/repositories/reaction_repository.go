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

// reactionTypeConstraint is the unique constraint on reactions.type
const reactionTypeConstraint = "reactions_type_key"

// ReactionRepository handles reaction database operations
type ReactionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db DBTX) *ReactionRepository {
	return &ReactionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateReaction inserts a reaction and sets its ID.
// A duplicate type yields apperrors.ErrReactionTypeExists.
func (r *ReactionRepository) CreateReaction(ctx context.Context, reaction *models.Reaction) (int64, error) {
	sql, args, err := r.sb.Insert("reactions").
		Columns("type", "emoji").
		Values(reaction.Type, reaction.Emoji).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create reaction SQL")
		return 0, fmt.Errorf("failed to build create reaction query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, reactionTypeConstraint) {
			return 0, apperrors.ErrReactionTypeExists
		}
		logger.Error().Err(err).Str("type", reaction.Type).Msg("Error executing create reaction query")
		return 0, fmt.Errorf("error creating reaction: %w", err)
	}

	reaction.ID = id
	return id, nil
}

// ReactionExists reports whether a reaction with id is stored
func (r *ReactionRepository) ReactionExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "reactions", squirrel.Eq{"id": id})
}

// TypeExists reports whether a reaction with the given type is stored
func (r *ReactionRepository) TypeExists(ctx context.Context, reactionType string) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "reactions", squirrel.Eq{"type": reactionType})
}

// GetAllReactions retrieves every reaction ordered by id
func (r *ReactionRepository) GetAllReactions(ctx context.Context) ([]*models.Reaction, error) {
	query := r.sb.Select("id", "type", "emoji").
		From("reactions").
		OrderBy("id ASC")
	return queryReactions(ctx, r.db, query)
}

// queryReactions runs a select returning (id, type, emoji) rows
func queryReactions(ctx context.Context, db DBTX, query squirrel.SelectBuilder) ([]*models.Reaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building reactions SQL")
		return nil, fmt.Errorf("failed to build reactions query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing reactions query")
		return nil, fmt.Errorf("error querying reactions: %w", err)
	}
	defer rows.Close()

	reactions := []*models.Reaction{}
	for rows.Next() {
		reaction := &models.Reaction{}
		if err := rows.Scan(&reaction.ID, &reaction.Type, &reaction.Emoji); err != nil {
			logger.Error().Err(err).Msg("Error scanning reaction row")
			return nil, fmt.Errorf("error scanning reaction row: %w", err)
		}
		reactions = append(reactions, reaction)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating reaction rows")
		return nil, fmt.Errorf("error iterating reaction rows: %w", err)
	}

	return reactions, nil
}
