package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// DBTX is the subset of pgx used by the repositories.
// *pgxpool.Pool and pgx.Tx both satisfy it, as does a pgxmock pool in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository               *CourseRepository
	ReviewRepository               *ReviewRepository
	ReactionRepository             *ReactionRepository
	ReviewReactionRepository       *ReviewReactionRepository
	PrerequisiteRepository         *PrerequisiteRepository
	PrerequisiteReactionRepository *PrerequisiteReactionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:               NewCourseRepository(db),
		ReviewRepository:               NewReviewRepository(db),
		ReactionRepository:             NewReactionRepository(db),
		ReviewReactionRepository:       NewReviewReactionRepository(db),
		PrerequisiteRepository:         NewPrerequisiteRepository(db),
		PrerequisiteReactionRepository: NewPrerequisiteReactionRepository(db),
	}
}

// statementBuilder returns a squirrel builder using $n placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowExists runs SELECT EXISTS (SELECT 1 FROM table WHERE pred LIMIT 1)
func rowExists(ctx context.Context, db DBTX, sb squirrel.StatementBuilderType, table string, pred squirrel.Sqlizer) (bool, error) {
	sql, args, err := sb.Select("1").
		From(table).
		Where(pred).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build %s existence query: %w", table, err)
	}

	var exists bool
	err = db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) { // ErrNoRows is ok here, means false
		logger.Error().Err(err).Str("table", table).Msg("Error checking row existence")
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}

	return exists, nil
}
