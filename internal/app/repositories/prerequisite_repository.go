package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/db"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// PrerequisiteRepository handles prerequisites and their course associations
type PrerequisiteRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewPrerequisiteRepository creates a new PrerequisiteRepository
func NewPrerequisiteRepository(db DBTX) *PrerequisiteRepository {
	return &PrerequisiteRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateForCourse stores the prerequisite and links it to courseID in one transaction.
// It returns the course prerequisite link.
func (r *PrerequisiteRepository) CreateForCourse(ctx context.Context, courseID int64, prerequisite *models.Prerequisite) (*models.CoursePrerequisite, error) {
	link := &models.CoursePrerequisite{CourseID: courseID, Content: prerequisite.Content}

	err := db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("prerequisites").
			Columns("content").
			Values(prerequisite.Content).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create prerequisite query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&link.PrerequisiteID); err != nil {
			return fmt.Errorf("error creating prerequisite: %w", err)
		}

		sql, args, err = r.sb.Insert("course_prerequisites").
			Columns("course_id", "prerequisite_id").
			Values(courseID, link.PrerequisiteID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create course prerequisite query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&link.ID); err != nil {
			return fmt.Errorf("error creating course prerequisite: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error creating prerequisite for course")
		return nil, err
	}

	prerequisite.ID = link.PrerequisiteID
	return link, nil
}

// CoursePrerequisiteExists reports whether a course prerequisite link with id is stored
func (r *PrerequisiteRepository) CoursePrerequisiteExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "course_prerequisites", squirrel.Eq{"id": id})
}

// GetByCourseID returns the prerequisites linked to a course
func (r *PrerequisiteRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.CoursePrerequisite, error) {
	sql, args, err := r.sb.Select("cp.id", "cp.course_id", "cp.prerequisite_id", "p.content").
		From("course_prerequisites cp").
		Join("prerequisites p ON p.id = cp.prerequisite_id").
		Where(squirrel.Eq{"cp.course_id": courseID}).
		OrderBy("cp.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course prerequisites SQL")
		return nil, fmt.Errorf("failed to build get course prerequisites query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get course prerequisites query")
		return nil, fmt.Errorf("error querying course prerequisites: %w", err)
	}
	defer rows.Close()

	items := []*models.CoursePrerequisite{}
	for rows.Next() {
		cp := &models.CoursePrerequisite{}
		if err := rows.Scan(&cp.ID, &cp.CourseID, &cp.PrerequisiteID, &cp.Content); err != nil {
			logger.Error().Err(err).Msg("Error scanning course prerequisite row")
			return nil, fmt.Errorf("error scanning course prerequisite row: %w", err)
		}
		items = append(items, cp)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course prerequisite rows")
		return nil, fmt.Errorf("error iterating course prerequisite rows: %w", err)
	}

	return items, nil
}
