package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// CourseRepository reads the course catalog
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CourseExists reports whether a course with id is stored
func (r *CourseRepository) CourseExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "courses", squirrel.Eq{"id": id})
}

// CountBySource returns the number of stored courses per source.
// Sources without courses are absent from the map.
func (r *CourseRepository) CountBySource(ctx context.Context) (map[models.CourseSource]int64, error) {
	sql, args, err := r.sb.Select("source", "COUNT(*)").
		From("courses").
		GroupBy("source").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count courses SQL")
		return nil, fmt.Errorf("failed to build count courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, fmt.Errorf("error counting courses: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.CourseSource]int64)
	for rows.Next() {
		var source models.CourseSource
		var n int64
		if err := rows.Scan(&source, &n); err != nil {
			logger.Error().Err(err).Msg("Error scanning course count row")
			return nil, fmt.Errorf("error scanning course count row: %w", err)
		}
		counts[source] = n
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course count rows")
		return nil, fmt.Errorf("error iterating course count rows: %w", err)
	}

	return counts, nil
}

// CreateCourse inserts a course unless one with the same source and external id exists.
// It returns the id of the stored course either way.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("source", "external_id", "title").
		Values(course.Source, course.ExternalID, course.Title).
		Suffix("ON CONFLICT (source, external_id) DO UPDATE SET title = EXCLUDED.title RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("externalID", course.ExternalID).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}
