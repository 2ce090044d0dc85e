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

// ReviewRepository handles reviews and their course associations
type ReviewRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateForCourse stores the review and links it to courseID in one transaction.
// On success review.ID is set and the new id returned.
func (r *ReviewRepository) CreateForCourse(ctx context.Context, courseID int64, review *models.Review) (int64, error) {
	err := db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		reviewID, err := r.insertReview(ctx, tx, review)
		if err != nil {
			return err
		}
		if err := r.insertCourseReview(ctx, tx, courseID, reviewID); err != nil {
			return err
		}
		review.ID = reviewID
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error creating review for course")
		return 0, err
	}

	return review.ID, nil
}

func (r *ReviewRepository) insertReview(ctx context.Context, q DBTX, review *models.Review) (int64, error) {
	sql, args, err := r.sb.Insert("reviews").
		Columns("content", "created_time").
		Values(review.Content, review.CreatedTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create review query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating review: %w", err)
	}
	return id, nil
}

func (r *ReviewRepository) insertCourseReview(ctx context.Context, q DBTX, courseID, reviewID int64) error {
	sql, args, err := r.sb.Insert("course_reviews").
		Columns("course_id", "review_id").
		Values(courseID, reviewID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course review query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating course review: %w", err)
	}
	return nil
}

// ReviewExists reports whether a review with id is stored
func (r *ReviewRepository) ReviewExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "reviews", squirrel.Eq{"id": id})
}

// GetByCourseID returns the reviews of a course, oldest first
func (r *ReviewRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Review, error) {
	sql, args, err := r.sb.Select("r.id", "r.content", "r.created_time").
		From("reviews r").
		Join("course_reviews cr ON cr.review_id = r.id").
		Where(squirrel.Eq{"cr.course_id": courseID}).
		OrderBy("r.created_time ASC", "r.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course reviews SQL")
		return nil, fmt.Errorf("failed to build get course reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get course reviews query")
		return nil, fmt.Errorf("error querying course reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.Content, &review.CreatedTime); err != nil {
			logger.Error().Err(err).Msg("Error scanning review row")
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating review rows")
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}
