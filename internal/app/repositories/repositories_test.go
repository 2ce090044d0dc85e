package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestReviewRepository_CreateForCourse(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    int64
		expectErr bool
	}{
		{
			name: "both inserts committed",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery("INSERT INTO reviews").
					WithArgs("great", created).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
				mock.ExpectExec("INSERT INTO course_reviews").
					WithArgs(int64(3), int64(7)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			wantID: 7,
		},
		{
			name: "association failure rolls back the review",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery("INSERT INTO reviews").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
				mock.ExpectExec("INSERT INTO course_reviews").
					WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
			expectErr: true,
		},
		{
			name: "review insert failure",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery("INSERT INTO reviews").WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)
			repo := NewReviewRepository(mock)

			review := &models.Review{Content: "great", CreatedTime: created}
			id, err := repo.CreateForCourse(context.Background(), 3, review)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Zero(t, review.ID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
				assert.Equal(t, tt.wantID, review.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_ReviewExists(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := NewReviewRepository(mock).ReviewExists(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionRepository_CreateReaction(t *testing.T) {
	tests := []struct {
		name    string
		result  func(e *pgxmock.ExpectedQuery)
		wantErr error
	}{
		{
			name: "created",
			result: func(e *pgxmock.ExpectedQuery) {
				e.WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
		},
		{
			name: "duplicate type",
			result: func(e *pgxmock.ExpectedQuery) {
				e.WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reactions_type_key"})
			},
			wantErr: apperrors.ErrReactionTypeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.result(mock.ExpectQuery("INSERT INTO reactions").WithArgs("happy", "😀"))

			reaction := &models.Reaction{Type: "happy", Emoji: "😀"}
			id, err := NewReactionRepository(mock).CreateReaction(context.Background(), reaction)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), id)
				assert.Equal(t, int64(1), reaction.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewReactionRepository_GetReactionsByReviewID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM review_reactions rr JOIN reactions re").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type", "emoji"}).
			AddRow(int64(1), "happy", "😀").
			AddRow(int64(1), "happy", "😀"))

	reactions, err := NewReviewReactionRepository(mock).GetReactionsByReviewID(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, reactions, 2)
	assert.Equal(t, "happy", reactions[0].Type)
	assert.Equal(t, "😀", reactions[1].Emoji)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrerequisiteReactionRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO course_prerequisite_reactions").
		WithArgs(int64(2), int64(4), now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	pr := &models.CoursePrerequisiteReaction{CoursePrerequisiteID: 2, ReactionID: 4, Time: now}
	id, err := NewPrerequisiteReactionRepository(mock).CreatePrerequisiteReaction(context.Background(), pr)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewReactionRepository_CreateMissingReference(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("INSERT INTO review_reactions").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "review_reactions_review_id_fkey"})

	rr := &models.ReviewReaction{ReviewID: 2, ReactionID: 4, Time: time.Now()}
	_, err := NewReviewReactionRepository(mock).CreateReviewReaction(context.Background(), rr)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_CountBySource(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT source, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"source", "count"}).
			AddRow(models.SourceCoursera, int64(3)).
			AddRow(models.SourceUdacity, int64(1)))

	counts, err := NewCourseRepository(mock).CountBySource(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[models.SourceCoursera])
	assert.Equal(t, int64(1), counts[models.SourceUdacity])
	_, hasYouTube := counts[models.SourceYouTube]
	assert.False(t, hasYouTube)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrerequisiteRepository_CreateForCourse(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO prerequisites").
		WithArgs("linear algebra").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery("INSERT INTO course_prerequisites").
		WithArgs(int64(2), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	prereq := &models.Prerequisite{Content: "linear algebra"}
	link, err := NewPrerequisiteRepository(mock).CreateForCourse(context.Background(), 2, prereq)

	require.NoError(t, err)
	assert.Equal(t, int64(8), link.ID)
	assert.Equal(t, int64(5), link.PrerequisiteID)
	assert.Equal(t, int64(5), prereq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
