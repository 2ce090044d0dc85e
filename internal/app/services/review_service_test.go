package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 45, 987654321, time.UTC)

func fixedClock() time.Time { return fixedNow }

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func newReviewService(store *testutil.Store) ReviewService {
	return NewReviewService(store.Courses(), store.Reviews(), fixedClock)
}

func requireKind(t *testing.T, err error, kind apperrors.Kind, message string) {
	t.Helper()
	require.Error(t, err)
	ce := apperrors.AsCustomError(err)
	assert.Equal(t, kind, ce.Kind)
	assert.Equal(t, message, ce.Message)
}

func TestCreateReview_Success(t *testing.T) {
	store := testutil.NewStore()
	courseID := store.AddCourse(models.SourceCoursera, "Machine Learning")

	review, err := newReviewService(store).CreateReview(context.Background(), courseID,
		dto.CreateReviewRequest{Content: strPtr("  Great course  ")})

	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, "Great course", review.Content)
	assert.Equal(t, fixedNow.Truncate(time.Second), review.CreatedTime)
	assert.Equal(t, 1, store.ReviewCount())
	assert.Equal(t, 1, store.CourseReviewCount())
}

func TestCreateReview_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		missing bool
		failOp  string
		kind    apperrors.Kind
		message string
	}{
		{name: "unknown course", content: strPtr("nice"), missing: true, kind: apperrors.KindNotFound},
		{name: "absent content", content: nil, kind: apperrors.KindBadRequest, message: MsgReviewNoContent},
		{name: "blank content", content: strPtr("   "), kind: apperrors.KindBadRequest, message: MsgReviewNoContent},
		{name: "course lookup fails", content: strPtr("nice"), failOp: testutil.OpCourseExists, kind: apperrors.KindInternal, message: MsgReviewCreateFailed},
		{name: "insert fails", content: strPtr("nice"), failOp: testutil.OpCreateReview, kind: apperrors.KindInternal, message: MsgReviewCreateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			courseID := store.AddCourse(models.SourceUdacity, "Intro to Go")
			if tt.missing {
				courseID += 100
			}
			if tt.failOp != "" {
				store.FailOn(tt.failOp, errors.New("connection reset"))
			}

			_, err := newReviewService(store).CreateReview(context.Background(), courseID,
				dto.CreateReviewRequest{Content: tt.content})

			message := tt.message
			if tt.missing {
				message = courseNotStored(courseID).Message
			}
			requireKind(t, err, tt.kind, message)
			assert.Zero(t, store.ReviewCount())
			assert.Zero(t, store.CourseReviewCount())
		})
	}
}

func TestCreateReview_UnknownCourseMessage(t *testing.T) {
	_, err := newReviewService(testutil.NewStore()).CreateReview(context.Background(), 42,
		dto.CreateReviewRequest{Content: strPtr("x")})

	requireKind(t, err, apperrors.KindNotFound, "Course (id: 42) is not stored")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourseReviews(t *testing.T) {
	store := testutil.NewStore()
	svc := newReviewService(store)
	ctx := context.Background()
	courseID := store.AddCourse(models.SourceCoursera, "Databases")
	other := store.AddCourse(models.SourceCoursera, "Networks")

	_, err := svc.CreateReview(ctx, courseID, dto.CreateReviewRequest{Content: strPtr("first")})
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, other, dto.CreateReviewRequest{Content: strPtr("elsewhere")})
	require.NoError(t, err)

	reviews, err := svc.GetCourseReviews(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "first", reviews[0].Content)

	_, err = svc.GetCourseReviews(ctx, 999)
	requireKind(t, err, apperrors.KindNotFound, MsgCourseNotFound)

	store.FailOn(testutil.OpListReviews, errors.New("boom"))
	_, err = svc.GetCourseReviews(ctx, courseID)
	assert.Equal(t, apperrors.KindInternal, apperrors.AsCustomError(err).Kind)
}
