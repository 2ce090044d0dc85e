package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/testutil"
)

func TestGetOverview(t *testing.T) {
	store := testutil.NewStore()
	store.AddCourse(models.SourceCoursera, "a")
	store.AddCourse(models.SourceCoursera, "b")
	store.AddCourse(models.SourceUdacity, "c")
	store.AddCourse(models.SourceYouTube, "d")

	counts, err := NewOverviewService(store.Courses()).GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.FiniteCount(2), counts.Coursera)
	assert.Equal(t, models.FiniteCount(1), counts.Udacity)
	assert.True(t, counts.YouTube.IsInfinite())
}

func TestGetOverview_Empty(t *testing.T) {
	counts, err := NewOverviewService(testutil.NewStore().Courses()).GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.FiniteCount(0), counts.Coursera)
	assert.Equal(t, models.FiniteCount(0), counts.Udacity)
}

func TestCourseReviewsOverview(t *testing.T) {
	store := testutil.NewStore()
	courseID := store.AddCourse(models.SourceUdacity, "Security")
	svc := NewOverviewService(store.Courses())
	ctx := context.Background()

	counts, err := svc.CourseReviewsOverview(ctx, courseID)
	require.NoError(t, err)
	assert.Equal(t, models.FiniteCount(1), counts.Udacity)

	// an id without a row still answers with the catalog counts
	_, err = svc.CourseReviewsOverview(ctx, courseID+10)
	require.NoError(t, err)

	store.FailOn(testutil.OpCourseExists, errors.New("timeout"))
	_, err = svc.CourseReviewsOverview(ctx, courseID)
	requireKind(t, err, apperrors.KindNotFound, MsgCoursesNotFound)
	store.FailOn(testutil.OpCourseExists, nil)

	store.FailOn(testutil.OpCountBySource, errors.New("timeout"))
	_, err = svc.CourseReviewsOverview(ctx, courseID)
	requireKind(t, err, apperrors.KindNotFound, MsgCoursesNotFound)
}
