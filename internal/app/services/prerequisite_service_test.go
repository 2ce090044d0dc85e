package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/app/models"
	"github.com/yigit/sharelearning/internal/app/models/dto"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/testutil"
)

func TestCreatePrerequisite(t *testing.T) {
	store := testutil.NewStore()
	courseID := store.AddCourse(models.SourceCoursera, "Compilers")
	svc := NewPrerequisiteService(store.Courses(), store.Prerequisites())
	ctx := context.Background()

	cp, err := svc.CreatePrerequisite(ctx, courseID, dto.CreatePrerequisiteRequest{Prerequisite: strPtr("Automata theory")})
	require.NoError(t, err)
	assert.Equal(t, courseID, cp.CourseID)
	assert.NotZero(t, cp.PrerequisiteID)
	assert.Equal(t, "Automata theory", cp.Content)

	list, err := svc.GetCoursePrerequisites(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cp.ID, list[0].ID)
}

func TestCreatePrerequisite_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		missing bool
		failOp  string
		kind    apperrors.Kind
	}{
		{name: "unknown course", content: strPtr("Calculus"), missing: true, kind: apperrors.KindNotFound},
		{name: "absent content", kind: apperrors.KindBadRequest},
		{name: "blank content", content: strPtr("\n"), kind: apperrors.KindBadRequest},
		{name: "insert fails", content: strPtr("Calculus"), failOp: testutil.OpCreatePrerequisite, kind: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			courseID := store.AddCourse(models.SourceUdacity, "Robotics")
			if tt.missing {
				courseID = 404
			}
			if tt.failOp != "" {
				store.FailOn(tt.failOp, errors.New("tx aborted"))
			}

			_, err := NewPrerequisiteService(store.Courses(), store.Prerequisites()).
				CreatePrerequisite(context.Background(), courseID, dto.CreatePrerequisiteRequest{Prerequisite: tt.content})

			require.Error(t, err)
			assert.Equal(t, tt.kind, apperrors.AsCustomError(err).Kind)
			assert.Zero(t, store.PrerequisiteCount())
			assert.Zero(t, store.CoursePrerequisiteCount())
		})
	}
}

func TestGetCoursePrerequisites_UnknownCourse(t *testing.T) {
	store := testutil.NewStore()
	_, err := NewPrerequisiteService(store.Courses(), store.Prerequisites()).GetCoursePrerequisites(context.Background(), 3)

	requireKind(t, err, apperrors.KindNotFound, MsgCourseNotFound)
}
