package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/sharelearning/internal/app/models"
)

type fakeCourses struct {
	created []appModels.Course
	failOn  string
}

func (f *fakeCourses) CreateCourse(_ context.Context, course *appModels.Course) (int64, error) {
	if course.ExternalID == f.failOn {
		return 0, errors.New("insert failed")
	}
	f.created = append(f.created, *course)
	return int64(len(f.created)), nil
}

func TestCreateDemoCourses(t *testing.T) {
	fake := &fakeCourses{}

	err := CreateDemoCourses(context.Background(), fake, zerolog.Nop())

	require.NoError(t, err)
	assert.Len(t, fake.created, len(DemoCourses))
}

func TestCreateDemoCourses_ContinuesAfterFailure(t *testing.T) {
	fake := &fakeCourses{failOn: DemoCourses[0].ExternalID}

	err := CreateDemoCourses(context.Background(), fake, zerolog.Nop())

	assert.EqualError(t, err, "insert failed")
	assert.Len(t, fake.created, len(DemoCourses)-1)
}
