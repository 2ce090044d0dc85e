package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/sharelearning/internal/app/models"
)

// CourseCreator is implemented by repositories.CourseRepository
type CourseCreator interface {
	CreateCourse(ctx context.Context, course *appModels.Course) (int64, error)
}

// DemoCourses is the catalog inserted for local development.
// Courses are normally written by the ingestion jobs, which live outside this service.
var DemoCourses = []appModels.Course{
	{Source: appModels.SourceCoursera, ExternalID: "machine-learning", Title: "Machine Learning"},
	{Source: appModels.SourceCoursera, ExternalID: "algorithms-part1", Title: "Algorithms, Part I"},
	{Source: appModels.SourceUdacity, ExternalID: "ud989", Title: "Intro to Relational Databases"},
	{Source: appModels.SourceYouTube, ExternalID: "rfscVS0vtbw", Title: "Learn Python - Full Course for Beginners"},
}

// CreateDemoCourses stores DemoCourses. Existing rows are left in place, so it can run on every start.
// Every course is attempted; the failures are joined into the returned error.
func CreateDemoCourses(ctx context.Context, courses CourseCreator, lgr zerolog.Logger) error {
	lgr.Info().Int("count", len(DemoCourses)).Msg("Checking/Creating demo courses...")

	var finalErr error
	for i := range DemoCourses {
		course := DemoCourses[i]
		id, err := courses.CreateCourse(ctx, &course)
		if err != nil {
			lgr.Error().Err(err).Str("source", string(course.Source)).Str("externalID", course.ExternalID).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Debug().Int64("id", id).Str("title", course.Title).Msg("Demo course ready")
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo courses are in place.")
	}
	return finalErr
}
