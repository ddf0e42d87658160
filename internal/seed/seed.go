package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// DefaultCourses are created when the catalog is empty
var DefaultCourses = []dto.CourseRequest{
	{CourseCode: strPtr("CS101"), CourseDescription: strPtr("Introduction to Programming")},
	{CourseCode: strPtr("CS102"), CourseDescription: strPtr("Data Structures")},
	{CourseCode: strPtr("CS201"), CourseDescription: strPtr("Databases")},
	{CourseCode: strPtr("CS301"), CourseDescription: strPtr("Web Development")},
}

func strPtr(s string) *string { return &s }

// CreateDefaultData creates the default courses if no course exists yet.
// It returns the number of courses created.
func CreateDefaultData(ctx context.Context, svc services.CollegeService, lgr zerolog.Logger) (int, error) {
	lgr.Info().Msg("Checking/Creating default data (Courses)...")

	_, err := svc.GetCourses(ctx)
	switch {
	case err == nil:
		lgr.Info().Msg("Courses already exist, skipping default data")
		return 0, nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return 0, fmt.Errorf("error checking existing courses: %w", err)
	}

	var finalErr error // To collect potential errors without stopping the process
	created := 0
	for i := range DefaultCourses {
		req := DefaultCourses[i]
		course, err := svc.AddCourse(ctx, &req)
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", *req.CourseCode).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Int64("courseId", course.CourseID).Str("courseCode", *req.CourseCode).Msg("Default course created")
		created++
	}

	return created, finalErr
}
