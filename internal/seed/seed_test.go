package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// courseStub implements the course half of services.CollegeService
type courseStub struct {
	services.CollegeService
	existing []*models.Course
	listErr  error
	addErr   error
	added    []string
}

func (s *courseStub) GetCourses(context.Context) ([]*models.Course, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.existing) == 0 {
		return nil, apperrors.ErrNoCourses
	}
	return s.existing, nil
}

func (s *courseStub) AddCourse(_ context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = append(s.added, *req.CourseCode)
	return &models.Course{CourseID: int64(len(s.added)), CourseCode: req.CourseCode}, nil
}

func TestCreateDefaultData(t *testing.T) {
	tests := []struct {
		name        string
		stub        *courseStub
		wantCreated int
		wantErr     bool
	}{
		{"empty catalog", &courseStub{}, len(DefaultCourses), false},
		{"existing courses", &courseStub{existing: []*models.Course{{CourseID: 1}}}, 0, false},
		{"storage failure", &courseStub{listErr: errors.New("connection refused")}, 0, true},
		{"insert failure", &courseStub{addErr: apperrors.ErrUnableToCreateCourse}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := CreateDefaultData(context.Background(), tt.stub, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateDefaultData() error = %v, wantErr %v", err, tt.wantErr)
			}
			if created != tt.wantCreated {
				t.Errorf("created = %d, want %d", created, tt.wantCreated)
			}
		})
	}
}
