package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/logger"
)

// CollegeService is the data access layer for students and courses.
// Empty list queries fail with a not found error rather than returning an empty slice.
type CollegeService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetTAs(ctx context.Context) ([]*models.Student, error)
	GetCourses(ctx context.Context) ([]*models.Course, error)
	GetStudentByNum(ctx context.Context, num int64) (*models.Student, error)
	GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseWithStudents(ctx context.Context, id int64) (*models.Course, error)
	AddStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error)
	AddCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	UpdateStudent(ctx context.Context, req *dto.StudentRequest) error
	UpdateCourse(ctx context.Context, req *dto.CourseRequest) error
	DeleteStudentByNum(ctx context.Context, num int64) error
	DeleteCourseByID(ctx context.Context, id int64) error
}

type collegeService struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(repos *repositories.Repositories) CollegeService {
	return &collegeService{
		studentRepo: repos.StudentRepository,
		courseRepo:  repos.CourseRepository,
	}
}

// GetAllStudents retrieves every student with its course
func (s *collegeService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudents
	}
	return students, nil
}

// GetTAs retrieves the teaching assistants
func (s *collegeService) GetTAs(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetTAs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving TAs: %w", err)
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoTAs
	}
	return students, nil
}

// GetCourses retrieves every course
func (s *collegeService) GetCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, apperrors.ErrNoCourses
	}
	return courses, nil
}

// GetStudentByNum retrieves a single student with its course
func (s *collegeService) GetStudentByNum(ctx context.Context, num int64) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByNum(ctx, num)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetStudentsByCourse retrieves the students assigned to a course
func (s *collegeService) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	students, err := s.studentRepo.GetStudentsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students for course: %w", err)
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudentsForCourse
	}
	return students, nil
}

// GetCourseByID retrieves a single course
func (s *collegeService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetCourseWithStudents retrieves a course and attaches its students.
// A course without students is not an error.
func (s *collegeService) GetCourseWithStudents(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetStudentsByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students for course: %w", err)
	}
	course.Students = students

	return course, nil
}

// courseExists reports whether a non-nil course reference resolves
func (s *collegeService) courseExists(ctx context.Context, courseID *int64) (bool, error) {
	if courseID == nil {
		return true, nil
	}
	return s.courseRepo.CourseExists(ctx, *courseID)
}

// AddStudent normalizes and stores a new student
func (s *collegeService) AddStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	student := req.Normalize()
	student.StudentNum = 0

	exists, err := s.courseExists(ctx, student.CourseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnableToCreateStudent, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: course %d does not exist", apperrors.ErrUnableToCreateStudent, *student.CourseID)
	}

	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnableToCreateStudent, err)
	}

	logger.Info().Int64("studentNum", student.StudentNum).Msg("Student created")
	return student, nil
}

// AddCourse normalizes and stores a new course
func (s *collegeService) AddCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course := req.Normalize()
	course.CourseID = 0

	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnableToCreateCourse, err)
	}

	logger.Info().Int64("courseId", course.CourseID).Msg("Course created")
	return course, nil
}

// UpdateStudent replaces every mutable field of the student identified by req.StudentNum
func (s *collegeService) UpdateStudent(ctx context.Context, req *dto.StudentRequest) error {
	student := req.NormalizeUpdate()

	exists, err := s.courseExists(ctx, student.CourseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		// An unknown student outranks an unknown course
		found, err := s.studentRepo.StudentExists(ctx, student.StudentNum)
		if err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !found {
			return apperrors.ErrStudentNotUpdated
		}
		return apperrors.NewValidationError(fmt.Sprintf("Course %d does not exist", *student.CourseID))
	}

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotUpdated
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// UpdateCourse replaces every mutable field of the course identified by req.CourseID
func (s *collegeService) UpdateCourse(ctx context.Context, req *dto.CourseRequest) error {
	if err := s.courseRepo.UpdateCourse(ctx, req.Normalize()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotUpdated
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteStudentByNum removes a student
func (s *collegeService) DeleteStudentByNum(ctx context.Context, num int64) error {
	if err := s.studentRepo.DeleteStudent(ctx, num); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// DeleteCourseByID removes a course. Its students keep the dangling course id.
func (s *collegeService) DeleteCourseByID(ctx context.Context, id int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
