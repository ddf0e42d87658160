package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/repositories"
	"github.com/yigit/college/internal/pkg/apperrors"
)

var now = time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (CollegeService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("Failed to create mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
		mock.Close()
	})

	return NewCollegeService(repositories.NewRepositories(mock)), mock
}

func emptyStudentRows(withCourse bool) *pgxmock.Rows {
	columns := []string{
		"student_num", "first_name", "last_name", "email", "address_street", "address_city",
		"address_province", "ta", "status", "course_id", "created_at", "updated_at",
	}
	if withCourse {
		columns = append(columns, "course_id", "course_code", "course_description", "created_at", "updated_at")
	}
	return pgxmock.NewRows(columns)
}

func TestEmptyListsAreNotFound(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(mock pgxmock.PgxPoolIface)
		call    func(svc CollegeService) error
		wantErr error
	}{
		{
			name: "students",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM students s LEFT JOIN courses`).WillReturnRows(emptyStudentRows(true))
			},
			call: func(svc CollegeService) error {
				_, err := svc.GetAllStudents(context.Background())
				return err
			},
			wantErr: apperrors.ErrNoStudents,
		},
		{
			name: "TAs",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE s.ta = \$1`).WithArgs(true).WillReturnRows(emptyStudentRows(false))
			},
			call: func(svc CollegeService) error {
				_, err := svc.GetTAs(context.Background())
				return err
			},
			wantErr: apperrors.ErrNoTAs,
		},
		{
			name: "students by course",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE s.course_id = \$1`).WithArgs(int64(9)).WillReturnRows(emptyStudentRows(false))
			},
			call: func(svc CollegeService) error {
				_, err := svc.GetStudentsByCourse(context.Background(), 9)
				return err
			},
			wantErr: apperrors.ErrNoStudentsForCourse,
		},
		{
			name: "courses",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM courses ORDER BY course_id ASC`).
					WillReturnRows(pgxmock.NewRows([]string{"course_id", "course_code", "course_description", "created_at", "updated_at"}))
			},
			call: func(svc CollegeService) error {
				_, err := svc.GetCourses(context.Background())
				return err
			},
			wantErr: apperrors.ErrNoCourses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newTestService(t)
			tt.expect(mock)

			err := tt.call(svc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, apperrors.ErrResourceNotFound) {
				t.Errorf("error = %v, want a not found kind", err)
			}
		})
	}
}

func TestGetAllStudentsStorageError(t *testing.T) {
	svc, mock := newTestService(t)
	mock.ExpectQuery(`FROM students s`).WillReturnError(errors.New("connection refused"))

	_, err := svc.GetAllStudents(context.Background())
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("storage error %v must not be reported as not found", err)
	}
}

func TestAddStudentNormalizesInput(t *testing.T) {
	svc, mock := newTestService(t)

	req := &dto.StudentRequest{
		StudentNum: 77,
		FirstName:  strPtr("Ana"),
		LastName:   strPtr("Lee"),
		Email:      strPtr(""),
		TA:         dto.Flag(true),
		Status:     strPtr(""),
		CourseID:   dto.NewOptionalID(1),
	}

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO students`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), (*string)(nil), (*string)(nil), (*string)(nil),
			(*string)(nil), true, (*string)(nil), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"student_num", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	student, err := svc.AddStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("AddStudent() error: %v", err)
	}
	if student.StudentNum != 1 {
		t.Errorf("StudentNum = %d, want the generated 1", student.StudentNum)
	}
	if student.Email != nil || student.Status != nil {
		t.Errorf("empty strings were not stored as null: email=%v status=%v", student.Email, student.Status)
	}
	if !student.TA {
		t.Error("TA = false, want true")
	}
	if student.CourseID == nil || *student.CourseID != 1 {
		t.Errorf("CourseID = %v, want 1", student.CourseID)
	}
}

func TestAddStudentUnknownCourse(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := svc.AddStudent(context.Background(), &dto.StudentRequest{CourseID: dto.NewOptionalID(42)})
	if !errors.Is(err, apperrors.ErrCreateFailed) {
		t.Errorf("AddStudent() error = %v, want ErrCreateFailed", err)
	}
}

func TestAddStudentInsertFailure(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`INSERT INTO students`).
		WithArgs(strPtr("Bo"), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*string)(nil), false, (*string)(nil), (*int64)(nil)).
		WillReturnError(errors.New("relation \"students\" does not exist"))

	_, err := svc.AddStudent(context.Background(), &dto.StudentRequest{FirstName: strPtr("Bo")})
	if !errors.Is(err, apperrors.ErrCreateFailed) {
		t.Errorf("AddStudent() error = %v, want ErrCreateFailed", err)
	}
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("AddStudent() error = %v, want the storage cause kept", err)
	}
}

func TestAddCourse(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`INSERT INTO courses`).
		WithArgs(strPtr("CS101"), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	course, err := svc.AddCourse(context.Background(), &dto.CourseRequest{CourseCode: strPtr("CS101"), CourseDescription: strPtr("")})
	if err != nil {
		t.Fatalf("AddCourse() error: %v", err)
	}
	if course.CourseID != 3 {
		t.Errorf("CourseID = %d, want 3", course.CourseID)
	}
}

// blankStudentUpdate lists the UPDATE arguments, in column order, for a student with no optional fields set
func blankStudentUpdate(courseID *int64, num int64) []interface{} {
	return []interface{}{
		(*string)(nil), (*string)(nil), (*string)(nil), courseID, (*string)(nil),
		(*string)(nil), (*string)(nil), (*string)(nil), false, num,
	}
}

func expectCourseExists(mock pgxmock.PgxPoolIface, id int64, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM courses`).WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectStudentExists(mock pgxmock.PgxPoolIface, num int64, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM students`).WithArgs(num).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestUpdateStudent(t *testing.T) {
	t.Run("unknown student", func(t *testing.T) {
		svc, mock := newTestService(t)
		mock.ExpectExec(`UPDATE students`).
			WithArgs(blankStudentUpdate(nil, 999)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := svc.UpdateStudent(context.Background(), &dto.StudentRequest{StudentNum: 999})
		if !errors.Is(err, apperrors.ErrStudentNotUpdated) {
			t.Errorf("UpdateStudent() error = %v, want ErrStudentNotUpdated", err)
		}
	})

	t.Run("zero course id unassigns without lookup", func(t *testing.T) {
		svc, mock := newTestService(t)
		mock.ExpectExec(`UPDATE students`).
			WithArgs(blankStudentUpdate(nil, 1)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := svc.UpdateStudent(context.Background(), &dto.StudentRequest{StudentNum: 1, CourseID: dto.NewOptionalID(0)})
		if err != nil {
			t.Errorf("UpdateStudent() error: %v", err)
		}
	})

	t.Run("known course", func(t *testing.T) {
		svc, mock := newTestService(t)
		courseID := int64(2)
		expectCourseExists(mock, courseID, true)
		mock.ExpectExec(`UPDATE students`).
			WithArgs(blankStudentUpdate(&courseID, 1)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := svc.UpdateStudent(context.Background(), &dto.StudentRequest{StudentNum: 1, CourseID: dto.NewOptionalID(2)})
		if err != nil {
			t.Errorf("UpdateStudent() error: %v", err)
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectCourseExists(mock, 5, false)
		expectStudentExists(mock, 1, true)

		err := svc.UpdateStudent(context.Background(), &dto.StudentRequest{StudentNum: 1, CourseID: dto.NewOptionalID(5)})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("UpdateStudent() error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("unknown student and unknown course", func(t *testing.T) {
		svc, mock := newTestService(t)
		expectCourseExists(mock, 5, false)
		expectStudentExists(mock, 999, false)

		err := svc.UpdateStudent(context.Background(), &dto.StudentRequest{StudentNum: 999, CourseID: dto.NewOptionalID(5)})
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Errorf("UpdateStudent() error = %v, want not found", err)
		}
		if errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("UpdateStudent() error = %v, must not be a validation error", err)
		}
	})
}

func TestUpdateCourse(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"updated", 1, nil},
		{"unknown", 0, apperrors.ErrCourseNotUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newTestService(t)
			mock.ExpectExec(`UPDATE courses`).
				WithArgs(strPtr("CS201"), (*string)(nil), int64(12)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := svc.UpdateCourse(context.Background(), &dto.CourseRequest{CourseID: 12, CourseCode: strPtr("CS201"), CourseDescription: strPtr("")})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateCourse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeletes(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		affected int64
		call     func(svc CollegeService) error
		wantErr  error
	}{
		{"student deleted", `DELETE FROM students`, 1, func(svc CollegeService) error {
			return svc.DeleteStudentByNum(context.Background(), 1)
		}, nil},
		{"student missing", `DELETE FROM students`, 0, func(svc CollegeService) error {
			return svc.DeleteStudentByNum(context.Background(), 1)
		}, apperrors.ErrStudentNotFound},
		{"course deleted", `DELETE FROM courses`, 1, func(svc CollegeService) error {
			return svc.DeleteCourseByID(context.Background(), 1)
		}, nil},
		{"course missing", `DELETE FROM courses`, 0, func(svc CollegeService) error {
			return svc.DeleteCourseByID(context.Background(), 1)
		}, apperrors.ErrCourseNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newTestService(t)
			mock.ExpectExec(tt.pattern).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := tt.call(svc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetCourseWithStudents(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM courses WHERE course_id = \$1`).WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id", "course_code", "course_description", "created_at", "updated_at"}).
			AddRow(int64(2), strPtr("CS102"), nil, now, now))
	mock.ExpectQuery(`WHERE s.course_id = \$1`).WithArgs(int64(2)).WillReturnRows(emptyStudentRows(false))

	course, err := svc.GetCourseWithStudents(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetCourseWithStudents() error: %v", err)
	}
	if course.Students == nil || len(course.Students) != 0 {
		t.Errorf("Students = %v, want empty slice", course.Students)
	}
}

func TestGetStudentByNumNotFound(t *testing.T) {
	svc, mock := newTestService(t)
	mock.ExpectQuery(`WHERE s.student_num = \$1`).WithArgs(int64(5)).
		WillReturnRows(emptyStudentRows(true))

	_, err := svc.GetStudentByNum(context.Background(), 5)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("GetStudentByNum() error = %v, want ErrStudentNotFound", err)
	}
}
