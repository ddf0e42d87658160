package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/db"
	"github.com/yigit/college/internal/pkg/logger"
)

var studentColumns = []string{
	"s.student_num", "s.first_name", "s.last_name", "s.email",
	"s.address_street", "s.address_city", "s.address_province",
	"s.ta", "s.status", "s.course_id", "s.created_at", "s.updated_at",
}

// Course columns appended by the LEFT JOIN; all nullable
var joinedCourseColumns = []string{"c.course_id", "c.course_code", "c.course_description", "c.created_at", "c.updated_at"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.Querier) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func studentDest(student *models.Student) []any {
	return []any{
		&student.StudentNum, &student.FirstName, &student.LastName, &student.Email,
		&student.AddressStreet, &student.AddressCity, &student.AddressProvince,
		&student.TA, &student.Status, &student.CourseID, &student.CreatedAt, &student.UpdatedAt,
	}
}

func scanStudent(row pgx.Row, withCourse bool) (*models.Student, error) {
	student := &models.Student{}
	dest := studentDest(student)

	var (
		courseID          *int64
		courseCode        *string
		courseDescription *string
		courseCreatedAt   *time.Time
		courseUpdatedAt   *time.Time
	)
	if withCourse {
		dest = append(dest, &courseID, &courseCode, &courseDescription, &courseCreatedAt, &courseUpdatedAt)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	// A nil joined id means the student is unassigned or points at a deleted course
	if withCourse && courseID != nil {
		student.Course = &models.Course{
			CourseID:          *courseID,
			CourseCode:        courseCode,
			CourseDescription: courseDescription,
		}
		if courseCreatedAt != nil {
			student.Course.CreatedAt = *courseCreatedAt
		}
		if courseUpdatedAt != nil {
			student.Course.UpdatedAt = *courseUpdatedAt
		}
	}

	return student, nil
}

func (r *StudentRepository) selectStudents(withCourse bool) squirrel.SelectBuilder {
	if !withCourse {
		return r.sb.Select(studentColumns...).From("students s")
	}
	columns := append(append([]string{}, studentColumns...), joinedCourseColumns...)
	return r.sb.Select(columns...).
		From("students s").
		LeftJoin("courses c ON c.course_id = s.course_id")
}

// listStudents runs a list query and scans every row
func (r *StudentRepository) listStudents(ctx context.Context, query squirrel.SelectBuilder, withCourse bool, op string) ([]*models.Student, error) {
	sql, args, err := query.OrderBy("s.student_num ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows, withCourse)
		if err != nil {
			logger.Error().Err(err).Str("op", op).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// CreateStudent inserts a student and fills in its generated number and timestamps
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "address_street", "address_city",
			"address_province", "ta", "status", "course_id").
		Values(student.FirstName, student.LastName, student.Email, student.AddressStreet, student.AddressCity,
			student.AddressProvince, student.TA, student.Status, student.CourseID).
		Suffix("RETURNING student_num, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.StudentNum, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAllStudents retrieves every student with its course, if any
func (r *StudentRepository) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return r.listStudents(ctx, r.selectStudents(true), true, "get all students")
}

// GetTAs retrieves the students flagged as teaching assistants
func (r *StudentRepository) GetTAs(ctx context.Context) ([]*models.Student, error) {
	return r.listStudents(ctx, r.selectStudents(false).Where(squirrel.Eq{"s.ta": true}), false, "get TAs")
}

// GetStudentsByCourse retrieves the students assigned to a course id
func (r *StudentRepository) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	return r.listStudents(ctx, r.selectStudents(false).Where(squirrel.Eq{"s.course_id": courseID}), false, "get students by course")
}

// GetStudentByNum retrieves a student and its course by student number
func (r *StudentRepository) GetStudentByNum(ctx context.Context, num int64) (*models.Student, error) {
	sql, args, err := r.selectStudents(true).
		Where(squirrel.Eq{"s.student_num": num}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by number SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentNum", num).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by number: %w", err)
	}

	return student, nil
}

// UpdateStudent replaces the mutable columns of an existing student
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"first_name":       student.FirstName,
			"last_name":        student.LastName,
			"email":            student.Email,
			"address_street":   student.AddressStreet,
			"address_city":     student.AddressCity,
			"address_province": student.AddressProvince,
			"ta":               student.TA,
			"status":           student.Status,
			"course_id":        student.CourseID,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"student_num": student.StudentNum}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentNum", student.StudentNum).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// StudentExists reports whether a student with the given number is stored
func (r *StudentRepository) StudentExists(ctx context.Context, num int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"student_num": num}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("studentNum", num).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// DeleteStudent deletes a student by number
func (r *StudentRepository) DeleteStudent(ctx context.Context, num int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_num": num}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentNum", num).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
