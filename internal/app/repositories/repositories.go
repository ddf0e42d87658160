package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/college/internal/db"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// ErrNotFound is returned when a lookup matches no row or a write affects none
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.Querier) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(conn),
		CourseRepository:  NewCourseRepository(conn),
	}
}

// statementBuilder renders $n placeholders for PostgreSQL
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
