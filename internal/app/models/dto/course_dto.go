package dto

import (
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/helpers"
)

// CourseRequest carries the course fields submitted by a form or JSON body.
// CourseID is only read on update.
type CourseRequest struct {
	CourseID          int64   `json:"courseId" form:"courseId"`
	CourseCode        *string `json:"courseCode" form:"courseCode" binding:"omitempty,max=255" example:"CS101"`
	CourseDescription *string `json:"courseDescription" form:"courseDescription" binding:"omitempty,max=255" example:"Intro"`
}

// Normalize converts the request into a course with empty strings as nil
func (r *CourseRequest) Normalize() *models.Course {
	return &models.Course{
		CourseID:          r.CourseID,
		CourseCode:        helpers.NullIfEmpty(r.CourseCode),
		CourseDescription: helpers.NullIfEmpty(r.CourseDescription),
	}
}
