package models

import "time"

// Course represents a course offered by the college.
type Course struct {
	CourseID          int64   `json:"courseId" db:"course_id" example:"1"`
	CourseCode        *string `json:"courseCode" db:"course_code" example:"CS101"`               // Nullable
	CourseDescription *string `json:"courseDescription" db:"course_description" example:"Intro"` // Nullable

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Students []*Student `json:"students,omitempty"`
}
