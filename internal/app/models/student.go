package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	StudentNum      int64   `json:"studentNum" db:"student_num" example:"1"` // Auto-assigned student number
	FirstName       *string `json:"firstName" db:"first_name" example:"Ana"`
	LastName        *string `json:"lastName" db:"last_name" example:"Lee"`
	Email           *string `json:"email" db:"email"`
	AddressStreet   *string `json:"addressStreet" db:"address_street"`
	AddressCity     *string `json:"addressCity" db:"address_city"`
	AddressProvince *string `json:"addressProvince" db:"address_province"`
	TA              bool    `json:"TA" db:"ta"`
	Status          *string `json:"status" db:"status" example:"Full Time"`
	CourseID        *int64  `json:"courseId" db:"course_id" example:"1"` // nil when the student is not enrolled

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// FullName joins the available name parts.
func (s *Student) FullName() string {
	name := ""
	if s.FirstName != nil {
		name = *s.FirstName
	}
	if s.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *s.LastName
	}
	return name
}
