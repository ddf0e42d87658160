package dto

import (
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/helpers"
)

// StudentRequest carries the student fields submitted by a form or JSON body.
// StudentNum is only read on update.
type StudentRequest struct {
	StudentNum      int64      `json:"studentNum" form:"studentNum"`
	FirstName       *string    `json:"firstName" form:"firstName" binding:"omitempty,max=255" example:"Ana"`
	LastName        *string    `json:"lastName" form:"lastName" binding:"omitempty,max=255" example:"Lee"`
	Email           *string    `json:"email" form:"email" binding:"omitempty,max=255"`
	AddressStreet   *string    `json:"addressStreet" form:"addressStreet" binding:"omitempty,max=255"`
	AddressCity     *string    `json:"addressCity" form:"addressCity" binding:"omitempty,max=255"`
	AddressProvince *string    `json:"addressProvince" form:"addressProvince" binding:"omitempty,max=255"`
	TA              Flag       `json:"TA" form:"TA" swaggertype:"boolean"`
	Status          *string    `json:"status" form:"status" binding:"omitempty,max=255" example:"Full Time"`
	CourseID        OptionalID `json:"courseId" form:"courseId" swaggertype:"integer"`
}

// Normalize converts the request into a student ready for insertion:
// empty strings become nil and TA is coerced to a strict boolean.
func (r *StudentRequest) Normalize() *models.Student {
	return &models.Student{
		StudentNum:      r.StudentNum,
		FirstName:       helpers.NullIfEmpty(r.FirstName),
		LastName:        helpers.NullIfEmpty(r.LastName),
		Email:           helpers.NullIfEmpty(r.Email),
		AddressStreet:   helpers.NullIfEmpty(r.AddressStreet),
		AddressCity:     helpers.NullIfEmpty(r.AddressCity),
		AddressProvince: helpers.NullIfEmpty(r.AddressProvince),
		TA:              r.TA.Bool(),
		Status:          helpers.NullIfEmpty(r.Status),
		CourseID:        r.CourseID.Ptr(),
	}
}

// NormalizeUpdate is Normalize plus the update rule that a missing, empty
// or zero course id unassigns the student.
func (r *StudentRequest) NormalizeUpdate() *models.Student {
	student := r.Normalize()
	student.CourseID = helpers.NullIfZero(student.CourseID)
	return student
}
