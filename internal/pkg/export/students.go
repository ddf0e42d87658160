package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/pkg/helpers"
)

const (
	// ContentType is the MIME type of the generated workbook
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// SheetName is the roster sheet inside the workbook
	SheetName = "Students"
)

// Headers are the roster columns, in order
var Headers = []string{
	"Student Num", "First Name", "Last Name", "Email", "Street", "City",
	"Province", "TA", "Status", "Course ID", "Course Code",
}

// StudentsWorkbook builds a workbook with one row per student under a header row
func StudentsWorkbook(students []*models.Student) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name roster sheet: %w", err)
	}

	for i, header := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for i, s := range students {
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", i+2), studentRow(s)); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write student %d: %w", s.StudentNum, err)
		}
	}

	return f, nil
}

func studentRow(s *models.Student) *[]interface{} {
	courseID := ""
	if s.CourseID != nil {
		courseID = strconv.FormatInt(*s.CourseID, 10)
	}
	courseCode := ""
	if s.Course != nil {
		courseCode = helpers.StringValue(s.Course.CourseCode)
	}

	return &[]interface{}{
		s.StudentNum,
		helpers.StringValue(s.FirstName),
		helpers.StringValue(s.LastName),
		helpers.StringValue(s.Email),
		helpers.StringValue(s.AddressStreet),
		helpers.StringValue(s.AddressCity),
		helpers.StringValue(s.AddressProvince),
		s.TA,
		helpers.StringValue(s.Status),
		courseID,
		courseCode,
	}
}

// WriteStudents writes the roster workbook to w
func WriteStudents(w io.Writer, students []*models.Student) error {
	f, err := StudentsWorkbook(students)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write roster workbook: %w", err)
	}
	return nil
}
