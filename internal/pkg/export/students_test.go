package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/college/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestWriteStudentsRoundTrip(t *testing.T) {
	courseID := int64(1)
	orphanID := int64(9)
	students := []*models.Student{
		{
			StudentNum: 1,
			FirstName:  strPtr("Ana"),
			LastName:   strPtr("Lee"),
			TA:         true,
			CourseID:   &courseID,
			Course:     &models.Course{CourseID: 1, CourseCode: strPtr("CS101")},
		},
		{StudentNum: 2, FirstName: strPtr("Bo")},
		{StudentNum: 3, CourseID: &orphanID},
	}

	var buf bytes.Buffer
	if err := WriteStudents(&buf, students); err != nil {
		t.Fatalf("WriteStudents() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != len(students)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(students)+1)
	}

	if rows[0][0] != "Student Num" || len(rows[0]) != len(Headers) {
		t.Errorf("header row = %v", rows[0])
	}

	tests := []struct {
		row  int
		col  int
		want string
	}{
		{1, 0, "1"},
		{1, 1, "Ana"},
		{1, 7, "TRUE"},
		{1, 9, "1"},
		{1, 10, "CS101"},
		{2, 1, "Bo"},
		{2, 7, "FALSE"},
		{3, 9, "9"},
	}
	for _, tt := range tests {
		row := rows[tt.row]
		got := ""
		if tt.col < len(row) {
			got = row[tt.col]
		}
		if got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestWriteStudentsEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStudents(&buf, nil); err != nil {
		t.Fatalf("WriteStudents() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want only the header", len(rows))
	}
}
