package repositories

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

var fixedTime = time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("Failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func verifyExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

var studentColumnNames = []string{
	"student_num", "first_name", "last_name", "email", "address_street", "address_city",
	"address_province", "ta", "status", "course_id", "created_at", "updated_at",
}

func studentRows(withCourse bool) *pgxmock.Rows {
	columns := append([]string{}, studentColumnNames...)
	if withCourse {
		columns = append(columns, "course_id", "course_code", "course_description", "created_at", "updated_at")
	}
	return pgxmock.NewRows(columns)
}

func courseRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"course_id", "course_code", "course_description", "created_at", "updated_at"})
}
