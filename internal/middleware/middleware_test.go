package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestActiveRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/students", "/students"},
		{"/students/", "/students"},
		{"/students/add", "/students/add"},
		{"/student/5", "/student"},
		{"/course/12", "/course"},
		{"/student/delete/3", "/student/delete/3"},
		{"/courses/add", "/courses/add"},
		{"/about", "/about"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ActiveRoute(tt.path); got != tt.want {
				t.Errorf("ActiveRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
		{"validation", apperrors.NewValidationError("Course 4 does not exist"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Course 4 does not exist"},
		{"create failed", fmt.Errorf("%w: %w", apperrors.ErrUnableToCreateCourse, errors.New("boom")), http.StatusInternalServerError, dto.ErrorCodeCreateFailed, "Unable to create course"},
		{"schema", fmt.Errorf("%w: no tables", apperrors.ErrInitializationFailed), http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError, "Service unavailable"},
		{"undefined table", fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01"}), http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError, "Service unavailable"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMessage)
			}
		})
	}
}

type fakeSchema struct {
	ready   bool
	initErr error
	calls   int
}

func (s *fakeSchema) Initialize(context.Context) error {
	s.calls++
	if s.initErr != nil {
		return s.initErr
	}
	s.ready = true
	return nil
}

func (s *fakeSchema) Ready() bool { return s.ready }

func TestRequireSchema(t *testing.T) {
	tests := []struct {
		name       string
		schema     *fakeSchema
		path       string
		wantStatus int
		wantCalls  int
	}{
		{"ready", &fakeSchema{ready: true}, "/students", http.StatusOK, 0},
		{"retry succeeds", &fakeSchema{}, "/students", http.StatusOK, 1},
		{"page unavailable", &fakeSchema{initErr: apperrors.ErrInitializationFailed}, "/students", http.StatusServiceUnavailable, 1},
		{"api unavailable", &fakeSchema{initErr: apperrors.ErrInitializationFailed}, "/api/v1/students", http.StatusServiceUnavailable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequireSchema(tt.schema))
			ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
			router.GET("/students", ok)
			router.GET("/api/v1/students", ok)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.schema.calls != tt.wantCalls {
				t.Errorf("Initialize calls = %d, want %d", tt.schema.calls, tt.wantCalls)
			}
		})
	}
}

func TestRequestIDReusesHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want abc-123", RequestIDHeader, got)
	}
	if w.Body.String() != "abc-123" {
		t.Errorf("context request id = %q, want abc-123", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     logger.LogLevel
		target    string
		wantLevel string
	}{
		{"page at info", logger.InfoLevel, "/students", `"level":"info"`},
		{"missing at warn", logger.InfoLevel, "/missing", `"level":"warn"`},
		{"failure at error", logger.InfoLevel, "/broken", `"level":"error"`},
		{"asset hidden at info", logger.InfoLevel, "/static/site.css", ""},
		{"asset at debug", logger.DebugLevel, "/static/site.css", `"level":"debug"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.Configure(logger.Config{Level: tt.level, Output: &buf})
			t.Cleanup(func() { logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true}) })

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/students", func(c *gin.Context) { c.Status(http.StatusOK) })
			router.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
			router.GET("/static/*filepath", func(c *gin.Context) { c.Status(http.StatusOK) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			out := buf.String()
			if tt.wantLevel == "" {
				if out != "" {
					t.Errorf("expected no log line, got %s", out)
				}
				return
			}
			if !strings.Contains(out, tt.wantLevel) || !strings.Contains(out, tt.target) {
				t.Errorf("log line = %s, want %s for %s", out, tt.wantLevel, tt.target)
			}
		})
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(time.Second))
	router.GET("/", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestBindErrorMessages(t *testing.T) {
	messages := BindErrorMessages(errors.New("invalid character"))
	if len(messages) != 1 || messages[0] != "invalid character" {
		t.Errorf("BindErrorMessages() = %v", messages)
	}
}
