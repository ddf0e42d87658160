package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/college/internal/app/models"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/middleware"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/export"
	"github.com/yigit/college/internal/pkg/logger"
)

const noResults = "no results"

// PageController serves the server-rendered pages
type PageController struct {
	collegeService services.CollegeService
}

// NewPageController creates a new PageController
func NewPageController(collegeService services.CollegeService) *PageController {
	return &PageController{
		collegeService: collegeService,
	}
}

// render executes a page template with the navigation route added to data
func (pc *PageController) render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	route := ctx.GetString(middleware.ActiveRouteKey)
	if route == "" {
		route = middleware.ActiveRoute(ctx.Request.URL.Path)
	}
	data["activeRoute"] = route

	ctx.HTML(status, name, data)
}

// fail answers with a plain-text error and logs the cause
func (pc *PageController) fail(ctx *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.Error().Err(err).
			Str("path", ctx.Request.URL.Path).
			Str("requestId", ctx.GetString(middleware.RequestIDKey)).
			Msg(message)
	}
	ctx.String(status, message)
}

// listMessage is the message shown in place of an empty or failed listing
func listMessage(err error, what string) string {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return noResults
	}
	logger.Error().Err(err).Msg("Error fetching " + what)
	return "Error fetching " + what
}

// Home renders the landing page
func (pc *PageController) Home(ctx *gin.Context) {
	pc.render(ctx, http.StatusOK, "home.tmpl", nil)
}

// About renders the about page
func (pc *PageController) About(ctx *gin.Context) {
	pc.render(ctx, http.StatusOK, "about.tmpl", nil)
}

// HTMLDemo renders the HTML demo page
func (pc *PageController) HTMLDemo(ctx *gin.Context) {
	pc.render(ctx, http.StatusOK, "htmlDemo.tmpl", nil)
}

// NotFound renders the 404 page for unmatched routes
func (pc *PageController) NotFound(ctx *gin.Context) {
	pc.render(ctx, http.StatusNotFound, "404.tmpl", gin.H{"title": "Not Found"})
}

// Students lists all students, the TAs (?ta=true) or one course (?course=N)
func (pc *PageController) Students(ctx *gin.Context) {
	var (
		students []*models.Student
		err      error
	)

	ta := dto.ParseFlag(ctx.Query("ta"))

	switch courseParam := ctx.Query("course"); {
	case courseParam != "":
		courseID, parseErr := strconv.ParseInt(courseParam, 10, 64)
		if parseErr != nil {
			pc.render(ctx, http.StatusOK, "students.tmpl", gin.H{"title": "Students", "message": noResults})
			return
		}
		students, err = pc.collegeService.GetStudentsByCourse(ctx.Request.Context(), courseID)
	case ta.Bool():
		students, err = pc.collegeService.GetTAs(ctx.Request.Context())
	default:
		students, err = pc.collegeService.GetAllStudents(ctx.Request.Context())
	}

	if err != nil {
		pc.render(ctx, http.StatusOK, "students.tmpl", gin.H{"title": "Students", "message": listMessage(err, "students")})
		return
	}

	pc.render(ctx, http.StatusOK, "students.tmpl", gin.H{"title": "Students", "students": students})
}

// coursesOrEmpty loads the course dropdown; failures leave it empty
func (pc *PageController) coursesOrEmpty(ctx *gin.Context) []*models.Course {
	courses, err := pc.collegeService.GetCourses(ctx.Request.Context())
	if err != nil {
		return []*models.Course{}
	}
	return courses
}

// AddStudentForm renders the add student form
func (pc *PageController) AddStudentForm(ctx *gin.Context) {
	pc.render(ctx, http.StatusOK, "addStudent.tmpl", gin.H{
		"title":   "Add Student",
		"courses": pc.coursesOrEmpty(ctx),
	})
}

// AddStudent handles the add student form post
func (pc *PageController) AddStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to add student", err)
		return
	}

	if _, err := pc.collegeService.AddStudent(ctx.Request.Context(), &req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to add student", err)
		return
	}

	ctx.Redirect(http.StatusFound, "/students")
}

// Student renders the detail and edit form of one student
func (pc *PageController) Student(ctx *gin.Context) {
	num, err := strconv.ParseInt(ctx.Param("studentNum"), 10, 64)
	if err != nil {
		pc.fail(ctx, http.StatusNotFound, "Student Not Found", nil)
		return
	}

	student, err := pc.collegeService.GetStudentByNum(ctx.Request.Context(), num)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Error().Err(err).Int64("studentNum", num).Msg("Error fetching student")
		}
		pc.fail(ctx, http.StatusNotFound, "Student Not Found", nil)
		return
	}

	pc.render(ctx, http.StatusOK, "student.tmpl", gin.H{
		"title":    student.FullName(),
		"student":  student,
		"courses":  pc.coursesOrEmpty(ctx),
		"selected": student.CourseID,
	})
}

// UpdateStudent handles the edit student form post
func (pc *PageController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to update student", err)
		return
	}

	if err := pc.collegeService.UpdateStudent(ctx.Request.Context(), &req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to update student", err)
		return
	}

	ctx.Redirect(http.StatusFound, "/students")
}

// DeleteStudent removes a student and returns to the list
func (pc *PageController) DeleteStudent(ctx *gin.Context) {
	const message = "Unable to remove student or student not found"

	num, err := strconv.ParseInt(ctx.Param("studentNum"), 10, 64)
	if err != nil {
		pc.fail(ctx, http.StatusInternalServerError, message, nil)
		return
	}

	if err := pc.collegeService.DeleteStudentByNum(ctx.Request.Context(), num); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, message, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/students")
}

// Courses lists all courses
func (pc *PageController) Courses(ctx *gin.Context) {
	courses, err := pc.collegeService.GetCourses(ctx.Request.Context())
	if err != nil {
		pc.render(ctx, http.StatusOK, "courses.tmpl", gin.H{"title": "Courses", "message": listMessage(err, "courses")})
		return
	}

	pc.render(ctx, http.StatusOK, "courses.tmpl", gin.H{"title": "Courses", "courses": courses})
}

// AddCourseForm renders the add course form
func (pc *PageController) AddCourseForm(ctx *gin.Context) {
	pc.render(ctx, http.StatusOK, "addCourse.tmpl", gin.H{"title": "Add Course"})
}

// AddCourse handles the add course form post
func (pc *PageController) AddCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to add course", err)
		return
	}

	if _, err := pc.collegeService.AddCourse(ctx.Request.Context(), &req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to add course", err)
		return
	}

	ctx.Redirect(http.StatusFound, "/courses")
}

// Course renders the detail and edit form of one course with its students
func (pc *PageController) Course(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		pc.fail(ctx, http.StatusNotFound, "Course not found", nil)
		return
	}

	course, err := pc.collegeService.GetCourseWithStudents(ctx.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Error().Err(err).Int64("courseId", id).Msg("Error fetching course")
		}
		pc.fail(ctx, http.StatusNotFound, "Course not found", nil)
		return
	}

	pc.render(ctx, http.StatusOK, "course.tmpl", gin.H{"title": "Course", "course": course})
}

// UpdateCourse handles the edit course form post
func (pc *PageController) UpdateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to update course", err)
		return
	}

	if err := pc.collegeService.UpdateCourse(ctx.Request.Context(), &req); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to update course", err)
		return
	}

	ctx.Redirect(http.StatusFound, "/courses")
}

// DeleteCourse removes a course and returns to the list
func (pc *PageController) DeleteCourse(ctx *gin.Context) {
	const message = "Unable to remove course or course not found"

	id, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		pc.fail(ctx, http.StatusInternalServerError, message, nil)
		return
	}

	if err := pc.collegeService.DeleteCourseByID(ctx.Request.Context(), id); err != nil {
		pc.fail(ctx, http.StatusInternalServerError, message, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/courses")
}

// ExportStudents downloads the student roster as an XLSX workbook
func (pc *PageController) ExportStudents(ctx *gin.Context) {
	students, err := pc.collegeService.GetAllStudents(ctx.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		pc.fail(ctx, http.StatusInternalServerError, "Unable to export students", err)
		return
	}

	fileName := fmt.Sprintf("students_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", export.ContentType)
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := export.WriteStudents(ctx.Writer, students); err != nil {
		logger.Error().Err(err).Msg("Failed to write roster workbook")
		ctx.Status(http.StatusInternalServerError)
	}
}
