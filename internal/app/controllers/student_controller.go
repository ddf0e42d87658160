package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/app/services"
	"github.com/yigit/college/internal/middleware"
	"github.com/yigit/college/internal/pkg/apperrors"
)

// StudentController serves the student JSON API
type StudentController struct {
	collegeService services.CollegeService
}

// NewStudentController creates a new StudentController
func NewStudentController(collegeService services.CollegeService) *StudentController {
	return &StudentController{
		collegeService: collegeService,
	}
}

// GetStudents lists students
// @Summary List students
// @Description Retrieves all students with their course, or only those of one course
// @Tags students
// @Produce json
// @Param course query int false "Filter by course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "No students found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	if courseParam := ctx.Query("course"); courseParam != "" {
		courseID, err := strconv.ParseInt(courseParam, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid course ID"))
			return
		}

		students, err := c.collegeService.GetStudentsByCourse(ctx.Request.Context(), courseID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved successfully"))
		return
	}

	students, err := c.collegeService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved successfully"))
}

// GetTAs lists teaching assistants
// @Summary List teaching assistants
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "TAs retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "No TAs found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tas [get]
func (c *StudentController) GetTAs(ctx *gin.Context) {
	students, err := c.collegeService.GetTAs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "TAs retrieved successfully"))
}

// GetStudent retrieves a student by number
// @Summary Get student by number
// @Tags students
// @Produce json
// @Param studentNum path int true "Student number"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student number"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentNum} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	num, ok := parseIDParam(ctx, "studentNum", "student number")
	if !ok {
		return
	}

	student, err := c.collegeService.GetStudentByNum(ctx.Request.Context(), num)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved successfully"))
}

// CreateStudent adds a student
// @Summary Create a student
// @Description Empty strings are stored as null and TA accepts booleans, numbers and checkbox values
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 500 {object} dto.ErrorResponse "Unable to create student"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindRequest(ctx, &req, "student") {
		return
	}

	student, err := c.collegeService.AddStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student created successfully"))
}

// UpdateStudent replaces a student's fields
// @Summary Update a student
// @Description Every mutable field is replaced; a missing or zero courseId unassigns the student
// @Tags students
// @Accept json
// @Produce json
// @Param studentNum path int true "Student number"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data or unknown course"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentNum} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	num, ok := parseIDParam(ctx, "studentNum", "student number")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if !middleware.BindRequest(ctx, &req, "student") {
		return
	}
	req.StudentNum = num

	if err := c.collegeService.UpdateStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.collegeService.GetStudentByNum(ctx.Request.Context(), num)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully"))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param studentNum path int true "Student number"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student number"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentNum} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	num, ok := parseIDParam(ctx, "studentNum", "student number")
	if !ok {
		return
	}

	if err := c.collegeService.DeleteStudentByNum(ctx.Request.Context(), num); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted successfully"))
}
