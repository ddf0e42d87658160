package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/college/internal/app/controllers"
	"github.com/yigit/college/internal/app/models/dto"
)

// SetupRouter configures all application routes.
// requireSchema guards every route that reads or writes students and courses.
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	requireSchema gin.HandlerFunc,
) {
	// --- Static pages ---
	router.GET("/", pageController.Home)
	router.GET("/about", pageController.About)
	router.GET("/htmlDemo", pageController.HTMLDemo)

	// --- Data pages ---
	pages := router.Group("")
	pages.Use(requireSchema)
	{
		pages.GET("/students", pageController.Students)
		pages.GET("/students/add", pageController.AddStudentForm)
		pages.POST("/students/add", pageController.AddStudent)
		pages.GET("/students/export", pageController.ExportStudents)
		pages.GET("/student/:studentNum", pageController.Student)
		pages.POST("/student/update", pageController.UpdateStudent)
		pages.GET("/student/delete/:studentNum", pageController.DeleteStudent)

		pages.GET("/courses", pageController.Courses)
		pages.GET("/courses/add", pageController.AddCourseForm)
		pages.POST("/courses/add", pageController.AddCourse)
		pages.GET("/course/:courseId", pageController.Course)
		pages.POST("/course/update", pageController.UpdateCourse)
		pages.GET("/course/delete/:courseId", pageController.DeleteCourse)
	}

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}, "Service is healthy"))
	})

	data := v1.Group("")
	data.Use(requireSchema)

	students := data.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:studentNum", studentController.GetStudent)
		students.PUT("/:studentNum", studentController.UpdateStudent)
		students.DELETE("/:studentNum", studentController.DeleteStudent)
	}
	data.GET("/tas", studentController.GetTAs)

	courses := data.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:courseId", courseController.GetCourse)
		courses.GET("/:courseId/students", courseController.GetCourseStudents)
		courses.PUT("/:courseId", courseController.UpdateCourse)
		courses.DELETE("/:courseId", courseController.DeleteCourse)
	}

	router.NoRoute(pageController.NotFound)
}
