package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/controllers"
	"github.com/danielmahler1/f25-cisc474-individual/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.Use(middleware.DBMiddleware(db))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Course API is running")
	})
	r.GET("/health", controllers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/courses", controllers.GetCourses)
		api.GET("/courses/slug/:slug", controllers.GetCourseBySlug)
		api.GET("/courses/:id", controllers.GetCourse)
		api.POST("/courses", controllers.CreateCourse)
		api.PATCH("/courses/:id", controllers.UpdateCourse)
		api.DELETE("/courses/:id", controllers.DeleteCourse)

		api.GET("/assignments", controllers.GetAssignments)
		api.GET("/assignments/:id", controllers.GetAssignment)
		api.POST("/assignments", controllers.CreateAssignment)
		api.PATCH("/assignments/:id", controllers.UpdateAssignment)
		api.DELETE("/assignments/:id", controllers.DeleteAssignment)

		api.GET("/submissions", controllers.GetSubmissions)
		api.GET("/submissions/:id", controllers.GetSubmission)
		api.POST("/submissions", controllers.CreateSubmission)
		api.PATCH("/submissions/:id", controllers.UpdateSubmission)
		api.DELETE("/submissions/:id", controllers.DeleteSubmission)

		api.GET("/enrollments", controllers.GetEnrollments)
		api.GET("/enrollments/:id", controllers.GetEnrollment)
		api.POST("/enrollments", controllers.CreateEnrollment)
		api.PATCH("/enrollments/:id", controllers.UpdateEnrollment)
		api.DELETE("/enrollments/:id", controllers.DeleteEnrollment)

		api.GET("/calendar-events", controllers.GetCalendarEvents)
		api.GET("/calendar-events/:id", controllers.GetCalendarEvent)
		api.POST("/calendar-events", controllers.CreateCalendarEvent)
		api.PATCH("/calendar-events/:id", controllers.UpdateCalendarEvent)
		api.DELETE("/calendar-events/:id", controllers.DeleteCalendarEvent)

		api.GET("/users", controllers.GetUsers)
		api.GET("/users/:id", controllers.GetUser)
		api.PATCH("/users/:id", controllers.UpdateUser)

		adminOnly := api.Group("/")
		adminOnly.Use(middleware.RequireRoles("admin"))
		{
			adminOnly.POST("/users", controllers.CreateUser)
			adminOnly.DELETE("/users/:id", controllers.DeleteUser)
		}
	}

	return r
}
