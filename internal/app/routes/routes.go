package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseapi/internal/app/controllers"
	"github.com/yigit/courseapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	requireAuth := authMiddleware.BasicAuth()

	router.GET("/health", healthController.Health)

	// User routes
	users := router.Group("/users")
	{
		users.GET("", requireAuth, userController.GetCurrentUser)
		users.POST("", userController.CreateUser)
	}

	// Course routes: reads are public, writes need credentials
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", requireAuth, courseController.CreateCourse)
		courses.PUT("/:id", requireAuth, courseController.UpdateCourse)
		courses.DELETE("/:id", requireAuth, courseController.DeleteCourse)
	}

	router.NoRoute(middleware.NotFound)
}
