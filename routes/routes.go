package routes

import (
	"github.com/eventcity-api/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine) {
	// Health check
	router.GET("/", controllers.HealthCheck)

	roleController := controllers.NewRoleController()
	categoryController := controllers.NewCategoryController()
	userController := controllers.NewUserController()
	eventController := controllers.NewEventController()

	api := router.Group("/api")
	{
		// Roles
		roles := api.Group("/roles")
		{
			roles.GET("", roleController.GetRoles)
			roles.GET("/:id", roleController.GetRole)
			roles.POST("", roleController.CreateRole)
			roles.PUT("/:id", roleController.UpdateRole)
			roles.DELETE("/:id", roleController.DeleteRole)
		}

		// Categories
		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.GetCategories)
			categories.GET("/:id", categoryController.GetCategory)
			categories.POST("", categoryController.CreateCategory)
			categories.PUT("/:id", categoryController.UpdateCategory)
			categories.DELETE("/:id", categoryController.DeleteCategory)
		}

		// Users
		users := api.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/:id", userController.GetUser)
			users.POST("", userController.CreateUser)
			users.POST("/login", userController.Login)
			users.PATCH("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Events
		events := api.Group("/events")
		{
			events.GET("", eventController.GetEvents)
			events.GET("/:id", eventController.GetEvent)
			events.POST("", eventController.CreateEvent)
			events.PATCH("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
			events.POST("/:id/attendees", eventController.AddAttendee)
			events.GET("/:id/attendees", eventController.GetAttendees)
			events.DELETE("/:id/attendees/:userId", eventController.RemoveAttendee)
		}
	}
}
