package routes

import (
	"betteru-backend/authentication"
	"betteru-backend/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()

	api := r.Group("/api")

	//public routes
	api.POST("/auth/register", controllers.Register)
	api.POST("/auth/login", controllers.Login)
	api.GET("/jobs", controllers.ViewJobs)
	api.GET("/experts", controllers.ViewExperts)
	api.POST("/ai/chat", controllers.ChatWithAI)

	//payment initiation and gateway callbacks (callbacks are unauthenticated,
	//the gateway validation API is the gate)
	api.POST("/payment/initiate", controllers.InitiatePayment)
	api.POST("/payment/success", controllers.PaymentSuccess)
	api.POST("/payment/fail", controllers.PaymentFail)
	api.POST("/payment/cancel", controllers.PaymentCancel)
	api.POST("/payment/ipn", controllers.PaymentIPN)

	//user routes
	user := api.Group("/")
	user.Use(authentication.UserAuthMiddleware())
	{
		user.POST("/jobs/apply", controllers.Apply)
		user.GET("/notifications", controllers.ViewNotifications)
		user.GET("/notifications/unread-count", controllers.UnreadCount)
		user.PUT("/notifications/:id/read", controllers.MarkNotificationRead)
		user.PUT("/notifications/mark-all-read", controllers.MarkAllNotificationsRead)
		user.POST("/moods", controllers.LogMood)
		user.GET("/moods/history", controllers.MoodHistory)
	}

	//admin routes
	admin := api.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.GET("/users", controllers.ViewUsers)
		admin.GET("/doctors", controllers.ViewDoctors)
		admin.DELETE("/users/:id", controllers.DeleteUser)
	}

	jobs := api.Group("/jobs")
	jobs.Use(authentication.AdminAuthMiddleware())
	{
		jobs.POST("", controllers.CreateJob)
		jobs.PATCH("/:id/toggle", controllers.ToggleJob)
		jobs.DELETE("/:id", controllers.DeleteJob)
		jobs.GET("/applications", controllers.ViewApplications)
		jobs.PUT("/applications/:id/approve", controllers.ApproveApplication)
		jobs.PUT("/applications/:id/reject", controllers.RejectApplication)
	}

	return r
}
