package routes

import (
	"os"
	"time"

	"github.com/fahrezi93/NutriSuggest/controllers"
	"github.com/fahrezi93/NutriSuggest/middlewares"
	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.StatusHub) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Recommendation-Source"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck(hub))
		api.GET("/health-conditions", controllers.GetHealthConditions)
		api.GET("/foods", controllers.GetFoods)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/foods/category/:category", controllers.GetFoodsByCategory)

		api.POST("/recommendations", middlewares.OptionalAuthMiddleware(), controllers.GetRecommendations)
		api.POST("/navigate", middlewares.OptionalAuthMiddleware(), controllers.Navigate)
		api.POST("/feedback", middlewares.OptionalAuthMiddleware(), controllers.SubmitFeedback)
		api.POST("/newsletter/subscribe", controllers.SubscribeNewsletter)

		api.POST("/save-recommendation", middlewares.AuthMiddleware(), controllers.SaveRecommendation)

		history := api.Group("/history")
		history.Use(middlewares.AuthMiddleware())
		{
			history.GET("", controllers.GetHistory)
			history.GET("/:id", controllers.GetHistoryEntry)
			history.DELETE("/:id", controllers.DeleteHistoryEntry)
			history.DELETE("", controllers.ClearHistory)
		}
	}

	r.GET("/ws/status", controllers.StatusWS(hub))

	return r
}
