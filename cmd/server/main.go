package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fittrack/backend/internal/auth"
	"fittrack/backend/internal/config"
	"fittrack/backend/internal/database"
	"fittrack/backend/internal/friends"
	"fittrack/backend/internal/handler"
	"fittrack/backend/internal/middleware"
	"fittrack/backend/internal/storage"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "fittrack/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           FitTrack API
// @version         1.0
// @description     This is the API for the FitTrack fitness tracking service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Object store for profile pictures
	images, err := storage.NewS3Storage(context.Background(), config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}
	handler.Images = images
	handler.FriendService = friends.NewService(friends.NewGormStore(database.DB))

	// Credential endpoints get a per-IP limiter.
	authLimiter := middleware.NewIPRateLimiter(10, time.Minute, 5, 10*time.Minute)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		authRoutes.Use(middleware.RateLimit(authLimiter))
		{
			authRoutes.POST("/signup", handler.Signup)
			authRoutes.POST("/signin", handler.Signin)
			authRoutes.POST("/signout", handler.Signout)
		}

		// Profile routes (protected, except public search)
		profileRoutes := apiV1.Group("/profile")
		{
			profileRoutes.GET("/search/:email", auth.OptionalAuthMiddleware(), handler.SearchProfile)

			protected := profileRoutes.Group("")
			protected.Use(auth.AuthMiddleware())
			{
				protected.GET("", handler.GetProfile)
				protected.PUT("/update-name", handler.UpdateName)
				protected.PUT("/update-info", handler.UpdateInfo)
				protected.PUT("/toggle-privacy", handler.TogglePrivacy)
				protected.POST("/upload-picture", handler.UploadProfilePicture)
				protected.DELETE("/delete-picture", handler.DeleteProfilePicture)
			}
		}

		// Weight log routes (protected)
		weightRoutes := apiV1.Group("/weight")
		weightRoutes.Use(auth.AuthMiddleware())
		{
			weightRoutes.POST("", handler.LogWeight)
			weightRoutes.GET("/history", handler.GetWeightHistory)
			weightRoutes.DELETE("/:id", handler.DeleteWeight)
		}

		// Workout routes (protected)
		workoutRoutes := apiV1.Group("/workouts")
		workoutRoutes.Use(auth.AuthMiddleware())
		{
			workoutRoutes.GET("", handler.GetWorkouts)
			workoutRoutes.POST("", handler.CreateWorkout)
			workoutRoutes.GET("/completed", handler.GetCompletedWorkouts) // Must be before /:id
			workoutRoutes.PUT("/:id", handler.UpdateWorkout)
			workoutRoutes.DELETE("/:id", handler.DeleteWorkout)
			workoutRoutes.POST("/:id/complete", handler.CompleteWorkout)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.POST("/request", handler.SendFriendRequest)
			friendRoutes.GET("/requests", handler.GetFriendRequests)
			friendRoutes.GET("/sent-requests", handler.GetSentRequests)
			friendRoutes.POST("/accept", handler.AcceptFriendRequest)
			friendRoutes.POST("/reject", handler.RejectFriendRequest)
			friendRoutes.POST("/remove", handler.RemoveFriend)
			friendRoutes.POST("/cancel-request", handler.CancelFriendRequest)
			friendRoutes.GET("/list", handler.GetFriendsList)
			friendRoutes.GET("/search", handler.SearchFriend)
		}

		// Leaderboard routes (public, identity attached when present)
		leaderboardRoutes := apiV1.Group("/leaderboard")
		leaderboardRoutes.Use(auth.OptionalAuthMiddleware())
		{
			leaderboardRoutes.GET("/weight-loss", handler.GetWeightLossLeaderboard)
			leaderboardRoutes.GET("/strength", handler.GetStrengthLeaderboard)
			leaderboardRoutes.GET("/consistency", handler.GetConsistencyLeaderboard)
			leaderboardRoutes.GET("/hybrid", handler.GetHybridLeaderboard)
			leaderboardRoutes.GET("/ranks/:email", handler.GetUserRanks)
		}
	}

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(":8080"))
}
