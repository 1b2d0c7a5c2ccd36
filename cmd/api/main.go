package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/auth"
	"github.com/jobnest/jobnest/internal/config"
	"github.com/jobnest/jobnest/internal/database"
	"github.com/jobnest/jobnest/internal/handlers"
	"github.com/jobnest/jobnest/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Initialize Core Services (Dependencies)
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	jobService := services.NewJobService(db)
	bidService := services.NewBidService(db)
	categoryService := services.NewCategoryService(db)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(tokenService, cfg)
	jobHandler := handlers.NewJobHandler(jobService)
	bidHandler := handlers.NewBidHandler(bidService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// 5. Setup Router & CORS
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "IT job server")
	})

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Sessions
		api.POST("/auth/token", authHandler.IssueToken)
		api.POST("/auth/logout", authHandler.Logout)

		// Public reads
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs-by-category/:category", jobHandler.ListJobsByCategory)

		// Session-gated
		api.GET("/jobs/:id", auth.RequireSession(tokenService), jobHandler.GetJob)
		api.POST("/jobs", auth.RequireSession(tokenService), jobHandler.CreateJob)
		api.POST("/bids", auth.RequireSession(tokenService), bidHandler.CreateBid)
		api.PATCH("/bids/:id/reject", auth.RequireSession(tokenService), bidHandler.RejectBid)
		api.PATCH("/bids/:id/accept", auth.RequireSession(tokenService), bidHandler.AcceptBid)
		api.PATCH("/bids/:id/complete", auth.RequireSession(tokenService), bidHandler.CompleteBid)

		// Owner-scoped: the session email must match the claimed owner email
		api.GET("/my-jobs", auth.RequireOwner(tokenService, "email"), jobHandler.MyJobs)
		api.GET("/bid-requests", auth.RequireOwner(tokenService, "email"), bidHandler.BidRequests)
		api.GET("/my-bids", auth.RequireOwner(tokenService, "email"), bidHandler.MyBids)
		api.PATCH("/jobs/:id", auth.RequireOwner(tokenService, "email"), jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", auth.RequireOwner(tokenService, "email"), jobHandler.DeleteJob)
	}

	log.Println("IT job server starting on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
