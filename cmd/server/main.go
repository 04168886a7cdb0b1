package main

import (
	"log"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/config"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/database"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/handlers"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/middleware"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/ws"

	_ "github.com/Hemanth-Krishna-A-B/presenting-IT/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           presenting-IT API
// @version         1.0
// @description     Live classroom sessions: share presentations, polls and quizzes, collect responses, rank a leaderboard
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	sessionService := services.NewSessionService(db)
	contentService := services.NewContentService(db)
	responseService := services.NewResponseService(db)
	leaderboardService := services.NewLeaderboardService(db)
	reportService := services.NewReportService(db, sessionService, responseService, leaderboardService)

	uploadService, err := services.NewUploadService(cfg)
	if err != nil {
		log.Fatalf("failed to init upload service: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService, hub)
	contentHandler := handlers.NewContentHandler(contentService)
	responseHandler := handlers.NewResponseHandler(responseService, leaderboardService, sessionService)
	reportHandler := handlers.NewReportHandler(reportService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/room/:id", wsHandler.HandleRoomWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("", middleware.JWTAuth(authService), sessionHandler.CreateSession)
			sessions.GET("", middleware.JWTAuth(authService), sessionHandler.ListSessions)
			sessions.POST("/join", sessionHandler.JoinSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/stop", middleware.JWTAuth(authService), sessionHandler.StopSession)
			sessions.POST("/:id/share", middleware.JWTAuth(authService), sessionHandler.ShareContent)
			sessions.POST("/:id/slide", middleware.JWTAuth(authService), sessionHandler.SetSlide)
			sessions.POST("/:id/settings", middleware.JWTAuth(authService), sessionHandler.UpdateSetting)
			sessions.GET("/:id/attendance", middleware.JWTAuth(authService), sessionHandler.Attendance)
			sessions.GET("/:id/attendance/export", middleware.JWTAuth(authService), sessionHandler.ExportAttendance)
			sessions.GET("/:id/leaderboard", middleware.OptionalJWTAuth(authService), responseHandler.GetLeaderboard)
			sessions.GET("/:id/report", middleware.JWTAuth(authService), reportHandler.GetSessionReport)
		}

		content := api.Group("/content")
		content.Use(middleware.JWTAuth(authService))
		{
			content.GET("", contentHandler.ListSaved)
		}

		presentations := api.Group("/presentations")
		{
			presentations.POST("", middleware.JWTAuth(authService), contentHandler.CreatePresentation)
			presentations.GET("/:id", contentHandler.GetPresentation)
			presentations.DELETE("/:id", middleware.JWTAuth(authService), contentHandler.DeletePresentation)
		}

		polls := api.Group("/polls")
		{
			polls.POST("", middleware.JWTAuth(authService), contentHandler.CreatePoll)
			polls.GET("/:id", contentHandler.GetPoll)
			polls.GET("/:id/tally", responseHandler.GetTally)
			polls.DELETE("/:id", middleware.JWTAuth(authService), contentHandler.DeletePoll)
		}

		banks := api.Group("/banks")
		{
			banks.POST("", middleware.JWTAuth(authService), contentHandler.CreateBank)
			banks.GET("/:id", contentHandler.GetBank)
			banks.DELETE("/:id", middleware.JWTAuth(authService), contentHandler.DeleteBank)
		}

		responses := api.Group("/responses")
		{
			responses.POST("/poll", responseHandler.SubmitPollAnswer)
			responses.POST("/score", responseHandler.SubmitQuizScore)
		}

		upload := api.Group("/upload")
		upload.Use(middleware.JWTAuth(authService))
		{
			upload.POST("", uploadHandler.UploadImage)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
