package api

import (
	"net/http"

	"cityhunt/internal/api/handlers"
	"cityhunt/internal/middleware"
	"cityhunt/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all endpoints. uploadDir is served statically so
// reviewed artifacts can be fetched back by their stored filename.
func SetupRoutes(r *gin.Engine, services *service.Services, uploadDir string) {
	authHandler := handlers.NewAuthHandler(services.Auth)
	teamHandler := handlers.NewTeamHandler(services.Round, services.Submission)
	submissionHandler := handlers.NewSubmissionHandler(services.Submission)
	chatHandler := handlers.NewChatHandler(services.Messaging)
	gmHandler := handlers.NewGMHandler(services.Round, services.Submission, services.Score)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	// Public team routes.
	{
		api.POST("/join", teamHandler.Join)
		api.GET("/missions", teamHandler.Missions)
		api.POST("/submissions", submissionHandler.Submit)
		api.GET("/timer", teamHandler.Timer)

		team := api.Group("/team")
		{
			team.POST("/messages", chatHandler.PostTeamMessage)
			team.GET("/messages", chatHandler.Messages)
			team.GET("/broadcasts", chatHandler.PendingBroadcasts)
			team.POST("/broadcasts/ack", chatHandler.AckBroadcast)
			team.GET("/mission-status", teamHandler.MissionStatus)
		}

		api.POST("/gm/login", authHandler.Login)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	// GM routes behind the token check.
	gm := api.Group("/gm")
	gm.Use(middleware.GMAuth(services.Auth))
	{
		gm.GET("/teams", gmHandler.Teams)
		gm.GET("/scores", gmHandler.Scores)
		gm.GET("/submissions", gmHandler.Submissions)
		gm.POST("/submissions/:id/review", gmHandler.ReviewSubmission)

		gm.GET("/messages", chatHandler.Messages)
		gm.POST("/messages", chatHandler.PostGMMessage)
		gm.POST("/chat/reset-team", chatHandler.ResetTeamChat)
		gm.POST("/broadcast", chatHandler.PostBroadcast)

		gm.POST("/timer/start", gmHandler.StartTimer)
		gm.POST("/timer/stop", gmHandler.StopTimer)
		gm.POST("/reset", gmHandler.ResetRound)
	}
}
