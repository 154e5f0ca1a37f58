package app

import (
	"levelup_backend/internal/config"
	"levelup_backend/internal/middleware"
	"levelup_backend/internal/model"
	"levelup_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// External scheduler endpoint, shared-secret auth.
	router.GET("/cron/weekly-reset", c.cron.WeeklyReset)

	a.registerPublicRoutes(router, c, repos, svcs)
	a.registerUserRoutes(router, c, repos, svcs, cfg)
	a.registerAdminRoutes(router, c, repos, svcs, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Leaderboard is open to guests; a logged-in caller additionally
		// gets their own rank.
		public.GET("/leaderboard",
			middleware.TryAuthMiddleware(a.Config),
			middleware.MaintenanceMiddleware(svcs.settings),
			middleware.ActivityMiddleware(repos.user, svcs.settings),
			c.leaderboard.GetLeaderboard)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(
		middleware.AuthMiddleware(cfg),
		middleware.MaintenanceMiddleware(svcs.settings),
		middleware.ActivityMiddleware(repos.user, svcs.settings),
	)
	{
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)
		authGroup.POST("/user/streak", c.user.TouchStreak)
		authGroup.GET("/user/activity", c.user.GetActivity)
		authGroup.GET("/user/badges", c.badge.MyBadges)

		authGroup.GET("/topics", c.topic.ListTopics)
		authGroup.POST("/topics/:id/complete", c.topic.CompleteTopic)

		authGroup.GET("/quizzes", c.quiz.ListQuizzes)
		authGroup.GET("/quizzes/attempts", c.quiz.ListAttempts)
		authGroup.GET("/quizzes/:id", c.quiz.GetQuiz)
		authGroup.POST("/quizzes/:id/submit", c.quiz.SubmitQuiz)

		authGroup.GET("/badges", c.badge.ListBadges)
		authGroup.POST("/badges/check", c.badge.CheckBadges)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(model.RoleAdmin),
		middleware.ActivityMiddleware(repos.user, svcs.settings),
	)
	{
		admin.POST("/leaderboard/reset", c.admin.TriggerReset)
		admin.GET("/leaderboard/reset/history", c.admin.ListResetArchives)

		admin.GET("/settings", c.admin.GetSettings)
		admin.PUT("/settings", c.admin.UpdateSettings)

		admin.PATCH("/users/:id/block", c.admin.BlockUser)

		admin.POST("/badges", c.admin.CreateBadge)
		admin.PUT("/badges/:id", c.admin.UpdateBadge)
	}
}
