package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"levelup_backend/internal/config"
	"levelup_backend/internal/controller"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service"
	"levelup_backend/pkg/configwatcher"
	"levelup_backend/pkg/database"
	"levelup_backend/pkg/logger"
	"levelup_backend/pkg/monitoring"
	"levelup_backend/pkg/security"
	"levelup_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user        *repository.UserRepository
	badge       *repository.BadgeRepository
	topic       *repository.TopicRepository
	quiz        *repository.QuizRepository
	activity    *repository.ActivityRepository
	leaderboard *repository.LeaderboardRepository
	settings    *repository.SettingsRepository
}

type services struct {
	settings    *service.SettingsService
	auth        *service.AuthService
	storage     *service.StorageService
	streak      *service.StreakService
	user        *service.UserService
	topic       *service.TopicService
	quiz        *service.QuizService
	badge       *service.BadgeService
	leaderboard *service.LeaderboardService
	reset       *service.ResetService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	topic       *controller.TopicController
	quiz        *controller.QuizController
	badge       *controller.BadgeController
	leaderboard *controller.LeaderboardController
	admin       *controller.AdminController
	cron        *controller.CronController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		badge:       repository.NewBadgeRepository(db),
		topic:       repository.NewTopicRepository(db),
		quiz:        repository.NewQuizRepository(db),
		activity:    repository.NewActivityRepository(db),
		leaderboard: repository.NewLeaderboardRepository(db),
		settings:    repository.NewSettingsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.settings = service.NewSettingsService(repos.settings)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, s.settings, cfg)
	s.streak = service.NewStreakService(repos.user)
	s.user = service.NewUserService(repos.user, repos.badge, repos.quiz, repos.topic, repos.activity)
	s.topic = service.NewTopicService(repos.topic, repos.user, repos.activity)
	s.quiz = service.NewQuizService(repos.quiz, repos.user, repos.activity)
	s.badge = service.NewBadgeService(repos.badge, repos.user, repos.quiz, repos.topic, repos.activity)
	s.leaderboard = service.NewLeaderboardService(repos.user, repos.leaderboard, rdb)
	s.reset = service.NewResetService(repos.user, repos.leaderboard, repos.settings, s.settings, db)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.streak),
		user:        controller.NewUserController(s.user, s.streak, s.storage),
		topic:       controller.NewTopicController(s.topic),
		quiz:        controller.NewQuizController(s.quiz, s.badge),
		badge:       controller.NewBadgeController(s.badge),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, s.reset),
		admin:       controller.NewAdminController(s.user, s.settings, s.reset, s.leaderboard, repos.badge),
		cron:        controller.NewCronController(s.reset, a.Config),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode != "release")
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg, db, rdb)
	app.services = svcs
	ctrls := app.initControllers(svcs, repos, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("levelup-backend", cfg.Tracing.CollectorEndpoint, cfg.Server.Mode); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, repos, svcs, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(c interface{}) {
		logger.Log.Info("configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
