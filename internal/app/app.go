package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"business_health_backend/internal/config"
	"business_health_backend/internal/controller"
	"business_health_backend/internal/repository"
	"business_health_backend/internal/service"
	"business_health_backend/pkg/database"
	"business_health_backend/pkg/logger"
	"business_health_backend/pkg/monitoring"
	"business_health_backend/pkg/security"
	"business_health_backend/pkg/tracing"

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
	user         *repository.UserRepository
	assessment   *repository.AssessmentRepository
	chat         *repository.ChatRepository
	subscription *repository.SubscriptionRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	scoring      *service.ScoringService
	assessment   *service.AssessmentService
	ai           *service.AIAdvisorService
	chat         *service.ChatService
	subscription *service.SubscriptionService
}

type controllers struct {
	health       *controller.HealthController
	auth         *controller.AuthController
	user         *controller.UserController
	catalog      *controller.CatalogController
	assessment   *controller.AssessmentController
	chat         *controller.ChatController
	subscription *controller.SubscriptionController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		assessment:   repository.NewAssessmentRepository(db, rdb),
		chat:         repository.NewChatRepository(db, rdb),
		subscription: repository.NewSubscriptionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.scoring = service.NewScoringService()
	s.assessment = service.NewAssessmentService(repos.assessment, s.scoring)
	s.ai = service.NewAIAdvisorService(cfg.AI)
	s.chat = service.NewChatService(repos.chat, s.assessment, s.ai)
	s.subscription = service.NewSubscriptionService(repos.subscription, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:       controller.NewHealthController(db),
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user),
		catalog:      controller.NewCatalogController(),
		assessment:   controller.NewAssessmentController(s.assessment),
		chat:         controller.NewChatController(s.chat),
		subscription: controller.NewSubscriptionController(s.subscription),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadAIConfig is invoked by the config watcher so LLM advisor settings
// apply without a restart. a.Config stays untouched here; request goroutines
// read it, and the advisor service keeps its own guarded copy.
func (a *App) ReloadAIConfig(cfg *config.Config) {
	a.services.ai.Reconfigure(cfg.AI)
	logger.Log.Info("AI advisor config reloaded", zap.Bool("enabled", cfg.AI.Enabled), zap.String("model", cfg.AI.Model))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("business-health", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

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

	logger.Log.Sync()
	log.Println("Server exiting")
}
