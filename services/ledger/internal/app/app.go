package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"content-ledger/pkg/cache"
	"content-ledger/pkg/config"
	"content-ledger/pkg/database"
	"content-ledger/pkg/jwt"
	"content-ledger/pkg/logger"
	"content-ledger/pkg/metrics"
	"content-ledger/pkg/middleware"
	"content-ledger/pkg/queue"
	"content-ledger/pkg/s3"
	ledgerHTTP "content-ledger/services/ledger/internal/controller/http"
	"content-ledger/services/ledger/internal/entity"
	"content-ledger/services/ledger/internal/model"
	contentCache "content-ledger/services/ledger/internal/repo/cache"
	"content-ledger/services/ledger/internal/repo/events"
	"content-ledger/services/ledger/internal/repo/persistent"
	"content-ledger/services/ledger/internal/settlement"
	"content-ledger/services/ledger/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "content-ledger/services/ledger/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	publisher   *events.Publisher
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithFile(cfg.LogFile)

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	// SQLite deployments have no migration step.
	if cfg.DBDriver == "sqlite" {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without cache and rate limit)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (snapshot export disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
		registry:    registry,
	}, nil
}

func (a *App) deps() usecase.Deps {
	deps := usecase.Deps{
		Repo:       persistent.NewLedgerRepository(a.db),
		Settlement: settlement.NewWalletSettlement(a.log),
		Owner:      a.cfg.LedgerOwnerID,
		Custody:    a.cfg.LedgerCustodyID,
		Metrics:    metrics.New(a.registry),
		Logger:     a.log,
	}
	if a.redisClient != nil {
		deps.Cache = contentCache.NewContentCache(a.redisClient, a.log)
	}
	if a.s3Client != nil {
		deps.Uploader = a.s3Client
	}
	if a.queueClient != nil {
		a.publisher = events.NewPublisher(a.queueClient, a.log)
		deps.Events = a.publisher
	}
	return deps
}

func (a *App) Run() error {
	deps := a.deps()

	// Initialize use cases
	useCases := ledgerHTTP.UseCases{
		Content:      usecase.NewContentUseCase(deps),
		Access:       usecase.NewAccessUseCase(deps),
		Royalty:      usecase.NewRoyaltyUseCase(deps),
		Subscription: usecase.NewSubscriptionUseCase(deps),
		Rating:       usecase.NewRatingUseCase(deps),
		Report:       usecase.NewReportUseCase(deps),
		Wallet:       usecase.NewWalletUseCase(deps),
		Audit:        usecase.NewAuditUseCase(deps),
	}

	// Initialize HTTP handlers
	ledgerHandler := ledgerHTTP.NewLedgerHandler(useCases, usecase.UnixClock{}, a.log)

	if a.queueClient != nil {
		a.consumeEvents(deps.Cache)
	}

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", a.health)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	ledgerHandler.RegisterRoutes(api)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Ledger service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if a.queueClient != nil {
		if pending, err := a.queueClient.GetQueueLength(); err == nil {
			status["pending_events"] = pending
		}
	}
	c.JSON(http.StatusOK, status)
}

// consumeEvents drops cached content whose ownership changed on any
// instance sharing the broker.
func (a *App) consumeEvents(cache usecase.ContentCache) {
	err := a.queueClient.ConsumeEvents(func(routingKey string, payload map[string]string) error {
		a.log.Info("[LEDGER EVENTS] Received %s at height %s", routingKey, payload["height"])
		if routingKey != entity.EventContentOwnershipChanged || cache == nil {
			return nil
		}

		id, err := parseContentID(payload["contentId"])
		if err != nil {
			a.log.Warn("[LEDGER EVENTS] Ignoring %s with bad content id %q", routingKey, payload["contentId"])
			return nil
		}
		cache.Invalidate(context.Background(), id)
		return nil
	})
	if err != nil {
		a.log.Error("Error starting ledger event consumer: %v", err)
	}
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down ledger service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting calls before closing the stores they use
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.publisher != nil {
		a.publisher.Wait()
	}
	if a.queueClient != nil {
		a.queueClient.Close()
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Ledger service exited")
	return nil
}

func parseContentID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}
