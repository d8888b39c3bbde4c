package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MarioCasanovacf/chambometro/internal/config"
	"github.com/MarioCasanovacf/chambometro/internal/middleware"
	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/handler"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/service"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting chambometro service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&entity.Project{}); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	hub := sse.NewHub(zapLogger)
	repos := repository.NewRepositories(db, rdb)
	services := service.NewServices(repos, hub, cfg, zapLogger)

	// First boot on an empty database gets a demo project.
	if err := services.Project.SeedDemo(context.Background()); err != nil {
		zapLogger.Warn("Demo project seed failed", zap.Error(err))
	}

	handlers := handler.NewHandlers(services, hub, cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // Disable for SSE long-lived connections
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// Token exchange, no login required.
		auth := v1.Group("/auth")
		{
			auth.POST("/token", h.Auth.Token)
		}

		// SSE stream, token accepted as query param for EventSource.
		sseGroup := v1.Group("/sse")
		sseGroup.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			sseGroup.GET("/events", h.SSE.Stream)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.List)
				projects.GET("/active", h.Project.ActiveProject)
				projects.GET("/:id", h.Project.Get)
				projects.PUT("/:id/active", h.Project.SelectActive)

				projects.POST("/:id/features/move", h.Roadmap.MoveFeature)
				projects.POST("/:id/ideas", h.Roadmap.AddIdea)
				projects.PUT("/:id/features/:featureId/eisenhower", h.Roadmap.UpdateEisenhower)
				projects.GET("/:id/features/:featureId/financials", h.Views.Financials)

				projects.PUT("/:id/versions/:index/features/:featureId/status", h.Roadmap.UpdateStatus)
				projects.PUT("/:id/versions/:index/features/:featureId/dates", h.Roadmap.UpdateDates)

				projects.GET("/:id/settings", h.Settings.Get)

				projects.GET("/:id/views/eisenhower", h.Views.Eisenhower)
				projects.GET("/:id/views/kanban", h.Views.Kanban)
				projects.GET("/:id/views/gantt", h.Views.Gantt)
				projects.GET("/:id/views/capacity", h.Views.Capacity)
				projects.GET("/:id/views/assignees", h.Views.Assignees)
				projects.GET("/:id/views/matrix", h.Views.Matrix)

				projects.GET("/:id/export", h.Export.Download)
			}

			// Destructive and structural operations need the admin role up
			// front; the services re-check on top of this.
			admin := authorized.Group("/projects")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("", h.Project.Create)
				admin.DELETE("/:id", h.Project.Delete)

				admin.POST("/:id/versions", h.Roadmap.AddVersion)
				admin.PATCH("/:id/versions/:index", h.Roadmap.EditVersion)
				admin.DELETE("/:id/versions/:index", h.Roadmap.DeleteVersion)
				admin.DELETE("/:id/versions/:index/features/:featureId", h.Roadmap.DeleteFeature)

				admin.POST("/:id/settings/categories/:kind", h.Settings.AddCategory)
				admin.PATCH("/:id/settings/categories/:kind/:categoryId", h.Settings.UpdateCategory)
				admin.DELETE("/:id/settings/categories/:kind/:categoryId", h.Settings.RemoveCategory)
				admin.PUT("/:id/settings/cogs-multiplier", h.Settings.SetCogsMultiplier)

				admin.POST("/:id/export/archive", h.Export.Archive)
			}
		}
	}
}
