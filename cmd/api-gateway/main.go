package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/gds-saude/gds-api/api/swagger"
	"github.com/gds-saude/gds-api/internal/handler"
	"github.com/gds-saude/gds-api/internal/middleware"
	"github.com/gds-saude/gds-api/internal/repository"
	"github.com/gds-saude/gds-api/internal/service"
	"github.com/gds-saude/gds-api/pkg/cache"
	"github.com/gds-saude/gds-api/pkg/config"
	"github.com/gds-saude/gds-api/pkg/database"
	"github.com/gds-saude/gds-api/pkg/logger"
	corsmiddleware "github.com/gds-saude/gds-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gds-saude/gds-api/pkg/middleware/requestid"
)

// @title GDS API
// @version 1.0.0
// @description Gestão Dinâmica de Salas - weekly room allocation engine
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// Redis is an optimization; the API degrades to uncached reads.
		logr.Warn("redis unavailable, summary cache disabled", zap.Error(err))
		redisClient = nil
	}

	calendar, err := service.NewFacilityCalendar(cfg.Calendar)
	if err != nil {
		logr.Fatal("failed to init facility calendar", zap.Error(err))
	}

	demandRepo := repository.NewDemandRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	conflictRepo := repository.NewConflictRepository(db)
	specialtyRepo := repository.NewSpecialtyRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()

	metricsSvc := service.NewMetricsService()
	scorer := service.NewScorer(cfg.Scoring)

	allocationSvc := service.NewAllocationService(
		demandRepo, roomRepo, assignmentRepo, conflictRepo,
		cacheRepo, db, scorer, metricsSvc, logr, cfg.Summary.CacheTTL,
	)
	swapSvc := service.NewSwapService(
		assignmentRepo, roomRepo, conflictRepo,
		cacheRepo, db, scorer, metricsSvc, logr,
	)
	realtimeSvc := service.NewRealtimeService(roomRepo, assignmentRepo, calendar, db, logr)
	demandSvc := service.NewDemandService(demandRepo, specialtyRepo, logr)
	specialtySvc := service.NewSpecialtyService(specialtyRepo)
	roomSvc := service.NewRoomService(roomRepo, cacheRepo, db, logr)
	authSvc := service.NewAuthService(cfg.Auth)
	exportSvc := service.NewExportService(allocationSvc)

	allocationHandler := handler.NewAllocationHandler(allocationSvc, exportSvc)
	swapHandler := handler.NewSwapHandler(swapSvc)
	realtimeHandler := handler.NewRealtimeHandler(realtimeSvc)
	demandHandler := handler.NewDemandHandler(demandSvc)
	specialtyHandler := handler.NewSpecialtyHandler(specialtySvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	authorized := api.Group("", middleware.JWT(authSvc))

	api.POST("/auth/login", authHandler.Login)

	api.GET("/allocation/summary", allocationHandler.Summary)
	api.GET("/allocation/conflicts", allocationHandler.Conflicts)
	api.GET("/allocation/summary/export/csv", allocationHandler.ExportCSV)
	api.GET("/allocation/summary/export/pdf", allocationHandler.ExportPDF)
	api.GET("/allocation/assignments/:id/swap-options", swapHandler.Options)
	authorized.POST("/allocation/generate", allocationHandler.Regenerate)
	authorized.POST("/allocation/assignments/:id/swap", swapHandler.Apply)

	api.GET("/realtime/status", realtimeHandler.Status)

	api.GET("/demands", demandHandler.List)
	api.GET("/specialties", specialtyHandler.List)
	authorized.POST("/demands", demandHandler.Create)

	api.GET("/rooms", roomHandler.List)
	authorized.PUT("/rooms/:id/maintenance", roomHandler.SetMaintenance)
	authorized.POST("/rooms/:id/check-in", roomHandler.CheckIn)
	authorized.POST("/rooms/:id/check-out", roomHandler.CheckOut)
	authorized.DELETE("/rooms/:id", roomHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
