package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/cuet-cad-club/clubsite-api/api/swagger"
	"github.com/cuet-cad-club/clubsite-api/internal/handler"
	"github.com/cuet-cad-club/clubsite-api/internal/middleware"
	"github.com/cuet-cad-club/clubsite-api/internal/repository"
	"github.com/cuet-cad-club/clubsite-api/internal/service"
	"github.com/cuet-cad-club/clubsite-api/pkg/cache"
	"github.com/cuet-cad-club/clubsite-api/pkg/config"
	"github.com/cuet-cad-club/clubsite-api/pkg/logger"
	corsmiddleware "github.com/cuet-cad-club/clubsite-api/pkg/middleware/cors"
	reqidmiddleware "github.com/cuet-cad-club/clubsite-api/pkg/middleware/requestid"
	"github.com/cuet-cad-club/clubsite-api/pkg/sanity"
)

// @title CUET CAD Club API
// @version 1.0.0
// @description Read-only page view models for the club website
// @BasePath /api/v1
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	client := sanity.NewClient(cfg.Content)
	client.Observe = metrics.ObserveContentFetch

	content := repository.NewContentRepository(client, logr)

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, page cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
		}
	}

	homeSvc := service.NewHomeService(content, content, cacheSvc, client, logr, service.HomeServiceConfig{})
	aboutSvc := service.NewAboutService(content, cacheSvc, logr)
	eventsSvc := service.NewEventsService(content, cacheSvc, client, logr)
	workshopsSvc := service.NewWorkshopsService(content, cacheSvc, client, logr)
	committeeSvc := service.NewCommitteeService(content, cacheSvc, client, logr)
	alumniSvc := service.NewAlumniService(content, cacheSvc, client, logr, service.AlumniServiceConfig{})
	joinSvc := service.NewJoinService(content, cacheSvc, validator.New(), logr, cfg.Join.Enabled)
	exportSvc := service.NewExportService(content, content, logr, cfg.Exports.Enabled)

	homeHandler := handler.NewHomeHandler(homeSvc)
	aboutHandler := handler.NewAboutHandler(aboutSvc)
	eventsHandler := handler.NewEventsHandler(eventsSvc)
	workshopsHandler := handler.NewWorkshopsHandler(workshopsSvc)
	committeeHandler := handler.NewCommitteeHandler(committeeSvc)
	alumniHandler := handler.NewAlumniHandler(alumniSvc)
	joinHandler := handler.NewJoinHandler(joinSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	schemaHandler := handler.NewSchemaHandler()
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())

	pages := api.Group("/pages")
	pages.GET("/home", homeHandler.Page)
	pages.GET("/about", aboutHandler.Page)
	pages.GET("/events", eventsHandler.Page)
	pages.GET("/workshops", workshopsHandler.Page)
	pages.GET("/committee", committeeHandler.Page)
	pages.GET("/alumni", alumniHandler.Page)
	pages.GET("/join", joinHandler.Page)

	api.POST("/join/applications", joinHandler.Apply)

	if cfg.Exports.Enabled {
		exports := api.Group("/exports")
		exports.GET("/alumni.csv", exportHandler.AlumniCSV)
		exports.GET("/events.pdf", exportHandler.EventsPDF)
	}

	api.GET("/content/schema", schemaHandler.Types)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
