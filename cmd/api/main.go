package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/habitara-dev/habitara-api/api/swagger"
	"github.com/habitara-dev/habitara-api/internal/handler"
	"github.com/habitara-dev/habitara-api/internal/middleware"
	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/repository"
	"github.com/habitara-dev/habitara-api/internal/service"
	"github.com/habitara-dev/habitara-api/pkg/cache"
	"github.com/habitara-dev/habitara-api/pkg/cms"
	"github.com/habitara-dev/habitara-api/pkg/config"
	"github.com/habitara-dev/habitara-api/pkg/database"
	"github.com/habitara-dev/habitara-api/pkg/embed"
	"github.com/habitara-dev/habitara-api/pkg/logger"
	corsmiddleware "github.com/habitara-dev/habitara-api/pkg/middleware/cors"
	reqidmiddleware "github.com/habitara-dev/habitara-api/pkg/middleware/requestid"
)

// @title Habitara API
// @version 1.0.0
// @description Back office gateway for multi-tenant real estate portals
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, content caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	profileRepo := repository.NewProfileRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	agentRepo := repository.NewAgentRepository(db)

	authService := service.NewAuthService(profileRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "habitara-api",
	})

	embedSigner := embed.NewTokenSigner(cfg.Embed.Secret, cfg.Embed.TTL)
	propertyService := service.NewPropertyService(propertyRepo, profileRepo, embedSigner, cfg.Embed.BaseURL, validate, logr)
	projectService := service.NewProjectService(projectRepo, profileRepo, validate, logr)
	blogService := service.NewBlogService(blogRepo, profileRepo, validate, logr)
	userService := service.NewUserService(profileRepo, validate, logr)
	agentService := service.NewAgentService(agentRepo, profileRepo, validate, logr)
	submissionService := service.NewSubmissionService(submissionRepo, profileRepo, validate, logr)
	exportService := service.NewExportService(submissionRepo, logr)
	metricsService := service.NewMetricsService()

	contentClient := cms.NewClient(cfg.Content.BaseURL, cfg.Content.APIKey, cfg.Content.Timeout)
	contentService := service.NewContentService(contentClient, redisClient, cfg.Content.CacheTTL, logr)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	projectHandler := handler.NewProjectHandler(projectService)
	blogHandler := handler.NewBlogHandler(blogService)
	userHandler := handler.NewUserHandler(userService)
	agentHandler := handler.NewAgentHandler(agentService)
	submissionHandler := handler.NewSubmissionHandler(submissionService, exportService)
	publicHandler := handler.NewPublicHandler(submissionService, propertyService, contentService, metricsService)
	metricsHandler := handler.NewMetricsHandler(metricsService, db, redisClient)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	public := api.Group("/public")
	{
		public.POST("/contact", publicHandler.SubmitContact)
		public.GET("/properties/embed/:token", publicHandler.EmbedProperty)
		public.GET("/content/:slug", publicHandler.Content)
	}

	secured := api.Group("")
	secured.Use(middleware.JWT(authService))
	{
		properties := secured.Group("/properties")
		{
			properties.GET("/pending-count", propertyHandler.PendingCount)
			properties.POST("/approve", middleware.AdminOnly(), propertyHandler.Approve)
			properties.POST("/reject", middleware.AdminOnly(), propertyHandler.Reject)
			properties.POST("/active", middleware.AdminOnly(), propertyHandler.SetActive)
			properties.POST("/featured", middleware.AdminOnly(), propertyHandler.SetFeatured)
			properties.POST("/:id/embed-url", middleware.AdminOnly(), propertyHandler.GenerateEmbedURL)
		}

		projects := secured.Group("/projects", middleware.AdminOnly())
		{
			projects.POST("/active", projectHandler.ToggleActive)
			projects.POST("/featured", projectHandler.ToggleFeatured)
			projects.DELETE("/:id", projectHandler.Delete)
		}

		blog := secured.Group("/blog", middleware.AdminOnly())
		{
			blog.POST("/featured", blogHandler.ToggleFeatured)
			blog.POST("/published", blogHandler.TogglePublished)
		}

		leads := secured.Group("/leads", middleware.RBAC(models.RoleAdmin, models.RoleAgent))
		{
			leads.GET("", submissionHandler.List)
			leads.POST("/status", submissionHandler.UpdateStatus)
			if cfg.Exports.Enabled {
				leads.GET("/export", middleware.AdminOnly(), submissionHandler.Export)
			}
		}

		users := secured.Group("/users", middleware.AdminOnly())
		{
			users.POST("/role", userHandler.ChangeRole)
			users.POST("/active", userHandler.SetActive)
		}

		secured.POST("/agents/active", middleware.AdminOnly(), agentHandler.SetActive)
		secured.PUT("/profile", userHandler.UpdateProfile)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
