package router

import (
	"github.com/smghasemi/membersync/internal/auth"
	"github.com/smghasemi/membersync/internal/config"
	"github.com/smghasemi/membersync/internal/importer"
	"github.com/smghasemi/membersync/internal/locker"
	"github.com/smghasemi/membersync/internal/meta"
	"github.com/smghasemi/membersync/internal/registry"
	"github.com/smghasemi/membersync/internal/shared/database"
	"github.com/smghasemi/membersync/internal/shared/middleware"
	"github.com/smghasemi/membersync/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, service info)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	userRepository := auth.NewUserRepository()
	lockerRepository := locker.NewLockerRepository()
	importStore := importer.NewStore()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, userRepository, tokenManager)
	importService := importer.NewImportService(db.DB, importStore, importer.NewMSSQLSourceFactory(cfg.Source))
	lockerService := locker.NewLockerService(db.DB, lockerRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	importHandler := importer.NewImportHandler(importService)
	registryHandler := registry.NewHandler(db.DB)
	lockerHandler := locker.NewLockerHandler(lockerService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	authV1.Use(middleware.Timeout(middleware.DefaultTimeout))
	{
		authV1.POST("/login", authHandler.Login)
	}

	// The import run is synchronous and can take minutes, so it carries its
	// own timeout instead of the default one.
	importV1 := router.Group("/api/v1/import")
	importV1.Use(middleware.JWT(cfg), middleware.Timeout(cfg.Server.ImportTimeout))
	{
		importV1.POST("", importHandler.Run)
	}

	registryV1 := router.Group("/api/v1/registry")
	registryV1.Use(middleware.JWT(cfg), middleware.Timeout(middleware.DefaultTimeout))
	{
		registryV1.GET("", registryHandler.List)
		registryV1.POST("", registryHandler.Create)
		registryV1.PATCH("", registryHandler.Patch)
		registryV1.DELETE("", registryHandler.Delete)
	}

	lockerV1 := router.Group("/api/v1/lockers")
	lockerV1.Use(middleware.JWT(cfg), middleware.Timeout(middleware.DefaultTimeout))
	{
		lockerV1.GET("", lockerHandler.List)
		lockerV1.POST("", lockerHandler.Create)
		lockerV1.PATCH("", lockerHandler.Patch)
		lockerV1.DELETE("", lockerHandler.Delete)
	}
}
