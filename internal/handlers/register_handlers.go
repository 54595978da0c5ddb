package handlers

import (
	"fmt"

	"github.com/SscSPs/bankroll_app/cmd/docs"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
	"github.com/SscSPs/bankroll_app/internal/middleware"
	"github.com/SscSPs/bankroll_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	source EventSource,
) error {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	if err := RegisterAuthRoutes(r, services.Auth); err != nil {
		return fmt.Errorf("failed to register auth routes: %w", err)
	}

	if err := setupAPIV1Routes(r, cfg, services, source); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// RegisterValidators teaches the gin validator to compare Amount and Rate fields numerically.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(dto.DecimalValue, dto.Amount{}, dto.Rate{})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	source EventSource,
) error {
	apiLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RateLimit(apiLimiter))

	RegisterSettingsRoutes(v1, services.Settings)
	RegisterPlatformRoutes(v1, services.Platform)
	RegisterLiveSessionRoutes(v1, services.LiveSession, services.Settings)
	RegisterOnlineSessionRoutes(v1, services.OnlineSession, services.Platform, services.Settings)
	RegisterTransferRoutes(v1, services.Transfer)
	RegisterAdjustmentRoutes(v1, services.Adjustment)
	RegisterBackupRoutes(v1, services.Backup)
	RegisterEventRoutes(v1, source, cfg.CORSAllowedOrigins)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
