package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	contentusecases "mnada/internal/application/content/usecases"
	posterusecases "mnada/internal/application/poster/usecases"
	pricingusecases "mnada/internal/application/pricing/usecases"
	"mnada/internal/domain/locale"
	"mnada/internal/infrastructure/assets"
	"mnada/internal/infrastructure/config"
	"mnada/internal/infrastructure/platform"
	"mnada/internal/interfaces/http/handlers"
	"mnada/internal/interfaces/http/middleware"
	"mnada/internal/shared/logger"
)

// Router wires the generator handlers onto a gin engine.
type Router struct {
	engine *gin.Engine

	catalogHandler *handlers.CatalogHandler
	contentHandler *handlers.ContentHandler
	posterHandler  *handlers.PosterHandler
	pricingHandler *handlers.PricingHandler
}

// NewRouter builds the engine, use cases, and handlers from the loaded
// configuration and infrastructure services.
func NewRouter(cfg *config.Config, profiles *platform.Registry, logos *assets.Catalog) *Router {
	gin.SetMode(resolveGinMode(cfg.Server.Mode))
	registerValidations()

	log := logger.NewLogger()

	contentHandler := handlers.NewContentHandler(
		contentusecases.NewGenerateAnnouncementUseCase(profiles, log.Named("content")),
	)
	posterHandler := handlers.NewPosterHandler(
		posterusecases.NewComposePosterUseCase(logos, log.Named("poster")),
		posterusecases.NewApplyContentUseCase(log.Named("poster")),
		posterusecases.NewExportPosterUseCase(log.Named("poster")),
	)
	pricingHandler := handlers.NewPricingHandler(
		pricingusecases.NewGeneratePriceBoardUseCase(log.Named("pricing")),
	)

	return &Router{
		engine:         gin.New(),
		catalogHandler: handlers.NewCatalogHandler(profiles),
		contentHandler: contentHandler,
		posterHandler:  posterHandler,
		pricingHandler: pricingHandler,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(logger.NewLogger().Named("http")))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/catalog", r.catalogHandler.GetCatalog)

		content := v1.Group("/content")
		{
			content.POST("/announcements", r.contentHandler.GenerateAnnouncement)
		}

		posters := v1.Group("/posters")
		{
			posters.GET("/layout", r.posterHandler.GetDefaultLayout)
			posters.POST("/compose", r.posterHandler.ComposePoster)
			posters.POST("/apply", r.posterHandler.ApplyContent)
			posters.POST("/export", r.posterHandler.ExportPoster)
		}

		prices := v1.Group("/prices")
		{
			prices.POST("/board", r.pricingHandler.GenerateBoard)
		}
	}
}

// Engine exposes the underlying gin engine for serving and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidations adds the custom binding rules used by the request
// DTOs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, _, err := locale.ParseClock(fl.Field().String())
			return err == nil
		})
	}
}

func resolveGinMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
