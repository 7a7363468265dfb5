// Package router sets up the API routes for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/internal/api/handler"
	"github.com/trendyreports/trendyreports/internal/api/middleware"
	"github.com/trendyreports/trendyreports/internal/config"
	"github.com/trendyreports/trendyreports/internal/database"
	"github.com/trendyreports/trendyreports/internal/export"
	"github.com/trendyreports/trendyreports/internal/render"
	"github.com/trendyreports/trendyreports/internal/store"
)

// Setup configures all API routes
func Setup(r *gin.Engine, cfg *config.Config, s store.Store) {
	// Apply global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(&middleware.LoggerConfig{
		AccessLog: cfg.Logging.AccessLog,
	}))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(cfg.Server.Debug))

	// Apply OpenTelemetry tracing middleware
	r.Use(otelgin.Middleware(consts.ServiceName))

	// Health check endpoint (public)
	r.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  "database unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": consts.Version,
		})
	})

	// Shared renderer and export manager
	renderer := render.New()
	exporter := export.NewDefaultManager()

	// Standalone branding preview page (public, used for headless capture)
	previewHandler := handler.NewPreviewHandler(renderer)
	r.GET("/preview/branding", previewHandler.BrandingPreview)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// ============== Auth routes ==============

	authHandler := handler.NewAuthHandler(cfg)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWTAuth(authHandler), authHandler.Me)
	}

	// ============== Public routes ==============

	reportHandler := handler.NewReportHandler(renderer, exporter, s)

	// Report types (public endpoint for UI dropdown)
	v1.GET("/report-types", reportHandler.GetReportTypes)

	// Lead capture (public, honeypot + per-IP rate limit)
	leadHandler := handler.NewLeadHandler(s)
	v1.POST("/leads", middleware.RateLimit(cfg.Leads.RatePerMinute), leadHandler.CreateLead)

	// ============== Render and report routes (protected) ==============

	v1.POST("/renders", middleware.JWTAuth(authHandler), reportHandler.CreateRender)

	reports := v1.Group("/reports")
	reports.Use(middleware.JWTAuth(authHandler))
	{
		reports.GET("", reportHandler.ListReports)
		reports.GET("/cities", reportHandler.GetCities)
		reports.GET("/:id", reportHandler.GetReport)
		reports.GET("/:id/export", reportHandler.ExportReport)
		reports.DELETE("/:id", reportHandler.DeleteReport)
	}

	// ============== Template routes (protected) ==============

	templateHandler := handler.NewTemplateHandler(s)
	templates := v1.Group("/templates")
	templates.Use(middleware.JWTAuth(authHandler))
	{
		templates.POST("", templateHandler.CreateTemplate)
		templates.GET("", templateHandler.ListTemplates)
		templates.GET("/:id", templateHandler.GetTemplate)
		templates.PUT("/:id", templateHandler.UpdateTemplate)
		templates.DELETE("/:id", templateHandler.DeleteTemplate)
		templates.POST("/:id/default", templateHandler.SetDefaultTemplate)
	}

	// ============== Brand routes (protected) ==============

	brandHandler := handler.NewBrandHandler(s)
	brands := v1.Group("/brands")
	brands.Use(middleware.JWTAuth(authHandler))
	{
		brands.POST("", brandHandler.CreateBrand)
		brands.GET("", brandHandler.ListBrands)
		brands.GET("/:id", brandHandler.GetBrand)
		brands.PUT("/:id", brandHandler.UpdateBrand)
		brands.DELETE("/:id", brandHandler.DeleteBrand)
	}

	// ============== Lead admin routes (protected) ==============

	leads := v1.Group("/leads")
	leads.Use(middleware.JWTAuth(authHandler))
	{
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}
}
