package router

import (
	"net/http"
	"time"

	"cupid/config"
	"cupid/internal/handler"
	"cupid/internal/middleware"
	"cupid/internal/repository"
	"cupid/internal/service"
	"cupid/pkg/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, gateway payment.Provider) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.CORS.Origins) == 1 && cfg.CORS.Origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	proposalRepo := repository.NewProposalRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	statusRepo := repository.NewStatusCheckRepository(db)

	// Services
	pricingSvc := service.NewPricingService(settingRepo)
	proposalSvc := service.NewProposalService(proposalRepo, paymentRepo, pricingSvc, gateway)

	// Handlers
	paymentHandler := handler.NewPaymentHandler(proposalSvc)
	proposalHandler := handler.NewProposalHandler(proposalSvc)
	pricingHandler := handler.NewPricingHandler(pricingSvc)
	adminHandler := handler.NewAdminHandler(&cfg.Admin)
	statusHandler := handler.NewStatusHandler(statusRepo)

	adminMw := middleware.AdminRequired(&cfg.Admin)

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Valentine Proposal API"})
		})

		api.GET("/settings/pricing", pricingHandler.Get)
		api.POST("/settings/pricing", adminMw, pricingHandler.Update)
		api.POST("/admin/login", adminHandler.Login)

		api.POST("/payments/create-order", paymentHandler.CreateOrder)
		api.POST("/payments/verify", paymentHandler.Verify)

		api.POST("/proposals", proposalHandler.Create)
		api.GET("/proposals", proposalHandler.List)
		api.GET("/proposals/:id", proposalHandler.Get)
		api.PATCH("/proposals/:id", proposalHandler.Respond)

		api.POST("/status", statusHandler.Create)
		api.GET("/status", statusHandler.List)
	}

	return r
}
