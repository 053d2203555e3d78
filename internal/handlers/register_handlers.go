package handlers

import (
	"net/http"

	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/middleware"
	"github.com/casherapp/casher_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route group onto the engine. Auth routes stay
// public; everything under /api/v1 requires a valid bearer token.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAuthRoutes(r, cfg, services.User)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerUserRoutes(v1, services.User)
		registerExpenditureRoutes(v1, services.Expenditure, services.Statement)
		registerSaleRoutes(v1, services.Sale)
	}
}
