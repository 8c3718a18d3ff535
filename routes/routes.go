package routes

import (
	"time"

	"libraryhub/config"
	"libraryhub/handlers"
	"libraryhub/middleware"
	"libraryhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterHealthRoutes registers the health check and the Prometheus scrape endpoint.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler.HealthCheckHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	utils.RegisterValidators()
	r.Use(cors.New(corsConfig(config.AllowedOrigins())))

	if hb.HealthHandler != nil {
		RegisterHealthRoutes(r, hb)
	}

	api := r.Group("/api")
	api.Use(middleware.Authenticate(hb.AuthService))

	RegisterAuthRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterMembershipRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterContentRoutes(api, hb)
	RegisterNewsRoutes(api, hb)
	RegisterNotificationRoutes(api, hb)
	RegisterThemeRoutes(api, hb)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
