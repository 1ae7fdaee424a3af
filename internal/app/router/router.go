// Package router builds the HTTP route table.
package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spots_backend/internal/app/middleware"
	authentity "spots_backend/internal/feature/auth/domain/entity"
	authhandler "spots_backend/internal/feature/auth/transport/handler"
	spothandler "spots_backend/internal/feature/spots/transport/handler"
	platformhandler "spots_backend/internal/platform/http/handler"
)

// NewRouter wires all handlers into a Gin engine.
// The auth endpoints and the public listing reads are open; everything
// else goes through the access gate, with host/admin-only mutations.
func NewRouter(auth *middleware.Auth, authHandler *authhandler.AuthHandler, spots *spothandler.SpotHandler) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// Credential issuance: no token required
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Public listing reads
	api.GET("/spots", spots.List)
	api.GET("/spots/:id", spots.Get)

	// Routes behind the access gate
	protected := api.Group("/")
	protected.Use(auth.Authenticate())
	{
		protected.GET("/auth/me", authHandler.Me)

		hostOnly := middleware.RequireRoles(authentity.RoleHost, authentity.RoleAdmin)
		protected.GET("/spots/host/spots", hostOnly, spots.ListOwn)
		protected.POST("/spots", hostOnly, spots.Create)
		protected.PATCH("/spots/:id", hostOnly, spots.Update)
		protected.DELETE("/spots/:id", hostOnly, spots.Delete)
	}

	return r
}

// corsMiddleware allows the frontend origin from FRONTEND_URL, falling
// back to the local dev server.
func corsMiddleware() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
