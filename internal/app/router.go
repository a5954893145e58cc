package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ludamus.io/enrolld/internal/api/handlers"
	"ludamus.io/enrolld/internal/api/middleware"
	"ludamus.io/enrolld/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic([]byte(cfg.Security.SessionSecret)))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health/live", server.GetLiveness)
		v1.GET("/health/ready", server.GetReadiness)

		v1.POST("/sessions/:id/enrollment", server.PostEnrollmentBatch)
		v1.GET("/sessions/:id/availability", server.GetAvailability)

		v1.GET("/notifications", server.ListNotifications)
		v1.GET("/notifications/unread-count", server.GetUnreadCount)
		v1.POST("/notifications/:id/read", server.MarkNotificationRead)
		v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)
	}
	return router
}

// defaultDevOrigins are the local frontend origins used when no allowlist
// is configured.
var defaultDevOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func buildCORSConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowCredentials = cfg.Server.AllowCredentials
	c.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	c.AddExposeHeaders(middleware.RequestIDHeader)

	if cfg.Server.UnsafeAllowAllOrigins {
		// Reflecting any origin cannot be combined with credentials.
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		origins = defaultDevOrigins
	}
	c.AllowOrigins = origins
	return c
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
