package handlers

import (
	"net/http"
	"time"

	"github.com/waste3d/course-admin/internal/middleware"
	"github.com/waste3d/course-admin/internal/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *AuthHandler
	Projects *ProjectHandler
	Content  *ContentHandler
	Personas *PersonaHandler
	Catalog  *CatalogHandler
}

// HealthFunc reports whether the backing stores are reachable.
type HealthFunc func(c *gin.Context) error

type RouterConfig struct {
	AllowedOrigins []string
	Limiter        *middleware.RateLimiter
	Validator      middleware.AccessValidator
	Health         HealthFunc
	Log            *logger.Logger
}

func NewRouter(h Handlers, cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		if cfg.Health != nil {
			if err := cfg.Health(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			login := []gin.HandlerFunc{h.Auth.Login}
			if cfg.Limiter != nil {
				login = append([]gin.HandlerFunc{cfg.Limiter.Limit("login", 5, 1*time.Minute)}, login...)
			}
			auth.POST("/login", login...)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		private := api.Group("")
		private.Use(middleware.AuthMiddleware(cfg.Validator))

		projects := private.Group("/projects")
		{
			projects.GET("", h.Projects.List)
			projects.POST("", h.Projects.Create)
			projects.GET("/:slug", h.Projects.GetOne)
			projects.GET("/:slug/overview", h.Projects.Overview)
			projects.GET("/:slug/content", h.Content.Get)
			projects.POST("/:slug/content", h.Content.Create)
			projects.DELETE("/:slug/content/:id", h.Content.Delete)
			projects.POST("/:slug/personas/generate", h.Personas.Generate)
		}
		personas := private.Group("/personas")
		{
			personas.GET("", h.Personas.List)
			personas.GET("/:slug", h.Personas.GetOne)
		}
		frameworks := private.Group("/frameworks")
		{
			frameworks.GET("", h.Catalog.ListFrameworks)
			frameworks.GET("/:slug", h.Catalog.GetFramework)
		}
		minds := private.Group("/minds")
		{
			minds.GET("", h.Catalog.ListMinds)
			minds.GET("/:slug", h.Catalog.GetMind)
		}
	}

	return r
}
