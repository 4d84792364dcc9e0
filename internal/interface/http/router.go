package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = false
	router.Use(
		requestLogger(handler.logger, handler.recorder),
		recoveryMiddleware(handler.logger),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)
	router.NoRoute(notFoundHandler)

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(handler.recorder.Handler()))

	requireAuth := authMiddleware(handler.authSvc)

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/refresh", handler.Refresh)
		authGroup.GET("/me", requireAuth, handler.Me)
		authGroup.POST("/logout", requireAuth, handler.Logout)
	}

	api := router.Group("/api", requireAuth)
	{
		api.POST("/beautify", handler.Beautify)
		api.POST("/summarize", handler.Summarize)
		api.POST("/save", handler.SaveNote)
		api.GET("/notes", handler.ListNotes)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withCORS(router, cfg.HTTP.AllowedOrigins),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
