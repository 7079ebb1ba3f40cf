package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/munwalk/dialog-ai/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg         *config.Config
	chatHandler *Chat
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, chatHandler *Chat) *Router {
	return &Router{
		cfg:         cfg,
		chatHandler: chatHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupChatRoutes(v1)
}

// setupChatRoutes configures the conversational search routes
func (rt *Router) setupChatRoutes(g *echo.Group) {
	if rt.chatHandler != nil {
		g.POST("/chat", rt.chatHandler.HandleMessage)
		g.GET("/keywords/search", rt.chatHandler.HandleKeywordSearch)
	} else {
		g.POST("/chat", rt.notImplemented)
		g.GET("/keywords/search", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
