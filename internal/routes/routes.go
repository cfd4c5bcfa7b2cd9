package routes

import (
	"github.com/gin-gonic/gin"

	"campusconnect_backend/internal/handlers"
	"campusconnect_backend/internal/middleware"
	"campusconnect_backend/internal/session"
	"campusconnect_backend/ws"
)

// RegisterRoutes wires every HTTP and websocket route.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
	sessions *session.Manager,
) {
	api := router.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Feed.RegisterRoutes(api)
		appHandlers.Job.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
	}

	wsGroup := router.Group("/ws")
	wsGroup.Use(middleware.RequireSession(sessions))
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
}
