package auth

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
