package payment

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService, redisClient *redis.Client) {
	payments := r.Group("/payments")
	{
		// The gateway callback authenticates with a shared secret, not a JWT
		payments.POST("/webhook", middleware.RateLimitByIP(5, 10), handler.Webhook)

		authed := payments.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/sessions",
				middleware.RBACAuthorize(rbac, "payment", "create"),
				middleware.Idempotency(redisClient),
				handler.CreateSession,
			)
			authed.POST("/sessions/:id/initiate", middleware.RBACAuthorize(rbac, "payment", "update"), handler.Initiate)
			authed.GET("/sessions", middleware.RBACAuthorize(rbac, "payment", "read"), handler.List)
			authed.GET("/sessions/:id", middleware.RBACAuthorize(rbac, "payment", "read"), handler.Get)
		}
	}
}
