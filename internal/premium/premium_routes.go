package premium

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService, redisClient *redis.Client) {
	premiums := r.Group("/premiums")
	premiums.Use(middleware.AuthMiddleware())
	{
		premiums.POST("/calculate",
			middleware.RBACAuthorize(rbac, "premium", "create"),
			middleware.RateLimitByUser(2, 5),
			middleware.Idempotency(redisClient),
			handler.Calculate,
		)
		premiums.GET("", middleware.RBACAuthorize(rbac, "premium", "read"), handler.List)
		premiums.GET("/summary", middleware.RBACAuthorize(rbac, "premium", "read"), handler.Summary)
	}
}
