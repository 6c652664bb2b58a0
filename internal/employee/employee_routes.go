package employee

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService, redisClient *redis.Client) {
	emps := r.Group("/employees")
	emps.Use(middleware.AuthMiddleware())
	{
		emps.POST("", middleware.RBACAuthorize(rbac, "employee", "create"), handler.Create)
		emps.GET("", middleware.RBACAuthorize(rbac, "employee", "read"), handler.List)
		emps.GET("/options", middleware.RBACAuthorize(rbac, "employee", "read"), handler.Options)
		emps.GET("/:id", middleware.RBACAuthorize(rbac, "employee", "read"), handler.Get)
		emps.PUT("/:id", middleware.RBACAuthorize(rbac, "employee", "update"), handler.Update)
		emps.DELETE("/:id", middleware.RBACAuthorize(rbac, "employee", "delete"), handler.Deactivate)
		emps.POST("/import",
			middleware.RBACAuthorize(rbac, "employee", "create"),
			middleware.Idempotency(redisClient),
			handler.ImportRoster,
		)
	}
}
