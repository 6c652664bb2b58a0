package bandplan

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	mappings := r.Group("/plan-mappings")
	mappings.Use(middleware.AuthMiddleware())
	{
		mappings.POST("", middleware.RBACAuthorize(rbac, "plan_mapping", "create"), handler.Assign)
		mappings.GET("", middleware.RBACAuthorize(rbac, "plan_mapping", "read"), handler.List)
		mappings.GET("/resolve", middleware.RBACAuthorize(rbac, "plan_mapping", "read"), handler.Resolve)
		mappings.DELETE("/:id", middleware.RBACAuthorize(rbac, "plan_mapping", "delete"), handler.Unassign)
	}
}
