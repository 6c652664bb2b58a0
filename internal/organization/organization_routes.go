package organization

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	orgs := r.Group("/organizations")
	orgs.Use(middleware.AuthMiddleware())
	{
		orgs.POST("", middleware.RBACAuthorize(rbac, "organization", "create"), handler.Create)
		orgs.GET("", middleware.RBACAuthorize(rbac, "organization", "read"), handler.List)
		orgs.GET("/:id", middleware.RBACAuthorize(rbac, "organization", "read"), handler.Get)
		orgs.PUT("/:id", middleware.RBACAuthorize(rbac, "organization", "update"), handler.Update)
	}
}
