package salaryband

import (
	"insuregate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	bands := r.Group("/salary-bands")
	bands.Use(middleware.AuthMiddleware())
	{
		bands.POST("", middleware.RBACAuthorize(rbac, "salary_band", "create"), handler.Create)
		bands.GET("", middleware.RBACAuthorize(rbac, "salary_band", "read"), handler.List)
		bands.GET("/:id", middleware.RBACAuthorize(rbac, "salary_band", "read"), handler.Get)
		bands.PUT("/:id", middleware.RBACAuthorize(rbac, "salary_band", "update"), handler.Update)
		bands.DELETE("/:id", middleware.RBACAuthorize(rbac, "salary_band", "delete"), handler.Delete)
	}
}
